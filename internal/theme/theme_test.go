package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestDisableColor(t *testing.T) {
	saved := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(saved) })

	DisableColor()
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
	assert.Equal(t, "✓ Registered /opt/jvms", SuccessMessage("Registered /opt/jvms"))
	assert.Equal(t, "17.0.2", VersionStyle.Render("17.0.2"))
}
