package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNew_DefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	assert.Equal(t, log.WarnLevel, logger.GetLevel())

	logger.Debug("skipping search root", "root", "/nope")
	assert.Empty(t, buf.String())

	logger.Warn("store unreadable")
	assert.Contains(t, buf.String(), "store unreadable")
	assert.Contains(t, buf.String(), Prefix)
}

func TestNew_Debug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)

	logger.Debug("found JVM", "path", "/opt/jdk-21")
	assert.Contains(t, buf.String(), "found JVM")
	assert.Contains(t, buf.String(), "/opt/jdk-21")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.NotPanics(t, func() {
		logger.Error("dropped")
	})
}
