package updater

import (
	"fmt"
	"io"
	"strings"

	"jvmfind/internal/theme"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/creativeprojects/go-selfupdate"
)

// Prompt choices
const (
	ActionUpdate = "update"
	ActionSkip   = "skip"
	ActionLater  = "later"
)

// PromptForUpdate shows an interactive prompt asking user if they want to update
func (u *Updater) PromptForUpdate(release *selfupdate.Release) (string, error) {
	sizeMB := float64(release.AssetByteSize) / 1024 / 1024

	description := fmt.Sprintf(
		"Download size: %.1f MB\n\n%s",
		sizeMB,
		renderNotes(truncateChangelog(release.ReleaseNotes, 400)),
	)

	var action string
	err := huh.NewSelect[string]().
		Title(theme.Subtitle.Render(fmt.Sprintf("Update available: %s → %s", u.currentVersion, release.Version()))).
		Description(description).
		Options(
			huh.NewOption(theme.SuccessStyle.Render("Update now"), ActionUpdate),
			huh.NewOption(theme.InfoStyle.Render("Skip this version"), ActionSkip),
			huh.NewOption(theme.WarningStyle.Render("Remind me later"), ActionLater),
		).
		Value(&action).
		Run()

	if err != nil {
		return "", err
	}

	if action == ActionSkip {
		if err := u.SkipVersion(release.Version()); err != nil {
			u.logger.Warn("failed to save skip preference", "err", err)
		}
	}

	return action, nil
}

// ShowUpdateAvailable reports an available update without installing it
func ShowUpdateAvailable(w io.Writer, currentVersion, latestVersion string) {
	fmt.Fprintf(w, "%s Update available: %s → %s %s\n",
		theme.InfoStyle.Render("ℹ"),
		theme.Faint.Render(currentVersion),
		theme.CurrentStyle.Render(latestVersion),
		theme.Faint.Render("(run 'jvmfind update')"))
}

// ShowUpdateSuccess displays success message after update
func ShowUpdateSuccess(w io.Writer, version string) {
	fmt.Fprintln(w)
	title := theme.SuccessStyle.Padding(0, 2).Render("✓ Update Complete!")
	fmt.Fprintln(w, theme.SuccessBox.Render(title))
	fmt.Fprintf(w, "%s Updated to version %s\n",
		theme.LabelStyle.Render("Version:"),
		theme.CurrentStyle.Render(version))
}

// ShowAlreadyUpToDate displays message when already on latest version
func ShowAlreadyUpToDate(w io.Writer, version string) {
	fmt.Fprintln(w, theme.SuccessMessage(fmt.Sprintf("You're already running the latest version (%s)", version)))
}

// renderNotes renders markdown release notes for the terminal, falling back to the raw text
func renderNotes(notes string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)
	if err != nil {
		return notes
	}
	out, err := renderer.Render(notes)
	if err != nil {
		return notes
	}
	return strings.TrimSpace(out)
}

// truncateChangelog truncates the changelog to a maximum length
func truncateChangelog(changelog string, maxLen int) string {
	changelog = strings.TrimSpace(changelog)

	if changelog == "" {
		return "See release notes on GitHub for details."
	}

	if len(changelog) <= maxLen {
		return changelog
	}

	// Find a good break point (newline or space)
	truncated := changelog[:maxLen]
	if idx := strings.LastIndex(truncated, "\n"); idx > maxLen/2 {
		truncated = truncated[:idx]
	} else if idx := strings.LastIndex(truncated, " "); idx > maxLen/2 {
		truncated = truncated[:idx]
	}

	return truncated + "..."
}
