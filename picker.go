package main

import (
	"fmt"
	"os"
	"strings"

	"jvmfind/internal/java"
	"jvmfind/internal/platform"
	"jvmfind/internal/theme"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func stdinFile() any {
	return os.Stdin
}

// pick shows an interactive selector over the ranked matches, best first
func (a *app) pick(jvms []java.JVM) (java.JVM, error) {
	if len(jvms) == 1 {
		return jvms[0], nil
	}

	current := a.javaHome()
	options := make([]huh.Option[int], len(jvms))
	for i, jvm := range jvms {
		options[i] = huh.NewOption(pickerLabel(jvm, current), i)
	}

	var selected int
	err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title(theme.Subtitle.Render("Select a JVM")).
			Description(theme.Faint.Render("Use arrow keys to navigate, Enter to select")).
			Options(options...).
			Value(&selected),
	)).
		WithOutput(a.stderr).
		Run()
	if err != nil {
		return java.JVM{}, fmt.Errorf("selection aborted: %w", err)
	}

	return jvms[selected], nil
}

// pickerLabel aligns the version column and tags the JVM JAVA_HOME points at
func pickerLabel(jvm java.JVM, current string) string {
	version := jvm.Version.String()
	isCurrent := current != "" && platform.SamePath(jvm.Path, current)
	if isCurrent {
		version = theme.CurrentStyle.Render(version)
	}

	pad := 0
	if w := lipgloss.Width(version); w < 15 {
		pad = 15 - w
	}

	label := fmt.Sprintf("%s%s %-8s %s %s",
		version, strings.Repeat(" ", pad), jvm.Arch, jvm.Path, theme.Faint.Render("("+jvm.Name+")"))
	if isCurrent {
		label += " " + theme.Faint.Render("[current]")
	}
	return label
}
