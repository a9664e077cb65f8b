package main

import (
	"fmt"
	"io"

	"jvmfind/internal/java"
	"jvmfind/internal/platform"
	"jvmfind/internal/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// report prints the ranked matches. jvms is never empty.
func (a *app) report(jvms []java.JVM) error {
	if a.opts.interactive && a.isTerminal(a.stderr) && a.isTerminal(stdinFile()) {
		jvm, err := a.pick(jvms)
		if err != nil {
			return &ExitError{Code: ExitFailure, Err: err}
		}
		fmt.Fprintln(a.stdout, jvm.Path)
		return nil
	}

	if !a.opts.detailed {
		fmt.Fprintln(a.stdout, jvms[0].Path)
		return nil
	}

	if a.isTerminal(a.stdout) {
		fmt.Fprintln(a.stdout, renderTable(jvms, a.javaHome()))
		return nil
	}
	writeDetailed(a.stdout, jvms)
	return nil
}

// writeDetailed prints one `{version} ({arch}) "{name}" - {path}` line per JVM
func writeDetailed(w io.Writer, jvms []java.JVM) {
	for _, jvm := range jvms {
		fmt.Fprintln(w, jvm.String())
	}
}

// renderTable renders the matches as a table, marking the one JAVA_HOME points at
func renderTable(jvms []java.JVM, javaHome string) string {
	current := -1
	rows := make([][]string, 0, len(jvms))
	for i, jvm := range jvms {
		marker := ""
		if javaHome != "" && current < 0 && platform.SamePath(jvm.Path, javaHome) {
			marker = "*"
			current = i
		}
		rows = append(rows, []string{marker, jvm.Version.String(), string(jvm.Arch), jvm.Name, jvm.Path})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(theme.TableBorder).
		Headers("", "VERSION", "ARCH", "NAME", "PATH").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return theme.TableHeader
			case row == current:
				return theme.TableCell.Inherit(theme.CurrentStyle)
			case col == 1:
				return theme.TableCell.Inherit(theme.VersionStyle)
			case col == 4:
				return theme.TableCell.Inherit(theme.PathStyle)
			default:
				return theme.TableCell
			}
		})

	return t.Render()
}
