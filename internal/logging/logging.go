// Package logging builds the diagnostic logger shared by discovery and the CLI.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Prefix tags every diagnostic line
const Prefix = "jvmfind"

// New returns a logger writing to w. Only warnings and errors are shown unless debug is set.
func New(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           level,
		ReportTimestamp: debug,
	})
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
