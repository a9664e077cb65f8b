// Package ui prints colored status messages for the command line
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)

	successSymbol = "✓"
	errorSymbol   = "✗"
	warningSymbol = "⚠"
	infoSymbol    = "→"
)

// Printer writes status messages to one stream, normally stderr
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stderr
	}
	return &Printer{w: w}
}

// Success prints a success message in green with a checkmark
func (p *Printer) Success(format string, args ...interface{}) {
	p.print(successColor, successSymbol, format, args...)
}

// Error prints an error message in red with an X
func (p *Printer) Error(format string, args ...interface{}) {
	p.print(errorColor, errorSymbol, format, args...)
}

// Warning prints a warning message in yellow with a warning symbol
func (p *Printer) Warning(format string, args ...interface{}) {
	p.print(warningColor, warningSymbol, format, args...)
}

// Info prints an info message in cyan with an arrow
func (p *Printer) Info(format string, args ...interface{}) {
	p.print(infoColor, infoSymbol, format, args...)
}

func (p *Printer) print(c *color.Color, symbol, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = c.Fprintf(p.w, "%s %s\n", symbol, message)
}

// DisableColor turns off color for every printer
func DisableColor() {
	color.NoColor = true
}
