// Package diag writes human readable diagnostics to the error stream.
package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type Reporter struct {
	// Verbose enables Tracef output.
	Verbose bool

	w    io.Writer
	prog string

	errors   int
	warnings int

	errColor   *color.Color
	warnColor  *color.Color
	traceColor *color.Color
}

// New returns a Reporter writing to w. Colours are used only when w is a terminal.
func New(w io.Writer, prog string) *Reporter {
	r := &Reporter{
		w:          w,
		prog:       prog,
		errColor:   color.New(color.FgRed, color.Bold),
		warnColor:  color.New(color.FgMagenta, color.Bold),
		traceColor: color.New(color.FgCyan),
	}
	colors := []*color.Color{r.errColor, r.warnColor, r.traceColor}
	for _, c := range colors {
		if isTerminal(w) {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *Reporter) Errorf(format string, args ...interface{}) {
	r.errors++
	r.emit(r.errColor.Sprint("error"), format, args...)
}

func (r *Reporter) Warnf(format string, args ...interface{}) {
	r.warnings++
	r.emit(r.warnColor.Sprint("warning"), format, args...)
}

// Tracef is a no-op unless Verbose is set.
func (r *Reporter) Tracef(format string, args ...interface{}) {
	if !r.Verbose {
		return
	}
	r.emit(r.traceColor.Sprint("note"), format, args...)
}

func (r *Reporter) Errors() int   { return r.errors }
func (r *Reporter) Warnings() int { return r.warnings }

func (r *Reporter) emit(severity string, format string, args ...interface{}) {
	fmt.Fprintf(r.w, "%s: %s: %s\n", r.prog, severity, fmt.Sprintf(format, args...))
}
