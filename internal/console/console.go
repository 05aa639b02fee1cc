// Package console writes the scaffolder's user-facing status lines. Markers
// and highlighted values are colored with fatih/color, which already honors
// NO_COLOR and disables itself when stdout is not a terminal.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
	blue   = color.New(color.FgBlue).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

// Green styles success markers.
func Green(a ...any) string { return green(a...) }

// Gray styles paths, package specifiers and hints.
func Gray(a ...any) string { return gray(a...) }

// Blue styles commands the user can run.
func Blue(a ...any) string { return blue(a...) }

// Red styles failure markers.
func Red(a ...any) string { return red(a...) }

// Yellow styles skip markers.
func Yellow(a ...any) string { return yellow(a...) }

// Console splits informational output (Out) from errors (Err).
type Console struct {
	Out io.Writer
	Err io.Writer
}

// New returns a Console; nil writers default to os.Stdout and os.Stderr.
func New(out, errOut io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Console{Out: out, Err: errOut}
}

// Infof writes one line to Out.
func (c *Console) Infof(format string, args ...any) {
	fmt.Fprintf(c.Out, format+"\n", args...)
}

// Errorf writes one line to Err.
func (c *Console) Errorf(format string, args ...any) {
	fmt.Fprintf(c.Err, format+"\n", args...)
}

// InfoBlank writes an empty line to Out.
func (c *Console) InfoBlank() { fmt.Fprintln(c.Out) }

// ErrorBlank writes an empty line to Err.
func (c *Console) ErrorBlank() { fmt.Fprintln(c.Err) }
