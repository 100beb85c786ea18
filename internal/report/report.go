// Package report renders the operator-facing transcript as color-tagged
// status lines.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	infoTag    = color.New(color.FgCyan).SprintFunc()
	successTag = color.New(color.FgGreen).SprintFunc()
	errorTag   = color.New(color.FgRed).SprintFunc()
)

// Console writes tagged status lines: info and success to out, errors to
// errOut. Writes never fail loudly; a broken pipe loses the line.
type Console struct {
	out    io.Writer
	errOut io.Writer
}

// NewConsole creates a Console bound to the given writers.
func NewConsole(out, errOut io.Writer) *Console {
	return &Console{out: out, errOut: errOut}
}

// Default returns a Console bound to stdout and stderr.
func Default() *Console {
	return NewConsole(os.Stdout, os.Stderr)
}

func (c *Console) Info(msg string) {
	c.write(c.out, infoTag("[INFO]"), msg)
}

func (c *Console) Success(msg string) {
	c.write(c.out, successTag("[SUCCESS]"), msg)
}

func (c *Console) Error(msg string) {
	c.write(c.errOut, errorTag("[ERROR]"), msg)
}

func (c *Console) write(w io.Writer, tag, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", tag, msg)
}
