package report

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
)

func TestConsoleStreams(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	var out, errOut bytes.Buffer
	c := NewConsole(&out, &errOut)

	c.Info("looking up")
	c.Success("scrobbled")
	c.Error("rejected")

	if got, want := out.String(), "[INFO] looking up\n[SUCCESS] scrobbled\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if got, want := errOut.String(), "[ERROR] rejected\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}

func TestConsoleSurvivesFailingWriter(t *testing.T) {
	c := NewConsole(failWriter{}, failWriter{})
	// Must not panic or return anything.
	c.Info("x")
	c.Success("x")
	c.Error("x")
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, bytes.ErrTooLarge
}
