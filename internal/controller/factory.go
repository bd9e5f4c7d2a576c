package controller

import (
	"io"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// fdWriter is implemented by *os.File.
type fdWriter interface {
	Fd() uintptr
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea) drawing progress on
// stderr. Otherwise it returns a SimpleUI printing plain progress lines.
// Results go to stdout in the given format either way.
func NewUI(cmd *cobra.Command, useTTY bool, format string) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout(), cmd.ErrOrStderr(), format)
	}

	return NewSimpleUI(cmd, format)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
