package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (lipgloss and Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain tables).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
