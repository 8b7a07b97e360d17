// Package controller renders glslpack results for the terminal.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"glslpack.dev/pkg/glslpack/internal/glsl"
	m "glslpack.dev/pkg/glslpack/internal/model"
)

// UI defines how command results are shown.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayMinified writes minified shader text exactly as produced.
	DisplayMinified(ctx context.Context, output string) error
	// DisplayRenames shows which identifiers were shortened to what.
	DisplayRenames(ctx context.Context, renames glsl.RenameTable) error
	// DisplayBuildReport summarises a batch build.
	DisplayBuildReport(ctx context.Context, report m.BuildReport) error
}

// NewUI returns a TUI writing to the command output when tty is set, and a
// SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

func terminalSize(w io.Writer) (int, int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, 0, false
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}

	return width, height, true
}
