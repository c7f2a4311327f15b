package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsWriterTerminal returns true if w is backed by a terminal file
// descriptor. Auto color mode resolves against the presenter's actual
// writer, so redirected or captured output stays escape-code free.
func IsWriterTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
