// Package display holds the small amount of terminal handling watch
// mode needs to repaint reports in place.
package display

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal control sequences
const (
	ClearScreen    = "\033[2J"
	MoveCursorHome = "\033[H"
	HideCursor     = "\033[?25l"
	ShowCursor     = "\033[?25h"
)

// IsTerminal reports whether f is attached to a terminal. Watch mode
// only repaints when it is; piped output gets plain appended renders.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Clear erases the screen and moves the cursor home.
func Clear(w io.Writer) {
	fmt.Fprint(w, ClearScreen, MoveCursorHome)
}
