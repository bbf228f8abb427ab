package render

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is an interactive terminal. The snapshot
// is skipped (with a warning, not an error) when it isn't, since tcell
// has nothing to draw on a redirected or piped stdout.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Width reports stdout's column count, defaulting to 80 when it can't be
// queried (piped output, a dumb terminal).
func Width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
