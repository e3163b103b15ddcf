package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Smallest terminal the court is still readable in.
const (
	MinCols = 60
	MinRows = 20
)

// Interactive reports whether f is attached to a terminal.
func Interactive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// CheckSize fails when the terminal behind f is too small to draw the court.
func CheckSize(f *os.File) error {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if width < MinCols || height < MinRows {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", width, height, MinCols, MinRows)
	}
	return nil
}
