package game

import (
	"fmt"
	"io"

	"tictactoe/internal/core"
)

// clearScreen erases the terminal and homes the cursor.
const clearScreen = "\x1b[2J\x1b[1;1H"

// console writes the human-readable end-of-game lines.
type console struct {
	w io.Writer
}

func newConsole(w io.Writer) *console {
	if w == nil {
		w = io.Discard
	}
	return &console{w: w}
}

func (c *console) clear() {
	// A terminal that rejects the escape sequence still plays fine.
	_, _ = io.WriteString(c.w, clearScreen)
}

func (c *console) win(m core.Mark) error {
	if _, err := fmt.Fprintf(c.w, "%s wins!\n", m); err != nil {
		return fmt.Errorf("report win: %w", err)
	}
	return nil
}

func (c *console) draw() error {
	if _, err := io.WriteString(c.w, "Cat's game!\n"); err != nil {
		return fmt.Errorf("report draw: %w", err)
	}
	return nil
}
