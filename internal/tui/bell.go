package tui

import (
	"fmt"
	"os"
)

// TerminalBell rings the terminal bell when the countdown finishes.
type TerminalBell struct{}

func (TerminalBell) Play() {
	fmt.Fprint(os.Stderr, "\a")
}
