// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package terminal provides small helpers for interactive prompt cleanup.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Width returns the current terminal width, falling back to 80 columns
// when stdout is not a terminal.
func Width() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// ClearPrompt erases a prompt line (prompt text plus the user's typed
// input) after Enter, accounting for line wrapping at the current width.
// Used to replace raw input lines with a rendered confirmation.
func ClearPrompt(textLength int) {
	width := Width()
	lines := (textLength + width - 1) / width
	if lines < 1 {
		lines = 1
	}
	// Enter left the cursor on a fresh line below the input.
	lines++
	for i := 0; i < lines; i++ {
		fmt.Print("\r\x1b[2K")
		if i < lines-1 {
			fmt.Print("\x1b[1A")
		}
	}
}

// ReadPassword reads a line from stdin with echo disabled. When stdin is
// not a terminal (piped input, tests) it falls back to a plain read so
// scripted use keeps working.
func ReadPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return "", err
	}
	return line, nil
}
