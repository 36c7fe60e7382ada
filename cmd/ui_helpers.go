// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"collabnex/cli/internal/terminal"

	"atomicgo.dev/cursor"
)

// startInlineSpinner starts a single-line spinner animation in front of the
// given text. The cursor is hidden while the spinner runs. The returned
// function stops the spinner, clears its line and restores the cursor.
func startInlineSpinner(w io.Writer, text string) func() {
	frames := []string{"|", "/", "-", "\\"}
	stop := make(chan struct{})
	var wg sync.WaitGroup
	cursor.Hide()
	wg.Add(1)
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(120 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				fmt.Fprintf(w, "\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				fmt.Fprintf(w, "\r%s %s", frames[i%len(frames)], text)
				i++
			}
		}
	}()
	return func() {
		close(stop)
		wg.Wait()
		cursor.Show()
	}
}

// promptLine reads one line of input after printing the prompt, then erases
// the raw input line so the caller can render a clean confirmation.
func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	terminal.ClearPrompt(len(prompt) + len(line))
	return line, nil
}

// promptSecret reads a line with echo disabled.
func promptSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	return terminal.ReadPassword()
}
