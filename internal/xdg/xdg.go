// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package xdg resolves the per-user directories the CLI writes to,
// following the XDG Base Directory layout: config.json lives under the
// config dir, the diagnostic log and the keyring fallback file under the
// state dir. Both are created private (0700) because they can hold
// credentials.
package xdg

import (
	"os"
	"path/filepath"
)

const appDir = "collabnex"

// ConfigDir returns the collabnex config directory,
// $XDG_CONFIG_HOME/collabnex or ~/.config/collabnex, creating it if needed.
func ConfigDir() (string, error) {
	return dir("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the collabnex state directory,
// $XDG_STATE_HOME/collabnex or ~/.local/state/collabnex, creating it if
// needed.
func StateDir() (string, error) {
	return dir("XDG_STATE_HOME", ".local", "state")
}

func dir(envVar string, fallback ...string) (string, error) {
	base := os.Getenv(envVar)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(append([]string{home}, fallback...)...)
	}
	d := filepath.Join(base, appDir)
	if err := os.MkdirAll(d, 0o700); err != nil {
		return "", err
	}
	return d, nil
}
