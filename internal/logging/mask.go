// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides the CLI's diagnostic logger and utilities for
// keeping secrets out of it. It includes functions for masking sensitive
// information in log messages so that passwords, bearer tokens, and API keys
// are not accidentally exposed in the debug log or in error messages shown
// to users.
package logging

import (
	"regexp"
	"strings"
)

var (
	rePassword  = regexp.MustCompile(`(?i)(password=)([^\s;&]+)`)
	reJSONPass  = regexp.MustCompile(`(?i)("password"\s*:\s*")([^"]*)(")`)
	reBearer    = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._-]+)`)
	reJSONToken = regexp.MustCompile(`(?i)("(?:access_?token|refresh_?token|token|jwt)"\s*:\s*")([^"]*)(")`)
)

// Mask replaces sensitive values in the input string with "*".
// Both query-style pairs and JSON bodies are covered.
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reJSONPass.ReplaceAllString(out, "$1***$3")
	out = reBearer.ReplaceAllString(out, "$1***")
	out = reJSONToken.ReplaceAllString(out, "$1***$3")
	return out
}

// MaskToken shortens a bearer token to its first few characters for display.
func MaskToken(token string) string {
	t := strings.TrimSpace(token)
	if len(t) <= 8 {
		return "***"
	}
	return t[:8] + "***"
}
