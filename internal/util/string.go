// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the banter application.
package util

import "strings"

// =============================================================================
// INPUT NORMALIZATION
// =============================================================================

// Normalize converts raw user input into its canonical matching form:
// leading/trailing whitespace (space, tab, CR, LF) is trimmed, then ASCII
// letters are lowercased. Internal whitespace, punctuation, and non-ASCII
// bytes pass through untouched, so multi-byte characters are never corrupted
// by case folding. Normalize is idempotent.
func Normalize(raw string) string {
	return LowerASCII(strings.Trim(raw, " \t\r\n"))
}

// LowerASCII lowercases ASCII letters only, leaving every other byte as-is.
// strings.ToLower would also fold non-ASCII characters, which the matching
// rules must not do.
func LowerASCII(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}

	b := []byte(s)
	for i := 0; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

// =============================================================================
// STRING HELPERS
// =============================================================================

// WordCount returns the number of whitespace-separated tokens in a string.
// Runs of whitespace count as a single separator; empty input counts zero.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// Reverse returns the string with its byte sequence reversed.
// The reverse command operates on the normalized (ASCII-safe) input line,
// so byte order and character order coincide for its intended use.
func Reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// TruncateRunes truncates a string to a maximum number of runes (characters).
// This is safe for UTF-8 strings as it counts characters, not bytes.
// If the string is truncated, "..." is appended.
func TruncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}

// RuneLen returns the number of runes (characters) in a string.
// This is safer than len() for UTF-8 strings.
func RuneLen(s string) int {
	return len([]rune(s))
}
