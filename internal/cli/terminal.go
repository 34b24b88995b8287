// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// Terminal Detection
// =============================================================================

var (
	ttyOnce     sync.Once
	stdinIsTTY  bool
	stdoutIsTTY bool
)

func detectTTY() {
	ttyOnce.Do(func() {
		stdinIsTTY = term.IsTerminal(int(os.Stdin.Fd()))
		stdoutIsTTY = term.IsTerminal(int(os.Stdout.Fd()))
	})
}

// IsInteractive reports whether stdin is attached to a terminal.
func IsInteractive() bool {
	detectTTY()
	return stdinIsTTY
}

// IsStdoutTTY reports whether stdout is attached to a terminal.
func IsStdoutTTY() bool {
	detectTTY()
	return stdoutIsTTY
}

// =============================================================================
// Color Support
// =============================================================================

var colorDisabled bool

// DisableColor forces plain output regardless of terminal capabilities.
func DisableColor() {
	colorDisabled = true
}

// ColorsEnabled reports whether styled output should be emitted.
// Honors the NO_COLOR convention (https://no-color.org/) and FORCE_COLOR.
func ColorsEnabled() bool {
	if colorDisabled {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	return IsStdoutTTY()
}

// ColorProfile returns the termenv profile matching the current terminal,
// or the ASCII profile when colors are disabled.
func ColorProfile() termenv.Profile {
	if !ColorsEnabled() {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
