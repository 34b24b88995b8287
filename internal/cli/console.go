// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"io"
	"strings"

	"github.com/peterh/liner"
)

// =============================================================================
// Console Input
// =============================================================================

// Console provides line editing and in-memory input history for the
// interactive session. History lives only for the lifetime of the process;
// nothing is written to disk.
type Console struct {
	line *liner.State
}

// NewConsole creates a Console backed by liner.
func NewConsole() *Console {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &Console{line: line}
}

// ReadLine reads a line of input with the given prompt. Arrow keys navigate
// history. Ctrl+C and Ctrl+D both surface as io.EOF so callers can treat
// either as a request to leave.
func (c *Console) ReadLine(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		if err == liner.ErrPromptAborted {
			return "", io.EOF
		}
		return "", err
	}

	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}

	return input, nil
}

// Close restores the terminal state.
func (c *Console) Close() {
	c.line.Close()
}
