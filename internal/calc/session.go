// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// session.go - The nested calculator read-eval loop.
package calc

import (
	"errors"
	"strings"
)

// =============================================================================
// PORTS
// =============================================================================

// LineReader reads one line of user input. Implementations return an error
// (conventionally io.EOF) when the input stream ends.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Presenter receives the sub-session's output as plain data.
type Presenter interface {
	Say(msg string)
	SayLines(lines []string)
}

// =============================================================================
// SUB-SESSION
// =============================================================================

// State is the calculator sub-session state.
type State int

const (
	// Active means the sub-session keeps prompting.
	Active State = iota
	// Exited means control returns to the chat loop.
	Exited
)

// exit keywords, compared case-insensitively against the trimmed line.
var exitKeywords = []string{"done", "exit", "back", "quit"}

// IsExitKeyword reports whether a line exits the calculator.
func IsExitKeyword(line string) bool {
	line = strings.ToLower(strings.TrimSpace(line))
	for _, kw := range exitKeywords {
		if line == kw {
			return true
		}
	}
	return false
}

// Session is the calculator sub-session. It blocks the chat loop: Run does
// not return until the user exits or input ends, so there is never more than
// one level of nesting.
type Session struct {
	reader    LineReader
	presenter Presenter
	prompt    string
}

// NewSession creates a calculator sub-session.
func NewSession(reader LineReader, presenter Presenter, prompt string) *Session {
	return &Session{reader: reader, presenter: presenter, prompt: prompt}
}

// Run executes the read-eval loop until exit or end of input.
// End of input is a clean exit, identical to an exit keyword.
func (s *Session) Run() {
	s.presenter.SayLines([]string{
		"Calculator mode!",
		"Enter an expression like: 42 + 18",
		"Supported operators: + - * x /",
		"Type 'done' to exit calculator.",
	})

	for {
		line, err := s.reader.ReadLine(s.prompt)
		if err != nil {
			return
		}
		if s.HandleLine(line) == Exited {
			return
		}
	}
}

// HandleLine processes one calculator line and returns the resulting state.
// Malformed input, unknown operators, and division by zero all warn and
// leave the sub-session Active.
func (s *Session) HandleLine(line string) State {
	if IsExitKeyword(line) {
		s.presenter.Say("Exiting calculator. Back to chat!")
		return Exited
	}

	expr, err := Parse(line)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownOp):
			s.presenter.Say("Unknown operator. Use + - * x /")
		default:
			s.presenter.Say("Please enter: <number> <operator> <number>  (e.g. 5 + 3)")
		}
		return Active
	}

	result, err := expr.Eval()
	if err != nil {
		if errors.Is(err, ErrDivideByZero) {
			s.presenter.Say("Division by zero! The universe would implode.")
		} else {
			s.presenter.Say("Unknown operator. Use + - * x /")
		}
		return Active
	}

	s.presenter.Say(FormatResult(expr, result))
	return Active
}
