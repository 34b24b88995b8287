// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package router classifies normalized input lines into commands.
//
// The router is the first stage of dispatch: if a line matches one of the
// fixed command forms it never reaches the response resolver. Matching is
// exact (set membership) for word commands and prefix-based for the two
// parameterized commands.
package router

import "fmt"

// ============================================================================
// KIND TYPE
// ============================================================================

// Kind identifies the command a line was classified as.
type Kind int

const (
	// KindNone means the line is not a command and goes to the resolver.
	KindNone Kind = iota
	// KindExit terminates the session.
	KindExit
	// KindHelp shows the command list.
	KindHelp
	// KindJoke emits a random joke.
	KindJoke
	// KindFact emits a random fact.
	KindFact
	// KindTime emits the formatted current date and time.
	KindTime
	// KindFlip flips a coin.
	KindFlip
	// KindRoll rolls a six-sided die.
	KindRoll
	// KindUptime reports elapsed session time and message count.
	KindUptime
	// KindHistory lists recent conversation history.
	KindHistory
	// KindClear clears the screen and redraws the banner.
	KindClear
	// KindReverse reverses the argument text.
	KindReverse
	// KindCount counts words in the argument text.
	KindCount
	// KindCalc enters the calculator sub-session.
	KindCalc
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindExit:
		return "Exit"
	case KindHelp:
		return "Help"
	case KindJoke:
		return "Joke"
	case KindFact:
		return "Fact"
	case KindTime:
		return "Time"
	case KindFlip:
		return "Flip"
	case KindRoll:
		return "Roll"
	case KindUptime:
		return "Uptime"
	case KindHistory:
		return "History"
	case KindClear:
		return "Clear"
	case KindReverse:
		return "Reverse"
	case KindCount:
		return "Count"
	case KindCalc:
		return "Calc"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// IsCommand returns true for every kind except KindNone.
func (k Kind) IsCommand() bool {
	return k != KindNone
}

// ============================================================================
// ACTION TYPE
// ============================================================================

// Action is the result of routing one normalized line.
type Action struct {
	// Kind is the matched command, or KindNone.
	Kind Kind

	// Arg carries the remainder text for the parameterized commands
	// (reverse, count). Empty for everything else.
	Arg string
}

// NotACommand is the zero Action, returned for unrouted input.
var NotACommand = Action{Kind: KindNone}
