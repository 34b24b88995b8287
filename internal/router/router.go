// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// router.go - Fixed-form command matching.
package router

import "strings"

// ============================================================================
// COMMAND TOKEN SETS
// ============================================================================

// tokenSets lists the exact-match phrasings for each word command, in
// routing priority order. The order is part of the dispatch contract and
// must not change: earlier entries shadow later ones if a phrase ever
// appeared in two sets.
var tokenSets = []struct {
	kind   Kind
	tokens []string
}{
	{KindExit, []string{"bye", "exit", "quit", "q"}},
	{KindHelp, []string{"help", "manual", "commands"}},
	{KindJoke, []string{"joke", "tell me a joke", "tell a joke"}},
	{KindFact, []string{"fact", "tell me a fact", "fun fact"}},
	{KindTime, []string{
		"time", "date",
		"what time is it?", "what time is it",
		"what's the time?",
		"what is the date?", "what is the date",
	}},
	{KindFlip, []string{"flip", "flip a coin", "coin flip", "coin"}},
	{KindRoll, []string{"roll", "roll a dice", "roll dice", "dice"}},
	{KindUptime, []string{"uptime", "session"}},
	{KindHistory, []string{"history", "show history"}},
	{KindClear, []string{"clear", "cls"}},
}

// calcTokens are the calculator entry phrasings. Checked after the prefix
// commands so "count ..." can never be swallowed by a calculator phrase.
var calcTokens = []string{
	"calc", "calculate", "calculator",
	"math", "add", "sum", "add numbers",
	"can you add integers for me?",
	"can you calculate for me?",
}

// Prefix command literals. The remainder after the prefix must be non-empty
// or the line falls through to the resolver.
const (
	reversePrefix = "reverse "
	countPrefix   = "count "
)

// exactKind maps every exact-match phrase to its kind, built once at init.
var exactKind = buildExactKind()

func buildExactKind() map[string]Kind {
	m := make(map[string]Kind)
	for _, set := range tokenSets {
		for _, tok := range set.tokens {
			m[tok] = set.kind
		}
	}
	for _, tok := range calcTokens {
		m[tok] = KindCalc
	}
	return m
}

// ============================================================================
// ROUTING
// ============================================================================

// Route classifies a normalized input line.
//
// Exact word commands win over prefix commands: "clear" is KindClear even
// though no prefix starts with it, and a literal "count" with no argument is
// not a command at all. Unmatched lines return NotACommand.
func Route(input string) Action {
	if kind, ok := exactKind[input]; ok {
		return Action{Kind: kind}
	}

	if rest, ok := strings.CutPrefix(input, reversePrefix); ok && rest != "" {
		return Action{Kind: KindReverse, Arg: rest}
	}
	if rest, ok := strings.CutPrefix(input, countPrefix); ok && rest != "" {
		return Action{Kind: KindCount, Arg: rest}
	}

	return NotACommand
}
