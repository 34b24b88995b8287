// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import "testing"

func TestRouteExactCommands(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"bye", KindExit},
		{"exit", KindExit},
		{"quit", KindExit},
		{"q", KindExit},
		{"help", KindHelp},
		{"manual", KindHelp},
		{"commands", KindHelp},
		{"joke", KindJoke},
		{"tell me a joke", KindJoke},
		{"tell a joke", KindJoke},
		{"fact", KindFact},
		{"fun fact", KindFact},
		{"time", KindTime},
		{"date", KindTime},
		{"what time is it?", KindTime},
		{"what time is it", KindTime},
		{"what's the time?", KindTime},
		{"what is the date?", KindTime},
		{"flip", KindFlip},
		{"flip a coin", KindFlip},
		{"coin", KindFlip},
		{"roll", KindRoll},
		{"roll dice", KindRoll},
		{"dice", KindRoll},
		{"uptime", KindUptime},
		{"session", KindUptime},
		{"history", KindHistory},
		{"show history", KindHistory},
		{"clear", KindClear},
		{"cls", KindClear},
		{"calc", KindCalc},
		{"calculator", KindCalc},
		{"math", KindCalc},
		{"add", KindCalc},
		{"sum", KindCalc},
		{"can you add integers for me?", KindCalc},
		{"can you calculate for me?", KindCalc},
	}

	for _, tc := range tests {
		got := Route(tc.input)
		if got.Kind != tc.want {
			t.Errorf("Route(%q).Kind = %v, want %v", tc.input, got.Kind, tc.want)
		}
		if got.Arg != "" {
			t.Errorf("Route(%q).Arg = %q, want empty", tc.input, got.Arg)
		}
	}
}

func TestRoutePrefixCommands(t *testing.T) {
	tests := []struct {
		input    string
		wantKind Kind
		wantArg  string
	}{
		{"reverse abc", KindReverse, "abc"},
		{"reverse hello world", KindReverse, "hello world"},
		{"count one two three", KindCount, "one two three"},
		{"count x", KindCount, "x"},
		// Internal spacing after the prefix is preserved in the argument.
		{"reverse  abc", KindReverse, " abc"},
	}

	for _, tc := range tests {
		got := Route(tc.input)
		if got.Kind != tc.wantKind || got.Arg != tc.wantArg {
			t.Errorf("Route(%q) = {%v %q}, want {%v %q}",
				tc.input, got.Kind, got.Arg, tc.wantKind, tc.wantArg)
		}
	}
}

func TestRouteNotACommand(t *testing.T) {
	inputs := []string{
		"",
		"hello",
		"what is go?",
		// Bare prefix words without arguments are chat, not commands.
		"reverse",
		"count",
		// Commands embedded in longer utterances are not exact matches.
		"please exit now",
		"tell me a joke please",
		"historyy",
	}

	for _, in := range inputs {
		got := Route(in)
		if got.Kind != KindNone {
			t.Errorf("Route(%q).Kind = %v, want KindNone", in, got.Kind)
		}
	}
}

func TestRoutePriorityStable(t *testing.T) {
	// "q" must be exit, never anything else, and "session" belongs to
	// uptime even though a later feature might plausibly claim it.
	if got := Route("q"); got.Kind != KindExit {
		t.Errorf("Route(q) = %v, want KindExit", got.Kind)
	}
	if got := Route("session"); got.Kind != KindUptime {
		t.Errorf("Route(session) = %v, want KindUptime", got.Kind)
	}
}

func TestKindString(t *testing.T) {
	if KindNone.String() != "None" || KindCalc.String() != "Calc" {
		t.Error("Kind.String() mismatch")
	}
	if KindNone.IsCommand() {
		t.Error("KindNone.IsCommand() should be false")
	}
	if !KindExit.IsCommand() {
		t.Error("KindExit.IsCommand() should be true")
	}
}
