// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"banter/internal/lexicon"
	"banter/internal/session"
)

// =============================================================================
// TEST DOUBLES
// =============================================================================

// probe records every presenter call for assertions.
type probe struct {
	said    []string
	warns   []string
	helps   int
	clears  int
	history struct {
		entries []string
		first   int
		total   int
		calls   int
	}
}

func (p *probe) Say(msg string)          { p.said = append(p.said, msg) }
func (p *probe) SayLines(lines []string) { p.said = append(p.said, lines...) }
func (p *probe) Warn(msg string)         { p.warns = append(p.warns, msg) }
func (p *probe) ShowHelp()               { p.helps++ }
func (p *probe) ClearScreen()            { p.clears++ }

func (p *probe) ShowHistory(entries []string, firstIndex, total int) {
	p.history.entries = entries
	p.history.first = firstIndex
	p.history.total = total
	p.history.calls++
}

func (p *probe) last() string {
	if len(p.said) == 0 {
		return ""
	}
	return p.said[len(p.said)-1]
}

// script feeds fixed input lines (for the calculator), then EOF.
type script struct {
	lines []string
	pos   int
}

func (s *script) ReadLine(prompt string) (string, error) {
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

// newTestEngine builds an engine with a fixed seed and a frozen clock that
// can be advanced through the returned shift function.
func newTestEngine(inner []string) (*Engine, *probe, func(time.Duration)) {
	p := &probe{}
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	offset := time.Duration(0)
	now := func() time.Time { return base.Add(offset) }

	e := NewEngine(Options{
		State:     session.NewWithClock(now),
		RNG:       rand.New(rand.NewSource(1)),
		Now:       now,
		Reader:    &script{lines: inner},
		Presenter: p,
	})
	return e, p, func(d time.Duration) { offset += d }
}

// =============================================================================
// DISPATCH TESTS
// =============================================================================

func TestProcessExitTokens(t *testing.T) {
	for _, tok := range []string{"bye", "exit", "quit", "q", "  BYE  "} {
		e, _, _ := newTestEngine(nil)
		if got := e.Process(tok); got != Exit {
			t.Errorf("Process(%q) = %v, want Exit", tok, got)
		}
	}
}

func TestProcessEmptyInputSkipped(t *testing.T) {
	e, p, _ := newTestEngine(nil)

	for _, in := range []string{"", "   ", "\t", "\r\n"} {
		if got := e.Process(in); got != Continue {
			t.Errorf("Process(%q) = %v, want Continue", in, got)
		}
	}
	if e.State().Count() != 0 {
		t.Errorf("empty input recorded to history: count = %d", e.State().Count())
	}
	if len(p.said) != 0 {
		t.Errorf("empty input produced output: %v", p.said)
	}
}

func TestProcessRecordsNormalizedInput(t *testing.T) {
	e, _, _ := newTestEngine(nil)

	e.Process("  HELLO  ")
	entries, _ := e.State().Window(5)
	if len(entries) != 1 || entries[0] != "hello" {
		t.Errorf("history = %v, want [hello]", entries)
	}
}

func TestProcessHelp(t *testing.T) {
	e, p, _ := newTestEngine(nil)
	for _, in := range []string{"help", "manual", "commands"} {
		e.Process(in)
	}
	if p.helps != 3 {
		t.Errorf("ShowHelp called %d times, want 3", p.helps)
	}
}

func TestProcessCannedResponse(t *testing.T) {
	e, p, _ := newTestEngine(nil)
	store := lexicon.NewStore()
	want, _ := store.Lookup("hello")

	e.Process("Hello")
	if p.last() != want {
		t.Errorf("response = %q, want %q", p.last(), want)
	}
}

func TestProcessAliasResponse(t *testing.T) {
	e, p, _ := newTestEngine(nil)
	store := lexicon.NewStore()
	want, _ := store.Lookup("what's up?")

	e.Process("sup")
	if p.last() != want {
		t.Errorf("alias response = %q, want %q", p.last(), want)
	}
}

func TestProcessFallbackTwoLines(t *testing.T) {
	e, p, _ := newTestEngine(nil)

	e.Process("xyzzy gibberish")
	if len(p.said) != 2 {
		t.Fatalf("fallback produced %d lines, want 2: %v", len(p.said), p.said)
	}
	if !strings.Contains(p.said[1], "help") {
		t.Errorf("fallback should mention help: %v", p.said)
	}
}

func TestProcessTime(t *testing.T) {
	e, p, _ := newTestEngine(nil)

	e.Process("time")
	want := "Sunday, June 01, 2025  12:00:00 PM"
	if p.last() != want {
		t.Errorf("time = %q, want %q", p.last(), want)
	}
}

func TestProcessFlipAndRoll(t *testing.T) {
	e, p, _ := newTestEngine(nil)

	e.Process("flip")
	if p.last() != "Heads!" && p.last() != "Tails!" {
		t.Errorf("flip = %q, want Heads!/Tails!", p.last())
	}

	e.Process("roll")
	var n int
	if _, err := fmt.Sscanf(p.last(), "You rolled a %d!", &n); err != nil {
		t.Fatalf("roll output %q unparseable: %v", p.last(), err)
	}
	if n < 1 || n > 6 {
		t.Errorf("roll = %d, want 1..6", n)
	}
}

func TestProcessFlipDeterministicForSeed(t *testing.T) {
	run := func() []string {
		e, p, _ := newTestEngine(nil)
		for i := 0; i < 10; i++ {
			e.Process("flip")
		}
		return p.said
	}
	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded flips diverge at %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestProcessJokeAndFact(t *testing.T) {
	e, p, _ := newTestEngine(nil)

	e.Process("joke")
	joke := p.last()
	if joke == "" {
		t.Fatal("joke produced no output")
	}

	e.Process("tell me a fact")
	if p.last() == "" || p.last() == joke {
		t.Errorf("fact = %q, want non-empty, distinct content list", p.last())
	}
	if len(p.warns) != 0 {
		t.Errorf("unexpected warnings: %v", p.warns)
	}
}

func TestProcessUptime(t *testing.T) {
	e, p, shift := newTestEngine(nil)

	shift(3661 * time.Second)
	e.Process("uptime")

	want := "Session uptime: 1h 1m 1s | Messages: 1"
	if p.last() != want {
		t.Errorf("uptime = %q, want %q", p.last(), want)
	}
}

func TestProcessHistoryWindow(t *testing.T) {
	e, p, _ := newTestEngine(nil)

	for i := 1; i <= 25; i++ {
		e.Process(fmt.Sprintf("message %d", i))
	}
	e.Process("history")

	if p.history.calls != 1 {
		t.Fatalf("ShowHistory called %d times, want 1", p.history.calls)
	}
	if len(p.history.entries) != 20 {
		t.Errorf("window size = %d, want 20", len(p.history.entries))
	}
	// 25 messages then "history" itself = 26 total; window starts at 7.
	if p.history.total != 26 {
		t.Errorf("total = %d, want 26", p.history.total)
	}
	if p.history.first != 7 {
		t.Errorf("firstIndex = %d, want 7", p.history.first)
	}
	if p.history.entries[0] != "message 7" {
		t.Errorf("oldest shown = %q, want %q", p.history.entries[0], "message 7")
	}
	if p.history.entries[19] != "history" {
		t.Errorf("newest shown = %q, want %q", p.history.entries[19], "history")
	}
}

func TestProcessClear(t *testing.T) {
	e, p, _ := newTestEngine(nil)
	e.Process("clear")
	e.Process("cls")
	if p.clears != 2 {
		t.Errorf("ClearScreen called %d times, want 2", p.clears)
	}
}

func TestProcessReverse(t *testing.T) {
	e, p, _ := newTestEngine(nil)

	e.Process("reverse abc")
	if !strings.Contains(p.last(), "cba") {
		t.Errorf("reverse output = %q, want to contain %q", p.last(), "cba")
	}

	// Bare "reverse" is not the command; it falls through to the resolver.
	before := len(p.said)
	e.Process("reverse")
	if got := p.said[before:]; len(got) != 2 || got[0] == `""` {
		t.Errorf("bare reverse should hit fallback, got %v", got)
	}
}

func TestProcessCount(t *testing.T) {
	e, p, _ := newTestEngine(nil)

	e.Process("count one two three")
	if p.last() != "Word count: 3" {
		t.Errorf("count = %q, want %q", p.last(), "Word count: 3")
	}

	e.Process("count   a   b  ")
	if p.last() != "Word count: 2" {
		t.Errorf("count with irregular spacing = %q, want %q", p.last(), "Word count: 2")
	}
}

func TestProcessCalculatorBlocksUntilDone(t *testing.T) {
	e, p, _ := newTestEngine([]string{"5 + 3", "10 / 0", "7 / 2", "done"})

	if got := e.Process("calc"); got != Continue {
		t.Fatalf("Process(calc) = %v, want Continue", got)
	}

	joined := strings.Join(p.said, "\n")
	if !strings.Contains(joined, "5 + 3 = 8") {
		t.Errorf("missing first result in %q", joined)
	}
	if !strings.Contains(joined, "7 / 2 = 3.5") {
		t.Errorf("missing trimmed result in %q", joined)
	}
	if strings.Contains(joined, "10 / 0 =") {
		t.Error("division by zero produced a result line")
	}
}

func TestProcessCalculatorEOF(t *testing.T) {
	// Inner input ends without an exit keyword: calculator must exit
	// cleanly and the chat loop continues.
	e, _, _ := newTestEngine([]string{"1 + 1"})
	if got := e.Process("math"); got != Continue {
		t.Errorf("Process(math) after inner EOF = %v, want Continue", got)
	}
}

func TestProcessSubstringFallback(t *testing.T) {
	e, p, _ := newTestEngine(nil)
	store := lexicon.NewStore()
	want, _ := store.Lookup("hello")

	e.Process("well hello there friend")
	if p.last() != want {
		t.Errorf("substring response = %q, want %q", p.last(), want)
	}
}
