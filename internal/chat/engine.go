// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the input-classification and dispatch engine.
//
// The engine turns each raw input line into exactly one outcome: exit, a
// built-in command, a calculator sub-session, or a resolved chat response.
// All terminal concerns live behind the Presenter and LineReader ports, so
// the engine itself is plain logic over plain data; a colorless presenter
// is just as valid as a styled one.
package chat

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"banter/internal/calc"
	"banter/internal/lexicon"
	"banter/internal/router"
	"banter/internal/session"
	"banter/internal/util"
)

// timeFormat renders "Saturday, August 30, 2025  07:05:09 PM".
const timeFormat = "Monday, January 02, 2006  03:04:05 PM"

// defaultHistoryWindow is how many history entries the history command shows.
const defaultHistoryWindow = 20

// =============================================================================
// PORTS
// =============================================================================

// Presenter receives all engine output as plain data. Rendering (color,
// layout, banners) is entirely the implementation's concern.
type Presenter interface {
	// Say prints a single response line.
	Say(msg string)

	// SayLines prints a multi-line response.
	SayLines(lines []string)

	// Warn prints a recoverable problem.
	Warn(msg string)

	// ShowHelp renders the command reference.
	ShowHelp()

	// ShowHistory renders recent history. entries are oldest-first,
	// firstIndex is the 1-based global index of entries[0], total is the
	// full history length.
	ShowHistory(entries []string, firstIndex, total int)

	// ClearScreen clears the terminal and redraws the banner.
	ClearScreen()
}

// LineReader reads one line of user input; an error means end of input.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// =============================================================================
// ENGINE
// =============================================================================

// Outcome is the result of processing one input line.
type Outcome int

const (
	// Continue means the chat loop keeps prompting.
	Continue Outcome = iota
	// Exit means the session is over.
	Exit
)

// Engine dispatches normalized input to command handlers or the resolver.
type Engine struct {
	store     *lexicon.Store
	resolver  *lexicon.Resolver
	state     *session.State
	rng       *rand.Rand
	now       func() time.Time
	reader    LineReader
	presenter Presenter

	calcPrompt    string
	historyWindow int
}

// Options configures an Engine. Reader and Presenter are required; every
// other field has a sensible default.
type Options struct {
	Store         *lexicon.Store   // default: lexicon.NewStore()
	State         *session.State   // default: session.New()
	RNG           *rand.Rand       // default: time-seeded
	Now           func() time.Time // default: time.Now
	Reader        LineReader
	Presenter     Presenter
	CalcPrompt    string // default: "Calc > "
	HistoryWindow int    // default: 20
}

// NewEngine creates the dispatch engine.
func NewEngine(opts Options) *Engine {
	if opts.Store == nil {
		opts.Store = lexicon.NewStore()
	}
	if opts.State == nil {
		opts.State = session.New()
	}
	if opts.RNG == nil {
		opts.RNG = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.CalcPrompt == "" {
		opts.CalcPrompt = "Calc > "
	}
	if opts.HistoryWindow <= 0 {
		opts.HistoryWindow = defaultHistoryWindow
	}
	return &Engine{
		store:         opts.Store,
		resolver:      lexicon.NewResolver(opts.Store),
		state:         opts.State,
		rng:           opts.RNG,
		now:           opts.Now,
		reader:        opts.Reader,
		presenter:     opts.Presenter,
		calcPrompt:    opts.CalcPrompt,
		historyWindow: opts.HistoryWindow,
	}
}

// State exposes session state for the outer loop's exit summary.
func (e *Engine) State() *session.State {
	return e.state
}

// =============================================================================
// DISPATCH
// =============================================================================

// Process handles one raw input line.
//
// Empty (whitespace-only) input is skipped entirely: no history record, no
// output. Everything else is recorded, then routed; command matches never
// reach the resolver. A calculator command blocks inside Process until the
// sub-session exits.
func (e *Engine) Process(raw string) Outcome {
	input := util.Normalize(raw)
	if input == "" {
		return Continue
	}

	e.state.Record(input)

	action := router.Route(input)
	switch action.Kind {
	case router.KindExit:
		return Exit

	case router.KindHelp:
		e.presenter.ShowHelp()

	case router.KindJoke:
		e.sayRandom(e.store.RandomJoke)

	case router.KindFact:
		e.sayRandom(e.store.RandomFact)

	case router.KindTime:
		e.presenter.Say(e.now().Format(timeFormat))

	case router.KindFlip:
		if e.rng.Intn(2) == 0 {
			e.presenter.Say("Heads!")
		} else {
			e.presenter.Say("Tails!")
		}

	case router.KindRoll:
		e.presenter.Say(fmt.Sprintf("You rolled a %d!", e.rng.Intn(6)+1))

	case router.KindUptime:
		e.presenter.Say(fmt.Sprintf("Session uptime: %s | Messages: %d",
			session.FormatDuration(e.state.Uptime()), e.state.Count()))

	case router.KindHistory:
		entries, first := e.state.Window(e.historyWindow)
		e.presenter.ShowHistory(entries, first, e.state.Count())

	case router.KindClear:
		e.presenter.ClearScreen()

	case router.KindReverse:
		e.presenter.Say(fmt.Sprintf("%q", util.Reverse(action.Arg)))

	case router.KindCount:
		e.presenter.Say(fmt.Sprintf("Word count: %d", util.WordCount(action.Arg)))

	case router.KindCalc:
		calc.NewSession(e.reader, e.presenter, e.calcPrompt).Run()

	default:
		resp := e.resolver.Resolve(input)
		e.presenter.SayLines(strings.Split(resp, "\n"))
	}

	return Continue
}

// sayRandom emits from a content list, downgrading an empty-list failure to
// an inline warning. The default corpus never triggers this.
func (e *Engine) sayRandom(draw func(*rand.Rand) (string, error)) {
	msg, err := draw(e.rng)
	if err != nil {
		e.presenter.Warn(fmt.Sprintf("internal error: %v", err))
		return
	}
	e.presenter.Say(msg)
}
