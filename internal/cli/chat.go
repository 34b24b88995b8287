// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - The interactive chat session: welcome flow, REPL loop, and
// end-of-session summary.

package cli

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"banter/internal/chat"
	"banter/internal/config"
	"banter/internal/session"
	"banter/internal/util"
)

// =============================================================================
// CHAT COMMAND
// =============================================================================

// HandleChat runs the interactive chat session until the user leaves.
// It always returns nil once the session has started; errors are only
// possible while loading configuration.
func HandleChat(args Args) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	if cfg.UI.NoColor {
		DisableColor()
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	console := NewConsole()
	defer console.Close()

	term := NewTerminal(os.Stdout)

	if cfg.UI.Banner && !args.Quiet {
		term.ShowBanner()
	}

	if !args.Quiet {
		stay, err := runWelcome(console, term)
		if err != nil || !stay {
			return nil
		}
	}

	seed := cfg.Chat.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	state := session.New()
	engine := chat.NewEngine(chat.Options{
		State:         state,
		RNG:           rng,
		Reader:        console,
		Presenter:     term,
		CalcPrompt:    CalcPromptStyle.Render(cfg.UI.CalcPrompt),
		HistoryWindow: cfg.Chat.HistoryWindow,
	})

	prompt := PromptStyle.Render(cfg.UI.Prompt)
	for {
		line, err := console.ReadLine(prompt)
		if err != nil {
			break
		}
		if engine.Process(line) == chat.Exit {
			break
		}
	}

	term.ShowGoodbye(
		session.FormatDuration(state.Uptime()),
		state.Count(),
		state.ID(),
	)
	return nil
}

// loadConfig merges defaults, the optional config file, and flag overrides.
func loadConfig(args Args) (config.Config, error) {
	cfg := config.Default()
	if args.ConfigPath != "" {
		loaded, err := config.LoadFile(args.ConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	if args.NoColor {
		cfg.UI.NoColor = true
	}
	if args.Seed != 0 {
		cfg.Chat.Seed = args.Seed
	}
	return cfg, nil
}

// =============================================================================
// WELCOME FLOW
// =============================================================================

// runWelcome asks whether the user wants to chat and offers a quick tour.
// Returns false when the user declines or input ends.
func runWelcome(console *Console, term *Terminal) (bool, error) {
	term.Say("Hey there! Want to chat for a bit? (y/n)")
	answer, err := console.ReadLine(PromptStyle.Render("You > "))
	if err != nil {
		return false, err
	}
	if !isYes(answer) {
		term.Say("No worries. Catch you next time!")
		return false, nil
	}

	term.Say("Want a quick tour of what I can do? (y/n)")
	answer, err = console.ReadLine(PromptStyle.Render("You > "))
	if err != nil {
		return false, err
	}
	if isYes(answer) {
		term.ShowHelp()
	}

	term.Say("Great, let's talk! Say anything, or \"bye\" when you're done.")
	return true, nil
}

func isYes(input string) bool {
	switch util.Normalize(input) {
	case "y", "yes", "yeah", "yep", "sure":
		return true
	}
	return false
}
