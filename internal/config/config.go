// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration for banter.
//
// banter holds no implicit state on disk: there is no config directory and
// no automatic file discovery. Configuration is built-in defaults, overlaid
// by an explicit TOML file only when the user passes --config, overlaid by
// CLI flags (handled in main).
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete banter configuration.
type Config struct {
	UI   UIConfig   `toml:"ui"`
	Chat ChatConfig `toml:"chat"`
}

// UIConfig controls the presenter.
type UIConfig struct {
	// NoColor disables all styling even on a color-capable terminal.
	NoColor bool `toml:"no_color"`

	// Banner controls whether the startup banner is drawn.
	Banner bool `toml:"banner"`

	// Prompt is the chat prompt text.
	Prompt string `toml:"prompt"`

	// CalcPrompt is the calculator sub-session prompt text.
	CalcPrompt string `toml:"calc_prompt"`
}

// ChatConfig controls engine behavior.
type ChatConfig struct {
	// HistoryWindow is how many entries the history command shows.
	HistoryWindow int `toml:"history_window"`

	// Seed seeds the random generator when non-zero. Zero means seed
	// from the clock; fixed seeds make flip/roll/joke/fact reproducible.
	Seed int64 `toml:"seed"`
}

// =============================================================================
// DEFAULTS & LOADING
// =============================================================================

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		UI: UIConfig{
			Banner:     true,
			Prompt:     "You > ",
			CalcPrompt: "Calc > ",
		},
		Chat: ChatConfig{
			HistoryWindow: 20,
		},
	}
}

// LoadFile reads a TOML file over the defaults. Unknown keys are rejected
// so a typo in the file surfaces instead of silently doing nothing.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config: unknown key %q in %s", undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges and fills empty prompts from defaults.
func (c *Config) Validate() error {
	if c.Chat.HistoryWindow <= 0 {
		return fmt.Errorf("config: chat.history_window must be positive, got %d", c.Chat.HistoryWindow)
	}
	if c.UI.Prompt == "" {
		c.UI.Prompt = Default().UI.Prompt
	}
	if c.UI.CalcPrompt == "" {
		c.UI.CalcPrompt = Default().UI.CalcPrompt
	}
	return nil
}
