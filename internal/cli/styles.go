// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Centralized styling for the chat interface.
//
// Color handling:
// - Colors are automatically disabled for non-TTY output (piped, redirected)
// - Respects NO_COLOR environment variable (https://no-color.org/)
// - Supports FORCE_COLOR environment variable to override detection

package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"banter/internal/ui/styles"
)

// init configures lipgloss color profile based on terminal capabilities.
func init() {
	lipgloss.SetColorProfile(ColorProfile())
}

// =============================================================================
// SHARED STYLES
// =============================================================================

var (
	// TitleStyle is used for the banner title.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Cyan)

	// PromptStyle is used for the chat input prompt.
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Emerald)

	// CalcPromptStyle is used for the calculator input prompt.
	CalcPromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Purple)

	// BotStyle is used for the bot's reply text.
	BotStyle = lipgloss.NewStyle().
			Foreground(styles.TextPrimary)

	// BotPrefixStyle is used for the "Bot <" speaker tag.
	BotPrefixStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Cyan)

	// WarningStyle is used for warnings and recoverable errors.
	WarningStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	// ErrorStyle is used for fatal errors.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose).
			Bold(true)

	// DimStyle is used for secondary information and hints.
	DimStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	// SectionStyle is used for help and history section headers.
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Purple)

	// SeparatorStyle is used for visual separators.
	SeparatorStyle = DimStyle
)

// =============================================================================
// HELPERS
// =============================================================================

// RenderSeparator renders a horizontal separator line of the specified width.
// Default width is 40 characters if not specified.
func RenderSeparator(width ...int) string {
	w := 40
	if len(width) > 0 && width[0] > 0 {
		w = width[0]
	}
	return SeparatorStyle.Render(strings.Repeat("─", w))
}
