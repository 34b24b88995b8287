// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// =============================================================================
// Terminal Presenter
// =============================================================================

// helpEntry is one row of the command reference table.
type helpEntry struct {
	cmd  string
	desc string
}

var helpEntries = []helpEntry{
	{"help", "Show this command list"},
	{"joke", "Hear a random joke"},
	{"fact", "Learn a random fun fact"},
	{"time", "Show the current date and time"},
	{"flip", "Flip a coin"},
	{"roll", "Roll a six-sided die"},
	{"calc", "Enter calculator mode"},
	{"reverse <text>", "Reverse the text after the command"},
	{"count <text>", "Count the words after the command"},
	{"uptime", "Show session length and message count"},
	{"history", "Show recent messages"},
	{"clear", "Clear the screen"},
	{"bye", "End the session (also: exit, quit, q)"},
}

// Terminal renders all chat output to a writer, typically stdout.
// Styling degrades to plain text when colors are disabled.
type Terminal struct {
	out io.Writer
}

// NewTerminal creates a Terminal presenter writing to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

// Say prints a bot reply with the speaker tag. Multi-line messages indent
// continuation lines under the first.
func (t *Terminal) Say(msg string) {
	tag := BotPrefixStyle.Render("Bot <")
	lines := strings.Split(msg, "\n")
	fmt.Fprintf(t.out, "%s %s\n", tag, BotStyle.Render(lines[0]))
	for _, line := range lines[1:] {
		fmt.Fprintf(t.out, "      %s\n", BotStyle.Render(line))
	}
}

// SayLines prints each line as its own reply segment under one speaker tag.
func (t *Terminal) SayLines(lines []string) {
	t.Say(strings.Join(lines, "\n"))
}

// Warn prints a recoverable problem.
func (t *Terminal) Warn(msg string) {
	fmt.Fprintf(t.out, "%s\n", WarningStyle.Render("! "+msg))
}

// Error prints a fatal problem.
func (t *Terminal) Error(msg string) {
	fmt.Fprintf(t.out, "%s\n", ErrorStyle.Render("Error: "+msg))
}

// Info prints secondary information.
func (t *Terminal) Info(msg string) {
	fmt.Fprintf(t.out, "%s\n", DimStyle.Render(msg))
}

// ShowHelp renders the command reference table.
func (t *Terminal) ShowHelp() {
	fmt.Fprintln(t.out)
	fmt.Fprintf(t.out, "%s\n", SectionStyle.Render("Here's what I can do:"))
	fmt.Fprintf(t.out, "%s\n", RenderSeparator())

	width := 0
	for _, e := range helpEntries {
		if w := runewidth.StringWidth(e.cmd); w > width {
			width = w
		}
	}
	for _, e := range helpEntries {
		pad := strings.Repeat(" ", width-runewidth.StringWidth(e.cmd))
		fmt.Fprintf(t.out, "  %s%s  %s\n",
			PromptStyle.Render(e.cmd), pad, BotStyle.Render(e.desc))
	}

	fmt.Fprintf(t.out, "%s\n", RenderSeparator())
	fmt.Fprintf(t.out, "%s\n", DimStyle.Render("Anything else, just say it. I might surprise you."))
	fmt.Fprintln(t.out)
}

// ShowHistory renders recent messages. entries are oldest-first and
// firstIndex is the 1-based position of entries[0] in the full session.
func (t *Terminal) ShowHistory(entries []string, firstIndex, total int) {
	if len(entries) == 0 {
		t.Say("No history yet. Say something first!")
		return
	}

	fmt.Fprintln(t.out)
	fmt.Fprintf(t.out, "%s\n", SectionStyle.Render("Recent messages:"))
	fmt.Fprintf(t.out, "%s\n", RenderSeparator())

	numWidth := len(fmt.Sprintf("%d", firstIndex+len(entries)-1))
	for i, entry := range entries {
		idx := fmt.Sprintf("%*d.", numWidth, firstIndex+i)
		fmt.Fprintf(t.out, "  %s %s\n", DimStyle.Render(idx), BotStyle.Render(entry))
	}

	fmt.Fprintf(t.out, "%s\n", RenderSeparator())
	fmt.Fprintf(t.out, "%s\n",
		DimStyle.Render(fmt.Sprintf("Showing last %d of %d messages.", len(entries), total)))
	fmt.Fprintln(t.out)
}

// ClearScreen clears the terminal, redraws the banner, and confirms.
// The ANSI escape is only emitted when stdout is a real terminal.
func (t *Terminal) ClearScreen() {
	if IsStdoutTTY() {
		fmt.Fprint(t.out, "\x1b[2J\x1b[H")
		t.ShowBanner()
	}
	t.Say("All clean! What's next?")
}

// ShowBanner renders the startup banner.
func (t *Terminal) ShowBanner() {
	fmt.Fprintf(t.out, "%s %s\n",
		TitleStyle.Render("banter"),
		DimStyle.Render("v"+Version))
	fmt.Fprintf(t.out, "%s\n", DimStyle.Render("A small talkative terminal companion."))
	fmt.Fprintf(t.out, "%s\n", RenderSeparator())
}

// ShowGoodbye renders the end-of-session summary.
func (t *Terminal) ShowGoodbye(duration string, messages int, sessionID string) {
	fmt.Fprintln(t.out)
	fmt.Fprintf(t.out, "%s\n", RenderSeparator())
	fmt.Fprintf(t.out, "%s\n", TitleStyle.Render("Thanks for chatting!"))
	fmt.Fprintf(t.out, "%s\n",
		DimStyle.Render(fmt.Sprintf("Session lasted: %s | Messages: %d", duration, messages)))
	fmt.Fprintf(t.out, "%s\n", DimStyle.Render("Session ID: "+sessionID))
	fmt.Fprintf(t.out, "%s\n", RenderSeparator())
}
