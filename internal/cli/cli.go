// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the command-line interface: argument parsing,
// terminal presentation, and the interactive chat loop.
package cli

import (
	"fmt"
	"os"
	"strconv"
)

// Version info, injected at build time via ldflags.
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// Command Types
// =============================================================================

// Command represents a parsed CLI command.
type Command int

const (
	// CmdChat starts the interactive chat session. This is the default.
	CmdChat Command = iota

	// CmdVersion prints version information.
	CmdVersion

	// CmdHelp prints usage information.
	CmdHelp
)

// Args holds parsed command-line flags.
type Args struct {
	// Quiet skips the banner and the welcome tour.
	Quiet bool

	// NoColor disables all styled output.
	NoColor bool

	// Seed fixes the random source for jokes, facts, flips, and rolls.
	// Zero means seed from the clock.
	Seed int64

	// ConfigPath is an optional TOML config file. Empty means defaults.
	ConfigPath string

	// Unknown holds the first unrecognized argument, if any.
	Unknown string
}

// =============================================================================
// Parsing
// =============================================================================

// Parse inspects os.Args and returns the command to run plus its flags.
// An unrecognized argument yields CmdHelp with Args.Unknown set.
func Parse() (Command, Args) {
	return parseArgs(os.Args[1:])
}

func parseArgs(argv []string) (Command, Args) {
	cmd := CmdChat
	var args Args

	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch arg {
		case "chat":
			cmd = CmdChat
		case "version", "--version", "-v":
			cmd = CmdVersion
		case "help", "--help", "-h":
			cmd = CmdHelp
		case "--quiet", "-q":
			args.Quiet = true
		case "--no-color":
			args.NoColor = true
		case "--seed":
			if i+1 >= len(argv) {
				args.Unknown = arg
				return CmdHelp, args
			}
			i++
			n, err := strconv.ParseInt(argv[i], 10, 64)
			if err != nil || n == 0 {
				args.Unknown = arg + " " + argv[i]
				return CmdHelp, args
			}
			args.Seed = n
		case "--config":
			if i+1 >= len(argv) {
				args.Unknown = arg
				return CmdHelp, args
			}
			i++
			args.ConfigPath = argv[i]
		default:
			args.Unknown = arg
			return CmdHelp, args
		}
	}

	return cmd, args
}

// =============================================================================
// Usage and Version
// =============================================================================

const usageText = `banter - a small talkative terminal companion

Usage:
  banter [command] [flags]

Commands:
  chat       Start an interactive chat session (default)
  version    Print version information
  help       Show this help

Flags:
  -q, --quiet        Skip the banner and welcome tour
      --no-color     Disable colored output
      --seed <n>     Fix the random seed (nonzero integer)
      --config <f>   Load settings from a TOML file
  -h, --help         Show this help
  -v, --version      Print version information

Once chatting, type "help" to list everything the bot understands.
`

// PrintUsage writes the top-level usage text to stdout.
func PrintUsage() {
	fmt.Print(usageText)
}

// PrintVersion writes version information to stdout.
func PrintVersion() {
	fmt.Printf("banter %s\n", Version)
	fmt.Printf("  commit: %s\n", GitCommit)
	fmt.Printf("  built:  %s\n", BuildDate)
}
