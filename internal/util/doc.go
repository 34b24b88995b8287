// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the banter application.
//
// This package contains common helper functions used throughout the
// application for input normalization and string manipulation.
//
// # Key Functions
//
// Normalization:
//   - Normalize: trim + ASCII lowercase, the canonical input form
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - Reverse: byte-order string reversal
//   - WordCount: whitespace-separated token counting
//
// # Usage
//
//	// Normalize raw user input before matching
//	key := util.Normalize("  Hello There  ")  // "hello there"
//
//	// Truncate long strings safely for display
//	display := util.TruncateRunes(longText, 50)
package util
