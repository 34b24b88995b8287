// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks per-session state: the conversation history log,
// the session clock, and the session identifier.
//
// State is deliberately lock-free. The chat loop is single-threaded and the
// calculator sub-session is strictly nested inside it, so no two flows of
// control ever touch the state concurrently.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SESSION STATE
// =============================================================================

// State holds the bookkeeping for one chat session.
type State struct {
	id    string
	start time.Time

	// now is the clock source. Injected so tests can simulate elapsed time.
	now func() time.Time

	// history holds normalized input lines, append-only for the process
	// lifetime. Unbounded growth is fine for a single interactive session.
	history []string
}

// New creates session state with the real clock.
func New() *State {
	return NewWithClock(time.Now)
}

// NewWithClock creates session state using the given clock source.
// The start timestamp is captured once, immediately.
func NewWithClock(now func() time.Time) *State {
	return &State{
		id:      uuid.NewString(),
		start:   now(),
		now:     now,
		history: make([]string, 0, 64),
	}
}

// ID returns the session identifier shown in the exit summary.
func (s *State) ID() string {
	return s.id
}

// StartTime returns when the session started.
func (s *State) StartTime() time.Time {
	return s.start
}

// Uptime returns elapsed wall time since the session started,
// recomputed on every call.
func (s *State) Uptime() time.Duration {
	return s.now().Sub(s.start)
}

// =============================================================================
// HISTORY LOG
// =============================================================================

// Record appends a normalized input line to the history log.
// Empty lines are the caller's responsibility to skip.
func (s *State) Record(input string) {
	s.history = append(s.history, input)
}

// Count returns the total number of recorded messages.
func (s *State) Count() int {
	return len(s.history)
}

// Window returns the most recent n history entries (oldest first) and the
// 1-based global index of the first returned entry. With fewer than n
// entries the whole log is returned.
func (s *State) Window(n int) (entries []string, firstIndex int) {
	if n <= 0 || len(s.history) == 0 {
		return nil, 0
	}
	start := 0
	if len(s.history) > n {
		start = len(s.history) - n
	}
	return s.history[start:], start + 1
}

// =============================================================================
// FORMATTING
// =============================================================================

// FormatDuration renders a duration as "<H>h <M>m <S>s".
// Sub-second remainders truncate toward zero; 3661s -> "1h 1m 1s".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	sec := total % 60
	return fmt.Sprintf("%dh %dm %ds", h, m, sec)
}
