// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package lexicon

import (
	"strings"
	"testing"
)

func TestResolveCanonicalExact(t *testing.T) {
	s := NewStore()
	r := NewResolver(s)

	// Every canonical phrase must resolve to exactly its stored response.
	for key, want := range s.responses {
		got := r.Resolve(key)
		if got != want {
			t.Errorf("Resolve(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestResolveAliases(t *testing.T) {
	s := NewStore()
	r := NewResolver(s)

	// Every alias must resolve to its target's response.
	for alias, target := range s.aliases {
		want, _ := s.Lookup(target)
		got := r.Resolve(alias)
		if got != want {
			t.Errorf("Resolve(%q) = %q, want %q (target %q)", alias, got, want, target)
		}
	}
}

func TestResolveSubstringFallback(t *testing.T) {
	s := NewStore()
	r := NewResolver(s)

	tests := []struct {
		input   string
		wantKey string
	}{
		// "hello" (>= 3 chars) embedded in a longer utterance.
		{"well hello there friend", "hello"},
		{"many thanks to you", "thanks"},
		{"that was so cool honestly", "cool"},
	}

	for _, tc := range tests {
		want, ok := s.Lookup(tc.wantKey)
		if !ok {
			t.Fatalf("test key %q missing from corpus", tc.wantKey)
		}
		got := r.Resolve(tc.input)
		if got != want {
			t.Errorf("Resolve(%q) = %q, want response for key %q", tc.input, got, tc.wantKey)
		}
	}
}

func TestResolveSubstringDeterministic(t *testing.T) {
	s := NewStore()
	r := NewResolver(s)

	// An input embedding several keys always picks the same one.
	input := "hello thanks cool"
	first := r.Resolve(input)
	for i := 0; i < 50; i++ {
		if got := r.Resolve(input); got != first {
			t.Fatalf("Resolve(%q) unstable: %q then %q", input, first, got)
		}
	}
}

func TestResolveShortKeyNotSubstringMatched(t *testing.T) {
	s := NewStore()
	r := NewResolver(s)

	// "which" embeds the 2-char key "hi"; short keys must not trigger
	// substring fallback.
	got := r.Resolve("which")
	if got != FallbackResponse {
		t.Errorf("Resolve(%q) = %q, want fallback", "which", got)
	}
}

func TestResolveFallback(t *testing.T) {
	s := NewStore()
	r := NewResolver(s)

	got := r.Resolve("xyzzy plugh")
	if got != FallbackResponse {
		t.Errorf("Resolve(unmatched) = %q, want fallback", got)
	}

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Errorf("fallback should be two lines, got %d", len(lines))
	}
	if !strings.Contains(got, "help") {
		t.Errorf("fallback must name 'help' as the escape hatch: %q", got)
	}
}

func TestResolveNeverEmpty(t *testing.T) {
	s := NewStore()
	r := NewResolver(s)

	inputs := []string{"", "hi", "sup", "complete gibberish", "what is go?"}
	for _, in := range inputs {
		if r.Resolve(in) == "" {
			t.Errorf("Resolve(%q) returned empty response", in)
		}
	}
}
