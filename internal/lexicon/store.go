// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package lexicon provides the phrase store and response resolution for banter.
package lexicon

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// ErrEmptyList is returned when a random pick is requested from an empty
// content list. The default corpus never ships empty lists; this guards
// against a corrupt custom corpus instead of panicking mid-session.
var ErrEmptyList = errors.New("lexicon: empty content list")

// =============================================================================
// STORE
// =============================================================================

// Store holds the fixed conversational corpus: canonical phrase responses,
// alias redirections, and the joke/fact content lists. A Store is built once
// at startup and is read-only afterwards; nothing in the store mutates during
// a session, so it is safe to share by reference.
type Store struct {
	responses map[string]string
	aliases   map[string]string
	jokes     []string
	facts     []string

	// Response keys of length >= minSubstringKeyLen, in the fixed fallback
	// scan order (descending length, then lexical). Precomputed so substring
	// resolution is deterministic for a given corpus.
	substringKeys []string
}

// minSubstringKeyLen is the minimum key length considered for substring
// fallback. Shorter keys ("hi", "ok") match far too eagerly inside
// unrelated words.
const minSubstringKeyLen = 3

// NewStore builds the default corpus.
// It panics if the built-in data is inconsistent (an alias pointing at a
// missing response key is a programmer error, not a runtime condition).
func NewStore() *Store {
	s := &Store{
		responses: defaultResponses(),
		aliases:   defaultAliases(),
		jokes:     defaultJokes(),
		facts:     defaultFacts(),
	}

	for alias, target := range s.aliases {
		if _, ok := s.responses[target]; !ok {
			panic(fmt.Sprintf("lexicon: alias %q targets unknown key %q", alias, target))
		}
	}

	s.substringKeys = buildSubstringKeys(s.responses)
	return s
}

// buildSubstringKeys returns eligible response keys sorted descending by
// length, then ascending lexically. Longest key first means the most
// specific phrase wins when an input embeds several keys.
func buildSubstringKeys(responses map[string]string) []string {
	keys := make([]string, 0, len(responses))
	for k := range responses {
		if len(k) >= minSubstringKeyLen {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

// =============================================================================
// LOOKUPS
// =============================================================================

// Lookup returns the response stored under a canonical phrase key.
func (s *Store) Lookup(key string) (string, bool) {
	resp, ok := s.responses[key]
	return resp, ok
}

// ResolveAlias returns the canonical phrase an alias redirects to.
func (s *Store) ResolveAlias(key string) (string, bool) {
	target, ok := s.aliases[key]
	return target, ok
}

// SubstringKeys returns the response keys eligible for substring fallback,
// in the fixed scan order. Callers must not modify the returned slice.
func (s *Store) SubstringKeys() []string {
	return s.substringKeys
}

// Len returns the number of canonical phrase entries.
func (s *Store) Len() int {
	return len(s.responses)
}

// =============================================================================
// RANDOM CONTENT
// =============================================================================

// RandomJoke returns a uniformly chosen joke.
func (s *Store) RandomJoke(rng *rand.Rand) (string, error) {
	return pick(rng, s.jokes, "jokes")
}

// RandomFact returns a uniformly chosen fact.
func (s *Store) RandomFact(rng *rand.Rand) (string, error) {
	return pick(rng, s.facts, "facts")
}

func pick(rng *rand.Rand, list []string, name string) (string, error) {
	if len(list) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyList, name)
	}
	return list[rng.Intn(len(list))], nil
}
