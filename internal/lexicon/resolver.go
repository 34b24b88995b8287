// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// resolver.go - Response resolution for non-command input.
package lexicon

import "strings"

// FallbackResponse is returned when no lexicon entry matches. Two lines,
// separated by \n; presenters render each line separately.
const FallbackResponse = "Hmm, I don't quite understand that.\n" +
	"Try 'help' to see what I can do, or just say hi!"

// Resolver maps normalized non-command input to a response string.
//
// Resolution order, first match wins:
//  1. Alias redirection: input is a known alias, its canonical key has a
//     response. A stale alias (target removed) falls through silently.
//  2. Direct lookup on the input itself.
//  3. Substring fallback: the input contains a response key of length >= 3.
//     Keys are scanned in the store's fixed order (descending length, then
//     lexical), so the match is deterministic for a given corpus.
//  4. FallbackResponse.
//
// Every path returns a non-empty string.
type Resolver struct {
	store *Store
}

// NewResolver creates a resolver over the given store.
func NewResolver(store *Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the response for a normalized input line.
func (r *Resolver) Resolve(input string) string {
	if target, ok := r.store.ResolveAlias(input); ok {
		if resp, ok := r.store.Lookup(target); ok {
			return resp
		}
	}

	if resp, ok := r.store.Lookup(input); ok {
		return resp
	}

	for _, key := range r.store.SubstringKeys() {
		if strings.Contains(input, key) {
			resp, _ := r.store.Lookup(key)
			return resp
		}
	}

	return FallbackResponse
}
