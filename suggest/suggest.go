// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package suggest - spelling corrections that are one edit away
//
// Three kinds of edit are tried in order: insert a letter, delete a
// letter, swap two adjacent letters.  Candidates present in the
// dictionary are returned in that order without duplicates.
package suggest

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Exister - the only dictionary operation needed
type Exister interface {
	Exists(key string) bool
}

// Suggester - generates and caches corrections for misspelt words
type Suggester struct {
	dict  Exister
	cache *cache.Cache
}

// New - create a suggester, results expire after expiry; zero means
// they are kept until Flush
func New(dict Exister, expiry time.Duration) *Suggester {
	cleanup := expiry
	if cleanup > 0 {
		cleanup *= 2
	}
	return &Suggester{
		dict:  dict,
		cache: cache.New(expiry, cleanup),
	}
}

// Suggest - dictionary words one edit away from word
func (s *Suggester) Suggest(word string) []string {
	if obj, found := s.cache.Get(word); found {
		return append([]string{}, obj.([]string)...)
	}

	result := []string{}
	seen := map[string]struct{}{word: {}}

	try := func(candidate string) {
		if "" == candidate {
			return
		}
		if _, ok := seen[candidate]; ok {
			return
		}
		seen[candidate] = struct{}{}
		if s.dict.Exists(candidate) {
			result = append(result, candidate)
		}
	}

	// insert one letter at every position, including the end
	for i := 0; i <= len(word); i += 1 {
		for c := byte('a'); c <= 'z'; c += 1 {
			try(word[:i] + string(c) + word[i:])
		}
	}

	// delete one letter, skip a letter equal to the one before as
	// that deletion gives the same word
	for i := 0; i < len(word); i += 1 {
		if i > 0 && word[i] == word[i-1] {
			continue
		}
		try(word[:i] + word[i+1:])
	}

	// swap adjacent differing letters
	for i := 0; i+1 < len(word); i += 1 {
		if word[i] == word[i+1] {
			continue
		}
		b := []byte(word)
		b[i], b[i+1] = b[i+1], b[i]
		try(string(b))
	}

	s.cache.Set(word, result, cache.DefaultExpiration)
	return append([]string{}, result...)
}

// Cached - number of words with cached results
func (s *Suggester) Cached() int {
	return s.cache.ItemCount()
}

// Flush - forget all cached results, needed after the dictionary changes
func (s *Suggester) Flush() {
	s.cache.Flush()
}
