// Copyright 2025 coregx. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package negotiate

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultCacheSize is the default bound on the matcher cache (spec §4.6).
const defaultCacheSize = 50

// cacheResult is the cached answer for a header: the selected original
// server type, and whether a match was found at all. Wrapping the string
// in a struct (rather than caching a bare "" for "no match") makes the
// "value is intentionally null" case explicit, per spec §4.6.
type cacheResult struct {
	originalType string
	found        bool
}

// matcherCache is the bounded, recency-ordered mapping from raw header
// string to matcher answer described in spec §4.6.
//
// It is backed by github.com/hashicorp/golang-lru/v2, whose Cache is
// already safe for concurrent use (each Get/Add call is a single internal
// critical section): that satisfies spec §5 strategy 1 ("wrap cache
// operations in a mutual-exclusion primitive; on miss, parsing happens
// outside the lock") without this package hand-rolling the doubly-linked
// list spec §9 describes as canonical.
type matcherCache struct {
	lru *lru.Cache[string, cacheResult]
}

func newMatcherCache(size int) *matcherCache {
	if size <= 0 {
		size = defaultCacheSize
	}
	c, err := lru.New[string, cacheResult](size)
	if err != nil {
		// Only returns an error for size <= 0, which is excluded above.
		panic(err)
	}
	return &matcherCache{lru: c}
}

func (c *matcherCache) get(header string) (cacheResult, bool) {
	return c.lru.Get(header)
}

func (c *matcherCache) put(header string, result cacheResult) {
	c.lru.Add(header, result)
}
