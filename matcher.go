// Copyright 2025 coregx. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package negotiate

import (
	"context"
	"log/slog"
)

// Matcher selects the best server media type for a client Accept header,
// per spec §4.5. It holds an immutable digested server list (registration
// order preserved — the tie-break for equally-scored server types, spec
// §3) and a bounded cache in front of the parser.
//
// A Matcher is safe for concurrent use by multiple goroutines (spec §5).
type Matcher struct {
	digests            []serverTypeDigest
	cache              *matcherCache
	logger             *slog.Logger
	instruments        *matcherInstruments
	cacheParseFailures bool // cache parse failures, per WithCacheParseFailures
}

// New constructs a Matcher over serverTypes, an ordered list of media type
// strings the server is willing to produce (length >= 1). Registration
// order is semantically significant: the first type is the server's
// default when no Accept header is present, and earlier types win ties
// when multiple score identically against a header (spec §4.5, §6).
func New(serverTypes []string, opts ...Option) (*Matcher, error) {
	if len(serverTypes) == 0 {
		return nil, ErrNoServerTypes
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Matcher{
		digests:            digestServerTypes(serverTypes),
		cache:              newMatcherCache(cfg.cacheSize),
		logger:             cfg.logger,
		instruments:        newMatcherInstruments(cfg.meter),
		cacheParseFailures: cfg.cacheParseFailures,
	}, nil
}

// Select returns the server media type best matching header, per spec
// §4.5. ok is false when no server type is acceptable to the client. err
// is non-nil only when header is present and malformed (spec §7); in
// that case result is empty and ok is false.
func (m *Matcher) Select(header Header) (result string, ok bool, err error) {
	if !header.present {
		return m.digests[0].OriginalType, true, nil
	}

	ctx := context.Background()

	if cached, hit := m.cache.get(header.value); hit {
		m.instruments.recordCacheHit(ctx)
		m.debugf("cache hit", "header", header.value, "found", cached.found)
		return cached.originalType, cached.found, nil
	}
	m.instruments.recordCacheMiss(ctx)

	ranges, perr := parseAccept(header.value)
	if perr != nil {
		m.debugf("parse failed", "header", header.value, "error", perr)
		if m.cacheParseFailures {
			m.cache.put(header.value, cacheResult{})
		}
		return "", false, perr
	}

	sortByPrecedence(ranges)

	match, found := bestMatch(m.digests, ranges)
	m.cache.put(header.value, cacheResult{originalType: match, found: found})
	m.instruments.recordMatch(ctx, found)
	m.debugf("matched", "header", header.value, "found", found, "result", match)

	return match, found, nil
}

func (m *Matcher) debugf(msg string, args ...any) {
	if m.logger == nil {
		return
	}
	m.logger.Debug(msg, args...)
}

// bestMatch implements spec §4.5's match rule: for each server digest in
// registration order, find the first (highest-precedence) client range
// that matches it; among server digests with a match, the one with the
// highest q wins, ties broken by registration order.
func bestMatch(digests []serverTypeDigest, ranges []MediaRange) (string, bool) {
	bestIdx := -1
	bestQ := -1.0

	for i, d := range digests {
		r, ok := firstMatchingRange(d, ranges)
		if !ok {
			continue
		}
		if r.Q > bestQ {
			bestQ = r.Q
			bestIdx = i
		}
	}

	if bestIdx == -1 {
		return "", false
	}
	return digests[bestIdx].OriginalType, true
}

// firstMatchingRange returns the highest-precedence range (ranges is
// already sorted) that matches d, per spec §4.5's match predicate.
func firstMatchingRange(d serverTypeDigest, ranges []MediaRange) (MediaRange, bool) {
	for _, r := range ranges {
		if rangeMatches(r, d) {
			return r, true
		}
	}
	return MediaRange{}, false
}

// rangeMatches implements spec §4.5's match predicate:
//
//	range.Type == "*", OR
//	range.Type == digest.Type AND (range.Subtype == "*" OR
//	    (range.Subtype == digest.Subtype AND every range parameter is
//	     satisfied by an identical digest parameter))
func rangeMatches(r MediaRange, d serverTypeDigest) bool {
	if r.Type == "*" {
		return true
	}
	if r.Type != d.Type {
		return false
	}
	if r.Subtype == "*" {
		return true
	}
	if r.Subtype != d.Subtype {
		return false
	}
	for _, p := range r.Parameters {
		if d.Parameters[p.Name] != p.Value {
			return false
		}
	}
	return true
}
