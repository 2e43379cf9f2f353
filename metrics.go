// Copyright 2025 coregx. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package negotiate

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// matcherInstruments holds the OpenTelemetry counters registered for a
// Matcher when New builds it (cache hit/miss and match outcome, rather than request
// latency/size — there is nothing in an in-memory, non-blocking Select
// call worth bucketing into a histogram).
type matcherInstruments struct {
	cacheHits   metric.Int64Counter
	cacheMisses metric.Int64Counter
	matchResult metric.Int64Counter
}

func newMatcherInstruments(meter metric.Meter) *matcherInstruments {
	if meter == nil {
		return nil
	}

	hits, err1 := meter.Int64Counter("negotiate.cache.hits",
		metric.WithDescription("matcher cache hits"))
	misses, err2 := meter.Int64Counter("negotiate.cache.misses",
		metric.WithDescription("matcher cache misses"))
	results, err3 := meter.Int64Counter("negotiate.match.result",
		metric.WithDescription("content negotiation outcomes, by whether a match was found"))
	if err1 != nil || err2 != nil || err3 != nil {
		// A broken MeterProvider should not break negotiation: fall back
		// to no metrics rather than propagating an instrument error.
		return nil
	}

	return &matcherInstruments{cacheHits: hits, cacheMisses: misses, matchResult: results}
}

func (m *matcherInstruments) recordCacheHit(ctx context.Context) {
	if m == nil {
		return
	}
	m.cacheHits.Add(ctx, 1)
}

func (m *matcherInstruments) recordCacheMiss(ctx context.Context) {
	if m == nil {
		return
	}
	m.cacheMisses.Add(ctx, 1)
}

func (m *matcherInstruments) recordMatch(ctx context.Context, matched bool) {
	if m == nil {
		return
	}
	m.matchResult.Add(ctx, 1, metric.WithAttributes(attribute.Bool("matched", matched)))
}
