// Copyright 2025 coregx. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package negotiate

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
)

// config holds the resolved settings for a Matcher, assembled from
// defaultConfig plus any Option values passed to New. This mirrors the
// teacher's Options/DefaultOptions convention (plugins/validator), in the
// functional-options shape that the rest of the pack also uses for
// constructors that take an open-ended, mostly-optional configuration.
type config struct {
	cacheSize          int
	logger             *slog.Logger
	meter              metric.Meter
	cacheParseFailures bool
}

// defaultConfig returns the default Matcher configuration: cache size 50
// (spec §4.6), no logger, no meter, parse failures not cached (spec §7).
func defaultConfig() config {
	return config{cacheSize: defaultCacheSize}
}

// Option configures a Matcher at construction time.
type Option func(*config)

// WithCacheSize overrides the default 50-entry bound on the matcher
// cache. Sizes <= 0 fall back to the default.
func WithCacheSize(size int) Option {
	return func(c *config) { c.cacheSize = size }
}

// WithLogger attaches a *slog.Logger that receives one Debug record per
// Select call that carries a header (an absent header is not logged),
// recording a cache hit, the match outcome, or, on parse failure, the
// error (spec §4.8). A nil logger is a no-op.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithMeter attaches an OpenTelemetry Meter used to record cache
// hit/miss and match-outcome counters (spec §4.8). A nil meter is a
// no-op.
func WithMeter(meter metric.Meter) Option {
	return func(c *config) { c.meter = meter }
}

// WithCacheParseFailures enables caching a nil answer for a header that
// failed to parse, trading away the ability to observe the original
// parse error on a repeated identical header in exchange for bounding
// the cost of a client that resends the same malformed header
// repeatedly (spec §7's "implementation choice, not a contract").
func WithCacheParseFailures(enabled bool) Option {
	return func(c *config) { c.cacheParseFailures = enabled }
}
