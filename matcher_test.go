// Copyright 2025 coregx. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package negotiate

import (
	"sync"
	"testing"

	"go.opentelemetry.io/otel/metric/noop"
)

func defaultServerTypes() []string {
	return []string{
		MIMEApplicationJSON,
		"application/graphql-response+json",
		MIMETextHTML,
	}
}

// Scenario 1: header absent -> first registered type.
func TestMatcher_Scenario1_AbsentHeader(t *testing.T) {
	m, err := New(defaultServerTypes())
	if err != nil {
		t.Fatal(err)
	}
	got, ok, err := m.Select(NoHeader)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != MIMEApplicationJSON {
		t.Errorf("got %q, %v, want %q, true", got, ok, MIMEApplicationJSON)
	}
}

// Scenario 2: "*/*" -> first server wins on tie.
func TestMatcher_Scenario2_FullWildcard(t *testing.T) {
	m, err := New(defaultServerTypes())
	if err != nil {
		t.Fatal(err)
	}
	got, ok, err := m.Select(HeaderValue("*/*"))
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != MIMEApplicationJSON {
		t.Errorf("got %q, %v, want %q, true", got, ok, MIMEApplicationJSON)
	}
}

// Scenario 3: exact match.
func TestMatcher_Scenario3_ExactMatch(t *testing.T) {
	m, err := New(defaultServerTypes())
	if err != nil {
		t.Fatal(err)
	}
	got, ok, err := m.Select(HeaderValue("text/html"))
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != MIMETextHTML {
		t.Errorf("got %q, %v, want %q, true", got, ok, MIMETextHTML)
	}
}

// Scenario 4: no acceptable representation.
func TestMatcher_Scenario4_NoMatch(t *testing.T) {
	m, err := New(defaultServerTypes())
	if err != nil {
		t.Fatal(err)
	}
	got, ok, err := m.Select(HeaderValue("application/xml"))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Errorf("expected no match, got %q", got)
	}
}

// Scenario 5: higher q wins over registration order.
func TestMatcher_Scenario5_QualityOverridesOrder(t *testing.T) {
	m, err := New(defaultServerTypes())
	if err != nil {
		t.Fatal(err)
	}
	got, ok, err := m.Select(HeaderValue("text/html;q=0.9, application/json;q=0.8"))
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != MIMETextHTML {
		t.Errorf("got %q, %v, want %q, true", got, ok, MIMETextHTML)
	}
}

// Scenario 6: equal q, registration order breaks the tie.
func TestMatcher_Scenario6_EqualQualityRegistrationOrder(t *testing.T) {
	m, err := New(defaultServerTypes())
	if err != nil {
		t.Fatal(err)
	}
	got, ok, err := m.Select(HeaderValue("application/json;q=0.5, application/graphql-response+json;q=0.5"))
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != MIMEApplicationJSON {
		t.Errorf("got %q, %v, want %q, true", got, ok, MIMEApplicationJSON)
	}
}

// Scenario 7: subtype wildcard still matches.
func TestMatcher_Scenario7_SubtypeWildcard(t *testing.T) {
	m, err := New([]string{"application/json", "text/html"})
	if err != nil {
		t.Fatal(err)
	}
	got, ok, err := m.Select(HeaderValue("application/*"))
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != "application/json" {
		t.Errorf("got %q, %v, want application/json, true", got, ok)
	}
}

// Scenario 8: client parameter not satisfied by server digest -> no match.
func TestMatcher_Scenario8_ClientParamNotSatisfied(t *testing.T) {
	m, err := New([]string{"application/json"})
	if err != nil {
		t.Fatal(err)
	}
	got, ok, err := m.Select(HeaderValue("application/json;charset=utf-8"))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Errorf("expected no match (server digest lacks charset param), got %q", got)
	}
}

// Scenario 9: malformed header -> parse error.
func TestMatcher_Scenario9_MalformedHeader(t *testing.T) {
	m, err := New(defaultServerTypes())
	if err != nil {
		t.Fatal(err)
	}
	_, ok, err := m.Select(HeaderValue("not a valid header!!!"))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if ok {
		t.Error("ok must be false on parse error")
	}
}

func TestNew_EmptyServerTypes(t *testing.T) {
	if _, err := New(nil); err != ErrNoServerTypes {
		t.Errorf("got %v, want ErrNoServerTypes", err)
	}
}

// Cache transparency (spec §8): repeated calls return the same answer.
func TestMatcher_CacheTransparency(t *testing.T) {
	m, err := New(defaultServerTypes())
	if err != nil {
		t.Fatal(err)
	}
	h := HeaderValue("text/html;q=0.9, application/json;q=0.8")

	first, firstOK, err := m.Select(h)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		got, ok, err := m.Select(h)
		if err != nil {
			t.Fatal(err)
		}
		if got != first || ok != firstOK {
			t.Fatalf("call %d: got %q, %v, want %q, %v", i, got, ok, first, firstOK)
		}
	}
}

// Absent header default (spec §8), for an arbitrary server list.
func TestMatcher_AbsentHeaderDefault(t *testing.T) {
	types := []string{"text/plain", "application/json"}
	m, err := New(types)
	if err != nil {
		t.Fatal(err)
	}
	got, ok, err := m.Select(NoHeader)
	if err != nil || !ok || got != types[0] {
		t.Fatalf("got %q, %v, %v, want %q, true, nil", got, ok, err, types[0])
	}
}

func TestNew_OptionDefaults(t *testing.T) {
	m, err := New(defaultServerTypes())
	if err != nil {
		t.Fatal(err)
	}
	if m.cache.lru.Len() != 0 {
		t.Fatalf("expected empty cache at construction")
	}
	if m.logger != nil {
		t.Error("expected nil logger by default")
	}
	if m.instruments != nil {
		t.Error("expected nil instruments by default")
	}
	if m.cacheParseFailures {
		t.Error("expected parse failures not cached by default")
	}
}

func TestNew_WithCacheSize(t *testing.T) {
	m, err := New(defaultServerTypes(), WithCacheSize(5))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		m.Select(HeaderValue(string(rune('a' + i%26))))
	}
	if m.cache.lru.Len() > 5 {
		t.Errorf("cache size = %d, want <= 5", m.cache.lru.Len())
	}
}

// Metrics optionality (expanded testable property): a Matcher built with a
// no-op meter must not panic, and one built with no meter records nothing.
func TestMatcher_MetricsOptionality(t *testing.T) {
	m, err := New(defaultServerTypes(), WithMeter(noop.NewMeterProvider().Meter("test")))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := m.Select(HeaderValue("text/html")); err != nil {
		t.Fatal(err)
	}

	m2, err := New(defaultServerTypes())
	if err != nil {
		t.Fatal(err)
	}
	if m2.instruments != nil {
		t.Error("expected no instruments without WithMeter")
	}
}

// Concurrent Select safety (spec §5): run under `go test -race`.
func TestMatcher_ConcurrentSelect(t *testing.T) {
	m, err := New(defaultServerTypes())
	if err != nil {
		t.Fatal(err)
	}

	headers := []Header{
		NoHeader,
		HeaderValue("application/json"),
		HeaderValue("text/html;q=0.9, application/json;q=0.8"),
		HeaderValue("*/*"),
		HeaderValue("application/xml"),
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h := headers[i%len(headers)]
			if _, _, err := m.Select(h); err != nil {
				// application/xml matches nothing but is well-formed;
				// no header here should ever error.
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()
}

func TestMatcher_WithCacheParseFailures(t *testing.T) {
	m, err := New(defaultServerTypes(), WithCacheParseFailures(true))
	if err != nil {
		t.Fatal(err)
	}
	bad := HeaderValue("not a valid header!!!")

	if _, _, err := m.Select(bad); err == nil {
		t.Fatal("expected parse error")
	}
	if cached, ok := m.cache.get(bad.value); !ok || cached.found {
		t.Errorf("expected a cached null entry, got %+v, %v", cached, ok)
	}
}
