// Copyright 2025 coregx. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package negotiate implements RFC 9110 §12.5.1 compliant HTTP content
// negotiation: given a server's offered media types and a client's Accept
// header, it selects the single media type the server should respond with.
//
// The package is a pure, allocation-light core with no I/O: parsing,
// precedence scoring, and matching are side-effect-free and safe to call
// concurrently from any number of goroutines. A Matcher adds a small bounded
// LRU cache in front of the parser so that repeated identical Accept headers
// are not re-parsed on every request.
//
// Example:
//
//	m, err := negotiate.New([]string{
//	    negotiate.MIMEApplicationJSON,
//	    "application/graphql-response+json",
//	    negotiate.MIMETextHTML,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	h := negotiate.NoHeader
//	if vals := r.Header.Values("Accept"); len(vals) > 0 {
//	    h = negotiate.HeaderValue(strings.Join(vals, ", "))
//	}
//	chosen, ok, err := m.Select(h)
//	if err != nil {
//	    w.WriteHeader(http.StatusBadRequest)
//	    return
//	}
//	if !ok {
//	    w.WriteHeader(http.StatusNotAcceptable)
//	    return
//	}
//	w.Header().Set("Content-Type", chosen)
package negotiate
