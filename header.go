// Copyright 2025 coregx. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package negotiate

// Header distinguishes an absent Accept header from one that is present
// but empty, per spec §4.5 ("If header is absent, return the first server
// digest's originalType"). The zero value is NoHeader.
type Header struct {
	value   string
	present bool
}

// NoHeader represents a request with no Accept header at all.
var NoHeader = Header{}

// HeaderValue wraps a raw Accept header value, including the empty string,
// as a present header.
func HeaderValue(s string) Header {
	return Header{value: s, present: true}
}
