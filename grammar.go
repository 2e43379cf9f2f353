// Copyright 2025 coregx. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package negotiate

// Character classes from RFC 9110 §5.6.2 (token) and §5.6.3 (whitespace),
// as used to drive the Accept-header state machine in parser.go.

// isTokenChar reports whether b is a valid RFC 9110 "token" character:
// any byte in 0x21-0x7E excluding the delimiters "(),/:;<=>?@[\]{}.
func isTokenChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}

// isOWS reports whether b is optional whitespace (space or horizontal tab).
func isOWS(b byte) bool {
	return b == ' ' || b == '\t'
}

// isLenientWhitespace reports whether b is whitespace under the lenient
// superset this parser accepts in OWS positions: space or any byte in
// 0x09-0x0D (tab, LF, VT, FF, CR). Accepting the superset is deliberate
// robustness, not strict RFC conformance — see spec §4.1.
func isLenientWhitespace(b byte) bool {
	return b == ' ' || (b >= 0x09 && b <= 0x0D)
}
