// Copyright 2025 coregx. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package negotiate

import (
	"errors"
	"fmt"
)

// ParseErrorKind identifies why an Accept header failed to parse.
type ParseErrorKind int

const (
	// UnexpectedCharacter means a byte violated the state machine at Offset.
	UnexpectedCharacter ParseErrorKind = iota

	// UnexpectedEndOfInput means input ended inside a quoted parameter
	// value immediately after a backslash escape, or directly after a
	// "*/" prefix.
	UnexpectedEndOfInput

	// ExpectedSlash means a '*' was not followed by '/'.
	ExpectedSlash

	// QOutOfRange means the q parameter parsed to NaN or fell outside [0, 1].
	QOutOfRange
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "unexpected character"
	case UnexpectedEndOfInput:
		return "unexpected end of input"
	case ExpectedSlash:
		return "expected slash"
	case QOutOfRange:
		return "q out of range"
	default:
		return "unknown parse error"
	}
}

// ParseError is returned by parseAccept when a header violates the Accept
// grammar. It is fatal for the current Select call (spec §7): callers
// should treat it as a 400 Bad Request at the HTTP layer.
type ParseError struct {
	Kind   ParseErrorKind
	Offset int    // byte offset of the offending input, when applicable
	Byte   byte   // the offending byte, for UnexpectedCharacter
	Value  string // the offending q value, for QOutOfRange
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedCharacter:
		return fmt.Sprintf("negotiate: unexpected character %q at offset %d", e.Byte, e.Offset)
	case UnexpectedEndOfInput:
		return fmt.Sprintf("negotiate: unexpected end of input at offset %d", e.Offset)
	case ExpectedSlash:
		return fmt.Sprintf("negotiate: expected '/' after '*' at offset %d", e.Offset)
	case QOutOfRange:
		return fmt.Sprintf("negotiate: q value %q out of range", e.Value)
	default:
		return "negotiate: malformed Accept header"
	}
}

// Is allows errors.Is(err, negotiate.ErrMalformedAccept) to match any
// *ParseError regardless of kind.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedAccept
}

// ErrMalformedAccept is a sentinel that every *ParseError satisfies via Is,
// for callers that only care that parsing failed, not why.
var ErrMalformedAccept = errors.New("negotiate: malformed accept header")

// ErrNoServerTypes is returned by New when constructed with an empty list
// of server media types (spec §6 requires length >= 1).
var ErrNoServerTypes = errors.New("negotiate: at least one server media type is required")
