// Copyright 2025 coregx. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package negotiate

import (
	"math"
	"strconv"
	"strings"
)

// parserState is the FSM state driving parseAccept. It is a closed,
// integer-valued enumeration — no inheritance or dynamic dispatch is
// needed to express it in Go (spec §9).
type parserState int

const (
	stateExpectType parserState = iota
	stateContinueType
	stateExpectSubtype
	stateContinueSubtype
	stateExpectCommaOrSemi
	stateExpectParamName
	stateContinueParamName
	stateExpectParamValue
	stateContinueParamValue
	stateContinueQuotedParamValue
)

// parseAccept parses a raw Accept header value into its unordered list of
// media ranges, per the byte-level state machine in spec §4.2.
//
// An empty header yields an empty, non-error result — callers distinguish
// "no Accept header" from "empty Accept header" before reaching this
// function (see Header in header.go).
func parseAccept(header string) ([]MediaRange, error) {
	var (
		state   = stateExpectType
		ranges  []MediaRange
		cur     MediaRange
		typ     strings.Builder
		subtype strings.Builder
		name    strings.Builder
		value   strings.Builder
	)

	commit := func() error {
		cur.Type = typ.String()
		cur.Subtype = subtype.String()
		if q, ok := cur.paramValue("q"); ok {
			qf, err := parseQ(q)
			if err != nil {
				return err
			}
			cur.Q = qf
			removeParam(&cur, "q")
		} else {
			cur.Q = 1.0
		}
		ranges = append(ranges, cur)
		cur = MediaRange{}
		typ.Reset()
		subtype.Reset()
		return nil
	}

	i := 0
	n := len(header)
	for i < n {
		b := header[i]
		switch state {
		case stateExpectType:
			switch {
			case isLenientWhitespace(b):
				i++
			case b == '*':
				i++
				if i >= n || header[i] != '/' {
					off := i
					if off > n {
						off = n
					}
					return nil, &ParseError{Kind: ExpectedSlash, Offset: off}
				}
				i++ // consume '/'
				if i >= n {
					return nil, &ParseError{Kind: UnexpectedEndOfInput, Offset: i}
				}
				nb := header[i]
				if nb == '*' {
					typ.WriteByte('*')
					subtype.WriteByte('*')
					i++
					state = stateExpectCommaOrSemi
				} else if isTokenChar(nb) {
					typ.WriteByte('*')
					subtype.WriteByte(nb)
					i++
					state = stateContinueSubtype
				} else {
					return nil, &ParseError{Kind: UnexpectedCharacter, Byte: nb, Offset: i}
				}
			case isTokenChar(b):
				typ.WriteByte(b)
				i++
				state = stateContinueType
			default:
				return nil, &ParseError{Kind: UnexpectedCharacter, Byte: b, Offset: i}
			}

		case stateContinueType:
			switch {
			case isTokenChar(b):
				typ.WriteByte(b)
				i++
			case b == '/':
				i++
				state = stateExpectSubtype
			default:
				return nil, &ParseError{Kind: UnexpectedCharacter, Byte: b, Offset: i}
			}

		case stateExpectSubtype:
			if isTokenChar(b) {
				subtype.WriteByte(b)
				i++
				state = stateContinueSubtype
			} else {
				return nil, &ParseError{Kind: UnexpectedCharacter, Byte: b, Offset: i}
			}

		case stateContinueSubtype:
			switch {
			case isTokenChar(b):
				subtype.WriteByte(b)
				i++
			case b == ';':
				i++
				state = stateExpectParamName
			case b == ',':
				if err := commit(); err != nil {
					return nil, err
				}
				i++
				state = stateExpectType
			default:
				return nil, &ParseError{Kind: UnexpectedCharacter, Byte: b, Offset: i}
			}

		case stateExpectCommaOrSemi:
			switch {
			case isLenientWhitespace(b):
				i++
			case b == ';':
				i++
				state = stateExpectParamName
			case b == ',':
				if err := commit(); err != nil {
					return nil, err
				}
				i++
				state = stateExpectType
			default:
				return nil, &ParseError{Kind: UnexpectedCharacter, Byte: b, Offset: i}
			}

		case stateExpectParamName:
			switch {
			case isOWS(b):
				i++
			case isTokenChar(b):
				name.Reset()
				name.WriteByte(b)
				i++
				state = stateContinueParamName
			default:
				return nil, &ParseError{Kind: UnexpectedCharacter, Byte: b, Offset: i}
			}

		case stateContinueParamName:
			switch {
			case isTokenChar(b):
				name.WriteByte(b)
				i++
			case b == '=':
				value.Reset()
				i++
				state = stateExpectParamValue
			default:
				return nil, &ParseError{Kind: UnexpectedCharacter, Byte: b, Offset: i}
			}

		case stateExpectParamValue:
			switch {
			case b == '"':
				i++
				state = stateContinueQuotedParamValue
			case isTokenChar(b):
				value.WriteByte(b)
				i++
				state = stateContinueParamValue
			default:
				return nil, &ParseError{Kind: UnexpectedCharacter, Byte: b, Offset: i}
			}

		case stateContinueParamValue:
			switch {
			case isTokenChar(b):
				value.WriteByte(b)
				i++
			case b == ';':
				cur.setParam(name.String(), value.String())
				i++
				state = stateExpectParamName
			case b == ',':
				cur.setParam(name.String(), value.String())
				if err := commit(); err != nil {
					return nil, err
				}
				i++
				state = stateExpectType
			default:
				return nil, &ParseError{Kind: UnexpectedCharacter, Byte: b, Offset: i}
			}

		case stateContinueQuotedParamValue:
			switch b {
			case '"':
				cur.setParam(name.String(), value.String())
				i++
				state = stateExpectCommaOrSemi
			case '\\':
				i++
				if i >= n {
					return nil, &ParseError{Kind: UnexpectedEndOfInput, Offset: i}
				}
				value.WriteByte(header[i])
				i++
			default:
				value.WriteByte(b)
				i++
			}
		}
	}

	if state != stateExpectType {
		switch state {
		case stateContinueParamValue:
			cur.setParam(name.String(), value.String())
		case stateExpectParamValue:
			cur.setParam(name.String(), value.String())
		}
		if err := commit(); err != nil {
			return nil, err
		}
	}

	return ranges, nil
}

// removeParam deletes name from r.Parameters, preserving order of the rest.
func removeParam(r *MediaRange, name string) {
	for i := range r.Parameters {
		if r.Parameters[i].Name == name {
			r.Parameters = append(r.Parameters[:i], r.Parameters[i+1:]...)
			return
		}
	}
}

// parseQ parses the q parameter value into a finite [0, 1] float, per
// spec §4.2's commit rule. A value that is not a finite number in range
// is a QOutOfRange error.
func parseQ(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f < 0 || f > 1 {
		return 0, &ParseError{Kind: QOutOfRange, Value: s}
	}
	return f, nil
}
