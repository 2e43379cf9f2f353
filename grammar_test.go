// Copyright 2025 coregx. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package negotiate

import "testing"

func TestIsTokenChar(t *testing.T) {
	tests := []struct {
		b    byte
		want bool
	}{
		{'a', true},
		{'Z', true},
		{'9', true},
		{'*', true},
		{'-', true},
		{'.', true},
		{'_', true},
		{'~', true},
		{'/', false},
		{';', false},
		{'=', false},
		{'"', false},
		{' ', false},
		{',', false},
		{'(', false},
		{')', false},
		{'\\', false},
	}

	for _, tt := range tests {
		if got := isTokenChar(tt.b); got != tt.want {
			t.Errorf("isTokenChar(%q) = %v, want %v", tt.b, got, tt.want)
		}
	}
}

func TestIsOWS(t *testing.T) {
	if !isOWS(' ') || !isOWS('\t') {
		t.Error("space and tab must be OWS")
	}
	if isOWS('\n') {
		t.Error("newline must not be OWS")
	}
}

func TestIsLenientWhitespace(t *testing.T) {
	for _, b := range []byte{' ', '\t', '\n', '\v', '\f', '\r'} {
		if !isLenientWhitespace(b) {
			t.Errorf("isLenientWhitespace(%q) = false, want true", b)
		}
	}
	if isLenientWhitespace('a') {
		t.Error("'a' must not be lenient whitespace")
	}
}
