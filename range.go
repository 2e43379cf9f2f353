// Copyright 2025 coregx. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package negotiate

// Param is a single media-range parameter, kept in an ordered slice rather
// than a plain map so that insertion order survives for scoring by
// parameter count (spec §3) without needing a prototype-free ordered map
// type of its own.
type Param struct {
	Name  string
	Value string
}

// MediaRange is one parsed entry from an Accept header.
//
// Invariants (spec §3): Type is "*" or a non-empty token; Subtype is "*"
// or a non-empty token; if Type == "*" then Subtype == "*" for any
// well-formed header; Q is finite and in [0, 1].
type MediaRange struct {
	Type       string
	Subtype    string
	Parameters []Param
	Q          float64
}

// setParam overwrites the value for name if already present (duplicate
// keys overwrite silently, per spec §4.2), otherwise appends it,
// preserving first-seen order.
func (r *MediaRange) setParam(name, value string) {
	for i := range r.Parameters {
		if r.Parameters[i].Name == name {
			r.Parameters[i].Value = value
			return
		}
	}
	r.Parameters = append(r.Parameters, Param{Name: name, Value: value})
}

// paramValue returns the value for name and whether it was present.
func (r MediaRange) paramValue(name string) (string, bool) {
	for _, p := range r.Parameters {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}
