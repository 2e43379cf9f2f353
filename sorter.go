// Copyright 2025 coregx. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package negotiate

import "sort"

// precedenceScore implements spec §4.3:
//
//	score(r) = (1 if subtype != "*") * 1_000_000
//	         + (1 if type    != "*") * 1_000
//	         + len(parameters)
//
// q is deliberately excluded: it is only used to choose among competing
// winners at match time (spec §4.5), never at the precedence-ordering stage.
func precedenceScore(r MediaRange) int {
	score := len(r.Parameters)
	if r.Type != "*" {
		score += 1_000
	}
	if r.Subtype != "*" {
		score += 1_000_000
	}
	return score
}

// sortByPrecedence sorts ranges descending by precedenceScore, stable with
// respect to original parse order (spec §4.3).
func sortByPrecedence(ranges []MediaRange) {
	sort.SliceStable(ranges, func(i, j int) bool {
		return precedenceScore(ranges[i]) > precedenceScore(ranges[j])
	})
}
