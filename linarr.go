// Package linarr is the top-level facade: it wires the algorithm selector
// enums spec.md §6 names to the concrete packages that implement them and
// exposes nothing else. Grounded on the teacher's own root doc.go +
// graph/core's "thin facade over subpackages" shape: the root package
// never implements an algorithm itself, it only dispatches.
package linarr

import (
	"github.com/arrangeio/linarr/arrangement"
	"github.com/arrangeio/linarr/bipartite"
	"github.com/arrangeio/linarr/bnb"
	"github.com/arrangeio/linarr/core"
	"github.com/arrangeio/linarr/crossings"
	"github.com/arrangeio/linarr/dsum"
	"github.com/arrangeio/linarr/projective"
	"github.com/arrangeio/linarr/unconstrained"
)

// CrossingAlgorithm selects which counting strategy Crossings runs
// (spec.md §6: "{brute, dp, ladder, stack}").
type CrossingAlgorithm = crossings.Algorithm

const (
	CrossingsBruteForce         = crossings.BruteForce
	CrossingsDynamicProgramming = crossings.DynamicProgramming
	CrossingsLadder             = crossings.Ladder
	CrossingsStackBased         = crossings.StackBased
)

// Crossings returns C(G, arr) using the strategy named by algo.
func Crossings(g *core.Graph, arr arrangement.Arrangement, algo CrossingAlgorithm) int {
	return crossings.Count(g, arr, algo, crossings.NoBound)
}

// D returns Σ|π(u)-π(v)| over g's edges.
func D(g *core.Graph, arr arrangement.Arrangement) int {
	return dsum.D(g, arr)
}

// DminAlgorithm selects which minimum-D construction Dmin runs (spec.md
// §6: "{projective, planar, unconstrained_YS, unconstrained_FC}"). Planar
// and projective Dmin share one construction (spec.md §4.7 — planarity is
// the weaker constraint and projective's optimum is always planar-valid),
// so DminPlanar and DminProjective both route to projective.FreeDmin.
type DminAlgorithm int

const (
	DminProjective DminAlgorithm = iota
	DminPlanar
	DminUnconstrainedYS
	DminUnconstrainedFC
)

// Dmin computes a minimum-D arrangement of the free tree ft using the
// construction named by algo.
func Dmin(ft *core.FreeTree, algo DminAlgorithm) (int, arrangement.Arrangement) {
	switch algo {
	case DminUnconstrainedYS:
		return unconstrained.ShiloachDmin(ft)
	case DminUnconstrainedFC:
		return unconstrained.ChungDmin(ft)
	default:
		return projective.FreeDmin(ft)
	}
}

// DMaxAlgorithm selects which maximum-D construction MaxD runs (spec.md
// §6: "{projective, planar, bipartite, 1_thistle, bnb}"). DMaxOneThistle
// has no grounded polynomial-time construction available in this corpus
// (see DESIGN.md) and routes to the exhaustive bnb.MaxD search instead of
// the specialized closed-form algorithm its name references.
type DMaxAlgorithm int

const (
	DMaxProjective DMaxAlgorithm = iota
	DMaxPlanar
	DMaxBipartite
	DMaxOneThistle
	DMaxBranchAndBound
)

// MaxD computes a maximum-D arrangement of the free tree ft using the
// construction named by algo. DMaxBipartite requires ft to in fact be
// bipartite (every tree is); DMaxBranchAndBound and DMaxOneThistle return
// the first arrangement of bnb.MaxD's achieving set. MaxDAll returns the
// full bnb.Result when every achieving arrangement is wanted.
func MaxD(ft *core.FreeTree, algo DMaxAlgorithm) (int, arrangement.Arrangement) {
	switch algo {
	case DMaxPlanar:
		return projective.FreeDMax(ft)
	case DMaxBipartite:
		color, _ := bipartite.TwoColor(ft.Graph)
		return bipartite.Optimize(ft.Graph, color, bipartite.DMax)
	case DMaxOneThistle, DMaxBranchAndBound:
		res := bnb.MaxD(ft)
		if len(res.Arrangements) == 0 {
			return res.D, arrangement.NewIdentity(ft.NumVertices())
		}
		return res.D, res.Arrangements[0]
	default:
		return projective.FreeDMax(ft)
	}
}

// MaxDAll computes every arrangement achieving the maximum D for ft via
// exhaustive branch-and-bound search (spec.md §4.9's "optionally returns
// the full set of achieving π").
func MaxDAll(ft *core.FreeTree) bnb.Result {
	return bnb.MaxD(ft)
}
