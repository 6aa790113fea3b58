// Package bipartite computes Dmin/DMax under the bipartite-block
// constraint in O(n + sort): every arrangement considered places all of
// color class 0 before all of color class 1, and within that family,
// degree-sorts each class to reach the constrained extremum (spec.md
// §4.6) — the bipartite analogue of projective/planar's non-crossing
// constraint, not a claim about the unconstrained global optimum.
//
// The correctness argument: writing D for a blocked arrangement as
// Σ_{v∈class1} deg(v)·pos(v) − Σ_{u∈class0} deg(u)·pos(u) (every edge runs
// from class0 into class1, and class1 always sits at the larger position),
// minimizing D means maximizing the subtracted class0 term and minimizing
// the class1 term. The rearrangement inequality gives both at once: class0
// (occupying the ascending position range first) is sorted by degree and
// placed back-to-front (its largest-degree vertex ends up adjacent to the
// class0/class1 boundary); class1 (occupying the remaining range) is
// sorted the same direction and placed front-to-back. The net effect is
// that the highest-degree vertices of both classes cluster at the
// boundary and the lowest-degree vertices sit at the two open ends — an
// earlier version of this package placed both classes in plain sorted
// (non-reversed) order, which is a valid but not block-optimal
// arrangement; see DESIGN.md's Open Question decision for this package.
// TwoColor's BFS is grounded on traverse.BFS (spec.md §4.2); the degree
// sort is grounded on prim_kruskal/kruskal.go's sort-then-greedy-assign
// shape, using sortkernel for the actual sort.
package bipartite

import (
	"github.com/arrangeio/linarr/arrangement"
	"github.com/arrangeio/linarr/bibliography"
	"github.com/arrangeio/linarr/core"
	"github.com/arrangeio/linarr/dsum"
	"github.com/arrangeio/linarr/sortkernel"
	"github.com/arrangeio/linarr/traverse"
)

// Objective selects which extremal arrangement Optimize computes.
type Objective int

const (
	Dmin Objective = iota
	DMax
)

// TwoColor 2-colors g's vertices (0/1) such that every edge joins
// differently-colored endpoints, returning the coloring and whether g is
// in fact bipartite (false if any edge was found joining same-colored
// vertices; color is then only a partial, possibly-invalid labeling).
// Disconnected graphs are colored component by component.
func TwoColor(g *core.Graph) ([]int, bool) {
	n := g.NumVertices()
	color := make([]int, n)
	for i := range color {
		color[i] = -1
	}

	bipartite := true
	bfs := traverse.NewBFS(g)
	bfs.SetProcessVisitedNeighbors(true)
	bfs.SetHooks(traverse.Hooks{
		OnNeighbor: func(u, v core.Vertex, _ traverse.Direction) {
			if color[v] == -1 {
				color[v] = 1 - color[u]
				return
			}
			if color[v] == color[u] {
				bipartite = false
			}
		},
	})

	for s := 0; s < n; s++ {
		if color[s] != -1 {
			continue
		}
		color[s] = 0
		bfs.StartAt(core.Vertex(s))
	}
	return color, bipartite
}

// Optimize computes the extremal D value for obj and a witnessing
// arrangement, given g and a valid 2-coloring (see TwoColor). Vertices of
// color 0 are placed before vertices of color 1. Both classes are sorted
// by degree in the same direction (descending for Dmin, ascending for
// DMax), but color 0 is placed back-to-front and color 1 front-to-back, so
// for Dmin the highest-degree vertices of both classes end up adjacent to
// the boundary between them, and for DMax the lowest-degree ones do
// (spec.md §4.6's stated rule; see the package doc for the
// rearrangement-inequality argument).
func Optimize(g *core.Graph, color []int, obj Objective) (int, arrangement.Arrangement) {
	bibliography.Register(bibliography.BipartiteAEF)
	var c0, c1 []core.Vertex
	for v, c := range color {
		if c == 0 {
			c0 = append(c0, core.Vertex(v))
		} else {
			c1 = append(c1, core.Vertex(v))
		}
	}

	dir := sortkernel.NonIncreasing
	if obj == DMax {
		dir = sortkernel.NonDecreasing
	}
	c0 = sortByDegree(g, c0, dir)
	c1 = sortByDegree(g, c1, dir)
	reverse(c0)

	arr := arrangement.NewExplicit(g.NumVertices())
	pos := arrangement.Position(0)
	for _, v := range c0 {
		arr.Assign(v, pos)
		pos++
	}
	for _, v := range c1 {
		arr.Assign(v, pos)
		pos++
	}
	return dsum.D(g, arr), arr
}

func reverse(vs []core.Vertex) {
	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}
}

func sortByDegree(g *core.Graph, vs []core.Vertex, dir sortkernel.Direction) []core.Vertex {
	n := len(vs)
	if n == 0 {
		return vs
	}
	maxKey := g.NumVertices() - 1
	idx := sortkernel.CountingSortIndices(n, func(i int) int { return g.Degree(vs[i]) }, maxKey, dir)
	out := make([]core.Vertex, n)
	for i, j := range idx {
		out[i] = vs[j]
	}
	return out
}
