package bipartite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrangeio/linarr/arrangement"
	"github.com/arrangeio/linarr/bipartite"
	"github.com/arrangeio/linarr/core"
	"github.com/arrangeio/linarr/dsum"
)

func buildGraph(n int, edges [][2]int) *core.Graph {
	g := core.NewGraph(n)
	for _, e := range edges {
		g.AddEdge(core.Vertex(e[0]), core.Vertex(e[1]))
	}
	g.Normalize()
	return g
}

func TestTwoColor_DetectsOddCycle(t *testing.T) {
	g := buildGraph(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	_, ok := bipartite.TwoColor(g)
	assert.False(t, ok)
}

func TestTwoColor_ProperColoringOnPath(t *testing.T) {
	g := buildGraph(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	color, ok := bipartite.TwoColor(g)
	require.True(t, ok)
	for _, e := range g.Edges() {
		assert.NotEqual(t, color[e.From], color[e.To])
	}
}

func TestTwoColor_DisconnectedComponentsEachColored(t *testing.T) {
	g := buildGraph(6, [][2]int{{0, 1}, {2, 3}, {3, 4}})
	color, ok := bipartite.TwoColor(g)
	require.True(t, ok)
	assert.NotEqual(t, color[0], color[1])
	assert.NotEqual(t, color[2], color[3])
	assert.NotEqual(t, color[3], color[4])
	// vertex 5 is isolated; still gets some color, just unconstrained.
	assert.Contains(t, []int{0, 1}, color[5])
}

// A bipartite "chain" graph (each side's neighborhoods nested: N(1) ⊆
// N(0)) is the structure the degree-sort algorithm's optimality argument
// assumes. Values below are confirmed against bruteForceBlockedExtremes in
// TestOptimize_MatchesExhaustiveBlockedSearchOnChainGraph, not taken on
// faith from the placement rule alone.
func chainGraph() (*core.Graph, []int) {
	g := buildGraph(5, [][2]int{{0, 2}, {0, 3}, {0, 4}, {1, 2}, {1, 3}})
	color := []int{0, 0, 1, 1, 1}
	return g, color
}

func TestOptimize_DMaxAtLeastDmin(t *testing.T) {
	g, color := chainGraph()
	dMin, arrMin := bipartite.Optimize(g, color, bipartite.Dmin)
	dMax, arrMax := bipartite.Optimize(g, color, bipartite.DMax)

	assert.Equal(t, 11, dMin)
	assert.Equal(t, 14, dMax)
	assert.True(t, dMax >= dMin)
	assert.True(t, arrangement.IsBijection(arrMin))
	assert.True(t, arrangement.IsBijection(arrMax))
}

// bruteForceBlockedExtremes returns the true minimum and maximum D over
// every arrangement that keeps one color class entirely contiguous before
// the other — the same family Optimize searches (spec.md §4.6's
// constraint, parallel to projective/planar's non-crossing constraint) —
// by trying both class orderings and every internal permutation of each
// class. This is the oracle spec.md §8's bipartite invariant is checked
// against: a brute force over *all* permutations of g's vertices would
// include interleaved arrangements Optimize never considers and so is not
// a valid oracle for a constrained optimizer (see K(2,3) in DESIGN.md,
// whose unconstrained global Dmin of 10 is unreachable under the block
// constraint).
func bruteForceBlockedExtremes(g *core.Graph, color []int) (min, max int) {
	var classes [2][]int
	for v, c := range color {
		classes[c] = append(classes[c], v)
	}

	min, max = -1, -1
	consider := func(first, second []int) {
		permute(first, func(firstPerm []int) {
			permute(second, func(secondPerm []int) {
				arr := arrangement.NewExplicit(g.NumVertices())
				pos := arrangement.Position(0)
				for _, v := range firstPerm {
					arr.Assign(core.Vertex(v), pos)
					pos++
				}
				for _, v := range secondPerm {
					arr.Assign(core.Vertex(v), pos)
					pos++
				}
				d := dsum.D(g, arr)
				if min == -1 || d < min {
					min = d
				}
				if max == -1 || d > max {
					max = d
				}
			})
		})
	}
	consider(classes[0], classes[1])
	consider(classes[1], classes[0])
	return min, max
}

// permute calls visit once per distinct permutation of vs, leaving vs
// restored to its original order afterward.
func permute(vs []int, visit func([]int)) {
	n := len(vs)
	var recurse func(k int)
	recurse = func(k int) {
		if k == n {
			visit(vs)
			return
		}
		for i := k; i < n; i++ {
			vs[k], vs[i] = vs[i], vs[k]
			recurse(k + 1)
			vs[k], vs[i] = vs[i], vs[k]
		}
	}
	recurse(0)
}

func TestOptimize_MatchesExhaustiveBlockedSearchOnChainGraph(t *testing.T) {
	g, color := chainGraph()
	wantMin, wantMax := bruteForceBlockedExtremes(g, color)

	dMin, _ := bipartite.Optimize(g, color, bipartite.Dmin)
	dMax, _ := bipartite.Optimize(g, color, bipartite.DMax)

	assert.Equal(t, wantMin, dMin)
	assert.Equal(t, wantMax, dMax)
}

// K(2,3): classes {0,1} and {2,3,4}, every cross pair an edge (spec.md §8
// scenario 6).
func k23Graph() (*core.Graph, []int) {
	g := buildGraph(5, [][2]int{
		{0, 2}, {0, 3}, {0, 4},
		{1, 2}, {1, 3}, {1, 4},
	})
	color := []int{0, 0, 1, 1, 1}
	return g, color
}

func TestOptimize_MatchesExhaustiveSearchOnK23(t *testing.T) {
	g, color := k23Graph()
	wantMin, wantMax := bruteForceBlockedExtremes(g, color)

	dMin, arrMin := bipartite.Optimize(g, color, bipartite.Dmin)
	dMax, arrMax := bipartite.Optimize(g, color, bipartite.DMax)

	require.True(t, arrangement.IsBijection(arrMin))
	require.True(t, arrangement.IsBijection(arrMax))
	assert.Equal(t, dsum.D(g, arrMin), dMin)
	assert.Equal(t, dsum.D(g, arrMax), dMax)
	assert.Equal(t, wantMin, dMin)
	assert.Equal(t, wantMax, dMax)
}

func TestOptimize_ColorZeroPlacedBeforeColorOne(t *testing.T) {
	g, color := chainGraph()
	_, arr := bipartite.Optimize(g, color, bipartite.Dmin)
	for v, c := range color {
		if c != 0 {
			continue
		}
		for u, cu := range color {
			if cu != 1 {
				continue
			}
			assert.Less(t, arr.PositionOf(core.Vertex(v)), arr.PositionOf(core.Vertex(u)))
		}
	}
}
