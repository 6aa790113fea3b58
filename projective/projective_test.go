package projective_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrangeio/linarr/arrangement"
	"github.com/arrangeio/linarr/core"
	"github.com/arrangeio/linarr/dsum"
	"github.com/arrangeio/linarr/projective"
)

func buildRootedTree(n int, edges [][2]int) *core.RootedTree {
	g := core.NewGraph(n, core.WithDirected())
	for _, e := range edges {
		g.AddEdge(core.Vertex(e[0]), core.Vertex(e[1]))
	}
	g.Normalize()
	rt := core.NewRootedTree(g)
	rt.ComputeSubtreeSizes()
	return rt
}

func buildFreeTree(n int, edges [][2]int) *core.FreeTree {
	g := core.NewGraph(n)
	for _, e := range edges {
		g.AddEdge(core.Vertex(e[0]), core.Vertex(e[1]))
	}
	g.Normalize()
	return core.NewFreeTree(g)
}

func TestRootedDmin_PathHasNoChoice(t *testing.T) {
	rt := buildRootedTree(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	d, arr := projective.RootedDmin(rt)
	assert.Equal(t, 3, d)
	assert.True(t, arrangement.IsBijection(arr))
}

// root 0 has a leaf child (1) and a long chain child (2-3-4-5, subtree
// size 4). With only one child on each side of the root, Dmin and DMax
// give the same order here (the within-side near/far rule only bites
// once a side holds two or more children) — this tree happens to attain
// the true optimum regardless, so it exercises RootedDmin's correctness
// rather than the Dmin/DMax split.
func leafPlusChain() *core.RootedTree {
	return buildRootedTree(6, [][2]int{{0, 1}, {0, 2}, {2, 3}, {3, 4}, {4, 5}})
}

func TestRootedDmin_LargeSubtreePulledNearRoot(t *testing.T) {
	rt := leafPlusChain()
	d, arr := projective.RootedDmin(rt)
	assert.Equal(t, 5, d)
	assert.Equal(t, dsum.D(rt.Graph, arr), d)
}

// root 0 has four children of sizes [1, 1, 2, 2] (two leaves, two 2-vertex
// chains), enough branching on each side to exercise the knapsack merge's
// side-assignment choice rather than just its within-side ordering.
func branchyTree() *core.RootedTree {
	return buildRootedTree(7, [][2]int{{0, 1}, {0, 2}, {0, 3}, {3, 4}, {0, 5}, {5, 6}})
}

// The maximum puts every block on one side of root 0, widest nearest, each
// chain's own root at the far end of its block: order 0,4,3,6,5,1,2 gives
// root edges 2+4+5+6 plus the two chain edges of length 1, D = 19.
func TestRootedDMax_LargeSubtreePushedAway(t *testing.T) {
	rt := branchyTree()
	d, arr := projective.RootedDMax(rt)
	assert.Equal(t, 19, d)
	assert.Equal(t, dsum.D(rt.Graph, arr), d)
}

func TestRootedDMax_AtLeastDmin(t *testing.T) {
	dMin, _ := projective.RootedDmin(branchyTree())
	dMax, _ := projective.RootedDMax(branchyTree())
	assert.True(t, dMax >= dMin)
}

func sameTreeUndirected() *core.FreeTree {
	return buildFreeTree(6, [][2]int{{0, 1}, {0, 2}, {2, 3}, {3, 4}, {4, 5}})
}

func TestFreeDmin_SelfConsistent(t *testing.T) {
	ft := sameTreeUndirected()
	d, arr := projective.FreeDmin(ft)
	require.True(t, arrangement.IsBijection(arr))
	assert.Equal(t, dsum.D(ft.Graph, arr), d)
}

func TestFreeDMax_SelfConsistentAndAtLeastDmin(t *testing.T) {
	ft := sameTreeUndirected()
	dMin, _ := projective.FreeDmin(ft)
	dMax, arr := projective.FreeDMax(ft)
	require.True(t, arrangement.IsBijection(arr))
	assert.Equal(t, dsum.D(ft.Graph, arr), dMax)
	assert.True(t, dMax >= dMin)
}

func TestFreeDMaxAllRoots_NonEmptyAndAllAtMax(t *testing.T) {
	ft := sameTreeUndirected()
	results := projective.FreeDMaxAllRoots(ft)
	require.NotEmpty(t, results)
	for i := 1; i < len(results); i++ {
		assert.Equal(t, results[0].D, results[i].D)
	}
}

// spec.md's own worked example for this tree states Dmin=4, but that value
// is unreachable: vertex 1 has degree 3 (neighbors 0, 3, 4), so at most two
// of its incident edges can have length 1 in any arrangement — the third is
// forced to length >= 2, giving a hard lower bound of 1+1+1+2 = 5 regardless
// of arrangement. This DP attains that bound; see DESIGN.md.
func specScenario5Tree() *core.RootedTree {
	return buildRootedTree(5, [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}})
}

func TestRootedDmin_MatchesProvableLowerBound(t *testing.T) {
	rt := specScenario5Tree()
	d, arr := projective.RootedDmin(rt)
	assert.Equal(t, 5, d)
	assert.Equal(t, dsum.D(rt.Graph, arr), d)
}
