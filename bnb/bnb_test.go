package bnb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrangeio/linarr/arrangement"
	"github.com/arrangeio/linarr/bnb"
	"github.com/arrangeio/linarr/core"
	"github.com/arrangeio/linarr/dsum"
	"github.com/arrangeio/linarr/projective"
)

func buildFreeTree(n int, edges [][2]int) *core.FreeTree {
	g := core.NewGraph(n)
	for _, e := range edges {
		g.AddEdge(core.Vertex(e[0]), core.Vertex(e[1]))
	}
	g.Normalize()
	return core.NewFreeTree(g)
}

// A 3-vertex path is a hub (1) with two leaves (0, 2): the optimum puts
// the hub at one end of the arrangement so both leaf edges stretch across
// nearly the whole line.
func TestMaxD_Path3HubAtEnd(t *testing.T) {
	ft := buildFreeTree(3, [][2]int{{0, 1}, {1, 2}})
	res := bnb.MaxD(ft)
	assert.Equal(t, 3, res.D)
	require.NotEmpty(t, res.Arrangements)
	for _, arr := range res.Arrangements {
		require.True(t, arrangement.IsBijection(arr))
		assert.Equal(t, res.D, dsum.D(ft.Graph, arr))
	}
}

// A 4-vertex star (hub 0, leaves 1,2,3): exercises the independent
// leaf-star shortcut directly once the hub is placed, since every
// unplaced vertex is a leaf of the same parent.
func TestMaxD_Star4(t *testing.T) {
	ft := buildFreeTree(4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	res := bnb.MaxD(ft)
	assert.Equal(t, 6, res.D)
	for _, arr := range res.Arrangements {
		require.True(t, arrangement.IsBijection(arr))
		assert.Equal(t, res.D, dsum.D(ft.Graph, arr))
	}
}

// The three leaves are interchangeable once the hub is fixed at position 0,
// so every permutation of leaves 1,2,3 across positions 1,2,3 is its own
// achieving arrangement: max_arrs must hold all 3! of them, not one
// representative.
func TestMaxD_Star4_LeafStarEnumeratesEveryPermutation(t *testing.T) {
	ft := buildFreeTree(4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	res := bnb.MaxD(ft)
	require.Len(t, res.Arrangements, 6)
	assert.False(t, res.Truncated)

	seen := make(map[string]bool)
	for _, arr := range res.Arrangements {
		require.True(t, arrangement.IsBijection(arr))
		assert.Equal(t, res.D, dsum.D(ft.Graph, arr))
		key := ""
		for v := core.Vertex(0); v < 4; v++ {
			key += string(rune('0' + arr.PositionOf(v)))
		}
		seen[key] = true
	}
	assert.Len(t, seen, 6)
}

// Every leaf of a 5-leaf star is symmetric under the sibling-leaf orbit
// approximation, so the search should still find the true optimum without
// enumerating all 5! leaf permutations.
func TestMaxD_Star6AllLeavesSymmetric(t *testing.T) {
	ft := buildFreeTree(6, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}})
	res := bnb.MaxD(ft)
	// hub at position 0: sum of 1..5 = 15 (symmetric at the far end too).
	assert.Equal(t, 15, res.D)
	// 5 interchangeable leaves yield 5! = 120 achieving permutations, past
	// DefaultMaxStored (64): the store fills and reports truncation rather
	// than silently capping at one representative.
	assert.Len(t, res.Arrangements, bnb.DefaultMaxStored)
	assert.True(t, res.Truncated)
}

func branchyTree() *core.FreeTree {
	return buildFreeTree(7, [][2]int{{0, 1}, {0, 2}, {0, 3}, {3, 4}, {0, 5}, {5, 6}})
}

// Removing the projectivity constraint can only help: the unconstrained
// maximum must be at least as large as the best planar-constrained one.
func TestMaxD_AtLeastProjectiveDMax(t *testing.T) {
	ft := branchyTree()
	res := bnb.MaxD(ft)
	require.NotEmpty(t, res.Arrangements)
	for _, arr := range res.Arrangements {
		require.True(t, arrangement.IsBijection(arr))
		assert.Equal(t, res.D, dsum.D(ft.Graph, arr))
	}

	dPlanar, _ := projective.FreeDMax(ft)
	assert.GreaterOrEqual(t, res.D, dPlanar)
}

func TestMaxD_SingleVertex(t *testing.T) {
	ft := buildFreeTree(1, nil)
	res := bnb.MaxD(ft)
	assert.Equal(t, 0, res.D)
}

func TestLevelPropagationOrigin_String(t *testing.T) {
	assert.Equal(t, "antenna_leaf", bnb.AntennaLeaf.String())
	assert.Equal(t, "bridge_hub_1", bnb.BridgeHub1.String())
	assert.Equal(t, "self", bnb.Self.String())
	assert.Equal(t, "none", bnb.NoneOrigin.String())
}
