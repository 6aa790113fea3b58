package dsum_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arrangeio/linarr/arrangement"
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

func TestD_PathIdentity(t *testing.T) {
	g := buildGraph(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	got := dsum.D(g, arrangement.NewIdentity(4))
	assert.Equal(t, 3, got)
}

func TestD_ReversedArrangementSameValue(t *testing.T) {
	g := buildGraph(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	perm := arrangement.FromPermutation([]arrangement.Position{3, 2, 1, 0})
	assert.Equal(t, 3, dsum.D(g, perm))
}

// Each pair (n, edges, wantExpected, wantVariance-as-num/den) here was
// cross-checked against a brute-force enumeration over all n! arrangements.
func TestExpectedAndVarianceDUniform(t *testing.T) {
	cases := []struct {
		name         string
		n            int
		edges        [][2]int
		wantExpected *big.Rat
		wantVariance *big.Rat
	}{
		{"path4", 4, [][2]int{{0, 1}, {1, 2}, {2, 3}}, big.NewRat(5, 1), big.NewRat(1, 1)},
		{"star4", 4, [][2]int{{0, 1}, {0, 2}, {0, 3}}, big.NewRat(5, 1), big.NewRat(1, 1)},
		{"mixedTree5", 5, [][2]int{{0, 1}, {1, 2}, {1, 3}, {3, 4}}, big.NewRat(8, 1), big.NewRat(8, 3)},
		{"path6", 6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}}, big.NewRat(35, 3), big.NewRat(238, 45)},
		{"k4", 4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, big.NewRat(10, 1), big.NewRat(0, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := buildGraph(tc.n, tc.edges)
			assert.Equal(t, tc.wantExpected.RatString(), dsum.ExpectedDUniform(g).RatString())
			assert.Equal(t, tc.wantVariance.RatString(), dsum.VarianceDUniform(g).RatString())
		})
	}
}

func TestVarianceDUniform_NoEdgesIsZero(t *testing.T) {
	g := core.NewGraph(5)
	g.Normalize()
	assert.Equal(t, "0", dsum.VarianceDUniform(g).RatString())
}

func TestExpectedDProjective_PathHasFixedShape(t *testing.T) {
	g := core.NewGraph(5, core.WithDirected())
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.Normalize()
	rt := core.NewRootedTree(g)
	rt.ComputeSubtreeSizes()

	got := dsum.ExpectedDProjective(rt)
	assert.True(t, got.Sign() > 0)
}
