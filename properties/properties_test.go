package properties_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrangeio/linarr/core"
	"github.com/arrangeio/linarr/properties"
)

func TestUnionFind_MergesAndFinds(t *testing.T) {
	uf := properties.NewUnionFind(5)
	assert.True(t, uf.Union(0, 1))
	assert.True(t, uf.Union(1, 2))
	assert.False(t, uf.Union(0, 2))
	assert.Equal(t, uf.Find(0), uf.Find(2))
	assert.NotEqual(t, uf.Find(0), uf.Find(3))
}

func TestConnectedComponents_TwoComponents(t *testing.T) {
	g := core.NewGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(3, 4)
	g.Normalize()

	comp, k := properties.ConnectedComponents(g)
	require.Equal(t, 2, k)
	assert.Equal(t, comp[0], comp[1])
	assert.Equal(t, comp[1], comp[2])
	assert.Equal(t, comp[3], comp[4])
	assert.NotEqual(t, comp[0], comp[3])
}

func buildFreeTree(n int, edges [][2]int) *core.FreeTree {
	g := core.NewGraph(n)
	for _, e := range edges {
		g.AddEdge(core.Vertex(e[0]), core.Vertex(e[1]))
	}
	g.Normalize()
	return core.NewFreeTree(g)
}

// path5 (0-1-2-3-4): the unique centroid is vertex 2 (removing it leaves
// two components of size 2 each).
func TestCentroid_OddPathSingleVertex(t *testing.T) {
	ft := buildFreeTree(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	first, second, hasSecond := properties.Centroid(ft)
	assert.Equal(t, core.Vertex(2), first)
	assert.False(t, hasSecond)
	assert.Equal(t, core.Vertex(-1), second)
}

// path4 (0-1-2-3): two centroidal vertices, 1 and 2, adjacent.
func TestCentroid_EvenPathTwoVertices(t *testing.T) {
	ft := buildFreeTree(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	first, second, hasSecond := properties.Centroid(ft)
	assert.True(t, hasSecond)
	assert.Equal(t, core.Vertex(1), first)
	assert.Equal(t, core.Vertex(2), second)
}

func TestCentroid_SingleVertex(t *testing.T) {
	ft := buildFreeTree(1, nil)
	first, second, hasSecond := properties.Centroid(ft)
	assert.Equal(t, core.Vertex(0), first)
	assert.Equal(t, core.Vertex(-1), second)
	assert.False(t, hasSecond)
}

// star(0; 1,2,3,4): center 0 is the unique centroid (removing a leaf
// leaves one component of size 4, worse than removing the center, which
// leaves four components of size 1).
func TestCentroid_Star(t *testing.T) {
	ft := buildFreeTree(5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}})
	first, _, hasSecond := properties.Centroid(ft)
	assert.Equal(t, core.Vertex(0), first)
	assert.False(t, hasSecond)
}

// A "caterpillar": hub 0 --- (internal chain 1,2) --- hub 3, plus two
// leaves hanging off hub 3. Path 0-1-2-3 is an antenna (0 is a leaf);
// edges from 3 to the extra leaves are each their own antenna with no
// internal vertices.
func TestBranchlessPaths_MixedAntennas(t *testing.T) {
	ft := buildFreeTree(6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {3, 5}})
	paths := properties.BranchlessPaths(ft)

	require.Len(t, paths, 3)
	var longPath *properties.BranchlessPath
	shortCount := 0
	for i := range paths {
		p := &paths[i]
		assert.Equal(t, properties.Antenna, p.Kind)
		if len(p.Internal) > 0 {
			longPath = p
		} else {
			shortCount++
		}
	}
	require.NotNil(t, longPath)
	assert.Equal(t, core.Vertex(0), longPath.Hub1)
	assert.Equal(t, core.Vertex(3), longPath.Hub2)
	assert.Equal(t, []core.Vertex{1, 2}, longPath.Internal)
	assert.Equal(t, core.Vertex(1), longPath.Lowest)
	assert.Equal(t, 2, shortCount)
}

// A tree with one bridge: two stars joined by a single internal vertex.
// Hub A (center of left star, degree 3) -- internal -- Hub B (center of
// right star, degree 3) is a bridge since neither hub is a leaf.
func TestBranchlessPaths_Bridge(t *testing.T) {
	// vertices: 0,1 are leaves of left star centered at 2; 2-3 is the
	// bridge's internal vertex chain (just vertex 3 is internal, degree 2);
	// 4 is the right star's center (degree 3); 5,6 its leaves.
	ft := buildFreeTree(7, [][2]int{
		{0, 2}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {4, 6},
	})
	paths := properties.BranchlessPaths(ft)
	// one bridge plus four single-edge antennas, one per leaf
	require.Len(t, paths, 5)

	var bridges, antennas int
	for _, p := range paths {
		switch p.Kind {
		case properties.Bridge:
			bridges++
			assert.Equal(t, core.Vertex(2), p.Hub1)
			assert.Equal(t, core.Vertex(4), p.Hub2)
			assert.Equal(t, []core.Vertex{3}, p.Internal)
			assert.Equal(t, core.Vertex(3), p.Lowest)
		case properties.Antenna:
			antennas++
			assert.Empty(t, p.Internal)
			assert.Equal(t, core.Vertex(-1), p.Lowest)
		}
	}
	assert.Equal(t, 1, bridges)
	assert.Equal(t, 4, antennas)
}
