// Package properties computes structural summaries free trees need before
// the optimizers in projective, unconstrained, and bnb can run: connected
// components, the centroid, and the branchless-path decomposition
// (spec.md §4.9's "path, antenna, bridge" constraint structure).
//
// ConnectedComponents adapts the disjoint-set (union-find) structure from
// prim_kruskal/kruskal.go — same path-compression-plus-union-by-rank shape,
// generalized from the teacher's string-keyed map implementation to a
// dense int-indexed one matching this module's core.Vertex model.
package properties

import "github.com/arrangeio/linarr/core"

// UnionFind is a disjoint-set over 0..n-1 with path compression and union
// by rank, adapted from prim_kruskal/kruskal.go's string-keyed version.
type UnionFind struct {
	parent []int
	rank   []int
}

// NewUnionFind returns a UnionFind with each of 0..n-1 in its own set.
func NewUnionFind(n int) *UnionFind {
	uf := &UnionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

// Find returns x's set representative, compressing the path to it.
func (uf *UnionFind) Find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// Union merges x's and y's sets, attaching the smaller-rank root under the
// larger. Returns false if x and y were already in the same set.
func (uf *UnionFind) Union(x, y int) bool {
	rootX, rootY := uf.Find(x), uf.Find(y)
	if rootX == rootY {
		return false
	}
	switch {
	case uf.rank[rootX] < uf.rank[rootY]:
		uf.parent[rootX] = rootY
	case uf.rank[rootX] > uf.rank[rootY]:
		uf.parent[rootY] = rootX
	default:
		uf.parent[rootY] = rootX
		uf.rank[rootX]++
	}
	return true
}

// ConnectedComponents returns comp, where comp[v] is v's component id in
// 0..k-1, and k, the number of components.
func ConnectedComponents(g *core.Graph) ([]int, int) {
	n := g.NumVertices()
	uf := NewUnionFind(n)
	for _, e := range g.Edges() {
		uf.Union(int(e.From), int(e.To))
	}
	labels := make(map[int]int)
	comp := make([]int, n)
	next := 0
	for v := 0; v < n; v++ {
		root := uf.Find(v)
		id, ok := labels[root]
		if !ok {
			id = next
			labels[root] = id
			next++
		}
		comp[v] = id
	}
	return comp, next
}

// Centroid returns the centroid of a free tree: the vertex (or, for even
// splits, the pair of adjacent vertices) minimizing the largest component
// left after its removal (spec.md's glossary: "vertex whose removal
// minimizes the size of the largest remaining component"). hasSecond is
// false when the centroid is a single vertex; second is -1 in that case.
func Centroid(t *core.FreeTree) (first, second core.Vertex, hasSecond bool) {
	n := t.NumVertices()
	if n == 0 {
		return -1, -1, false
	}
	if n == 1 {
		return 0, -1, false
	}

	parent := make([]core.Vertex, n)
	visited := make([]bool, n)
	size := make([]int, n)
	order := make([]core.Vertex, 0, n)

	parent[0] = -1
	visited[0] = true
	stack := []core.Vertex{0}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, v)
		for _, u := range t.Neighbors(v) {
			if !visited[u] {
				visited[u] = true
				parent[u] = v
				stack = append(stack, u)
			}
		}
	}
	for v := range size {
		size[v] = 1
	}
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		if parent[v] != -1 {
			size[parent[v]] += size[v]
		}
	}

	best := n + 1
	var winners []core.Vertex
	for v := core.Vertex(0); int(v) < n; v++ {
		maxComponent := n - size[v]
		for _, u := range t.Neighbors(v) {
			if u == parent[v] {
				continue
			}
			if size[u] > maxComponent {
				maxComponent = size[u]
			}
		}
		switch {
		case maxComponent < best:
			best = maxComponent
			winners = winners[:0]
			winners = append(winners, v)
		case maxComponent == best:
			winners = append(winners, v)
		}
	}

	if len(winners) == 1 {
		return winners[0], -1, false
	}
	return winners[0], winners[1], true
}
