// Package core defines the Graph, RootedTree, and FreeTree containers the
// rest of this module's algorithms read from.
//
// Vertex ids are dense integers 0..n-1 (spec.md §3). Adjacency is stored as
// one sorted, deduplicated []Vertex slice per vertex rather than the
// map-of-maps the teacher library uses for its string-keyed graphs: every
// downstream kernel here (sort kernels, crossing-counter sweeps, BnB
// bitmaps) needs O(1) indexed access and ascending iteration order, which a
// dense adjacency list gives for free.
//
// Mutation happens outside the algorithms this module specifies (spec.md
// §6: "the core only reads"); Graph itself still exposes AddEdge/Normalize
// because something has to build the graphs the tests and callers pass in,
// but no algorithm package mutates a Graph it was handed.
package core

import (
	"fmt"
	"sort"

	"github.com/arrangeio/linarr/internal/xerrors"
)

// Vertex is an opaque vertex id in 0..n-1.
type Vertex int

// Edge is an edge (From, To). In an undirected Graph, edges are iterated in
// canonical form From < To.
type Edge struct {
	From Vertex
	To   Vertex
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected marks the graph directed. Default: undirected.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// Graph is a simple (no self-loops, no multi-edges) graph over vertex ids
// 0..n-1, directed or undirected.
//
// Invariant (spec.md §3): after every mutation, adjacency lists are either
// re-sorted immediately or the graph is marked not normalized until the
// next Normalize call. Algorithms that require normalized input document
// it; with non-normalized input results remain value-deterministic but the
// specific arrangement returned among ties may vary (spec.md §9, Open
// Question 2).
type Graph struct {
	n          int
	directed   bool
	adjOut     [][]Vertex // for undirected graphs, the full neighbor list
	adjIn      [][]Vertex // only populated when directed
	edgeCount  int
	normalized bool
}

// NewGraph constructs an empty Graph over n vertices (0..n-1).
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		panic(xerrors.Wrap(ErrNegativeCount, fmt.Sprintf("n=%d", n), nil))
	}
	g := &Graph{n: n, normalized: true}
	for _, opt := range opts {
		opt(g)
	}
	g.adjOut = make([][]Vertex, n)
	if g.directed {
		g.adjIn = make([][]Vertex, n)
	}
	return g
}

// NumVertices returns n.
func (g *Graph) NumVertices() int { return g.n }

// IsDirected reports whether the graph is directed.
func (g *Graph) IsDirected() bool { return g.directed }

// IsNormalized reports whether adjacency lists are currently sorted and
// deduplicated.
func (g *Graph) IsNormalized() bool { return g.normalized }

func (g *Graph) checkVertex(v Vertex) {
	if v < 0 || int(v) >= g.n {
		panic(xerrors.Wrap(ErrVertexOutOfRange, fmt.Sprintf("vertex=%d n=%d", v, g.n), nil))
	}
}

// AddEdge inserts the edge (u, v). Rejects self-loops and exact duplicates
// (ErrSelfLoop, ErrDuplicateEdge) as panics — these are programming-error
// preconditions per spec.md §7, not a runtime concern of the core.
// Marks the graph not normalized; call Normalize before handing the graph
// to an algorithm that requires it.
func (g *Graph) AddEdge(u, v Vertex) {
	g.checkVertex(u)
	g.checkVertex(v)
	if u == v {
		panic(xerrors.Wrap(ErrSelfLoop, fmt.Sprintf("vertex=%d", u), nil))
	}
	for _, w := range g.adjOut[u] {
		if w == v {
			panic(xerrors.Wrap(ErrDuplicateEdge, fmt.Sprintf("edge=(%d,%d)", u, v), nil))
		}
	}
	g.adjOut[u] = append(g.adjOut[u], v)
	if g.directed {
		g.adjIn[v] = append(g.adjIn[v], u)
	} else {
		g.adjOut[v] = append(g.adjOut[v], u)
	}
	g.edgeCount++
	g.normalized = false
}

// Normalize sorts and deduplicates every adjacency list. Re-normalizing an
// already-normalized graph is a no-op (spec.md §8 round-trip property).
func (g *Graph) Normalize() {
	if g.normalized {
		return
	}
	for v := 0; v < g.n; v++ {
		g.adjOut[v] = sortDedup(g.adjOut[v])
		if g.directed {
			g.adjIn[v] = sortDedup(g.adjIn[v])
		}
	}
	g.normalized = true
}

func sortDedup(vs []Vertex) []Vertex {
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	out := vs[:0]
	var last Vertex = -1
	first := true
	for _, v := range vs {
		if first || v != last {
			out = append(out, v)
			last = v
			first = false
		}
	}
	return out
}

// Degree returns deg(v): out-degree plus in-degree for directed graphs,
// full neighbor count for undirected graphs.
func (g *Graph) Degree(v Vertex) int {
	g.checkVertex(v)
	if !g.directed {
		return len(g.adjOut[v])
	}
	return len(g.adjOut[v]) + len(g.adjIn[v])
}

// OutDegree returns the number of out-edges of v. Equals Degree for
// undirected graphs.
func (g *Graph) OutDegree(v Vertex) int {
	g.checkVertex(v)
	return len(g.adjOut[v])
}

// InDegree returns the number of in-edges of v. Equals Degree for
// undirected graphs.
func (g *Graph) InDegree(v Vertex) int {
	g.checkVertex(v)
	if !g.directed {
		return len(g.adjOut[v])
	}
	return len(g.adjIn[v])
}

// Neighbors returns v's neighbors in ascending order: the full adjacency
// for undirected graphs, out-neighbors only for directed graphs (the
// natural forward-traversal direction; see InNeighbors for the reverse).
func (g *Graph) Neighbors(v Vertex) []Vertex {
	g.checkVertex(v)
	return g.adjOut[v]
}

// OutNeighbors returns v's out-neighbors in ascending order.
func (g *Graph) OutNeighbors(v Vertex) []Vertex {
	g.checkVertex(v)
	return g.adjOut[v]
}

// InNeighbors returns v's in-neighbors in ascending order. For undirected
// graphs this equals OutNeighbors.
func (g *Graph) InNeighbors(v Vertex) []Vertex {
	g.checkVertex(v)
	if !g.directed {
		return g.adjOut[v]
	}
	return g.adjIn[v]
}

// NumEdges returns the number of edges added.
func (g *Graph) NumEdges() int { return g.edgeCount }

// Edges iterates all edges in canonical order: undirected edges as (u, v)
// with u < v, directed edges as (from, to), both ordered by From then To.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for u := 0; u < g.n; u++ {
		for _, v := range g.adjOut[u] {
			if g.directed || v > Vertex(u) {
				out = append(out, Edge{From: Vertex(u), To: v})
			}
		}
	}
	return out
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	c := &Graph{n: g.n, directed: g.directed, edgeCount: g.edgeCount, normalized: g.normalized}
	c.adjOut = make([][]Vertex, g.n)
	for i, nbrs := range g.adjOut {
		c.adjOut[i] = append([]Vertex(nil), nbrs...)
	}
	if g.directed {
		c.adjIn = make([][]Vertex, g.n)
		for i, nbrs := range g.adjIn {
			c.adjIn[i] = append([]Vertex(nil), nbrs...)
		}
	}
	return c
}

// EmptyLike returns a new Graph with the same vertex count and
// directedness as g, but no edges.
func (g *Graph) EmptyLike() *Graph {
	if g.directed {
		return NewGraph(g.n, WithDirected())
	}
	return NewGraph(g.n)
}
