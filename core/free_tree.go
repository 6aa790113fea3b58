package core

import (
	"fmt"

	"github.com/arrangeio/linarr/internal/xerrors"
)

// FreeTree is an undirected, connected, acyclic Graph (m = n-1).
type FreeTree struct {
	*Graph
}

// NewFreeTree wraps an undirected Graph g as a FreeTree. Panics with
// ErrMustBeUndirected, ErrWrongEdgeCount, or ErrNotConnected if g is not a
// tree — a caller-contract violation per spec.md §7.
func NewFreeTree(g *Graph) *FreeTree {
	if g.IsDirected() {
		panic(xerrors.Wrap(ErrMustBeUndirected, "got a directed graph", nil))
	}
	n := g.NumVertices()
	if n == 0 {
		return &FreeTree{Graph: g}
	}
	if g.NumEdges() != n-1 {
		panic(xerrors.Wrap(ErrWrongEdgeCount, fmt.Sprintf("n=%d edges=%d want=%d", n, g.NumEdges(), n-1), nil))
	}
	visited := make([]bool, n)
	stack := []Vertex{0}
	visited[0] = true
	count := 1
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, u := range g.Neighbors(v) {
			if !visited[u] {
				visited[u] = true
				count++
				stack = append(stack, u)
			}
		}
	}
	if count != n {
		panic(xerrors.Wrap(ErrNotConnected, fmt.Sprintf("reached %d of %d vertices", count, n), nil))
	}
	return &FreeTree{Graph: g}
}
