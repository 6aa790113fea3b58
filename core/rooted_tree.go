package core

import (
	"fmt"

	"github.com/arrangeio/linarr/internal/xerrors"
)

// RootedTree is a directed Graph with exactly one vertex of in-degree 0
// (the root); every other vertex has in-degree 1; edges point root→leaves
// (spec.md §3).
type RootedTree struct {
	*Graph
	root        Vertex
	parent      []Vertex // parent[v] = -1 for the root
	subtreeSize []int    // nil until ComputeSubtreeSizes
}

// NewRootedTree builds a RootedTree from a directed Graph g whose edges
// already point root→leaves. Panics with ErrMustBeDirected, ErrWrongEdgeCount,
// ErrMultipleRoots, or ErrHasCycle if g does not satisfy the rooted-tree
// invariants — these are caller-contract violations per spec.md §7, checked
// unconditionally here because construction is the one place malformed
// input is cheap to catch before every downstream algorithm assumes it away.
func NewRootedTree(g *Graph) *RootedTree {
	if !g.IsDirected() {
		panic(xerrors.Wrap(ErrMustBeDirected, "got an undirected graph", nil))
	}
	n := g.NumVertices()
	if g.NumEdges() != n-1 && n > 0 {
		panic(xerrors.Wrap(ErrWrongEdgeCount, fmt.Sprintf("n=%d edges=%d want=%d", n, g.NumEdges(), n-1), nil))
	}
	parent := make([]Vertex, n)
	for i := range parent {
		parent[i] = -1
	}
	root := Vertex(-1)
	rootsFound := 0
	for v := 0; v < n; v++ {
		in := g.InNeighbors(Vertex(v))
		switch len(in) {
		case 0:
			root = Vertex(v)
			rootsFound++
		case 1:
			parent[v] = in[0]
		default:
			panic(xerrors.Wrap(ErrMultipleRoots, fmt.Sprintf("vertex=%d has in-degree %d", v, len(in)), nil))
		}
	}
	if rootsFound != 1 && n > 0 {
		panic(xerrors.Wrap(ErrMultipleRoots, fmt.Sprintf("found %d roots, want 1", rootsFound), nil))
	}
	if n > 0 && !isAcyclicFromRoot(g, root, n) {
		panic(xerrors.Wrap(ErrHasCycle, fmt.Sprintf("root=%d n=%d", root, n), nil))
	}
	return &RootedTree{Graph: g, root: root, parent: parent}
}

func isAcyclicFromRoot(g *Graph, root Vertex, n int) bool {
	visited := make([]bool, n)
	stack := []Vertex{root}
	visited[root] = true
	count := 1
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, u := range g.OutNeighbors(v) {
			if visited[u] {
				return false
			}
			visited[u] = true
			count++
			stack = append(stack, u)
		}
	}
	return count == n
}

// Root returns the tree's root vertex.
func (t *RootedTree) Root() Vertex { return t.root }

// Parent returns v's parent and true, or (-1, false) if v is the root.
func (t *RootedTree) Parent(v Vertex) (Vertex, bool) {
	p := t.parent[v]
	return p, p != -1
}

// SubtreeSizesValid reports whether ComputeSubtreeSizes has been called
// since the tree was built (spec.md §6: are_subtree_sizes_valid()).
func (t *RootedTree) SubtreeSizesValid() bool { return t.subtreeSize != nil }

// ComputeSubtreeSizes fills n_sub(v) = |T_v| for every vertex via a
// post-order traversal.
func (t *RootedTree) ComputeSubtreeSizes() {
	n := t.NumVertices()
	size := make([]int, n)
	var post []Vertex
	visited := make([]bool, n)
	type frame struct {
		v        Vertex
		childIdx int
	}
	stack := []frame{{v: t.root}}
	visited[t.root] = true
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		children := t.OutNeighbors(top.v)
		if top.childIdx < len(children) {
			c := children[top.childIdx]
			top.childIdx++
			stack = append(stack, frame{v: c})
			visited[c] = true
		} else {
			post = append(post, top.v)
			stack = stack[:len(stack)-1]
		}
	}
	for _, v := range post {
		size[v] = 1
		for _, c := range t.OutNeighbors(v) {
			size[v] += size[c]
		}
	}
	t.subtreeSize = size
}

// SubtreeSize returns n_sub(v). Panics with ErrSubtreeSizesInvalid if
// ComputeSubtreeSizes has not run.
func (t *RootedTree) SubtreeSize(v Vertex) int {
	if t.subtreeSize == nil {
		panic(xerrors.Wrap(ErrSubtreeSizesInvalid, fmt.Sprintf("vertex=%d", v), nil))
	}
	return t.subtreeSize[v]
}
