package core

// GraphView is the read-only surface every algorithm in this module
// consumes (spec.md §6). Mutation always happens outside the core.
type GraphView interface {
	NumVertices() int
	Degree(v Vertex) int
	Neighbors(v Vertex) []Vertex
	Edges() []Edge
	IsNormalized() bool
	IsDirected() bool
}

// DirectedGraphView adds the directed-specific neighbor views.
type DirectedGraphView interface {
	GraphView
	OutDegree(v Vertex) int
	InDegree(v Vertex) int
	OutNeighbors(v Vertex) []Vertex
	InNeighbors(v Vertex) []Vertex
}

// RootedTreeView is the read-only surface for rooted trees: root,
// parent(v), and (when valid) subtree sizes.
type RootedTreeView interface {
	DirectedGraphView
	Root() Vertex
	Parent(v Vertex) (Vertex, bool)
	SubtreeSizesValid() bool
	SubtreeSize(v Vertex) int
}

// FreeTreeView is the read-only surface for free (unrooted, undirected,
// connected, acyclic) trees.
type FreeTreeView interface {
	GraphView
}

var (
	_ GraphView         = (*Graph)(nil)
	_ DirectedGraphView = (*Graph)(nil)
	_ RootedTreeView    = (*RootedTree)(nil)
	_ FreeTreeView      = (*FreeTree)(nil)
)
