package traverse

import "github.com/arrangeio/linarr/core"

// VertexState is a DFS visitation marker, grounded on the teacher's
// dfs.White/Gray/Black convention (dfs/types.go), reused here unchanged:
// White = unvisited, Gray = on the recursion stack, Black = fully explored.
type VertexState int

const (
	White VertexState = iota
	Gray
	Black
)

// DFSHooks bundles the optional DFS callbacks. OnVisit is pre-order
// (called on discovery), OnExit is post-order (called after all
// descendants are explored).
type DFSHooks struct {
	OnVisit func(v core.Vertex)
	OnExit  func(v core.Vertex)
}

// DFS is a depth-first traversal over a core.GraphView. No other package in
// this module calls it; properties and orbits walk trees with their own loops.
type DFS struct {
	g     core.GraphView
	state []VertexState
	hooks DFSHooks
}

// NewDFS constructs a DFS over g with every vertex White.
func NewDFS(g core.GraphView) *DFS {
	return &DFS{g: g, state: make([]VertexState, g.NumVertices())}
}

// SetHooks installs the pre-/post-order callbacks.
func (d *DFS) SetHooks(h DFSHooks) { d.hooks = h }

// State returns v's current VertexState.
func (d *DFS) State(v core.Vertex) VertexState { return d.state[v] }

// Reset marks every vertex White again without reallocating.
func (d *DFS) Reset() {
	for i := range d.state {
		d.state[i] = White
	}
}

// Visit runs DFS from v, skipping it if already non-White. Recursion is
// implemented with an explicit stack to avoid Go-stack overflow on deep
// paths (a single dependency chain can be n-1 long).
func (d *DFS) Visit(v core.Vertex) {
	if d.state[v] != White {
		return
	}
	type frame struct {
		v   core.Vertex
		idx int
	}
	stack := []frame{{v: v}}
	d.state[v] = Gray
	if d.hooks.OnVisit != nil {
		d.hooks.OnVisit(v)
	}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		neighbors := d.g.Neighbors(top.v)
		advanced := false
		for top.idx < len(neighbors) {
			u := neighbors[top.idx]
			top.idx++
			if d.state[u] == White {
				d.state[u] = Gray
				if d.hooks.OnVisit != nil {
					d.hooks.OnVisit(u)
				}
				stack = append(stack, frame{v: u})
				advanced = true
				break
			}
		}
		if advanced {
			continue
		}
		d.state[top.v] = Black
		if d.hooks.OnExit != nil {
			d.hooks.OnExit(top.v)
		}
		stack = stack[:len(stack)-1]
	}
}

// VisitAll runs DFS from every White vertex, covering disconnected
// components (a forest traversal).
func (d *DFS) VisitAll() {
	for v := 0; v < len(d.state); v++ {
		d.Visit(core.Vertex(v))
	}
}
