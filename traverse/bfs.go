// Package traverse implements the hookable BFS and DFS traversals spec.md
// §4.2 describes: a single BFS object parameterized by hooks (on_current,
// on_neighbor, should_stop), with a reusable visited bit array and support
// for multi-source, resumable traversal via start_at.
//
// Grounded on the teacher's bfs.walker / dfs.dfsWalker queue-and-hooks
// shape (bfs/bfs.go, dfs/dfs.go), generalized from core.Graph's string ids
// to int vertex ids and stripped of context.Context cancellation — spec.md
// §5 is explicit that no operation in this engine suspends or cancels.
package traverse

import "github.com/arrangeio/linarr/core"

// Direction reports which way an edge was scanned relative to its natural
// orientation, passed to OnNeighbor (spec.md §4.2).
type Direction int

const (
	// Forward: the edge was scanned root→leaf / out-neighbor direction.
	Forward Direction = iota
	// Reverse: the edge was scanned against its natural direction (only
	// possible when UseReverseEdges is set on a directed graph).
	Reverse
)

// Hooks bundles the three optional BFS callbacks (spec.md §4.2). All are
// optional; a nil hook is simply skipped. Call order within a single
// vertex is fixed: OnCurrent, then ShouldStop, then OnNeighbor for each
// scanned edge (spec.md §9).
type Hooks struct {
	// OnCurrent is called when v is popped from the queue.
	OnCurrent func(v core.Vertex)
	// OnNeighbor is called when edge (u, v) is scanned, dir reporting scan
	// direction. ProcessVisitedNeighbors controls whether this fires for
	// already-visited neighbors too.
	OnNeighbor func(u, v core.Vertex, dir Direction)
	// ShouldStop is checked after OnCurrent; returning true ends the
	// traversal early (but does not clear visited state).
	ShouldStop func(v core.Vertex) bool
}

// BFS is a reusable breadth-first traversal object over a core.GraphView.
// The visited bit array is retained across calls to Reset/StartAt, so a
// single BFS value can drive multi-source or resumable traversals without
// reallocating (spec.md §4.2).
type BFS struct {
	g                      core.GraphView
	hooks                  Hooks
	visited                []bool
	useReverseEdges        bool
	processVisitedNeighbor bool
	queue                  []core.Vertex
	stopped                bool
}

// NewBFS constructs a BFS over g with an empty visited set.
func NewBFS(g core.GraphView) *BFS {
	return &BFS{g: g, visited: make([]bool, g.NumVertices())}
}

// SetHooks installs the callback bundle used by subsequent StartAt calls.
func (b *BFS) SetHooks(h Hooks) { b.hooks = h }

// SetUseReverseEdges enables following in-neighbors in addition to
// out-neighbors on directed graphs (spec.md §4.2 use_reverse_edges).
func (b *BFS) SetUseReverseEdges(v bool) { b.useReverseEdges = v }

// SetProcessVisitedNeighbors enables firing OnNeighbor even for neighbors
// already visited — used by cycle/symmetric-path detection (spec.md §4.2).
func (b *BFS) SetProcessVisitedNeighbors(v bool) { b.processVisitedNeighbor = v }

// Reset clears visited state without reallocating the underlying array.
func (b *BFS) Reset() {
	for i := range b.visited {
		b.visited[i] = false
	}
	b.queue = b.queue[:0]
	b.stopped = false
}

// Visited reports whether v has been visited in the current (possibly
// multi-source) traversal.
func (b *BFS) Visited(v core.Vertex) bool { return b.visited[v] }

// SetVisited marks v visited without enqueueing it, used to seed a
// traversal that should not revisit v (e.g. a parent boundary).
func (b *BFS) SetVisited(v core.Vertex) { b.visited[v] = true }

// StartAt begins (or resumes) a traversal from v without clearing previous
// visited state, enabling multi-source traversals (spec.md §4.2 start_at).
// If v is already visited, this is a no-op.
func (b *BFS) StartAt(v core.Vertex) {
	if b.stopped || b.visited[v] {
		return
	}
	b.visited[v] = true
	b.queue = append(b.queue, v)
	b.run()
}

func (b *BFS) run() {
	for len(b.queue) > 0 && !b.stopped {
		v := b.queue[0]
		b.queue = b.queue[1:]

		if b.hooks.OnCurrent != nil {
			b.hooks.OnCurrent(v)
		}
		if b.hooks.ShouldStop != nil && b.hooks.ShouldStop(v) {
			b.stopped = true
			return
		}

		b.scan(v, b.g.Neighbors(v), Forward)

		if b.useReverseEdges {
			dg, ok := b.g.(core.DirectedGraphView)
			if ok {
				b.scan(v, dg.InNeighbors(v), Reverse)
			}
		}
	}
}

func (b *BFS) scan(v core.Vertex, neighbors []core.Vertex, dir Direction) {
	for _, u := range neighbors {
		alreadyVisited := b.visited[u]
		if alreadyVisited && !b.processVisitedNeighbor {
			continue
		}
		if b.hooks.OnNeighbor != nil {
			b.hooks.OnNeighbor(v, u, dir)
		}
		if !alreadyVisited {
			b.visited[u] = true
			b.queue = append(b.queue, u)
		}
	}
}
