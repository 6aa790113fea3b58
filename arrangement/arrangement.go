// Package arrangement implements the linear-arrangement bijection π
// between vertex ids and positions (spec.md §4.1).
//
// Two implementations share the Arrangement interface: Identity, a
// zero-allocation value used whenever a caller is prepared to accept "no
// arrangement given" as "the arrangement that maps every vertex to its own
// id", and Explicit, a materialized pair of direct/inverse slices. This
// mirrors spec.md §9's "enum with two variants (Identity, Explicit) whose
// common access method is the only hot-path primitive".
package arrangement

import "github.com/arrangeio/linarr/core"

// Position is a slot in 0..n-1, kept distinct from core.Vertex at API
// boundaries so passing one where the other is expected is a compile
// error (spec.md §3).
type Position int

// Arrangement is a bijection between core.Vertex and Position.
type Arrangement interface {
	// Size returns n.
	Size() int
	// PositionOf returns π(v).
	PositionOf(v core.Vertex) Position
	// VertexAt returns π⁻¹(p).
	VertexAt(p Position) core.Vertex
}

// Identity is the zero-allocation arrangement π(v) = v for all v.
type Identity struct{ n int }

// NewIdentity returns the identity arrangement over n vertices.
func NewIdentity(n int) Identity { return Identity{n: n} }

// Size returns n.
func (id Identity) Size() int { return id.n }

// PositionOf returns v unchanged, bypassing array access entirely — the
// hot-path primitive spec.md §4.1 calls out explicitly.
func (id Identity) PositionOf(v core.Vertex) Position { return Position(v) }

// VertexAt returns p unchanged.
func (id Identity) VertexAt(p Position) core.Vertex { return core.Vertex(p) }

var _ Arrangement = Identity{}

// Explicit is a materialized arrangement: two parallel length-n arrays
// satisfying direct[inverse[p]] = p and inverse[direct[v]] = v.
type Explicit struct {
	direct  []Position   // direct[v] = position of v
	inverse []core.Vertex // inverse[p] = vertex at position p
}

// NewExplicit builds the identity arrangement materialized as an Explicit
// value (spec.md §4.1: new_explicit(n)).
func NewExplicit(n int) *Explicit {
	e := &Explicit{
		direct:  make([]Position, n),
		inverse: make([]core.Vertex, n),
	}
	for i := 0; i < n; i++ {
		e.direct[i] = Position(i)
		e.inverse[i] = core.Vertex(i)
	}
	return e
}

// FromPermutation builds an Explicit arrangement from a caller-provided
// direct map (direct[v] = position of v). In debug builds (config.Assert)
// callers should validate bijectivity themselves before calling this;
// FromPermutation trusts its input per spec.md §6.
func FromPermutation(direct []Position) *Explicit {
	n := len(direct)
	e := &Explicit{direct: append([]Position(nil), direct...), inverse: make([]core.Vertex, n)}
	for v, p := range direct {
		e.inverse[p] = core.Vertex(v)
	}
	return e
}

// Size returns n.
func (e *Explicit) Size() int { return len(e.direct) }

// PositionOf returns π(v).
func (e *Explicit) PositionOf(v core.Vertex) Position { return e.direct[v] }

// VertexAt returns π⁻¹(p).
func (e *Explicit) VertexAt(p Position) core.Vertex { return e.inverse[p] }

// Assign sets π(v) = p, updating both the direct and inverse maps in O(1).
// It does not validate that the vertex previously at p is relocated —
// callers build an Explicit arrangement one Assign per (v, p) pair, each
// used exactly once, matching the incremental-construction pattern used by
// every optimizer in this module (spec.md §4.1: assign(v, p)).
func (e *Explicit) Assign(v core.Vertex, p Position) {
	e.direct[v] = p
	e.inverse[p] = v
}

var _ Arrangement = (*Explicit)(nil)

// IsBijection reports whether a (for testing / debug-assert use) is a
// valid bijection: every position visited exactly once.
func IsBijection(a Arrangement) bool {
	n := a.Size()
	seen := make([]bool, n)
	for v := 0; v < n; v++ {
		p := a.PositionOf(core.Vertex(v))
		if int(p) < 0 || int(p) >= n || seen[p] {
			return false
		}
		seen[p] = true
		if a.VertexAt(p) != core.Vertex(v) {
			return false
		}
	}
	return true
}
