// Package bnb computes the branch-and-bound maximum-D arrangement of a
// free tree with no projectivity, bipartite, or other structural
// constraint (spec.md §4.9) — the hardest search in this module.
//
// Engine shape grounded on tsp/bb.go's bbEngine: a dedicated struct
// holding all search state (instead of closures), deterministic
// branching order, and an admissible pruning bound computed fresh at
// each node. Orbit-based symmetry pruning is grounded on orbits.Orbits;
// the branchless-path decomposition from properties.BranchlessPaths is
// carried on Result for diagnostics (its Kind/Hub/Lowest fields mirror
// spec.md's vocabulary) but does not drive search-time propagation — see
// the package's Open Question decision in DESIGN.md for the scope this
// leaves out (full level-value propagation) and why.
//
// LevelPropagationOrigin's ten named values are ported one-for-one from
// original_source's level_value_propagation_origin.hpp so the vocabulary
// exists even though this package's search does not compute predicted
// levels from it.
package bnb

import (
	"sort"

	"github.com/arrangeio/linarr/arrangement"
	"github.com/arrangeio/linarr/bibliography"
	"github.com/arrangeio/linarr/core"
	"github.com/arrangeio/linarr/obslog"
	"github.com/arrangeio/linarr/orbits"
	"github.com/arrangeio/linarr/properties"
)

// LevelPropagationOrigin names where a level-value prediction for a
// branchless-path vertex originated (spec.md §4.9).
type LevelPropagationOrigin int8

const (
	AntennaLeaf LevelPropagationOrigin = iota
	AntennaInternal
	AntennaHub
	BridgeHub1
	BridgeHub2
	BridgeLowestPM2
	BridgeLowest0
	BridgeInternalLeft
	BridgeInternalRight
	Self
	NoneOrigin
)

func (o LevelPropagationOrigin) String() string {
	switch o {
	case AntennaLeaf:
		return "antenna_leaf"
	case AntennaInternal:
		return "antenna_internal"
	case AntennaHub:
		return "antenna_hub"
	case BridgeHub1:
		return "bridge_hub_1"
	case BridgeHub2:
		return "bridge_hub_2"
	case BridgeLowestPM2:
		return "bridge_lowest_pm2"
	case BridgeLowest0:
		return "bridge_lowest_0"
	case BridgeInternalLeft:
		return "bridge_internal_left"
	case BridgeInternalRight:
		return "bridge_internal_right"
	case Self:
		return "self"
	default:
		return "none"
	}
}

// DefaultMaxStored caps how many achieving arrangements Result.Arrangements
// retains; beyond this, Truncated is set instead of growing without bound
// (spec.md §4.9 notes the achieving set "can be large").
const DefaultMaxStored = 64

// Result is the outcome of a MaxD search.
type Result struct {
	D             int
	Arrangements  []arrangement.Arrangement
	Truncated     bool
	BranchlessPaths []properties.BranchlessPath
}

// Option configures a MaxD search.
type Option func(*engine)

// WithLogger reports search progress (the vertex count at the start,
// new-best-D events, and the final best D with its achieving-set size)
// through logger instead of the silent obslog.Discard default.
func WithLogger(logger obslog.Logger) Option {
	return func(e *engine) { e.log = logger }
}

// MaxD computes the maximum value of D over every arrangement of ft,
// together with every achieving arrangement found (up to DefaultMaxStored;
// Result.Truncated reports whether more exist beyond that cap).
func MaxD(ft *core.FreeTree, opts ...Option) Result {
	bibliography.Register(bibliography.DMaxBnB)
	n := ft.NumVertices()
	e := newEngine(ft)
	for _, opt := range opts {
		opt(e)
	}
	e.log.Infof("bnb: searching n=%d vertices", n)
	if n > 0 {
		e.search(0)
	} else {
		e.capture(0)
	}
	e.log.Infof("bnb: best D=%d achieving=%d truncated=%v", e.bestD, len(e.results), e.truncated)

	arrs := make([]arrangement.Arrangement, len(e.results))
	for i, snap := range e.results {
		arrs[i] = arrangement.FromPermutation(snap)
	}
	return Result{
		D:               e.bestD,
		Arrangements:    arrs,
		Truncated:       e.truncated,
		BranchlessPaths: properties.BranchlessPaths(ft),
	}
}

// engine holds all search data (spec.md §4.9's "state during search").
type engine struct {
	g        *core.FreeTree
	n        int
	arr      *arrangement.Explicit
	assigned []bool
	orbitOf  []int // orbit index per vertex, -1 if in a singleton orbit

	runD      int
	bestD     int
	results   [][]arrangement.Position
	maxStored int
	truncated bool

	log obslog.Logger
}

func newEngine(ft *core.FreeTree) *engine {
	n := ft.NumVertices()
	e := &engine{
		g:         ft,
		n:         n,
		arr:       arrangement.NewExplicit(n),
		assigned:  make([]bool, n),
		orbitOf:   make([]int, n),
		bestD:     -1,
		maxStored: DefaultMaxStored,
		log:       obslog.Discard,
	}
	for i := range e.orbitOf {
		e.orbitOf[i] = -1
	}
	if n > 0 {
		root, _, _ := properties.Centroid(ft)
		for id, group := range orbits.Orbits(ft, root) {
			if len(group) < 2 {
				continue
			}
			for _, v := range group {
				e.orbitOf[v] = id
			}
		}
	}
	return e
}

// search explores position pos (0-indexed), having already placed
// positions 0..pos-1.
func (e *engine) search(pos int) {
	if hub, ok := e.remainingIsLeafStar(); ok {
		e.commitLeafStar(pos, hub)
		return
	}
	if pos == e.n {
		e.capture(e.runD)
		return
	}

	candidates := e.candidatesAt(pos)
	seenOrbit := make(map[int]bool, len(candidates))
	for _, v := range candidates {
		oid := e.orbitOf[v]
		if oid >= 0 {
			if seenOrbit[oid] {
				continue
			}
			seenOrbit[oid] = true
		}

		delta := e.place(v, pos)
		ub := e.upperBound(pos + 1)
		if e.bestD == -1 || e.runD+ub >= e.bestD {
			e.search(pos + 1)
		}
		e.unplace(v, delta)
	}
}

// candidatesAt returns the border nodes (unplaced vertices adjacent to an
// already-placed vertex), or, at pos == 0, every vertex.
func (e *engine) candidatesAt(pos int) []core.Vertex {
	if pos == 0 {
		out := make([]core.Vertex, e.n)
		for i := range out {
			out[i] = core.Vertex(i)
		}
		return out
	}
	var out []core.Vertex
	for v := 0; v < e.n; v++ {
		vv := core.Vertex(v)
		if e.assigned[vv] {
			continue
		}
		for _, u := range e.g.Neighbors(vv) {
			if e.assigned[u] {
				out = append(out, vv)
				break
			}
		}
	}
	return out
}

// place assigns v to position pos, updating runD by the contribution of
// every already-placed edge incident to v, and returns that delta so
// unplace can reverse it.
func (e *engine) place(v core.Vertex, pos int) int {
	delta := 0
	for _, u := range e.g.Neighbors(v) {
		if e.assigned[u] {
			d := pos - int(e.arr.PositionOf(u))
			if d < 0 {
				d = -d
			}
			delta += d
		}
	}
	e.arr.Assign(v, arrangement.Position(pos))
	e.assigned[v] = true
	e.runD += delta
	return delta
}

func (e *engine) unplace(v core.Vertex, delta int) {
	e.assigned[v] = false
	e.runD -= delta
}

// upperBound returns an admissible bound on the additional D any
// completion from nextPos onward can contribute, given every edge with at
// least one endpoint still unplaced: a placed-unplaced edge can reach at
// most the farther of the two remaining boundary positions; an
// unplaced-unplaced edge can reach at most the remaining range's width.
// Edges with both endpoints placed are already counted in runD and
// contribute nothing further.
func (e *engine) upperBound(nextPos int) int {
	maxPos := e.n - 1
	if nextPos > maxPos {
		return 0
	}
	span := maxPos - nextPos
	total := 0
	for _, edge := range e.g.Edges() {
		fromAssigned := e.assigned[edge.From]
		toAssigned := e.assigned[edge.To]
		switch {
		case fromAssigned && toAssigned:
			continue
		case fromAssigned || toAssigned:
			placed := edge.From
			if toAssigned {
				placed = edge.To
			}
			pp := int(e.arr.PositionOf(placed))
			toNear := pp - nextPos
			if toNear < 0 {
				toNear = -toNear
			}
			toFar := maxPos - pp
			if toFar < 0 {
				toFar = -toFar
			}
			if toFar > toNear {
				total += toFar
			} else {
				total += toNear
			}
		default:
			total += span
		}
	}
	return total
}

// remainingIsLeafStar reports whether every currently-unplaced vertex is
// a leaf sharing the same already-placed neighbor (spec.md §4.9's
// "independent set that is all leaves of a single parent" shortcut): in
// that case every remaining slot contributes |slot - hubPos| regardless
// of which leaf lands there, so no branching is needed.
func (e *engine) remainingIsLeafStar() (core.Vertex, bool) {
	var hub core.Vertex = -1
	any := false
	for v := 0; v < e.n; v++ {
		vv := core.Vertex(v)
		if e.assigned[vv] {
			continue
		}
		any = true
		if e.g.Degree(vv) != 1 {
			return -1, false
		}
		nbrs := e.g.Neighbors(vv)
		if len(nbrs) != 1 || !e.assigned[nbrs[0]] {
			return -1, false
		}
		if hub == -1 {
			hub = nbrs[0]
		} else if hub != nbrs[0] {
			return -1, false
		}
	}
	if !any {
		return -1, false
	}
	return hub, true
}

// commitLeafStar finalizes every remaining (leaf-star) vertex into
// positions pos..n-1: every such assignment yields the same D (each leaf
// contributes |position - hubPos| regardless of which leaf lands there), so
// the D comparison against bestD happens once, but spec.md §4.9's max_arrs
// holds every arrangement tied at the best D, not one representative — the
// interchangeable leaves form len(remaining)! distinct achieving
// arrangements, so every one of them (up to the maxStored cap) is enumerated
// into appendResult rather than captured once.
func (e *engine) commitLeafStar(pos int, hub core.Vertex) {
	hubPos := int(e.arr.PositionOf(hub))
	var remaining []core.Vertex
	for v := 0; v < e.n; v++ {
		if !e.assigned[core.Vertex(v)] {
			remaining = append(remaining, core.Vertex(v))
		}
	}
	sort.Slice(remaining, func(i, j int) bool { return remaining[i] < remaining[j] })

	extra := 0
	for i := range remaining {
		p := pos + i
		d := p - hubPos
		if d < 0 {
			d = -d
		}
		extra += d
	}

	d := e.runD + extra
	switch {
	case e.bestD == -1 || d > e.bestD:
		e.log.Debugf("bnb: new best D=%d (was %d)", d, e.bestD)
		e.bestD = d
		e.results = e.results[:0]
		e.truncated = false
	case d < e.bestD:
		return
	}

	for _, v := range remaining {
		e.assigned[v] = true
	}
	e.permuteLeafStar(pos, remaining)
	for _, v := range remaining {
		e.assigned[v] = false
	}
}

// permuteLeafStar enumerates every distinct assignment of leaves to
// positions pos..pos+len(leaves)-1, appending each as its own achieving
// arrangement, and stops as soon as appendResult reports the store full.
func (e *engine) permuteLeafStar(pos int, leaves []core.Vertex) {
	perm := append([]core.Vertex(nil), leaves...)
	n := len(perm)
	var recurse func(k int) bool
	recurse = func(k int) bool {
		if k == n {
			for i, v := range perm {
				e.arr.Assign(v, arrangement.Position(pos+i))
			}
			return e.appendResult()
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			ok := recurse(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
			if !ok {
				return false
			}
		}
		return true
	}
	recurse(0)
}

// capture applies spec.md §4.9's max_arrs update rule: a strictly larger
// D discards every stored arrangement and starts over; an equal D
// appends; a smaller D is discarded.
func (e *engine) capture(d int) {
	switch {
	case e.bestD == -1 || d > e.bestD:
		e.log.Debugf("bnb: new best D=%d (was %d)", d, e.bestD)
		e.bestD = d
		e.results = e.results[:0]
		e.truncated = false
		e.appendResult()
	case d == e.bestD:
		e.appendResult()
	}
}

// appendResult stores a snapshot of the current arrangement and reports
// whether it was stored; it returns false once maxStored is reached so a
// caller enumerating many tied arrangements (commitLeafStar) knows to stop.
func (e *engine) appendResult() bool {
	if len(e.results) >= e.maxStored {
		e.truncated = true
		return false
	}
	snap := make([]arrangement.Position, e.n)
	for v := 0; v < e.n; v++ {
		snap[v] = e.arr.PositionOf(core.Vertex(v))
	}
	e.results = append(e.results, snap)
	return true
}
