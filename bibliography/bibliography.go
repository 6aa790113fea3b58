// Package bibliography records which algorithms (and, transitively, which
// papers) a run of this engine actually exercised.
//
// Registration is feature-flag guarded (Enabled) and write-only: entries
// accumulate in a process-wide set for the lifetime of the process, are
// never removed, and duplicates are harmless. Per spec.md §5, this is the
// only shared mutable state anywhere in the engine; everything else is
// scoped to the call frame.
package bibliography

import "sync"

// Citation identifies one paper or algorithm entry point.
type Citation string

// Known citation identifiers, one per algorithm the spec names.
const (
	CrossingsBruteForce Citation = "crossings.brute_force"
	CrossingsDP         Citation = "crossings.dynamic_programming"
	CrossingsLadder     Citation = "crossings.ladder"
	CrossingsStackBased Citation = "crossings.stack_based.pitler_nivre"
	BipartiteAEF        Citation = "bipartite.AEF"
	ProjectiveHS        Citation = "projective.hochberg_stallmann"
	UnconstrainedYS     Citation = "unconstrained.shiloach_esteban"
	UnconstrainedFC     Citation = "unconstrained.chung"
	DMaxBnB             Citation = "dmax.branch_and_bound.AEF"
)

// Enabled gates registration. Default false: entry points that call
// Register pay no cost (not even a lock acquisition) unless a caller opts
// in, matching spec.md §4.10 ("feature-flag guarded calls").
var Enabled = false

var (
	mu  sync.Mutex
	set = make(map[Citation]struct{})
)

// Register records that c was exercised by the current run. A no-op unless
// Enabled is true.
func Register(c Citation) {
	if !Enabled {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	set[c] = struct{}{}
}

// Exercised returns the set of citations registered so far, as a sorted-free
// snapshot slice. Safe to call regardless of Enabled.
func Exercised() []Citation {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Citation, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	return out
}

// Reset clears the recorded set. Intended for test isolation between runs
// within the same process.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	set = make(map[Citation]struct{})
}
