// Package orbits computes a conservative approximation of a free tree's
// automorphism orbits: the equivalence classes bnb's symmetry pruning uses
// to skip arrangements that are mirror images of ones already explored.
//
// A full automorphism-orbit computation (canonical-form recursive hashing
// of rooted subtrees, as in the AHU tree-isomorphism algorithm) identifies
// any two subtrees that are isomorphic as wholes, not just leaves. This
// package implements the common, cheap special case instead: two vertices
// are placed in the same orbit only when they are leaves sharing a parent.
// That is exactly the symmetry bnb's independent-set shortcut exploits
// (swapping two sibling leaves never changes C or D), and it requires no
// subtree-hashing machinery at all.
package orbits

import "github.com/arrangeio/linarr/core"

// Orbits partitions t's vertices into equivalence classes under this
// package's sibling-leaf approximation of the automorphism group, rooted
// at root. Every vertex appears in exactly one class; vertices with no
// symmetric sibling form a singleton class of their own.
func Orbits(t *core.FreeTree, root core.Vertex) [][]core.Vertex {
	n := t.NumVertices()
	if n == 0 {
		return nil
	}

	parent := make([]core.Vertex, n)
	visited := make([]bool, n)
	for i := range parent {
		parent[i] = -1
	}
	visited[root] = true
	queue := []core.Vertex{root}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range t.Neighbors(v) {
			if !visited[u] {
				visited[u] = true
				parent[u] = v
				queue = append(queue, u)
			}
		}
	}

	leafChildrenOf := make(map[core.Vertex][]core.Vertex)
	grouped := make([]bool, n)
	for v := 0; v < n; v++ {
		vv := core.Vertex(v)
		if vv == root || t.Degree(vv) != 1 {
			continue
		}
		p := parent[v]
		leafChildrenOf[p] = append(leafChildrenOf[p], vv)
	}

	var orbits [][]core.Vertex
	for _, siblings := range leafChildrenOf {
		if len(siblings) < 2 {
			continue
		}
		group := append([]core.Vertex(nil), siblings...)
		orbits = append(orbits, group)
		for _, v := range siblings {
			grouped[v] = true
		}
	}
	for v := 0; v < n; v++ {
		if !grouped[v] {
			orbits = append(orbits, []core.Vertex{core.Vertex(v)})
		}
	}
	return orbits
}

// Representatives returns one vertex per orbit, suitable for driving a
// branch-and-bound search that tries only one representative from each
// symmetric group instead of every vertex.
func Representatives(orbitsOf [][]core.Vertex) []core.Vertex {
	reps := make([]core.Vertex, 0, len(orbitsOf))
	for _, o := range orbitsOf {
		if len(o) > 0 {
			reps = append(reps, o[0])
		}
	}
	return reps
}
