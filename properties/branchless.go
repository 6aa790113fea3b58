package properties

import (
	"github.com/arrangeio/linarr/config"
	"github.com/arrangeio/linarr/core"
)

// PathKind classifies a branchless path by its two endpoints (spec.md's
// glossary: "branchless path with / without a leaf endpoint").
type PathKind int

const (
	// Antenna is a branchless path with at least one leaf endpoint.
	Antenna PathKind = iota
	// Bridge is a branchless path with neither endpoint a leaf.
	Bridge
)

// BranchlessPath is a maximal sequence v0,...,vk where every internal
// vertex has degree exactly 2 and the endpoints ("hubs") have degree != 2
// (spec.md §3, "Branchless path"). Internal is empty for a direct hub-hub
// edge; Lowest is -1 in that case (no internal vertex to be lowest of).
type BranchlessPath struct {
	Hub1, Hub2 core.Vertex
	Internal   []core.Vertex
	Lowest     core.Vertex
	Kind       PathKind
}

type canonicalEdge struct{ a, b core.Vertex }

func canon(u, v core.Vertex) canonicalEdge {
	if u < v {
		return canonicalEdge{u, v}
	}
	return canonicalEdge{v, u}
}

// BranchlessPaths decomposes t into its maximal branchless paths. Every
// vertex of degree != 2 (a "hub": a leaf or a branch point) is a path
// endpoint; every edge belongs to exactly one path.
func BranchlessPaths(t *core.FreeTree) []BranchlessPath {
	n := t.NumVertices()
	if n <= 1 {
		return nil
	}

	isHub := make([]bool, n)
	for v := 0; v < n; v++ {
		if t.Degree(core.Vertex(v)) != 2 {
			isHub[v] = true
		}
	}

	visitedEdge := make(map[canonicalEdge]bool)
	var paths []BranchlessPath

	for h := 0; h < n; h++ {
		if !isHub[h] {
			continue
		}
		hub := core.Vertex(h)
		for _, start := range t.Neighbors(hub) {
			e := canon(hub, start)
			if visitedEdge[e] {
				continue
			}
			visitedEdge[e] = true

			prev, cur := hub, start
			var internal []core.Vertex
			for !isHub[cur] {
				internal = append(internal, cur)
				next := otherNeighbor(t, cur, prev)
				e := canon(cur, next)
				visitedEdge[e] = true
				prev, cur = cur, next
			}
			otherHub := cur

			lowest := core.Vertex(-1)
			for _, iv := range internal {
				if lowest == -1 || iv < lowest {
					lowest = iv
				}
			}

			kind := Bridge
			if t.Degree(hub) == 1 || t.Degree(otherHub) == 1 {
				kind = Antenna
			}

			h1, h2 := hub, otherHub
			if h2 < h1 {
				h1, h2 = h2, h1
			}
			paths = append(paths, BranchlessPath{
				Hub1: h1, Hub2: h2, Internal: internal, Lowest: lowest, Kind: kind,
			})
		}
	}
	return paths
}

// otherNeighbor returns v's unique neighbor that is not from, assuming
// deg(v) == 2 (guaranteed by BranchlessPaths' caller, which only walks
// through non-hub vertices).
func otherNeighbor(t *core.FreeTree, v, from core.Vertex) core.Vertex {
	for _, u := range t.Neighbors(v) {
		if u != from {
			return u
		}
	}
	config.Assert(false, "degree-2 vertex has no neighbor distinct from its predecessor")
	return -1
}
