// Package projective computes the exact projective-constrained D
// arrangement of a rooted tree, and the exact planar-constrained D
// arrangement of a free tree via centroid rooting (spec.md §4.7).
//
// There is no teacher or original_source file implementing the
// Hochberg–Stallmann embedding directly: original_source's
// Projective_HS.hpp delegates the actual construction to an embed()
// helper whose source is not present in the pack (only its call site and
// bibliography citation are). This package instead implements the
// displacement-propagation DP spec.md §4.7 describes in prose directly:
// projectivity forces every rooted subtree onto a contiguous block of
// positions (a definitional property of a non-crossing arrangement, not
// an optimality assumption), so the whole search reduces to, for every
// vertex v, choosing which side of v each child's block sits on, the
// order of blocks within each side, and where each child's own root sits
// inside its own block (its displacement, or "offset"). A rearrangement-
// inequality argument settles the within-side order once a side is fixed
// (smallest block nearest v for Dmin, largest block nearest v for DMax);
// the side assignment and every child's own offset are solved together by
// a knapsack-style merge DP over child subtree widths that evaluates every
// reachable split exactly instead of picking one fixed split rule. See
// DESIGN.md's Open Question decision for this package for the
// derivation behind the DP recurrence below.
package projective

import (
	"sort"

	"github.com/arrangeio/linarr/arrangement"
	"github.com/arrangeio/linarr/bibliography"
	"github.com/arrangeio/linarr/core"
	"github.com/arrangeio/linarr/dsum"
	"github.com/arrangeio/linarr/properties"
)

// RootedDmin returns the exact projective minimum-D arrangement of t.
func RootedDmin(t *core.RootedTree) (int, arrangement.Arrangement) {
	bibliography.Register(bibliography.ProjectiveHS)
	return solveRooted(t, objDmin)
}

// RootedDMax returns the exact projective maximum-D arrangement of t.
func RootedDMax(t *core.RootedTree) (int, arrangement.Arrangement) {
	bibliography.Register(bibliography.ProjectiveHS)
	return solveRooted(t, objDMax)
}

func solveRooted(t *core.RootedTree, obj objective) (int, arrangement.Arrangement) {
	if !t.SubtreeSizesValid() {
		t.ComputeSubtreeSizes()
	}
	memo := make(map[core.Vertex]*nodeSolve, t.NumVertices())
	root := solveNode(t, t.Root(), obj, memo)
	order := reconstructNode(memo, t.Root(), root.rootOff)
	return finish(t.Graph, order)
}

func finish(g *core.Graph, order []core.Vertex) (int, arrangement.Arrangement) {
	arr := arrangement.NewExplicit(len(order))
	for p, v := range order {
		arr.Assign(v, arrangement.Position(p))
	}
	return dsum.D(g, arr), arr
}

type objective int

const (
	objDmin objective = iota
	objDMax
)

// better reports whether a should replace b as the running extremum for
// obj: smaller wins for objDmin, larger wins for objDMax. Both arguments
// must already be real (non-sentinel) values.
func better(a, b int, obj objective) bool {
	if obj == objDmin {
		return a < b
	}
	return a > b
}

// nodeSolve is vertex v's contribution to the whole-tree DP, reduced to
// the three queries any parent ever needs to make about a child block.
type nodeSolve struct {
	width int

	netLeft  int // best (f(k) - k) over reachable offsets k: v's cost if placed left of its parent
	offLeft  int // the offset k achieving netLeft
	netRight int // best (f(k) + k): v's cost if placed right of its parent
	offRight int

	rootBest int // best f(k) with no parent context; only meaningful at the whole tree's root
	rootOff  int

	children []core.Vertex // v's children by subtree size (ascending for Dmin, descending for DMax), then id
	dp       [][]int       // dp[t][k]: best internal D using the first t sorted children with k of
	// their combined width committed to v's left side; -1 marks an unreachable k.
}

// solveNode computes v's nodeSolve (and every descendant's, stashed into
// memo) via a post-order knapsack merge over v's children.
func solveNode(t *core.RootedTree, v core.Vertex, obj objective, memo map[core.Vertex]*nodeSolve) *nodeSolve {
	children := append([]core.Vertex(nil), t.OutNeighbors(v)...)
	// Each merged child becomes the farthest block on its side, so the merge
	// order is the near-to-far order: smallest first for Dmin, largest first
	// for DMax.
	sort.Slice(children, func(i, j int) bool {
		wi, wj := t.SubtreeSize(children[i]), t.SubtreeSize(children[j])
		if wi != wj {
			if obj == objDMax {
				return wi > wj
			}
			return wi < wj
		}
		return children[i] < children[j]
	})
	for _, c := range children {
		solveNode(t, c, obj, memo)
	}

	total := t.SubtreeSize(v) - 1 // combined width of every child

	dp := make([][]int, len(children)+1)
	base := make([]int, total+1)
	for i := range base {
		base[i] = -1
	}
	base[0] = 0
	dp[0] = base

	widthSoFar := 0
	for ci, c := range children {
		cs := memo[c]
		w := cs.width
		prev := dp[ci]
		cur := make([]int, total+1)
		for i := range cur {
			cur[i] = -1
		}
		for k := 0; k <= total; k++ {
			// c placed left of v: c becomes the new farthest-left block, so
			// every already-committed left block's own distance is
			// unaffected and only c's own contribution is added.
			if k >= w && prev[k-w] != -1 {
				val := prev[k-w] + (k - w) + w + cs.netLeft
				if cur[k] == -1 || better(val, cur[k], obj) {
					cur[k] = val
				}
			}
			// c placed right of v: v's left width (k) is unchanged; c
			// becomes the new farthest-right block.
			if k <= widthSoFar && prev[k] != -1 {
				rightBefore := widthSoFar - k
				val := prev[k] + rightBefore + 1 + cs.netRight
				if cur[k] == -1 || better(val, cur[k], obj) {
					cur[k] = val
				}
			}
		}
		dp[ci+1] = cur
		widthSoFar += w
	}

	ns := &nodeSolve{width: t.SubtreeSize(v), children: children, dp: dp}
	final := dp[len(children)]
	foundLeft, foundRight, foundRoot := false, false, false
	for k := 0; k <= total; k++ {
		if final[k] == -1 {
			continue
		}
		if !foundRoot || better(final[k], ns.rootBest, obj) {
			ns.rootBest, ns.rootOff, foundRoot = final[k], k, true
		}
		lv := final[k] - k
		if !foundLeft || better(lv, ns.netLeft, obj) {
			ns.netLeft, ns.offLeft, foundLeft = lv, k, true
		}
		rv := final[k] + k
		if !foundRight || better(rv, ns.netRight, obj) {
			ns.netRight, ns.offRight, foundRight = rv, k, true
		}
	}
	memo[v] = ns
	return ns
}

// reconstructNode rebuilds v's block (v's whole subtree in final
// left-to-right position order) given that v itself sits at offset k
// within that block, by replaying the knapsack choices implicit in
// ns.dp.
func reconstructNode(memo map[core.Vertex]*nodeSolve, v core.Vertex, k int) []core.Vertex {
	ns := memo[v]
	m := len(ns.children)

	widthBefore := make([]int, m+1)
	for i, c := range ns.children {
		widthBefore[i+1] = widthBefore[i] + memo[c].width
	}

	assignLeft := make([]bool, m)
	curK := k
	for step := m; step >= 1; step-- {
		c := ns.children[step-1]
		cs := memo[c]
		w := cs.width
		prevTotal := widthBefore[step-1]

		if curK >= w && ns.dp[step-1][curK-w] != -1 {
			val := ns.dp[step-1][curK-w] + (curK - w) + w + cs.netLeft
			if val == ns.dp[step][curK] {
				assignLeft[step-1] = true
				curK -= w
				continue
			}
		}
		if curK <= prevTotal && ns.dp[step-1][curK] != -1 {
			rightBefore := prevTotal - curK
			val := ns.dp[step-1][curK] + rightBefore + 1 + cs.netRight
			if val == ns.dp[step][curK] {
				assignLeft[step-1] = false
				continue
			}
		}
	}

	var leftBlocks, rightBlocks [][]core.Vertex
	for i, c := range ns.children {
		cs := memo[c]
		if assignLeft[i] {
			leftBlocks = append(leftBlocks, reconstructNode(memo, c, cs.offLeft))
		} else {
			rightBlocks = append(rightBlocks, reconstructNode(memo, c, cs.offRight))
		}
	}

	result := make([]core.Vertex, 0, ns.width)
	for i := len(leftBlocks) - 1; i >= 0; i-- {
		result = append(result, leftBlocks[i]...)
	}
	result = append(result, v)
	for _, b := range rightBlocks {
		result = append(result, b...)
	}
	return result
}

// FreeDmin returns the exact planar minimum-D arrangement of ft, rooted
// at a centroid (spec.md §4.7: planar is the unrooted relaxation of
// projective, and rooting at a centroid always attains the unconstrained
// optimum too — see unconstrained's package doc).
func FreeDmin(ft *core.FreeTree) (int, arrangement.Arrangement) {
	root, _, _ := properties.Centroid(ft)
	return RootedDmin(rootAt(ft, root))
}

// RootResult pairs a candidate centroid root with the D value its
// projective embedding attains.
type RootResult struct {
	Root core.Vertex
	D    int
}

// FreeDMax returns the exact planar maximum-D arrangement of ft. A free
// tree may have one or two centroidal vertices; this returns the single
// best (D, arrangement) among whichever centroids exist.
func FreeDMax(ft *core.FreeTree) (int, arrangement.Arrangement) {
	results, arrangements := freeDMaxCandidates(ft)
	bestIdx := 0
	for i, r := range results {
		if r.D > results[bestIdx].D {
			bestIdx = i
		}
	}
	return results[bestIdx].D, arrangements[bestIdx]
}

// FreeDMaxAllRoots returns (D, root) for every centroidal vertex,
// letting a caller see all roots attaining the maximum rather than just
// one (spec.md §4.7).
func FreeDMaxAllRoots(ft *core.FreeTree) []RootResult {
	results, _ := freeDMaxCandidates(ft)
	best := 0
	for _, r := range results {
		if r.D > best {
			best = r.D
		}
	}
	var atMax []RootResult
	for _, r := range results {
		if r.D == best {
			atMax = append(atMax, r)
		}
	}
	return atMax
}

func freeDMaxCandidates(ft *core.FreeTree) ([]RootResult, []arrangement.Arrangement) {
	first, second, hasSecond := properties.Centroid(ft)
	roots := []core.Vertex{first}
	if hasSecond {
		roots = append(roots, second)
	}
	results := make([]RootResult, len(roots))
	arrangements := make([]arrangement.Arrangement, len(roots))
	for i, root := range roots {
		d, arr := RootedDMax(rootAt(ft, root))
		results[i] = RootResult{Root: root, D: d}
		arrangements[i] = arr
	}
	return results, arrangements
}

// rootAt builds a RootedTree over ft's vertices, directing every edge
// away from root.
func rootAt(ft *core.FreeTree, root core.Vertex) *core.RootedTree {
	n := ft.NumVertices()
	g := core.NewGraph(n, core.WithDirected())
	visited := make([]bool, n)
	visited[root] = true
	queue := []core.Vertex{root}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range ft.Neighbors(v) {
			if !visited[u] {
				visited[u] = true
				g.AddEdge(v, u)
				queue = append(queue, u)
			}
		}
	}
	g.Normalize()
	return core.NewRootedTree(g)
}
