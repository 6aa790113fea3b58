package core

import "errors"

// Sentinel errors panicked on caller-contract violations (spec.md §7:
// "ill-formed inputs are the caller's responsibility; debug builds
// assert"). Matches the teacher's "core: <condition>" sentinel-error
// naming convention.
var (
	ErrNegativeCount       = errors.New("core: negative vertex count")
	ErrVertexOutOfRange    = errors.New("core: vertex id out of range")
	ErrSelfLoop            = errors.New("core: self-loop not allowed")
	ErrDuplicateEdge       = errors.New("core: duplicate edge")
	ErrWrongEdgeCount      = errors.New("core: edge count does not match a tree")
	ErrNotConnected        = errors.New("core: graph is not connected")
	ErrHasCycle            = errors.New("core: graph has a cycle")
	ErrMultipleRoots       = errors.New("core: rooted tree has zero or more than one root")
	ErrSubtreeSizesInvalid = errors.New("core: subtree sizes not computed; call ComputeSubtreeSizes first")
	ErrMustBeUndirected    = errors.New("core: FreeTree requires an undirected graph")
	ErrMustBeDirected      = errors.New("core: RootedTree requires a directed graph")
)
