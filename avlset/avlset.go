// Package avlset implements a height-balanced (AVL) ordered multiset over
// int keys, augmented with subtree-size counters so it supports rank
// queries in O(log n). Its caller in this module is the stack-based
// crossing counter (spec.md §4.4, "self-balancing ordered set"); the
// branch-and-bound DMax solver keeps its max_arrs in a plain slice and does
// not use this package.
//
// Grounded on the rotation mechanics of
// other_examples/90e055ab_niceyeti-GoKata__trees-avl-avl.go.go (insert,
// rebalance, height bookkeeping via **Node indirection), generalized from
// a plain int set to a counting multiset with a CountGreater rank query.
package avlset

// node is one AVL tree node. count is the multiplicity of key at this
// node; size is the total multiplicity across the subtree rooted here
// (used for CountGreater's rank arithmetic).
type node struct {
	key         int
	count       int
	size        int
	height      int
	left, right *node
}

// Set is an ordered multiset of ints.
type Set struct {
	root *node
	n    int // total multiplicity across the whole set
}

// New returns an empty Set.
func New() *Set { return &Set{} }

// Len returns the total multiplicity (counting duplicates) in the set.
func (s *Set) Len() int { return s.n }

func height(nd *node) int {
	if nd == nil {
		return -1
	}
	return nd.height
}

func size(nd *node) int {
	if nd == nil {
		return 0
	}
	return nd.size
}

func (nd *node) recompute() {
	nd.height = 1 + max(height(nd.left), height(nd.right))
	nd.size = nd.count + size(nd.left) + size(nd.right)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func balanceFactor(nd *node) int {
	if nd == nil {
		return 0
	}
	return height(nd.left) - height(nd.right)
}

func rotateRight(y *node) *node {
	x := y.left
	y.left = x.right
	x.right = y
	y.recompute()
	x.recompute()
	return x
}

func rotateLeft(x *node) *node {
	y := x.right
	x.right = y.left
	y.left = x
	x.recompute()
	y.recompute()
	return y
}

func rebalance(nd *node) *node {
	nd.recompute()
	bf := balanceFactor(nd)
	if bf > 1 {
		if balanceFactor(nd.left) < 0 {
			nd.left = rotateLeft(nd.left)
		}
		return rotateRight(nd)
	}
	if bf < -1 {
		if balanceFactor(nd.right) > 0 {
			nd.right = rotateRight(nd.right)
		}
		return rotateLeft(nd)
	}
	return nd
}

// Insert adds one occurrence of key.
func (s *Set) Insert(key int) {
	s.root = insert(s.root, key)
	s.n++
}

func insert(nd *node, key int) *node {
	if nd == nil {
		return &node{key: key, count: 1, size: 1, height: 0}
	}
	switch {
	case key == nd.key:
		nd.count++
		nd.size++
		return nd
	case key < nd.key:
		nd.left = insert(nd.left, key)
	default:
		nd.right = insert(nd.right, key)
	}
	return rebalance(nd)
}

// Remove removes one occurrence of key. A no-op if key is not present.
func (s *Set) Remove(key int) {
	newRoot, removed := remove(s.root, key)
	if removed {
		s.root = newRoot
		s.n--
	}
}

func remove(nd *node, key int) (*node, bool) {
	if nd == nil {
		return nil, false
	}
	switch {
	case key < nd.key:
		var ok bool
		nd.left, ok = remove(nd.left, key)
		if !ok {
			return nd, false
		}
		return rebalance(nd), true
	case key > nd.key:
		var ok bool
		nd.right, ok = remove(nd.right, key)
		if !ok {
			return nd, false
		}
		return rebalance(nd), true
	default:
		if nd.count > 1 {
			nd.count--
			nd.size--
			return nd, true
		}
		// remove this node entirely
		if nd.left == nil {
			return nd.right, true
		}
		if nd.right == nil {
			return nd.left, true
		}
		succ := nd.right
		for succ.left != nil {
			succ = succ.left
		}
		nd.key = succ.key
		nd.count = succ.count
		succ.count = 1 // ensure remove deletes exactly one occurrence's node
		var ok bool
		nd.right, ok = remove(nd.right, succ.key)
		_ = ok
		return rebalance(nd), true
	}
}

// Contains reports whether key has at least one occurrence in the set.
func (s *Set) Contains(key int) bool {
	nd := s.root
	for nd != nil {
		switch {
		case key == nd.key:
			return true
		case key < nd.key:
			nd = nd.left
		default:
			nd = nd.right
		}
	}
	return false
}

// CountGreater returns the number of elements (counting multiplicity)
// strictly greater than key. The stack-based crossing-counter sweep does
// not call it; it uses CountLess.
func (s *Set) CountGreater(key int) int {
	count := 0
	nd := s.root
	for nd != nil {
		if nd.key > key {
			count += nd.count + size(nd.right)
			nd = nd.left
		} else {
			nd = nd.right
		}
	}
	return count
}

// CountLess returns the number of elements (counting multiplicity)
// strictly less than key. Mirrors CountGreater; the stack-based
// crossing-counter sweep uses it to count the open edges whose right
// endpoint lies before a new edge's right endpoint.
func (s *Set) CountLess(key int) int {
	count := 0
	nd := s.root
	for nd != nil {
		if nd.key < key {
			count += nd.count + size(nd.left)
			nd = nd.right
		} else {
			nd = nd.left
		}
	}
	return count
}

// Ordered appends every element (expanded by multiplicity) to dst in
// ascending order and returns the result.
func (s *Set) Ordered(dst []int) []int {
	return appendInOrder(s.root, dst)
}

func appendInOrder(nd *node, dst []int) []int {
	if nd == nil {
		return dst
	}
	dst = appendInOrder(nd.left, dst)
	for i := 0; i < nd.count; i++ {
		dst = append(dst, nd.key)
	}
	dst = appendInOrder(nd.right, dst)
	return dst
}
