// Package sortkernel implements the size- and key-range-dispatched sorting
// primitives spec.md §4.3 requires: insertion sort for short runs,
// comparison sort for medium runs, counting sort for integer keys with a
// known small range, and a bit-sort / radix-sort pair for dense integer
// sets and tuples.
//
// The teacher library reaches for sort.Slice wherever it needs an ordering
// (tsp/bb.go's "order" precompute); that is this package's comparison-sort
// tier. The counting/bit/radix tiers have no teacher analogue — grounded
// directly on spec.md §4.3's own selection rule and on
// original_source/lal/detail/sorting/bit_sort.hpp for the bit-sort
// mark-and-sweep shape.
package sortkernel

import "sort"

// Direction selects ascending (non-decreasing) or descending
// (non-increasing) order for CountingSort.
type Direction int

const (
	NonDecreasing Direction = iota
	NonIncreasing
)

const (
	insertionThreshold = 14
	comparisonThreshold = 30
)

// KeyFunc extracts an integer sort key from an element at index i.
type KeyFunc func(i int) int

// SortInts sorts vs in place, non-decreasing, selecting a tier by size per
// spec.md §4.3: insertion sort for len <= 14, comparison sort for
// len <= 30, counting sort when a tight integer range is known (maxKey <=
// 8*len(vs)), comparison sort otherwise. maxKey < 0 means "range
// unknown", forcing the comparison-sort fallback.
func SortInts(vs []int, maxKey int) {
	n := len(vs)
	switch {
	case n <= insertionThreshold:
		InsertionSort(vs)
	case n <= comparisonThreshold:
		sort.Ints(vs)
	case maxKey >= 0 && maxKey <= n*8:
		out := CountingSort(n, func(i int) int { return vs[i] }, maxKey, NonDecreasing)
		for i, v := range out {
			vs[i] = v
		}
	default:
		sort.Ints(vs)
	}
}

// InsertionSort sorts vs in place, non-decreasing. O(n^2) worst case, but
// cheap in practice for the short runs (len <= 14) it is reserved for.
func InsertionSort(vs []int) {
	for i := 1; i < len(vs); i++ {
		key := vs[i]
		j := i - 1
		for j >= 0 && vs[j] > key {
			vs[j+1] = vs[j]
			j--
		}
		vs[j+1] = key
	}
}

// CountingSort sorts n elements (indices 0..n-1) by an extracted integer
// key in 0..maxKey, returning the keys in sorted order. Stable: elements
// with equal keys preserve input order (spec.md §4.3).
func CountingSort(n int, key KeyFunc, maxKey int, dir Direction) []int {
	counts := make([]int, maxKey+1)
	keys := make([]int, n)
	for i := 0; i < n; i++ {
		k := key(i)
		keys[i] = k
		counts[k]++
	}
	// prefix sums give each key's starting output slot
	offsets := make([]int, maxKey+1)
	sum := 0
	for k := 0; k <= maxKey; k++ {
		offsets[k] = sum
		sum += counts[k]
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		k := keys[i]
		out[offsets[k]] = keys[i]
		offsets[k]++
	}
	if dir == NonIncreasing {
		reverse(out)
	}
	return out
}

// CountingSortIndices is like CountingSort but returns the permutation of
// indices (stable) rather than the keys themselves, which is what callers
// actually need when the key is a proxy for richer per-element data (e.g.
// sorting vertices by degree).
func CountingSortIndices(n int, key KeyFunc, maxKey int, dir Direction) []int {
	counts := make([]int, maxKey+1)
	keys := make([]int, n)
	for i := 0; i < n; i++ {
		k := key(i)
		keys[i] = k
		counts[k]++
	}
	// Slots are laid out in output key order, so equal keys keep input order
	// in either direction.
	offsets := make([]int, maxKey+1)
	sum := 0
	for j := 0; j <= maxKey; j++ {
		k := j
		if dir == NonIncreasing {
			k = maxKey - j
		}
		offsets[k] = sum
		sum += counts[k]
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		k := keys[i]
		out[offsets[k]] = i
		offsets[k]++
	}
	return out
}

func reverse(vs []int) {
	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}
}

// BitSort sorts a slice of distinct integers, all within [m, m+len(seen)),
// in place and non-decreasing, using a caller-supplied scratch byte array
// (spec.md §4.3 "bit-sort for small dense integer sets"). seen must be
// all-zero on entry and is restored to all-zero on return, so it can be
// reused across calls without reallocation — grounded on
// original_source/lal/detail/sorting/bit_sort.hpp.
func BitSort(vs []int, m int, seen []byte) {
	for _, v := range vs {
		seen[v-m] = 1
	}
	i := m
	seenIdx := 0
	for idx := range vs {
		for seen[seenIdx] == 0 {
			seenIdx++
			i++
		}
		vs[idx] = i
		seen[seenIdx] = 0
		seenIdx++
		i++
	}
}

// RadixSort sorts n tuples of (key, index) pairs by key using LSD radix
// sort over the given number of 8-bit digits, returning the stable
// permutation of indices. digits must be large enough to cover maxKey
// (i.e. 256^digits > maxKey).
func RadixSort(n int, key KeyFunc, digits int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	buf := make([]int, n)
	for d := 0; d < digits; d++ {
		shift := uint(8 * d)
		var counts [257]int
		for _, idx := range perm {
			b := (key(idx) >> shift) & 0xff
			counts[b+1]++
		}
		for b := 0; b < 256; b++ {
			counts[b+1] += counts[b]
		}
		for _, idx := range perm {
			b := (key(idx) >> shift) & 0xff
			buf[counts[b]] = idx
			counts[b]++
		}
		perm, buf = buf, perm
	}
	return perm
}
