// Package dsu implements a disjoint-set (union-find) structure over the
// elements 0..n, with union by size and path compression. Both heuristics
// together give amortized inverse-Ackermann time per operation.
package dsu

import (
	"fmt"
)

// DisjointSet tracks a partition of 0..n into disjoint sets.
//
// Each element stores either the index of its parent, or, at a root, the
// negated size of its set. Following parent links always terminates at a
// root, and lookups rewrite the links they traverse to point straight at it.
type DisjointSet struct {
	parent []int64
	size   int
}

// New returns n singleton sets over the elements 0..n.
func New(n int) *DisjointSet {
	parent := make([]int64, n)
	for i := range parent {
		parent[i] = -1
	}
	return &DisjointSet{parent: parent, size: n}
}

func (d *DisjointSet) checkIndex(x int) {
	if x < 0 || x >= len(d.parent) {
		panic(fmt.Sprintf("index out of range: %d with %d elements", x, len(d.parent)))
	}
}

// Merge unions the sets containing x and y, attaching the smaller set's
// root under the larger. Returns false without modification when x and y
// are already in the same set.
// Panics if x or y is out of range.
func (d *DisjointSet) Merge(x, y int) bool {
	d.checkIndex(x)
	d.checkIndex(y)

	x = d.Root(x)
	y = d.Root(y)
	if x == y {
		return false
	}

	// Root sizes are stored negated, so the smaller parent value marks the
	// larger set.
	if d.parent[x] > d.parent[y] {
		x, y = y, x
	}

	d.parent[x] += d.parent[y]
	d.parent[y] = int64(x)
	d.size--

	return true
}

// Root returns the representative element of the set containing x,
// compressing the traversed path on the way.
// Panics if x is out of range.
func (d *DisjointSet) Root(x int) int {
	d.checkIndex(x)

	root := x
	for d.parent[root] >= 0 {
		root = int(d.parent[root])
	}

	for d.parent[x] >= 0 {
		next := int(d.parent[x])
		d.parent[x] = int64(root)
		x = next
	}

	return root
}

// InSame reports whether x and y belong to the same set.
// Panics if x or y is out of range.
func (d *DisjointSet) InSame(x, y int) bool {
	return d.Root(x) == d.Root(y)
}

// SizeOf returns the number of elements in the set containing x.
// Panics if x is out of range.
func (d *DisjointSet) SizeOf(x int) int {
	return int(-d.parent[d.Root(x)])
}

// Size returns the number of disjoint sets.
func (d *DisjointSet) Size() int {
	return d.size
}
