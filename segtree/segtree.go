// Package segtree implements a segment tree parameterized by a monoid,
// supporting point updates and range queries in O(log n).
//
// With algebra.Min the query answers range minimum queries; with an
// additive group it answers range sums, and so on for any monoid.
package segtree

import (
	"fmt"

	"github.com/sp301415/procon-go/algebra"
	"github.com/sp301415/procon-go/intrange"
	"github.com/sp301415/procon-go/num"
)

// SegmentTree holds a flat buffer of 2*cap elements, where cap is the
// smallest power of two not less than the logical length. Leaves live at
// [cap, cap+n), padded with identity up to 2*cap, and every internal node i
// holds Op(child(2i), child(2i+1)) at all times.
type SegmentTree[T any] struct {
	monoid algebra.Monoid[T]

	data []T
	cap  int
	len  int
}

// New builds a segment tree over values in O(n).
func New[T any](m algebra.Monoid[T], values []T) *SegmentTree[T] {
	n := len(values)
	cp := num.NextPowerOfTwo(n)

	data := make([]T, 2*cp)
	for i := range data {
		data[i] = m.Identity()
	}
	copy(data[cp:], values)

	for i := cp - 1; i >= 1; i-- {
		data[i] = m.Op(data[2*i], data[2*i+1])
	}

	return &SegmentTree[T]{monoid: m, data: data, cap: cp, len: n}
}

// Len returns the logical length of the tree.
func (s *SegmentTree[T]) Len() int {
	return s.len
}

// Update overwrites the value at idx and recombines every ancestor up to
// the root in O(log n).
// Panics if idx is out of range.
func (s *SegmentTree[T]) Update(idx int, value T) {
	if idx < 0 || idx >= s.len {
		panic(fmt.Sprintf("index out of range: %d with length %d", idx, s.len))
	}

	idx += s.cap
	s.data[idx] = value

	for idx >>= 1; idx >= 1; idx >>= 1 {
		s.data[idx] = s.monoid.Op(s.data[2*idx], s.data[2*idx+1])
	}
}

// Query combines the elements of r in order under the monoid operation in
// O(log n). An empty range yields the identity. Left and right partial
// results are accumulated separately and combined last, so the operation
// need not be commutative.
func (s *SegmentTree[T]) Query(r intrange.Range) T {
	start, end := r.Clamp(s.len)

	start += s.cap
	end += s.cap

	res1 := s.monoid.Identity()
	res2 := s.monoid.Identity()

	for start < end {
		if start&1 != 0 {
			res1 = s.monoid.Op(res1, s.data[start])
			start++
		}

		if end&1 != 0 {
			end--
			res2 = s.monoid.Op(s.data[end], res2)
		}

		start >>= 1
		end >>= 1
	}

	return s.monoid.Op(res1, res2)
}
