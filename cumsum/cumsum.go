// Package cumsum implements prefix-sum structures parameterized by a
// group, answering range sums in O(1) by combining a prefix with the
// inverse of another.
package cumsum

import (
	"github.com/sp301415/procon-go/algebra"
	"github.com/sp301415/procon-go/intrange"
)

// CumSum answers range sums over a fixed sequence in O(1).
//
// It holds the prefix array psum[0..n], with psum[0] the identity and
// psum[i] = Op(psum[i-1], a[i-1]).
type CumSum[T any] struct {
	group algebra.Group[T]
	psum  []T
}

// New takes the prefix sums of values in O(n).
func New[T any](g algebra.Group[T], values []T) *CumSum[T] {
	psum := make([]T, len(values)+1)
	psum[0] = g.Identity()
	for i := 1; i <= len(values); i++ {
		psum[i] = g.Op(psum[i-1], values[i-1])
	}

	return &CumSum[T]{group: g, psum: psum}
}

// Len returns the length of the original sequence.
func (c *CumSum[T]) Len() int {
	return len(c.psum) - 1
}

// Sum combines the elements of r under the group operation in O(1).
// An empty range yields the identity.
func (c *CumSum[T]) Sum(r intrange.Range) T {
	start, end := r.Clamp(c.Len())
	if end <= start {
		return c.group.Identity()
	}

	return c.group.Op(c.psum[end], c.group.Inverse(c.psum[start]))
}
