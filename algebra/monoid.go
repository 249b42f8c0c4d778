package algebra

import (
	"golang.org/x/exp/constraints"
)

// MinMonoid is the monoid that picks the smaller operand.
// Its identity is a caller-supplied top element, typically the maximum
// value of T. Used with SegmentTree for range minimum queries.
type MinMonoid[T constraints.Ordered] struct {
	top T
}

// Min returns the monoid picking the smaller operand, with top as identity.
func Min[T constraints.Ordered](top T) MinMonoid[T] {
	return MinMonoid[T]{top: top}
}

func (m MinMonoid[T]) Op(x, y T) T {
	if x < y {
		return x
	}
	return y
}

func (m MinMonoid[T]) Identity() T {
	return m.top
}

// MaxMonoid is the monoid that picks the larger operand.
// Its identity is a caller-supplied bottom element, typically the minimum
// value of T. Used with SegmentTree for range maximum queries.
type MaxMonoid[T constraints.Ordered] struct {
	bottom T
}

// Max returns the monoid picking the larger operand, with bottom as identity.
func Max[T constraints.Ordered](bottom T) MaxMonoid[T] {
	return MaxMonoid[T]{bottom: bottom}
}

func (m MaxMonoid[T]) Op(x, y T) T {
	if x > y {
		return x
	}
	return y
}

func (m MaxMonoid[T]) Identity() T {
	return m.bottom
}
