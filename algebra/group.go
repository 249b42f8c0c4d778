package algebra

import (
	"golang.org/x/exp/constraints"
)

// Real is a numeric type whose negation is exact: signed integers or floats.
type Real interface {
	constraints.Signed | constraints.Float
}

// AdditiveGroup is the group of numbers under addition, with zero as
// identity and unary minus as inverse. Used with CumSum for range sums.
type AdditiveGroup[T Real] struct{}

// Additive returns the additive group over T.
func Additive[T Real]() AdditiveGroup[T] {
	return AdditiveGroup[T]{}
}

func (g AdditiveGroup[T]) Op(x, y T) T {
	return x + y
}

func (g AdditiveGroup[T]) Identity() T {
	var zero T
	return zero
}

func (g AdditiveGroup[T]) Inverse(x T) T {
	return -x
}
