// Package algebra defines the algebraic contracts shared by the generic
// structures of this module.
//
// A Monoid supplies an associative operation together with its identity
// element; a Group additionally supplies inverses. The structures trust the
// caller to pass a mathematically valid instance: the laws are not checked.
package algebra

// Monoid describes a set T with an associative operation Op and an identity
// element such that Op(Identity(), x) = Op(x, Identity()) = x.
type Monoid[T any] interface {
	// Op applies the operation to x and y.
	Op(x, y T) T

	// Identity returns the identity element.
	Identity() T
}

// Group describes a Monoid whose every element has an inverse, so that
// Op(x, Inverse(x)) = Identity().
type Group[T any] interface {
	Monoid[T]

	// Inverse returns the inverse of x.
	Inverse(x T) T
}
