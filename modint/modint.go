// Package modint implements a modular integer value type.
//
// A Modint wraps a residue together with its modulus; every arithmetic
// operation reduces the result back into [0, mod). The modulus must fit the
// 64-bit intermediate products, so moduli up to around 1e9 are the intended
// regime. Division and Inv assume the modulus is prime.
package modint

import (
	"fmt"

	"github.com/sp301415/procon-go/num"
)

// Mod17 is the modulus 1e9+7, ubiquitous in modular counting problems.
const Mod17 int64 = 1_000_000_007

// Modint is an integer residue modulo a fixed modulus.
// The invariant 0 <= value < mod holds after every operation.
// Modint is comparable; values with equal residue and modulus are equal,
// and it can be used directly as a map key.
type Modint struct {
	value int64
	mod   int64
}

// New returns value reduced modulo mod. Negative inputs are wrapped up into
// [0, mod), not truncated toward zero.
// Panics if mod is zero.
func New(value, mod int64) Modint {
	if mod == 0 {
		panic("modulus is zero")
	}

	if value < 0 {
		m := (-value) / mod
		value += (m + 1) * mod
	}
	return NewUnchecked(value%mod, mod)
}

// NewUnchecked wraps value without reducing it. The caller must guarantee
// 0 <= value < mod; breaking that leaves every subsequent operation on the
// result undefined.
func NewUnchecked(value, mod int64) Modint {
	return Modint{value: value, mod: mod}
}

// New17 returns value reduced modulo Mod17.
func New17(value int64) Modint {
	return New(value, Mod17)
}

// Zero returns the zero residue modulo mod.
func Zero(mod int64) Modint {
	return NewUnchecked(0, mod)
}

// One returns the one residue modulo mod.
// Panics if mod is 1, where no such residue exists.
func One(mod int64) Modint {
	if mod == 1 {
		panic("one is not a residue modulo 1")
	}
	return NewUnchecked(1, mod)
}

// Inner returns the normalized residue in [0, mod).
func (x Modint) Inner() int64 {
	return x.value
}

// Modulus returns the modulus of x.
func (x Modint) Modulus() int64 {
	return x.mod
}

// IsZero reports whether x is the zero residue.
func (x Modint) IsZero() bool {
	return x.value == 0
}

// checkModulus panics when two operands carry different moduli.
func (x Modint) checkModulus(y Modint) {
	if x.mod != y.mod {
		panic(fmt.Sprintf("mismatched moduli: %d and %d", x.mod, y.mod))
	}
}

// Add returns x + y.
func (x Modint) Add(y Modint) Modint {
	x.checkModulus(y)

	v := x.value + y.value
	if v >= x.mod {
		v -= x.mod
	}
	return NewUnchecked(v, x.mod)
}

// Sub returns x - y.
func (x Modint) Sub(y Modint) Modint {
	x.checkModulus(y)

	v := x.value - y.value
	if v < 0 {
		v += x.mod
	}
	return NewUnchecked(v, x.mod)
}

// Mul returns x * y.
func (x Modint) Mul(y Modint) Modint {
	x.checkModulus(y)

	return NewUnchecked((x.value*y.value)%x.mod, x.mod)
}

// Div returns x / y, computed as x * y.Inv().
// Panics if y is the zero residue.
func (x Modint) Div(y Modint) Modint {
	x.checkModulus(y)

	if y.value == 0 {
		panic("attempted to divide by zero")
	}
	return x.Mul(y.Inv())
}

// Neg returns the additive inverse of x.
func (x Modint) Neg() Modint {
	if x.value == 0 {
		return x
	}
	return NewUnchecked(x.mod-x.value, x.mod)
}

// Inv returns the multiplicative inverse of x.
// Panics if x is the zero residue or not coprime to the modulus.
func (x Modint) Inv() Modint {
	if x.value == 0 {
		panic("attempted to invert zero")
	}
	return NewUnchecked(num.ModInverse(x.value, x.mod), x.mod)
}

// Pow returns x^e for e >= 0.
func (x Modint) Pow(e int64) Modint {
	if e < 0 {
		panic("negative exponent")
	}
	return NewUnchecked(num.ModExp(x.value, e, x.mod), x.mod)
}

// Cmp compares the normalized residues of x and y, returning -1, 0 or 1.
func (x Modint) Cmp(y Modint) int {
	switch {
	case x.value < y.value:
		return -1
	case x.value > y.value:
		return 1
	default:
		return 0
	}
}

// String returns the residue as a decimal string.
func (x Modint) String() string {
	return fmt.Sprint(x.value)
}
