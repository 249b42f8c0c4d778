// Package num implements various utility functions regarding numeric types.
package num

// ModInverse returns the modular inverse of x modulo m, computed with the
// extended Euclidean algorithm. Output is always in [0, m).
// Panics if x and m are not coprime.
func ModInverse(x, m int64) int64 {
	x %= m
	if x < 0 {
		x += m
	}

	a, b := x, m
	u, v := int64(1), int64(0)
	for b != 0 {
		q := a / b
		a, b = b, a-q*b
		u, v = v, u-q*v
	}

	if a != 1 {
		panic("modular inverse does not exist")
	}

	u %= m
	if u < 0 {
		u += m
	}
	return u
}

// ModExp returns x^y mod q.
func ModExp(x, y, q int64) int64 {
	r := int64(1)
	x %= q
	if x < 0 {
		x += q
	}
	for y > 0 {
		if y&1 == 1 {
			r = (r * x) % q
		}
		x = (x * x) % q
		y >>= 1
	}
	return r % q
}

// NextPowerOfTwo returns the smallest power of two not less than n.
// Returns 1 for n <= 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
