package num_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/sp301415/procon-go/num"
)

func TestModInverse(t *testing.T) {
	assert.Equal(t, int64(3), num.ModInverse(2, 5))
	assert.Equal(t, int64(2), num.ModInverse(3, 5))
	assert.Equal(t, int64(1), num.ModInverse(1, 7))

	// Negative inputs are reduced first.
	assert.Equal(t, num.ModInverse(3, 5), num.ModInverse(-2, 5))

	assert.Panics(t, func() { num.ModInverse(2, 4) })
	assert.Panics(t, func() { num.ModInverse(0, 5) })
}

func TestModInverseProperty(t *testing.T) {
	const q = 1_000_000_007

	properties := gopter.NewProperties(nil)
	properties.Property("x * ModInverse(x) = 1 mod q", prop.ForAll(
		func(x int64) bool {
			inv := num.ModInverse(x, q)
			return (x*inv)%q == 1 && 0 <= inv && inv < q
		},
		gen.Int64Range(1, q-1),
	))
	properties.TestingRun(t)
}

func TestModExp(t *testing.T) {
	assert.Equal(t, int64(1), num.ModExp(3, 0, 7))
	assert.Equal(t, int64(2), num.ModExp(3, 2, 7))
	assert.Equal(t, int64(4), num.ModExp(2, 10, 5))
}

func TestNextPowerOfTwo(t *testing.T) {
	assert.Equal(t, 1, num.NextPowerOfTwo(0))
	assert.Equal(t, 1, num.NextPowerOfTwo(1))
	assert.Equal(t, 2, num.NextPowerOfTwo(2))
	assert.Equal(t, 4, num.NextPowerOfTwo(3))
	assert.Equal(t, 8, num.NextPowerOfTwo(8))
	assert.Equal(t, 16, num.NextPowerOfTwo(9))
	assert.Equal(t, 1<<20, num.NextPowerOfTwo(1<<20-1))
}
