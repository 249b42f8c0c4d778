package segtree_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/sp301415/procon-go/algebra"
	"github.com/sp301415/procon-go/intrange"
	"github.com/sp301415/procon-go/segtree"
)

func TestSegmentTreeMin(t *testing.T) {
	const top = int64(1<<31) - 1

	st := segtree.New(algebra.Min[int64](top), []int64{top, top, top})
	st.Update(0, 1)
	st.Update(1, 2)
	st.Update(2, 3)

	assert.Equal(t, int64(1), st.Query(intrange.Span(0, 3)))
	assert.Equal(t, int64(1), st.Query(intrange.Closed(0, 2)))
	assert.Equal(t, int64(2), st.Query(intrange.Span(1, 3)))
}

func TestSegmentTreeSingle(t *testing.T) {
	const top = int64(1<<31) - 1

	st := segtree.New(algebra.Min[int64](top), []int64{top})
	assert.Equal(t, top, st.Query(intrange.Span(0, 1)))

	st.Update(0, 5)
	assert.Equal(t, int64(5), st.Query(intrange.Span(0, 1)))
}

func TestSegmentTreeEmptyRange(t *testing.T) {
	m := algebra.Min[int64](math.MaxInt64)
	st := segtree.New(m, []int64{3, 1, 2})

	assert.Equal(t, m.Identity(), st.Query(intrange.Span(2, 2)))
	assert.Equal(t, m.Identity(), st.Query(intrange.Span(2, 1)))
}

func TestSegmentTreeContract(t *testing.T) {
	st := segtree.New(algebra.Additive[int64](), []int64{1, 2, 3})

	assert.Panics(t, func() { st.Update(3, 0) })
	assert.Panics(t, func() { st.Update(-1, 0) })
}

// concat is the free monoid over strings; its operation is not
// commutative, so it catches accumulation-order mistakes in Query.
type concat struct{}

func (concat) Op(x, y string) string { return x + y }
func (concat) Identity() string      { return "" }

func TestSegmentTreeOrder(t *testing.T) {
	st := segtree.New[string](concat{}, []string{"a", "b", "c", "d", "e"})

	assert.Equal(t, "abcde", st.Query(intrange.All()))
	assert.Equal(t, "bcd", st.Query(intrange.Span(1, 4)))

	st.Update(2, "X")
	assert.Equal(t, "abXde", st.Query(intrange.All()))
}

func TestSegmentTreeProperties(t *testing.T) {
	g := algebra.Additive[int64]()

	properties := gopter.NewProperties(nil)

	properties.Property("single-element query returns the element", prop.ForAll(
		func(values []int64) bool {
			st := segtree.New[int64](g, values)
			for i, v := range values {
				if st.Query(intrange.Span(i, i+1)) != v {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int64Range(-1<<30, 1<<30)),
	))

	properties.Property("query matches the direct fold", prop.ForAll(
		func(values []int64, a, b int) bool {
			st := segtree.New[int64](g, values)

			lo, hi := a, b
			if len(values) > 0 {
				lo %= len(values) + 1
				hi %= len(values) + 1
			} else {
				lo, hi = 0, 0
			}

			want := int64(0)
			for i := lo; i < hi && i < len(values); i++ {
				want += values[i]
			}
			return st.Query(intrange.Span(lo, hi)) == want
		},
		gen.SliceOf(gen.Int64Range(-1<<30, 1<<30)),
		gen.IntRange(0, 1<<30),
		gen.IntRange(0, 1<<30),
	))

	properties.Property("update is reflected and local", prop.ForAll(
		func(values []int64, idx int, v int64) bool {
			if len(values) == 0 {
				return true
			}
			idx %= len(values)

			st := segtree.New[int64](g, values)
			st.Update(idx, v)

			want := v
			for i, w := range values {
				if i != idx {
					want += w
				}
			}
			return st.Query(intrange.All()) == want &&
				st.Query(intrange.Span(idx, idx+1)) == v
		},
		gen.SliceOf(gen.Int64Range(-1<<30, 1<<30)),
		gen.IntRange(0, 1<<30),
		gen.Int64Range(-1<<30, 1<<30),
	))

	properties.TestingRun(t)
}
