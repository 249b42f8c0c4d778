package cumsum

import (
	"fmt"

	"github.com/sp301415/procon-go/algebra"
	"github.com/sp301415/procon-go/intrange"
)

// CumSum2D answers rectangular range sums over a fixed matrix in O(1)
// by inclusion-exclusion over a 2D prefix array psum[0..h][0..w].
type CumSum2D[T any] struct {
	group algebra.Group[T]
	psum  [][]T
}

// New2D takes the 2D prefix sums of matrix in O(h*w).
// Panics if the rows of matrix differ in length.
func New2D[T any](g algebra.Group[T], matrix [][]T) *CumSum2D[T] {
	height := len(matrix)
	if height == 0 {
		return &CumSum2D[T]{group: g, psum: [][]T{{g.Identity()}}}
	}

	width := len(matrix[0])
	psum := make([][]T, height+1)
	for i := range psum {
		psum[i] = make([]T, width+1)
		for j := range psum[i] {
			psum[i][j] = g.Identity()
		}
	}

	for i := 1; i <= height; i++ {
		if len(matrix[i-1]) != width {
			panic(fmt.Sprintf("row length mismatch: row %d has %d elements, want %d", i-1, len(matrix[i-1]), width))
		}

		for j := 1; j <= width; j++ {
			v := g.Op(psum[i-1][j], psum[i][j-1])
			v = g.Op(v, g.Inverse(psum[i-1][j-1]))
			psum[i][j] = g.Op(v, matrix[i-1][j-1])
		}
	}

	return &CumSum2D[T]{group: g, psum: psum}
}

// Height returns the number of rows of the original matrix.
func (c *CumSum2D[T]) Height() int {
	return len(c.psum) - 1
}

// Width returns the number of columns of the original matrix.
func (c *CumSum2D[T]) Width() int {
	return len(c.psum[0]) - 1
}

// Sum combines the elements of the rectangle yr x xr under the group
// operation in O(1). A degenerate rectangle yields the identity.
func (c *CumSum2D[T]) Sum(yr, xr intrange.Range) T {
	ystart, yend := yr.Clamp(c.Height())
	xstart, xend := xr.Clamp(c.Width())

	if yend <= ystart || xend <= xstart {
		return c.group.Identity()
	}

	v := c.group.Op(c.psum[yend][xend], c.psum[ystart][xstart])
	v = c.group.Op(v, c.group.Inverse(c.psum[ystart][xend]))
	return c.group.Op(v, c.group.Inverse(c.psum[yend][xstart]))
}
