// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

const ctxAt = "At"

// denseErrorf wraps an error with Dense method context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of int values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int   // number of rows and columns
	data []int // flat backing storage, len == r*c
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDenseFrom wraps a row-major buffer without copying it.
// The caller must not mutate data afterwards.
// Errors: ErrInvalidDimensions, ErrDataLength.
func NewDenseFrom(rows, cols int, data []int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDataLength, len(data), rows*cols)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// ArgMax returns the largest value and the position of its first
// occurrence in row-major order.
// Errors: ErrEmpty for a matrix without cells.
// Complexity: O(r*c).
func (m *Dense) ArgMax() (v, row, col int, err error) {
	if len(m.data) == 0 {
		return 0, 0, 0, ErrEmpty
	}
	best := 0
	for k := 1; k < len(m.data); k++ {
		if m.data[k] > m.data[best] {
			best = k
		}
	}

	return m.data[best], best / m.c, best % m.c, nil
}

// ToRows returns the contents as a freshly allocated [][]int.
func (m *Dense) ToRows() [][]int {
	out := make([][]int, m.r)
	for i := range out {
		out[i] = make([]int, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String implements fmt.Stringer, one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(m.data[i*m.c+j]))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
