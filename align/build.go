// SPDX-License-Identifier: MIT

package align

import (
	"fmt"

	"github.com/katalvlaran/seqalign/matrix"
	"github.com/katalvlaran/seqalign/scoring"
)

// Matrix is a filled alignment table. It is immutable after BuildMatrix
// returns and remembers the Mode it was built with.
type Matrix struct {
	mode Mode
	grid *matrix.Dense
}

var _ fmt.Stringer = (*Matrix)(nil)

// Mode returns the mode the matrix was built with.
func (m *Matrix) Mode() Mode {
	return m.mode
}

// Rows returns len(x)+1.
func (m *Matrix) Rows() int {
	return m.grid.Rows()
}

// Cols returns len(y)+1.
func (m *Matrix) Cols() int {
	return m.grid.Cols()
}

// At returns cell (i, j), the best score of aligning x[:i] with y[:j].
func (m *Matrix) At(i, j int) (int, error) {
	return m.grid.At(i, j)
}

// ToRows returns a deep copy of the table as [][]int.
func (m *Matrix) ToRows() [][]int {
	return m.grid.ToRows()
}

// String renders the table one row per line.
func (m *Matrix) String() string {
	return m.grid.String()
}

// BuildMatrix fills the (m+1)x(n+1) alignment table for x and y.
//
// Algorithm:
//
//	cell(0,0) = 0
//	cell(i,0) = clamp(cell(i-1,0) + score(x[i-1], gap))
//	cell(0,j) = clamp(cell(0,j-1) + score(gap, y[j-1]))
//	cell(i,j) = clamp(max(cell(i-1,j-1) + score(x[i-1], y[j-1]),
//	                      cell(i-1,j)   + score(x[i-1], gap),
//	                      cell(i,j-1)   + score(gap, y[j-1])))
//
// clamp is the identity for Global and max(v, 0) for Local. Cells are filled
// row-major into one preallocated buffer.
//
// Errors:
//   - ErrNilModel, ErrUnknownMode.
//   - scoring.ErrUnknownSymbol when x or y holds a symbol the model does
//     not cover; the message names the sequence and position.
//
// Complexity: O(m·n) time and memory.
func BuildMatrix[S comparable](x, y []S, model *scoring.Model[S], mode Mode) (*Matrix, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if !mode.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
	xi, err := model.Indices(x)
	if err != nil {
		return nil, fmt.Errorf("align: sequence x: %w", err)
	}
	yi, err := model.Indices(y)
	if err != nil {
		return nil, fmt.Errorf("align: sequence y: %w", err)
	}

	rows, cols := len(x)+1, len(y)+1
	gap := model.GapIndex()
	data := make([]int, rows*cols)

	// first column, then first row
	for i := 1; i < rows; i++ {
		data[i*cols] = mode.clamp(data[(i-1)*cols] + model.ScoreAt(xi[i-1], gap))
	}
	for j := 1; j < cols; j++ {
		data[j] = mode.clamp(data[j-1] + model.ScoreAt(gap, yi[j-1]))
	}

	var (
		i, j      int
		row, prev int
	)
	for i = 1; i < rows; i++ {
		row, prev = i*cols, (i-1)*cols
		up := model.ScoreAt(xi[i-1], gap)
		for j = 1; j < cols; j++ {
			best := max(
				data[prev+j-1]+model.ScoreAt(xi[i-1], yi[j-1]),
				data[prev+j]+up,
				data[row+j-1]+model.ScoreAt(gap, yi[j-1]),
			)
			data[row+j] = mode.clamp(best)
		}
	}

	grid, err := matrix.NewDenseFrom(rows, cols, data)
	if err != nil {
		return nil, fmt.Errorf("align: %w", err)
	}

	return &Matrix{mode: mode, grid: grid}, nil
}
