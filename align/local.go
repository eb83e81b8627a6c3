package align

import "github.com/katalvlaran/seqalign/scoring"

// ReconstructLocal recovers the highest-scoring local alignment from a
// matrix built with Local.
//
// The walk starts at the first maximum in row-major order. When the maximum
// is 0 it starts at (len(x), len(y)) and the result is empty with score 0.
// It stops as soon as the current cell is 0; unconsumed prefixes are left
// out of the result. A positive Dash makes border cells positive, so on
// row 0 or column 0 the walk keeps consuming against gaps until it reaches
// a zero cell, the same rule as in the interior.
//
// Errors: same as ReconstructGlobal, with ErrModeMismatch for a Global matrix.
func ReconstructLocal[S comparable](x, y []S, model *scoring.Model[S], m *Matrix) (Result[S], error) {
	t, err := newTracer(x, y, model, m, Local)
	if err != nil {
		return Result[S]{}, err
	}

	best, i, j, err := m.grid.ArgMax()
	if err != nil {
		return Result[S]{}, err
	}
	if best <= 0 {
		i, j = len(x), len(y)
		if best, err = m.At(i, j); err != nil {
			return Result[S]{}, err
		}
	}

	for i != 0 || j != 0 {
		cur, err := m.At(i, j)
		if err != nil {
			return Result[S]{}, err
		}
		if cur == 0 {
			break
		}
		var mv move
		switch {
		case j == 0:
			mv = moveUp
		case i == 0:
			mv = moveLeft
		default:
			if mv, err = t.choose(i, j); err != nil {
				return Result[S]{}, err
			}
		}
		i, j = t.apply(mv, i, j)
	}

	return t.finish(best)
}
