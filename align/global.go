package align

import "github.com/katalvlaran/seqalign/scoring"

// ReconstructGlobal recovers one optimal end-to-end alignment from a
// matrix built with Global.
//
// Implementation:
//   - Stage 1: validate model, matrix mode and shape.
//   - Stage 2: walk from (len(x), len(y)) while i≠0 and j≠0, preferring
//     diagonal, then up (gap in Y), then left (gap in X).
//   - Stage 3: drain what is left of x or y against gaps.
//   - Stage 4: reverse, check lengths, recompute the score against cell(m,n).
//
// Errors: ErrNilModel, ErrNilMatrix, ErrModeMismatch, ErrDimensionMismatch,
// ErrLengthMismatch, ErrScoreMismatch, scoring.ErrUnknownSymbol.
//
// Complexity: O(m+n) time beyond the matrix.
func ReconstructGlobal[S comparable](x, y []S, model *scoring.Model[S], m *Matrix) (Result[S], error) {
	t, err := newTracer(x, y, model, m, Global)
	if err != nil {
		return Result[S]{}, err
	}

	i, j := len(x), len(y)
	for i != 0 && j != 0 {
		mv, err := t.choose(i, j)
		if err != nil {
			return Result[S]{}, err
		}
		i, j = t.apply(mv, i, j)
	}
	for i > 0 {
		i, j = t.apply(moveUp, i, j)
	}
	for j > 0 {
		i, j = t.apply(moveLeft, i, j)
	}

	want, err := m.At(len(x), len(y))
	if err != nil {
		return Result[S]{}, err
	}

	return t.finish(want)
}
