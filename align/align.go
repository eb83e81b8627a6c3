package align

import (
	"fmt"

	"github.com/katalvlaran/seqalign/scoring"
)

// NeedlemanWunsch builds a Global matrix and reconstructs its alignment.
func NeedlemanWunsch[S comparable](x, y []S, model *scoring.Model[S]) (Result[S], error) {
	m, err := BuildMatrix(x, y, model, Global)
	if err != nil {
		return Result[S]{}, err
	}

	return ReconstructGlobal(x, y, model, m)
}

// SmithWaterman builds a Local matrix and reconstructs its alignment.
func SmithWaterman[S comparable](x, y []S, model *scoring.Model[S]) (Result[S], error) {
	m, err := BuildMatrix(x, y, model, Local)
	if err != nil {
		return Result[S]{}, err
	}

	return ReconstructLocal(x, y, model, m)
}

// Pairwise dispatches to NeedlemanWunsch or SmithWaterman by mode.
func Pairwise[S comparable](x, y []S, model *scoring.Model[S], mode Mode) (Result[S], error) {
	switch mode {
	case Global:
		return NeedlemanWunsch(x, y, model)
	case Local:
		return SmithWaterman(x, y, model)
	}

	return Result[S]{}, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
}
