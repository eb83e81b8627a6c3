package align

import "errors"

// Sentinel errors for matrix construction and reconstruction.
var (
	// ErrNilModel indicates a nil scoring model.
	ErrNilModel = errors.New("align: scoring model is nil")

	// ErrNilMatrix indicates a nil alignment matrix.
	ErrNilMatrix = errors.New("align: alignment matrix is nil")

	// ErrUnknownMode indicates a Mode other than Global or Local.
	ErrUnknownMode = errors.New("align: unknown alignment mode")

	// ErrModeMismatch indicates a matrix built with the other mode was passed
	// to a reconstructor.
	ErrModeMismatch = errors.New("align: matrix mode does not match reconstruction")

	// ErrDimensionMismatch indicates the matrix shape is not (len(x)+1)x(len(y)+1).
	ErrDimensionMismatch = errors.New("align: matrix shape does not match sequences")

	// ErrLengthMismatch signals aligned sequences of different lengths.
	// It can only come from a defect in matrix building or backtracking.
	ErrLengthMismatch = errors.New("align: aligned sequences differ in length")

	// ErrScoreMismatch signals that the score recomputed from the aligned
	// pairs differs from the table value the walk started from. Like
	// ErrLengthMismatch it indicates an internal invariant violation, or a
	// matrix that was built with a different model.
	ErrScoreMismatch = errors.New("align: recomputed score does not match matrix")
)
