// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency. Context is
// added with fmt.Errorf("ctx: %w", ErrX); callers match with errors.Is.
var (
	// ErrInvalidDimensions indicates negative rows or cols.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDataLength indicates a row-major buffer whose length is not rows*cols.
	ErrDataLength = errors.New("matrix: data length does not match shape")

	// ErrEmpty indicates an operation that needs at least one cell.
	ErrEmpty = errors.New("matrix: matrix has no cells")
)
