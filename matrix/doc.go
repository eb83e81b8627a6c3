// Package matrix provides a dense, row-major integer grid.
//
// Dense is the storage behind dynamic-programming tables: dimensions are
// known up front, cells are addressed by (row, col) and the backing buffer
// is a single flat slice (offset = row*cols + col).
//
// Public accessors never panic on bad indices; they return ErrOutOfRange
// wrapped with the method and coordinates.
package matrix
