package table

import "errors"

// ErrInvalidHierarchy indicates keys whose shape does not support the
// requested operation: mixed scalar and tuple keys on one axis, tuples of
// differing lengths, or a level beyond the available hierarchy depth.
var ErrInvalidHierarchy = errors.New("invalid key hierarchy")

// ErrDimensionMismatch indicates a cell block whose shape does not match
// the row and column axes.
var ErrDimensionMismatch = errors.New("dimension mismatch")
