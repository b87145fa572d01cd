package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrInvalidDimensions indicates width or height was not a positive integer.
	ErrInvalidDimensions = errors.New("grid: width and height must be >= 1")

	// ErrCellCountMismatch indicates the supplied cell slice did not contain
	// exactly width*height entries.
	ErrCellCountMismatch = errors.New("grid: cell count must equal width*height")
)
