package planner

import "errors"

// Sentinel errors returned by New. Search-time failures (out-of-bounds or
// blocked endpoints, an unreachable goal) are never represented as errors;
// they surface as a SearchResult with Found == false, per the package's
// no-exceptional-control-flow convention on the hot path.
var (
	// ErrInvalidDimensions indicates width or height was not positive.
	ErrInvalidDimensions = errors.New("planner: width and height must be positive")

	// ErrCellCountMismatch indicates len(cells) != width*height.
	ErrCellCountMismatch = errors.New("planner: cell count does not match width*height")
)
