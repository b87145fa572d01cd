package heuristic

import (
	"math"

	"github.com/taisia-zlotnikova/pathfinding-bench/grid"
)

// Evaluate returns the non-negative distance estimate of kind k between
// cells (x1,y1) and (x2,y2).
//
// Complexity: O(1).
func Evaluate(k Kind, x1, y1, x2, y2 int) float64 {
	if k == Zero {
		return 0.0
	}

	dx := math.Abs(float64(x1 - x2))
	dy := math.Abs(float64(y1 - y2))

	switch k {
	case Manhattan:
		return dx + dy
	case Euclidean:
		return math.Sqrt(dx*dx + dy*dy)
	case Octile:
		return (dx + dy) + (grid.Sqrt2-2)*math.Min(dx, dy)
	default:
		return 0.0
	}
}
