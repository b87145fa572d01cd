// Package heuristic provides the distance estimates used by the planner's
// A*-like engine: Zero (Dijkstra), Manhattan, Euclidean, and Octile.
//
// All four operate on grid coordinates rather than raw cell ids so that a
// caller never needs to know a grid's width to evaluate one; the planner
// converts ids to coordinates once per call via the owning grid.Grid.
//
// Admissibility:
//
//   - Zero is trivially admissible (and turns the A*-like engine into
//     Dijkstra).
//   - Manhattan is admissible only when diagonal movement is disallowed;
//     on an 8-connected grid it overestimates the true cost of a diagonal
//     step and is therefore inadmissible there.
//   - Euclidean never overestimates the true cost on either 4- or
//     8-connected grids.
//   - Octile is exact (not just admissible) on 8-connected grids whose
//     edge costs are {1, Sqrt2}, matching grid.Sqrt2 exactly so the
//     heuristic and the neighbor generator never disagree about the cost
//     of a diagonal step.
package heuristic
