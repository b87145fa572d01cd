// Package grid treats a static rectangular occupancy map as the adjacency
// model consumed by the planner package.
//
// What:
//
//   - Grid wraps an immutable, deep-copied row-major []int of W*H cells.
//     A cell is free when its value is 0 and blocked otherwise.
//   - Neighbors enumerates the movable neighbors of a cell under 4- or
//     8-connectivity, enforcing the corner-cutting rule for diagonals.
//   - ToGraph exports the grid as a generic *core.Graph for diagnostics and
//     cross-validation; it is never used on the planner's hot path.
//
// Why:
//
//   - Keeping coordinate arithmetic and adjacency rules in one small,
//     allocation-free package lets every search engine in planner share a
//     single, independently testable notion of "what is a neighbor".
//
// Complexity:
//
//   - NewGrid:   O(W*H) time and memory (deep copy).
//   - ToIndex/ToCoord/InBounds/IsFree: O(1).
//   - Neighbors: O(1) (at most 8 candidates), writes into caller buffers.
//   - ToGraph:   O(W*H*d), Memory O(W*H + E), d = 4 or 8.
package grid
