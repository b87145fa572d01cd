// Package planner is the public façade of the grid path-planning core: a
// single stateful planner bound to one occupancy grid, exposing point-to-
// point search (BFS, Dijkstra, A*, weighted A*) and a reverse-Dijkstra
// cost-to-go window.
//
// What:
//
//   - New constructs a Planner over a row-major occupancy grid.
//   - FindPath dispatches to the BFS engine or the shared A*-like engine
//     (which covers Dijkstra, A*, and weighted A* by parameter choice) and
//     returns a self-describing SearchResult.
//   - GetCost2GoWindow runs reverse Dijkstra from a goal cell and reports
//     shortest distances for every cell in a square window around an agent.
//
// Why:
//
//   - Every search shares one scratch.Space/scratch.Frontier pair and one
//     grid.Grid, so repeated calls from an outer decision loop amortize
//     their memory via epoch reset instead of reallocating per call.
//
// Complexity: see each engine file. The scratch arrays and neighbor buffers
// are allocated once by New; each call still allocates its result (the
// path or the window), BFS allocates its FIFO queue per call, and the heap
// grows beyond its initial capacity when a search needs more entries.
package planner
