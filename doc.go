// Package pathfindingbench is a grid-based path-planning core: given a
// static 2D occupancy grid and a pair of cells, it computes a shortest or
// weighted path between them, or a local cost-to-go window of shortest
// distances around an agent.
//
// What it provides:
//
//	grid/      — immutable occupancy grid, coordinate arithmetic, and the
//	             4-/8-connected neighbor generator with corner-cutting rules
//	heuristic/ — Zero, Manhattan, Euclidean, and Octile distance estimates
//	scratch/   — epoch-tagged O(1)-reset distance/predecessor bookkeeping
//	             and a shared lazy-deletion frontier heap
//	planner/   — the public façade: New, FindPath, GetCost2GoWindow, and
//	             the BFS / A*-like / reverse-Dijkstra search engines
//
// Pure Go, no cgo, no I/O: the planner is a pure in-memory algorithm over a
// caller-supplied grid. Loading a grid from a map format, exposing the
// planner across a language boundary, and consuming the returned path
// (control, rendering, feature encoding) are all left to the caller.
//
// Also retained as independent reference/oracle machinery:
//
//	core/      — generic, string-keyed weighted/unweighted Graph type
//	dijkstra/  — Dijkstra's algorithm over core.Graph
//
// planner's cross-validation tests export a grid to core.Graph via
// Planner.ToGraph and run dijkstra.Dijkstra against it as an independently
// implemented correctness oracle for 4-connected Dijkstra searches.
//
//	go get github.com/taisia-zlotnikova/pathfinding-bench/planner
package pathfindingbench
