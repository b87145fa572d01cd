package grid

import (
	"fmt"

	"github.com/taisia-zlotnikova/pathfinding-bench/core"
)

// vertexID formats the unique vertex identifier for cell (x,y) in the
// exported core.Graph.
func (g *Grid) vertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ToGraph exports the grid as a weighted, undirected *core.Graph: one
// vertex per free cell, one edge per admissible neighbor pair under conn,
// with integer weight 1 for every edge.
//
// This is a diagnostic/interop export for tooling and cross-validation; it
// is never called from FindPath or GetCost2GoWindow. Because core.Graph
// edge weights are int64, this export only ever emits orthogonal-shaped
// weight (1); under Conn8 the diagonal edges it adds are also weighted 1
// rather than Sqrt2 rounded, so callers that need exact diagonal costs must
// not rely on this export under Conn8 — it exists to support exact,
// integer-weighted comparisons against Conn4 searches (see the planner
// package's cross-validation test).
//
// Complexity: O(W*H*d + E) time, Memory: O(W*H + E).
func (g *Grid) ToGraph(conn Connectivity) *core.Graph {
	cg := core.NewGraph(core.WithWeighted())

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			id := g.ToIndex(x, y)
			if !g.IsFree(id) {
				continue
			}
			_ = cg.AddVertex(g.vertexID(x, y))
		}
	}

	ids := make([]int, MaxNeighbors)
	costs := make([]float64, MaxNeighbors)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			id := g.ToIndex(x, y)
			if !g.IsFree(id) {
				continue
			}
			uID := g.vertexID(x, y)
			n := g.Neighbors(id, conn, ids, costs)
			for i := 0; i < n; i++ {
				nx, ny := g.ToCoord(ids[i])
				vID := g.vertexID(nx, ny)
				if cg.HasEdge(uID, vID) {
					continue
				}
				_, _ = cg.AddEdge(uID, vID, 1)
			}
		}
	}

	return cg
}
