package planner

import "github.com/taisia-zlotnikova/pathfinding-bench/heuristic"

// epsilon is the tolerance used for lazy-deletion staleness checks.
const epsilon = 1e-9

// runAStar performs the shared A*-like search (Dijkstra when h == Zero and
// w == 0, canonical A* when w == 1, weighted A* when w > 1) from startID to
// goalID over p.grid under conn.
//
// Returns the reconstructed path (nil if unreachable) and the number of
// cells expanded (the goal's pop does not count, per the engine's
// contract).
func (p *Planner) runAStar(startID, goalID int, conn Connectivity, h Heuristic, w float64) (path []Coord, expanded int) {
	p.space.Reset()
	p.open.Reset()

	p.space.SetRoot(startID)
	gx, gy := p.grid.ToCoord(goalID)
	sx, sy := p.grid.ToCoord(startID)
	p.open.PushNode(startID, w*heuristic.Evaluate(h, sx, sy, gx, gy), 0)

	for p.open.Len() > 0 {
		node := p.open.PopNode()

		if node.G > p.space.Dist(node.ID)+epsilon {
			continue // stale lazy-deletion entry
		}

		if node.ID == goalID {
			return p.reconstructPath(goalID), expanded
		}

		expanded++

		n := p.grid.Neighbors(node.ID, conn, p.nbrIDs, p.nbrCosts)
		for i := 0; i < n; i++ {
			nid := p.nbrIDs[i]
			newG := node.G + p.nbrCosts[i]
			if newG < p.space.Dist(nid) {
				p.space.SetDist(nid, newG)
				p.space.SetPred(nid, node.ID)

				nx, ny := p.grid.ToCoord(nid)
				priority := newG + w*heuristic.Evaluate(h, nx, ny, gx, gy)
				p.open.PushNode(nid, priority, newG)
			}
		}
	}

	return nil, expanded
}
