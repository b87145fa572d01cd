package planner

// runCost2Go fills a (2r+1)x(2r+1) window of shortest-path costs to goalID,
// by running Dijkstra (h = Zero) from the goal outward and recording the
// distance of any popped cell that falls inside the window. The window is
// a reporting mask only: cells outside it are expanded freely if needed to
// reach cells inside it via a detour.
//
// window[ly][lx] corresponds to global cell (ax-r+lx, ay-r+ly); unwritten
// entries default to -1.0 (unreachable/out-of-bounds/blocked), matching
// the sentinel the caller pre-fills before calling this.
func (p *Planner) runCost2Go(goalID int, ax, ay, r int, conn Connectivity, fastBreak bool, window [][]float64, validTargets int) {
	side := 2*r + 1

	p.space.Reset()
	p.open.Reset()
	p.space.SetRoot(goalID)
	p.open.PushNode(goalID, 0, 0)

	foundInWindow := 0

	for p.open.Len() > 0 {
		node := p.open.PopNode()
		if node.G > p.space.Dist(node.ID)+epsilon {
			continue
		}

		x, y := p.grid.ToCoord(node.ID)
		lx, ly := x-(ax-r), y-(ay-r)
		if lx >= 0 && lx < side && ly >= 0 && ly < side && window[ly][lx] < 0 {
			window[ly][lx] = node.G
			foundInWindow++
		}

		if fastBreak && foundInWindow >= validTargets {
			return
		}

		n := p.grid.Neighbors(node.ID, conn, p.nbrIDs, p.nbrCosts)
		for i := 0; i < n; i++ {
			nid := p.nbrIDs[i]
			newG := node.G + p.nbrCosts[i]
			if newG < p.space.Dist(nid) {
				p.space.SetDist(nid, newG)
				p.open.PushNode(nid, newG, newG)
			}
		}
	}
}
