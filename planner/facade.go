package planner

import "time"

// FindPath computes a path from (startX, startY) to (goalX, goalY) using
// algo. Options set the heuristic (default Manhattan), weight (default
// 1.0), and connectivity (default Conn4); Dijkstra ignores the supplied
// heuristic/weight and forces Heuristic = Zero, weight = 0.
//
// Both endpoints must be in-bounds and free, or the result reports
// Found == false with zero counters and no path.
//
// Complexity: O((W*H) log(W*H)) worst case for AStar/WAStar/Dijkstra,
// O(W*H) for BFS.
func (p *Planner) FindPath(startX, startY, goalX, goalY int, algo Algorithm, opts ...Option) SearchResult {
	start := time.Now()

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	startID, startOK := p.inBoundsAndFree(startX, startY)
	goalID, goalOK := p.inBoundsAndFree(goalX, goalY)
	if !startOK || !goalOK {
		res := SearchResult{
			Algorithm:     algo,
			Heuristic:     cfg.heuristic,
			Connectivity:  cfg.connectivity,
			ExecutionTime: time.Since(start),
		}
		p.log("warn", "find_path rejected: endpoint out of bounds or blocked",
			"algo", algo.String(), "start", [2]int{startX, startY}, "goal", [2]int{goalX, goalY})
		return res
	}

	h := cfg.heuristic
	w := cfg.weight
	switch algo {
	case Dijkstra:
		h, w = Zero, 0
	case AStar:
		w = 1
	}

	var (
		path     []Coord
		expanded int
	)
	if algo == BFS {
		path, expanded = p.runBFS(startID, goalID, cfg.connectivity)
	} else {
		path, expanded = p.runAStar(startID, goalID, cfg.connectivity, h, w)
	}

	res := SearchResult{
		Algorithm:     algo,
		Heuristic:     h,
		Connectivity:  cfg.connectivity,
		ExpandedNodes: expanded,
		ExecutionTime: time.Since(start),
	}
	if path != nil {
		res.Found = true
		res.Path = path
		if algo == BFS {
			res.PathLength = geometricLength(path)
		} else {
			res.PathLength = p.space.Dist(goalID)
		}
		p.log("debug", "find_path succeeded",
			"algo", algo.String(), "expanded", expanded, "length", res.PathLength)
	} else {
		p.log("warn", "find_path found no path",
			"algo", algo.String(), "expanded", expanded)
	}

	return res
}

// GetCost2GoWindow computes, for every cell in the (2r+1)x(2r+1) window
// centered on (agentX, agentY), the shortest-path cost to (goalX, goalY).
// Entry [ly][lx] corresponds to global cell (agentX-r+lx, agentY-r+ly);
// unreachable, out-of-bounds, or blocked cells read -1.0. Options set
// connectivity (default Conn4) and fastBreak (default true).
//
// If the goal itself is out of bounds or blocked, or the window contains
// no free in-bounds cells, the window is returned all -1.0 without
// touching the heap.
//
// Complexity: O((W*H) log(W*H)) worst case, less with fastBreak enabled.
func (p *Planner) GetCost2GoWindow(agentX, agentY, goalX, goalY, radius int, opts ...WindowOption) [][]float64 {
	cfg := defaultWindowConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	side := 2*radius + 1
	window := make([][]float64, side)
	for i := range window {
		window[i] = make([]float64, side)
		for j := range window[i] {
			window[i][j] = -1.0
		}
	}

	goalID, goalOK := p.inBoundsAndFree(goalX, goalY)
	if !goalOK {
		p.log("warn", "get_cost2go_window rejected: goal out of bounds or blocked",
			"goal", [2]int{goalX, goalY})
		return window
	}

	validTargets := 0
	for ly := 0; ly < side; ly++ {
		for lx := 0; lx < side; lx++ {
			x, y := agentX-radius+lx, agentY-radius+ly
			if id, ok := p.inBoundsAndFree(x, y); ok {
				_ = id
				validTargets++
			}
		}
	}
	if validTargets == 0 {
		p.log("warn", "get_cost2go_window: no free in-bounds cells in window",
			"agent", [2]int{agentX, agentY}, "radius", radius)
		return window
	}

	p.runCost2Go(goalID, agentX, agentY, radius, cfg.connectivity, cfg.fastBreak, window, validTargets)
	p.log("debug", "get_cost2go_window computed",
		"agent", [2]int{agentX, agentY}, "goal", [2]int{goalX, goalY}, "radius", radius)
	return window
}
