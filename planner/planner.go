package planner

import (
	"fmt"

	"github.com/taisia-zlotnikova/pathfinding-bench/core"
	"github.com/taisia-zlotnikova/pathfinding-bench/grid"
	"github.com/taisia-zlotnikova/pathfinding-bench/scratch"
)

// Planner is a single stateful path planner bound to one occupancy grid. It
// owns its grid and scratch state for its lifetime; every FindPath or
// GetCost2GoWindow call reuses them via epoch reset rather than
// reallocating.
//
// A Planner is not safe for concurrent use by two in-flight searches; a
// caller needing parallelism runs one Planner per goroutine.
type Planner struct {
	grid  *grid.Grid
	space *scratch.Space
	open  *scratch.Frontier

	nbrIDs   []int
	nbrCosts []float64

	log logFunc
}

// NewOption configures a Planner at construction time.
type NewOption func(*Planner)

// WithLogger installs a structured-logging seam invoked once per FindPath
// or GetCost2GoWindow call with a summary of its outcome. The default is a
// safe no-op, matching the rest of the module's logging-free posture.
func WithLogger(fn func(level, msg string, kv ...any)) NewOption {
	return func(p *Planner) {
		if fn != nil {
			p.log = fn
		}
	}
}

// New constructs a Planner over a row-major occupancy grid of exactly
// width*height cells (0 = free, nonzero = blocked).
//
// Returns ErrInvalidDimensions if width or height is not positive, or
// ErrCellCountMismatch if len(cells) != width*height.
//
// Complexity: O(width*height) time and memory.
func New(width, height int, cells []int, opts ...NewOption) (*Planner, error) {
	g, err := grid.NewGrid(width, height, cells)
	if err != nil {
		switch err {
		case grid.ErrInvalidDimensions:
			return nil, fmt.Errorf("%w", ErrInvalidDimensions)
		case grid.ErrCellCountMismatch:
			return nil, fmt.Errorf("%w", ErrCellCountMismatch)
		default:
			return nil, err
		}
	}

	n := width * height
	p := &Planner{
		grid:     g,
		space:    scratch.NewSpace(n),
		open:     scratch.NewFrontier(n),
		nbrIDs:   make([]int, grid.MaxNeighbors),
		nbrCosts: make([]float64, grid.MaxNeighbors),
		log:      noopLog,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// ToGraph exports the planner's grid as a weighted, undirected *core.Graph
// for tooling and cross-validation. It is never called from FindPath or
// GetCost2GoWindow; see grid.Grid.ToGraph for the Conn8 weight caveat.
//
// Complexity: O(W*H*d + E).
func (p *Planner) ToGraph(conn Connectivity) *core.Graph {
	return p.grid.ToGraph(conn)
}

// inBoundsAndFree reports whether (x, y) names a valid, passable cell and,
// if so, its cell id.
func (p *Planner) inBoundsAndFree(x, y int) (id int, ok bool) {
	if !p.grid.InBounds(x, y) {
		return 0, false
	}
	id = p.grid.ToIndex(x, y)
	return id, p.grid.IsFree(id)
}

// reconstructPath walks predecessors from goal back to start via the
// scratch space, reversing, and returns the coordinate sequence.
func (p *Planner) reconstructPath(goalID int) []Coord {
	var ids []int
	cur := goalID
	for {
		ids = append(ids, cur)
		pred, ok := p.space.Pred(cur)
		if !ok {
			break
		}
		cur = pred
	}

	path := make([]Coord, len(ids))
	for i, id := range ids {
		x, y := p.grid.ToCoord(id)
		path[len(ids)-1-i] = Coord{X: x, Y: y}
	}
	return path
}

// geometricLength sums 1.0 per orthogonal step and grid.Sqrt2 per diagonal
// step along path. Used by BFS, whose own bookkeeping is edge-count, not
// geometric cost.
func geometricLength(path []Coord) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		if dx != 0 && dy != 0 {
			total += grid.Sqrt2
		} else {
			total += 1.0
		}
	}
	return total
}
