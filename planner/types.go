package planner

import (
	"time"

	"github.com/taisia-zlotnikova/pathfinding-bench/grid"
	"github.com/taisia-zlotnikova/pathfinding-bench/heuristic"
)

// Algorithm selects which search engine FindPath dispatches to.
type Algorithm int

const (
	// BFS runs unweighted breadth-first search; path_length is reported as
	// true geometric length of the returned path, not edge count.
	BFS Algorithm = iota
	// Dijkstra runs the A*-like engine with heuristic forced to Zero and
	// weight forced to 0, regardless of caller-supplied options.
	Dijkstra
	// AStar runs the A*-like engine with weight forced to 1.
	AStar
	// WAStar runs the A*-like engine with the caller-supplied weight,
	// which should be >= 1 to retain the w*optimal suboptimality bound.
	WAStar
)

// String implements fmt.Stringer for log and test-failure readability.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case Dijkstra:
		return "Dijkstra"
	case AStar:
		return "AStar"
	case WAStar:
		return "WAStar"
	default:
		return "Unknown"
	}
}

// Heuristic re-exports heuristic.Kind under the façade's vocabulary so
// callers never need to import the heuristic package directly.
type Heuristic = heuristic.Kind

// Re-exported heuristic constants for caller convenience.
const (
	Zero      = heuristic.Zero
	Manhattan = heuristic.Manhattan
	Euclidean = heuristic.Euclidean
	Octile    = heuristic.Octile
)

// Connectivity re-exports grid.Connectivity under the façade's vocabulary.
type Connectivity = grid.Connectivity

// Re-exported connectivity constants for caller convenience.
const (
	Conn4 = grid.Conn4
	Conn8 = grid.Conn8
)

// Coord is a cell coordinate in the planner's grid.
type Coord struct {
	X, Y int
}

// SearchResult is the self-describing outcome of one FindPath call: the
// path (if found), its length, how many nodes were expanded, how long the
// search took, and the request parameters actually used.
type SearchResult struct {
	Path          []Coord
	Found         bool
	ExpandedNodes int
	PathLength    float64
	ExecutionTime time.Duration
	Algorithm     Algorithm
	Heuristic     Heuristic
	Connectivity  Connectivity
}

// logFunc is the planner's minimal structured-logging seam: level is a
// short label ("debug", "warn"), msg is a static message, kv are
// alternating key/value pairs. A nil logFunc is not safe to call; New
// installs noopLog by default and WithLogger ignores a nil function.
type logFunc func(level, msg string, kv ...any)

func noopLog(string, string, ...any) {}

// config holds the resolved settings for one FindPath call.
type config struct {
	heuristic    Heuristic
	weight       float64
	connectivity Connectivity
}

func defaultConfig() config {
	return config{heuristic: Manhattan, weight: 1.0, connectivity: Conn4}
}

// Option configures a single FindPath call.
type Option func(*config)

// WithHeuristic sets the heuristic used by AStar/WAStar (ignored by BFS and
// Dijkstra, which force their own heuristic).
func WithHeuristic(h Heuristic) Option {
	return func(c *config) { c.heuristic = h }
}

// WithWeight sets the weighting factor used by WAStar (ignored otherwise).
func WithWeight(w float64) Option {
	return func(c *config) { c.weight = w }
}

// WithConnectivity sets 4- or 8-connectivity for the search.
func WithConnectivity(conn Connectivity) Option {
	return func(c *config) { c.connectivity = conn }
}

// windowConfig holds the resolved settings for one GetCost2GoWindow call.
type windowConfig struct {
	connectivity Connectivity
	fastBreak    bool
}

func defaultWindowConfig() windowConfig {
	return windowConfig{connectivity: Conn4, fastBreak: true}
}

// WindowOption configures a single GetCost2GoWindow call.
type WindowOption func(*windowConfig)

// WithWindowConnectivity sets 4- or 8-connectivity for the reverse search.
func WithWindowConnectivity(conn Connectivity) WindowOption {
	return func(c *windowConfig) { c.connectivity = conn }
}

// WithFastBreak toggles early termination once every in-window reachable
// cell has been found (default true). Passing false computes cost-to-go
// for the entire reachable component even after the window is filled.
func WithFastBreak(enabled bool) WindowOption {
	return func(c *windowConfig) { c.fastBreak = enabled }
}
