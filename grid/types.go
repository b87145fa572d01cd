package grid

// Connectivity selects how many neighbors a cell has: 4 orthogonal
// directions, or those plus the 4 diagonals.
type Connectivity int

const (
	// Conn4 considers only the four orthogonal neighbors (N/E/S/W).
	Conn4 Connectivity = 4
	// Conn8 adds the four diagonal neighbors, subject to corner-cutting rules.
	Conn8 Connectivity = 8
)

// Sqrt2 is the single shared numeric literal for a diagonal step's edge
// cost. It is also used by the octile heuristic so the two never drift
// apart relative to each other.
const Sqrt2 = 1.41421356237309515

// MaxNeighbors is the maximum number of neighbors any cell can have under
// Conn8 (4 orthogonal + 4 diagonal); caller-supplied buffers to Neighbors
// must have at least this capacity.
const MaxNeighbors = 8

// Grid is an immutable rectangular occupancy map. Cells are indexed
// row-major: id = y*Width + x. A cell is free when its stored value is 0
// and blocked for any nonzero value. Grid deep-copies its input at
// construction and never mutates it afterward, so a single instance may be
// safely shared (read-only) across multiple planners.
type Grid struct {
	Width, Height int
	cells         []int
}
