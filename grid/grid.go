package grid

// NewGrid constructs a Grid from a row-major slice of exactly width*height
// cells (0 = free, nonzero = blocked). The input is deep-copied so that
// later mutation by the caller never affects the Grid.
//
// Returns ErrInvalidDimensions if width or height is not positive, or
// ErrCellCountMismatch if len(cells) != width*height.
//
// Complexity: O(width*height) time and memory.
func NewGrid(width, height int, cells []int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidDimensions
	}
	if len(cells) != width*height {
		return nil, ErrCellCountMismatch
	}

	cp := make([]int, len(cells))
	copy(cp, cells)

	return &Grid{Width: width, Height: height, cells: cp}, nil
}

// ToIndex maps (x,y) to its row-major cell id. Callers must ensure
// InBounds(x, y) first; out-of-range coordinates produce an id outside
// [0, Width*Height).
//
// Complexity: O(1).
func (g *Grid) ToIndex(x, y int) int {
	return y*g.Width + x
}

// ToCoord converts a row-major cell id back to (x, y).
//
// Complexity: O(1).
func (g *Grid) ToCoord(id int) (x, y int) {
	return id % g.Width, id / g.Width
}

// InBounds reports whether (x, y) lies within the grid's rectangle.
//
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsFree reports whether the cell at id is passable. id must be in
// [0, Width*Height); callers are expected to validate bounds beforehand.
//
// Complexity: O(1).
func (g *Grid) IsFree(id int) bool {
	return g.cells[id] == 0
}

// orthDX/orthDY enumerate the four orthogonal directions in the fixed,
// test-checkable order: Right, Down, Left, Up.
var (
	orthDX = [4]int{1, 0, -1, 0}
	orthDY = [4]int{0, 1, 0, -1}
)

// diagDX/diagDY enumerate the four diagonal directions in the fixed order:
// Right-Down, Left-Down, Left-Up, Right-Up. diagCheckA/diagCheckB name the
// two orthogonal-direction indices (into orthDX/orthDY) that must both be
// free for the corresponding diagonal to be passable (corner-cutting rule).
var (
	diagDX     = [4]int{1, -1, -1, 1}
	diagDY     = [4]int{1, 1, -1, -1}
	diagCheckA = [4]int{0, 2, 2, 0} // Right, Left, Left, Right
	diagCheckB = [4]int{1, 1, 3, 3} // Down, Down, Up, Up
)

// Neighbors writes the movable neighbors of cell id under the given
// connectivity into ids and costs (both must have capacity >= MaxNeighbors)
// and returns the count written. Orthogonal neighbors are considered first,
// in the order Right, Down, Left, Up, each at cost 1.0; under Conn8 the four
// diagonals follow, in the order Right-Down, Left-Down, Left-Up, Right-Up,
// each at cost Sqrt2, admitted only when the diagonal target is in-bounds
// and free AND both of its composing orthogonal neighbors were free (corner
// cutting through a blocked or off-grid orthogonal cell is forbidden).
//
// Any connectivity value other than Conn8 is treated as Conn4.
//
// Complexity: O(1); no allocation.
func (g *Grid) Neighbors(id int, conn Connectivity, ids []int, costs []float64) int {
	cx, cy := g.ToCoord(id)

	var freeOrth [4]bool
	n := 0
	for i := 0; i < 4; i++ {
		nx, ny := cx+orthDX[i], cy+orthDY[i]
		if !g.InBounds(nx, ny) {
			continue
		}
		nid := g.ToIndex(nx, ny)
		if !g.IsFree(nid) {
			continue
		}
		freeOrth[i] = true
		ids[n] = nid
		costs[n] = 1.0
		n++
	}

	if conn == Conn8 {
		for i := 0; i < 4; i++ {
			nx, ny := cx+diagDX[i], cy+diagDY[i]
			if !g.InBounds(nx, ny) {
				continue
			}
			nid := g.ToIndex(nx, ny)
			if !g.IsFree(nid) {
				continue
			}
			if !freeOrth[diagCheckA[i]] || !freeOrth[diagCheckB[i]] {
				continue
			}
			ids[n] = nid
			costs[n] = Sqrt2
			n++
		}
	}

	return n
}
