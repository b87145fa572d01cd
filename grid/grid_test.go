package grid

import "testing"

func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		cells         []int
		wantErr       error
	}{
		{"ZeroWidth", 0, 3, []int{}, ErrInvalidDimensions},
		{"NegativeHeight", 3, -1, []int{}, ErrInvalidDimensions},
		{"TooFewCells", 2, 2, []int{0, 0, 0}, ErrCellCountMismatch},
		{"TooManyCells", 2, 2, []int{0, 0, 0, 0, 0}, ErrCellCountMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewGrid(tc.width, tc.height, tc.cells); err != tc.wantErr {
				t.Errorf("NewGrid() error = %v; want %v", err, tc.wantErr)
			}
		})
	}
}

func TestNewGrid_DeepCopiesInput(t *testing.T) {
	cells := []int{0, 0, 0, 0}
	g, err := NewGrid(2, 2, cells)
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	cells[0] = 1
	if !g.IsFree(0) {
		t.Error("mutating caller slice after construction affected Grid; want independent copy")
	}
}

func TestToIndexToCoord_RoundTrip(t *testing.T) {
	g, _ := NewGrid(5, 3, make([]int, 15))
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			id := g.ToIndex(x, y)
			gx, gy := g.ToCoord(id)
			if gx != x || gy != y {
				t.Errorf("ToCoord(ToIndex(%d,%d)) = (%d,%d); want (%d,%d)", x, y, gx, gy, x, y)
			}
		}
	}
}

func TestInBounds(t *testing.T) {
	g, _ := NewGrid(3, 2, make([]int, 6))
	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d) = false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d) = true; want false", xy[0], xy[1])
		}
	}
}

func TestIsFree(t *testing.T) {
	g, _ := NewGrid(2, 2, []int{0, 1, 1, 0})
	if !g.IsFree(0) || g.IsFree(1) || g.IsFree(2) || !g.IsFree(3) {
		t.Error("IsFree mismatch against occupancy bits")
	}
}
