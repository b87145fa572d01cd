package grid

import "testing"

func TestToGraph_Conn4_NoDiagonalEdges(t *testing.T) {
	// 0 0
	// 0 0
	g, _ := NewGrid(2, 2, []int{0, 0, 0, 0})
	cg := g.ToGraph(Conn4)

	if len(cg.Vertices()) != 4 {
		t.Fatalf("Vertices() = %d; want 4", len(cg.Vertices()))
	}
	if !cg.HasEdge("0,0", "1,0") {
		t.Error("expected orthogonal edge 0,0<->1,0")
	}
	if cg.HasEdge("0,0", "1,1") {
		t.Error("unexpected diagonal edge 0,0<->1,1 under Conn4")
	}
}

func TestToGraph_Conn8_IncludesDiagonals(t *testing.T) {
	g, _ := NewGrid(2, 2, []int{0, 0, 0, 0})
	cg := g.ToGraph(Conn8)

	if !cg.HasEdge("0,0", "1,1") {
		t.Error("expected diagonal edge 0,0<->1,1 under Conn8")
	}
}

func TestToGraph_ExcludesBlockedCells(t *testing.T) {
	g, _ := NewGrid(2, 1, []int{0, 1})
	cg := g.ToGraph(Conn4)

	if len(cg.Vertices()) != 1 {
		t.Fatalf("Vertices() = %d; want 1 (blocked cell excluded)", len(cg.Vertices()))
	}
	if !cg.HasVertex("0,0") || cg.HasVertex("1,0") {
		t.Error("expected only the free cell (0,0) as a vertex")
	}
}
