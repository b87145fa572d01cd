package heuristic_test

import (
	"math"
	"testing"

	"github.com/taisia-zlotnikova/pathfinding-bench/grid"
	"github.com/taisia-zlotnikova/pathfinding-bench/heuristic"
)

func TestEvaluate_Zero(t *testing.T) {
	if got := heuristic.Evaluate(heuristic.Zero, 0, 0, 9, 9); got != 0.0 {
		t.Errorf("Zero heuristic = %v; want 0", got)
	}
}

func TestEvaluate_Manhattan(t *testing.T) {
	if got := heuristic.Evaluate(heuristic.Manhattan, 0, 0, 3, 4); got != 7.0 {
		t.Errorf("Manhattan(0,0,3,4) = %v; want 7", got)
	}
}

func TestEvaluate_Euclidean(t *testing.T) {
	got := heuristic.Evaluate(heuristic.Euclidean, 0, 0, 3, 4)
	if math.Abs(got-5.0) > 1e-9 {
		t.Errorf("Euclidean(0,0,3,4) = %v; want 5", got)
	}
}

func TestEvaluate_Octile_DiagonalStep(t *testing.T) {
	got := heuristic.Evaluate(heuristic.Octile, 0, 0, 1, 1)
	if math.Abs(got-grid.Sqrt2) > 1e-9 {
		t.Errorf("Octile(0,0,1,1) = %v; want Sqrt2 (%v)", got, grid.Sqrt2)
	}
}

func TestEvaluate_Octile_MixedStep(t *testing.T) {
	// max(dx,dy) + (sqrt2-1)*min(dx,dy) equivalent form: dx=4, dy=2 -> 4 + (sqrt2-1)*2
	got := heuristic.Evaluate(heuristic.Octile, 0, 0, 4, 2)
	want := float64(4) + (grid.Sqrt2-1)*2
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Octile(0,0,4,2) = %v; want %v", got, want)
	}
}

func TestEvaluate_NeverNegative(t *testing.T) {
	for _, k := range []heuristic.Kind{heuristic.Zero, heuristic.Manhattan, heuristic.Euclidean, heuristic.Octile} {
		if got := heuristic.Evaluate(k, 5, 5, 1, 9); got < 0 {
			t.Errorf("%s heuristic returned negative value %v", k, got)
		}
	}
}

func TestKind_String(t *testing.T) {
	cases := map[heuristic.Kind]string{
		heuristic.Zero:        "Zero",
		heuristic.Manhattan:   "Manhattan",
		heuristic.Euclidean:   "Euclidean",
		heuristic.Octile:      "Octile",
		heuristic.Kind(99):    "Unknown",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q; want %q", k, got, want)
		}
	}
}
