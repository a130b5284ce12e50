package match

import (
	"context"
	"math"
	"testing"

	"puzzle-solver/internal/feature"
	"puzzle-solver/internal/puzzle"
)

// edgeSet builds a one-sample-per-side edge set, which makes pair costs
// plain absolute differences under norm 1.
func edgeSet(top, bottom, left, right float64) feature.EdgeSet {
	var es feature.EdgeSet
	es[puzzle.SideTop] = feature.Descriptor{top}
	es[puzzle.SideBottom] = feature.Descriptor{bottom}
	es[puzzle.SideLeft] = feature.Descriptor{left}
	es[puzzle.SideRight] = feature.Descriptor{right}
	return es
}

func TestBuildPairCosts(t *testing.T) {
	sets := []feature.EdgeSet{
		edgeSet(0, 1, 2, 3),
		edgeSet(4, 5, 6, 7),
	}

	m, err := Build(context.Background(), sets, 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	tests := []struct {
		a, b int
		o    Orientation
		want float64
	}{
		{0, 1, Horizontal, 3}, // |right(0)=3 - left(1)=6|
		{1, 0, Horizontal, 5}, // |right(1)=7 - left(0)=2|
		{0, 1, Vertical, 3},   // |bottom(0)=1 - top(1)=4|
		{1, 0, Vertical, 5},   // |bottom(1)=5 - top(0)=0|
	}
	for _, tt := range tests {
		if got := m.Cost(tt.a, tt.b, tt.o); got != tt.want {
			t.Errorf("Cost(%d,%d,%v) = %v, want %v", tt.a, tt.b, tt.o, got, tt.want)
		}
	}
}

func TestBuildSelfPairsExcluded(t *testing.T) {
	sets := []feature.EdgeSet{edgeSet(1, 2, 3, 4), edgeSet(5, 6, 7, 8)}

	m, err := Build(context.Background(), sets, 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	for a := 0; a < m.Len(); a++ {
		if !math.IsInf(m.Cost(a, a, Horizontal), 1) || !math.IsInf(m.Cost(a, a, Vertical), 1) {
			t.Errorf("self pair %d should cost +Inf", a)
		}
	}
}

func TestBuildIdenticalEdgesCostZero(t *testing.T) {
	// Piece 0's right side equals piece 1's left side exactly.
	sets := []feature.EdgeSet{edgeSet(0, 0, 9, 5), edgeSet(0, 0, 5, 9)}

	m, err := Build(context.Background(), sets, 2)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got := m.Cost(0, 1, Horizontal); got != 0 {
		t.Errorf("identical touching sides should cost 0, got %v", got)
	}
}

func TestBuildLengthMismatch(t *testing.T) {
	sets := []feature.EdgeSet{edgeSet(1, 2, 3, 4)}
	var bad feature.EdgeSet
	bad[puzzle.SideTop] = feature.Descriptor{1, 2}
	bad[puzzle.SideBottom] = feature.Descriptor{1, 2}
	bad[puzzle.SideLeft] = feature.Descriptor{1}
	bad[puzzle.SideRight] = feature.Descriptor{1}
	sets = append(sets, bad)

	if _, err := Build(context.Background(), sets, 1); err == nil {
		t.Error("expected error for mismatched descriptor lengths")
	}
}

func TestBuildDeterministic(t *testing.T) {
	// Parallel build must produce identical matrices across runs.
	sets := make([]feature.EdgeSet, 32)
	for i := range sets {
		f := float64(i)
		sets[i] = edgeSet(f*1.3, f*0.7+2, f*2.1, f*0.4+1)
	}

	first, err := Build(context.Background(), sets, 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	second, err := Build(context.Background(), sets, 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for a := 0; a < len(sets); a++ {
		for b := 0; b < len(sets); b++ {
			for _, o := range []Orientation{Horizontal, Vertical} {
				if first.Cost(a, b, o) != second.Cost(a, b, o) {
					t.Fatalf("Cost(%d,%d,%v) differs between builds", a, b, o)
				}
			}
		}
	}
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sets := make([]feature.EdgeSet, 8)
	for i := range sets {
		sets[i] = edgeSet(float64(i), 0, 0, 0)
	}
	if _, err := Build(ctx, sets, 1); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestTotalCost(t *testing.T) {
	// 2x2 grid of pieces 0..3 placed in id order. Seams:
	//   H(0,1)=|3-6|=3, H(2,3)=|11-14|=3, V(0,2)=|1-8|=7, V(1,3)=|5-12|=7.
	sets := []feature.EdgeSet{
		edgeSet(0, 1, 2, 3),
		edgeSet(4, 5, 6, 7),
		edgeSet(8, 9, 10, 11),
		edgeSet(12, 13, 14, 15),
	}

	m, err := Build(context.Background(), sets, 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	g := puzzle.Grid{Rows: 2, Cols: 2}
	got := m.TotalCost(puzzle.Placement{0, 1, 2, 3}, g)
	if want := 20.0; got != want {
		t.Errorf("TotalCost = %v, want %v", got, want)
	}
}
