package match

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"puzzle-solver/internal/feature"
	"puzzle-solver/internal/puzzle"
)

// Orientation identifies which sides of an ordered piece pair touch.
type Orientation int

const (
	// Horizontal scores A's right side against B's left side, i.e. the
	// cost of placing B immediately to the right of A.
	Horizontal Orientation = iota

	// Vertical scores A's bottom side against B's top side, i.e. the
	// cost of placing B immediately below A.
	Vertical
)

// Matrix holds memoized compatibility costs for all ordered piece pairs.
// Self-pairs are +Inf so they never win a minimum-cost comparison.
type Matrix struct {
	n          int
	horizontal []float64
	vertical   []float64
}

// Build computes the full compatibility matrix from per-piece edge sets.
// norm selects the L-norm of the descriptor distance (1 for absolute, 2
// for Euclidean); costs are normalized by descriptor length so they do not
// scale with piece size.
//
// Pair costs are independent of each other, so rows are computed
// concurrently, bounded by GOMAXPROCS. The context cancels the build.
func Build(ctx context.Context, sets []feature.EdgeSet, norm float64) (*Matrix, error) {
	n := len(sets)
	if n == 0 {
		return nil, fmt.Errorf("no edge sets to match")
	}
	for id, es := range sets {
		if len(es[puzzle.SideLeft]) != len(sets[0][puzzle.SideLeft]) ||
			len(es[puzzle.SideTop]) != len(sets[0][puzzle.SideTop]) {
			return nil, fmt.Errorf("piece %d has descriptor lengths %d/%d, want %d/%d",
				id, len(es[puzzle.SideLeft]), len(es[puzzle.SideTop]),
				len(sets[0][puzzle.SideLeft]), len(sets[0][puzzle.SideTop]))
		}
	}

	m := &Matrix{
		n:          n,
		horizontal: make([]float64, n*n),
		vertical:   make([]float64, n*n),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for a := 0; a < n; a++ {
		a := a
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for b := 0; b < n; b++ {
				if a == b {
					m.horizontal[a*n+b] = math.Inf(1)
					m.vertical[a*n+b] = math.Inf(1)
					continue
				}
				m.horizontal[a*n+b] = distance(sets[a][puzzle.SideRight], sets[b][puzzle.SideLeft], norm)
				m.vertical[a*n+b] = distance(sets[a][puzzle.SideBottom], sets[b][puzzle.SideTop], norm)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compatibility matrix: %w", err)
	}
	return m, nil
}

// Len returns the number of pieces the matrix was built for.
func (m *Matrix) Len() int { return m.n }

// Cost returns the cached cost of placing piece b next to piece a in the
// given orientation. Cost(a, a, o) is +Inf.
func (m *Matrix) Cost(a, b int, o Orientation) float64 {
	if o == Horizontal {
		return m.horizontal[a*m.n+b]
	}
	return m.vertical[a*m.n+b]
}

// TotalCost sums the seam costs along every internal horizontal and
// vertical adjacency of a complete placement.
func (m *Matrix) TotalCost(p puzzle.Placement, g puzzle.Grid) float64 {
	var total float64
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			id := p[g.Cell(row, col)]
			if col+1 < g.Cols {
				total += m.Cost(id, p[g.Cell(row, col+1)], Horizontal)
			}
			if row+1 < g.Rows {
				total += m.Cost(id, p[g.Cell(row+1, col)], Vertical)
			}
		}
	}
	return total
}

// distance is the normalized L-norm distance between two equal-length
// descriptors. Both touching sides run in the same canonical direction, so
// the comparison is direct element-wise.
func distance(a, b feature.Descriptor, norm float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return floats.Distance(a, b, norm) / float64(len(a))
}
