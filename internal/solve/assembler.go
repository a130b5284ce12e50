package solve

import (
	"context"
	"math"
	"sort"
	"time"

	"puzzle-solver/internal/match"
	"puzzle-solver/internal/puzzle"
)

type candidate struct {
	id   int
	cost float64
}

// choicePoint records one filled cell: the ranked candidates that were
// available when the cell was first reached and a cursor to the one
// currently placed. Kept on an explicit stack so backtracking on large
// grids never grows the call stack.
type choicePoint struct {
	cell   int
	ranked []candidate
	cursor int
}

type assembler struct {
	grid      puzzle.Grid
	matrix    *match.Matrix
	threshold float64
	budget    int
	deadline  time.Time
}

func newAssembler(g puzzle.Grid, m *match.Matrix, opts Options) *assembler {
	threshold := opts.AcceptThreshold
	if threshold <= 0 {
		threshold = math.Inf(1)
	}
	a := &assembler{grid: g, matrix: m, threshold: threshold, budget: opts.MaxBacktracks}
	if opts.Timeout > 0 {
		a.deadline = time.Now().Add(opts.Timeout)
	}
	return a
}

// run assembles the grid and returns a complete placement, its total seam
// cost, the number of backtrack events spent, and whether the search was
// degraded (it gave up before finding a within-threshold complete fill).
//
// The search keeps the cheapest complete assignment seen across all paths:
// every threshold violation records a greedy completion of the current
// partial before backtracking, and a successful fill records itself. The
// cheapest recorded assignment is returned, which makes the result cost
// non-increasing in the backtrack budget for a fixed input.
func (a *assembler) run(ctx context.Context) (puzzle.Placement, float64, int, bool) {
	n := a.matrix.Len()
	placement := puzzle.NewPlacement(n)
	used := make([]bool, n)

	var (
		stack      []choicePoint
		best       puzzle.Placement
		bestCost   = math.Inf(1)
		backtracks int
	)
	record := func(p puzzle.Placement) {
		if cost := a.matrix.TotalCost(p, a.grid); cost < bestCost {
			best, bestCost = p, cost
		}
	}

	cell := 0
	for cell < n {
		if a.expired(ctx) {
			record(a.greedyComplete(placement, used))
			return best, bestCost, backtracks, true
		}

		ranked := a.rankCandidates(cell, placement, used)
		if ranked[0].cost <= a.threshold {
			placement[cell] = ranked[0].id
			used[ranked[0].id] = true
			stack = append(stack, choicePoint{cell: cell, ranked: ranked})
			cell++
			continue
		}

		// Every remaining piece is over the threshold at this cell.
		record(a.greedyComplete(placement, used))
		if backtracks >= a.budget {
			return best, bestCost, backtracks, true
		}
		backtracks++

		resumed := false
		for len(stack) > 0 {
			cp := &stack[len(stack)-1]
			used[cp.ranked[cp.cursor].id] = false
			placement[cp.cell] = puzzle.Unplaced
			cp.cursor++
			// Ranked lists are sorted, so the first acceptable untried
			// candidate is at the cursor or nowhere.
			if cp.cursor < len(cp.ranked) && cp.ranked[cp.cursor].cost <= a.threshold {
				next := cp.ranked[cp.cursor]
				placement[cp.cell] = next.id
				used[next.id] = true
				cell = cp.cell + 1
				resumed = true
				break
			}
			stack = stack[:len(stack)-1]
		}
		if !resumed {
			// No choice point has an acceptable alternative left.
			return best, bestCost, backtracks, true
		}
	}

	record(placement)
	return best, bestCost, backtracks, false
}

// rankCandidates scores every unused piece for a cell and sorts ascending
// by cost, ties broken by lowest piece id. The first cell is ranked by
// seed score; later cells sum the seam costs to the already placed left
// and top neighbors, using only the terms that apply.
func (a *assembler) rankCandidates(cell int, placement puzzle.Placement, used []bool) []candidate {
	n := a.matrix.Len()
	row, col := cell/a.grid.Cols, cell%a.grid.Cols

	cands := make([]candidate, 0, n)
	for id := 0; id < n; id++ {
		if used[id] {
			continue
		}
		var cost float64
		if cell == 0 {
			cost = a.seedScore(id)
		} else {
			if col > 0 {
				cost += a.matrix.Cost(placement[a.grid.Cell(row, col-1)], id, match.Horizontal)
			}
			if row > 0 {
				cost += a.matrix.Cost(placement[a.grid.Cell(row-1, col)], id, match.Vertical)
			}
		}
		cands = append(cands, candidate{id: id, cost: cost})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].cost != cands[j].cost {
			return cands[i].cost < cands[j].cost
		}
		return cands[i].id < cands[j].id
	})
	return cands
}

// seedScore favors the piece that is easiest to continue from at (0,0):
// the summed cost of its best rightward and best downward match across all
// other pieces.
func (a *assembler) seedScore(id int) float64 {
	n := a.matrix.Len()
	if n == 1 {
		return 0
	}
	minRight, minBelow := math.Inf(1), math.Inf(1)
	for other := 0; other < n; other++ {
		if other == id {
			continue
		}
		if c := a.matrix.Cost(id, other, match.Horizontal); c < minRight {
			minRight = c
		}
		if c := a.matrix.Cost(id, other, match.Vertical); c < minBelow {
			minBelow = c
		}
	}
	return minRight + minBelow
}

// greedyComplete fills the remaining cells of a partial placement with the
// cheapest unused piece per cell, ignoring the threshold. The inputs are
// not modified. Partial placements are always filled as a row-major
// prefix, so a single forward pass completes them.
func (a *assembler) greedyComplete(placement puzzle.Placement, used []bool) puzzle.Placement {
	p := placement.Clone()
	u := append([]bool(nil), used...)
	for cell := 0; cell < len(p); cell++ {
		if p[cell] != puzzle.Unplaced {
			continue
		}
		ranked := a.rankCandidates(cell, p, u)
		p[cell] = ranked[0].id
		u[ranked[0].id] = true
	}
	return p
}

func (a *assembler) expired(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	return !a.deadline.IsZero() && time.Now().After(a.deadline)
}
