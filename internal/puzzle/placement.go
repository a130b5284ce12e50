package puzzle

// Placement maps row-major grid cells to piece ids. A value of Unplaced
// marks a cell that has not been filled yet.
type Placement []int

// Unplaced marks an empty cell in a Placement.
const Unplaced = -1

// NewPlacement returns a placement with every cell empty.
func NewPlacement(cells int) Placement {
	p := make(Placement, cells)
	for i := range p {
		p[i] = Unplaced
	}
	return p
}

// Clone returns an independent copy of the placement.
func (p Placement) Clone() Placement {
	return append(Placement(nil), p...)
}

// Complete reports whether every cell is filled.
func (p Placement) Complete() bool {
	for _, id := range p {
		if id == Unplaced {
			return false
		}
	}
	return true
}

// IsBijection reports whether the placement is complete and uses each of
// the n piece ids exactly once.
func (p Placement) IsBijection(n int) bool {
	if len(p) != n {
		return false
	}
	seen := make([]bool, n)
	for _, id := range p {
		if id < 0 || id >= n || seen[id] {
			return false
		}
		seen[id] = true
	}
	return true
}

// Accuracy returns the fraction of cells whose placed piece id equals the
// ground-truth id for that cell. Empty cells never count as correct.
func (p Placement) Accuracy(truth []int) float64 {
	if len(truth) == 0 || len(truth) != len(p) {
		return 0
	}
	correct := 0
	for cell, id := range p {
		if id != Unplaced && id == truth[cell] {
			correct++
		}
	}
	return float64(correct) / float64(len(p))
}

// Result is the outcome of one reconstruction run.
type Result struct {
	// Placement is the assembled grid. It is always a complete bijection:
	// degraded runs are completed greedily rather than left partial.
	Placement Placement

	// Grid is the shape the placement was assembled into.
	Grid Grid

	// Method is the solver that produced the result ("gradient", "color"
	// or "random").
	Method string

	// TotalCost is the sum of pairwise seam costs along all internal
	// horizontal and vertical adjacencies. The random baseline performs
	// no scoring and reports zero.
	TotalCost float64

	// Accuracy is the fraction of correctly positioned pieces, valid only
	// when AccuracyKnown is true (a ground truth was supplied).
	Accuracy      float64
	AccuracyKnown bool

	// Degraded is set when the backtrack budget or deadline ran out before
	// a within-threshold complete assembly was found. The placement is the
	// best complete assignment discovered before giving up.
	Degraded bool

	// Backtracks is the number of backtrack events the search performed.
	Backtracks int
}
