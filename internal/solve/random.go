package solve

import (
	"context"
	"math/rand"

	"puzzle-solver/internal/puzzle"
)

// randomSolver is the unscored baseline: it bypasses feature extraction
// and compatibility scoring entirely and assigns pieces to cells by an
// unweighted random permutation. The seed makes runs reproducible.
type randomSolver struct {
	opts Options
}

func (s *randomSolver) Method() Method { return MethodRandom }

func (s *randomSolver) Reconstruct(ctx context.Context, ps *puzzle.PieceSet) (*puzzle.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := ps.Len()
	rng := rand.New(rand.NewSource(s.opts.Seed))
	placement := puzzle.Placement(rng.Perm(n))

	res := &puzzle.Result{
		Placement: placement,
		Grid:      ps.Grid(),
		Method:    string(MethodRandom),
	}
	if truth := ps.GroundTruth(); truth != nil {
		res.Accuracy = placement.Accuracy(truth)
		res.AccuracyKnown = true
	}
	return res, nil
}
