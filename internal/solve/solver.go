package solve

import (
	"context"
	"fmt"

	"puzzle-solver/internal/feature"
	"puzzle-solver/internal/match"
	"puzzle-solver/internal/puzzle"
)

// Method selects a reconstruction strategy.
type Method string

const (
	// MethodGradient matches pieces by Sobel gradient continuity.
	MethodGradient Method = "gradient"
	// MethodColor matches pieces by CIE Lab color continuity.
	MethodColor Method = "color"
	// MethodRandom places pieces by a seeded random permutation.
	MethodRandom Method = "random"
)

// Methods lists all recognized methods in a stable order.
func Methods() []Method {
	return []Method{MethodGradient, MethodColor, MethodRandom}
}

// Solver reconstructs a PieceSet into a complete placement.
type Solver interface {
	// Method identifies the strategy.
	Method() Method

	// Reconstruct assembles the set. The returned result always holds a
	// complete bijection; budget or deadline exhaustion is reported via
	// Result.Degraded, not an error. The context cancels the run, which
	// also surfaces as a degraded result once assembly has begun.
	Reconstruct(ctx context.Context, ps *puzzle.PieceSet) (*puzzle.Result, error)
}

// New returns the solver for the given method.
func New(m Method, opts Options) (Solver, error) {
	switch m {
	case MethodGradient:
		return &scoredSolver{ex: feature.NewGradient(), opts: opts}, nil
	case MethodColor:
		return &scoredSolver{ex: feature.NewColor(), opts: opts}, nil
	case MethodRandom:
		return &randomSolver{opts: opts}, nil
	}
	return nil, fmt.Errorf("unknown method %q", m)
}

// scoredSolver runs the full pipeline for the gradient and color
// strategies: feature extraction, compatibility matrix, assembly.
type scoredSolver struct {
	ex   feature.Extractor
	opts Options
}

func (s *scoredSolver) Method() Method { return Method(s.ex.Name()) }

func (s *scoredSolver) Reconstruct(ctx context.Context, ps *puzzle.PieceSet) (*puzzle.Result, error) {
	sets, err := feature.ExtractAll(s.ex, ps)
	if err != nil {
		return nil, err
	}

	m, err := match.Build(ctx, sets, s.ex.Norm())
	if err != nil {
		return nil, err
	}

	asm := newAssembler(ps.Grid(), m, s.opts)
	pl, cost, backtracks, degraded := asm.run(ctx)

	res := &puzzle.Result{
		Placement:  pl,
		Grid:       ps.Grid(),
		Method:     string(s.Method()),
		TotalCost:  cost,
		Degraded:   degraded,
		Backtracks: backtracks,
	}
	if truth := ps.GroundTruth(); truth != nil {
		res.Accuracy = pl.Accuracy(truth)
		res.AccuracyKnown = true
	}
	return res, nil
}
