package feature

import (
	"fmt"

	"puzzle-solver/internal/puzzle"
)

// Descriptor is an ordered vector of feature samples for one side of one
// piece, read in the canonical direction (see the package comment).
type Descriptor []float64

// EdgeSet holds the four descriptors of one piece, indexed by puzzle.Side.
type EdgeSet [4]Descriptor

// Extractor computes the four edge descriptors of a piece. Implementations
// must be stateless and safe for concurrent use.
type Extractor interface {
	// Name identifies the strategy ("gradient" or "color").
	Name() string

	// Extract returns one descriptor per side. Descriptors for opposite
	// sides of matching pieces must have equal length so they can be
	// compared element-wise.
	Extract(p puzzle.Piece) (EdgeSet, error)

	// Norm is the L-norm the compatibility matrix should use to compare
	// descriptors produced by this strategy: 1 for absolute differences,
	// 2 for Euclidean distance.
	Norm() float64
}

// ExtractAll runs the extractor over every piece in the set, returning edge
// sets indexed by piece id.
func ExtractAll(ex Extractor, ps *puzzle.PieceSet) ([]EdgeSet, error) {
	sets := make([]EdgeSet, ps.Len())
	for id := 0; id < ps.Len(); id++ {
		es, err := ex.Extract(ps.Piece(id))
		if err != nil {
			return nil, fmt.Errorf("%s features for piece %d: %w", ex.Name(), id, err)
		}
		sets[id] = es
	}
	return sets, nil
}
