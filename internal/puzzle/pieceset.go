package puzzle

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Side identifies one edge of a square piece.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Grid is the rows x cols layout pieces must be restored into.
type Grid struct {
	Rows int
	Cols int
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int { return g.Rows * g.Cols }

// Cell returns the row-major index of (row, col).
func (g Grid) Cell(row, col int) int { return row*g.Cols + col }

func (g Grid) String() string { return fmt.Sprintf("%dx%d", g.Rows, g.Cols) }

// SquareGrid derives an n x n grid from a piece count that must be a
// perfect square. It returns an InvalidGridError otherwise.
func SquareGrid(pieces int) (Grid, error) {
	side := int(math.Sqrt(float64(pieces)))
	if side == 0 || side*side != pieces {
		return Grid{}, &InvalidGridError{Pieces: pieces}
	}
	return Grid{Rows: side, Cols: side}, nil
}

// Piece is one square sub-image of the original image, identified by id.
// The id is the piece's position in the (possibly shuffled) input order.
type Piece struct {
	ID    int
	Image *image.NRGBA
}

// PieceSet holds the immutable piece collection and the target grid shape.
//
// Construct via NewPieceSet; a zero PieceSet is not usable. Once built, a
// PieceSet is read-only and safe for concurrent use by multiple solver runs.
type PieceSet struct {
	pieces      []Piece
	grid        Grid
	pieceWidth  int
	pieceHeight int
	groundTruth []int
}

// NewPieceSet validates a piece collection against a grid shape and builds
// the set. If grid is the zero value, a square grid is derived from the
// piece count. Piece images are cloned to NRGBA so later mutation of the
// inputs cannot affect the set.
//
// Errors:
//   - *InvalidGridError: count/shape mismatch (see SquareGrid).
//   - *InvalidPieceError: a nil or empty piece image.
//   - *PieceSizeMismatchError: inconsistent piece dimensions.
func NewPieceSet(images []image.Image, grid Grid) (*PieceSet, error) {
	if grid == (Grid{}) {
		g, err := SquareGrid(len(images))
		if err != nil {
			return nil, err
		}
		grid = g
	}
	if grid.Rows <= 0 || grid.Cols <= 0 || grid.Cells() != len(images) {
		return nil, &InvalidGridError{Pieces: len(images), Rows: grid.Rows, Cols: grid.Cols}
	}

	ps := &PieceSet{grid: grid, pieces: make([]Piece, 0, len(images))}
	for id, img := range images {
		if img == nil {
			return nil, &InvalidPieceError{ID: id, Reason: "nil image"}
		}
		b := img.Bounds()
		if b.Dx() <= 0 || b.Dy() <= 0 {
			return nil, &InvalidPieceError{ID: id, Reason: "empty image"}
		}
		if id == 0 {
			ps.pieceWidth, ps.pieceHeight = b.Dx(), b.Dy()
		} else if b.Dx() != ps.pieceWidth || b.Dy() != ps.pieceHeight {
			return nil, &PieceSizeMismatchError{
				ID: id, Width: b.Dx(), Height: b.Dy(),
				WantWidth: ps.pieceWidth, WantHeight: ps.pieceHeight,
			}
		}
		ps.pieces = append(ps.pieces, Piece{ID: id, Image: imaging.Clone(img)})
	}
	return ps, nil
}

// Len returns the number of pieces.
func (ps *PieceSet) Len() int { return len(ps.pieces) }

// Grid returns the target grid shape.
func (ps *PieceSet) Grid() Grid { return ps.grid }

// Piece returns the piece with the given id.
func (ps *PieceSet) Piece(id int) Piece { return ps.pieces[id] }

// PieceWidth returns the shared piece width in pixels.
func (ps *PieceSet) PieceWidth() int { return ps.pieceWidth }

// PieceHeight returns the shared piece height in pixels.
func (ps *PieceSet) PieceHeight() int { return ps.pieceHeight }

// SetGroundTruth attaches the original-position permutation: truth[cell] is
// the piece id that belongs at that row-major cell. It is used only for
// accuracy reporting, never for placement decisions.
func (ps *PieceSet) SetGroundTruth(truth []int) error {
	if len(truth) != len(ps.pieces) {
		return fmt.Errorf("ground truth has %d entries, want %d", len(truth), len(ps.pieces))
	}
	seen := make([]bool, len(ps.pieces))
	for cell, id := range truth {
		if id < 0 || id >= len(ps.pieces) || seen[id] {
			return fmt.Errorf("ground truth is not a permutation: cell %d maps to piece %d", cell, id)
		}
		seen[id] = true
	}
	ps.groundTruth = append([]int(nil), truth...)
	return nil
}

// GroundTruth returns the attached permutation, or nil if none was set.
func (ps *PieceSet) GroundTruth() []int { return ps.groundTruth }
