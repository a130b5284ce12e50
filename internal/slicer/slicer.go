package slicer

import (
	"fmt"
	"image"
	"math/rand"

	"github.com/disintegration/imaging"

	"puzzle-solver/internal/puzzle"
)

// Slice cuts img into grid.Rows x grid.Cols pieces in row-major order.
// Piece dimensions are the integer division of the image dimensions;
// remainder pixels on the right and bottom are discarded, matching the
// even-grid requirement. The returned set carries the identity ground
// truth (piece id i belongs at cell i).
func Slice(img image.Image, grid puzzle.Grid) (*puzzle.PieceSet, error) {
	pieces, err := cut(img, grid)
	if err != nil {
		return nil, err
	}
	ps, err := puzzle.NewPieceSet(pieces, grid)
	if err != nil {
		return nil, err
	}
	truth := make([]int, len(pieces))
	for i := range truth {
		truth[i] = i
	}
	if err := ps.SetGroundTruth(truth); err != nil {
		return nil, err
	}
	return ps, nil
}

// SliceShuffled cuts img and hands the pieces out in a seeded random
// order, so piece ids carry no positional information. The ground truth
// attached to the set maps each cell back to the shuffled id that belongs
// there.
func SliceShuffled(img image.Image, grid puzzle.Grid, seed int64) (*puzzle.PieceSet, error) {
	pieces, err := cut(img, grid)
	if err != nil {
		return nil, err
	}

	// perm[id] is the original cell of the piece that gets the given id.
	perm := rand.New(rand.NewSource(seed)).Perm(len(pieces))
	shuffled := make([]image.Image, len(pieces))
	truth := make([]int, len(pieces))
	for id, cell := range perm {
		shuffled[id] = pieces[cell]
		truth[cell] = id
	}

	ps, err := puzzle.NewPieceSet(shuffled, grid)
	if err != nil {
		return nil, err
	}
	if err := ps.SetGroundTruth(truth); err != nil {
		return nil, err
	}
	return ps, nil
}

func cut(img image.Image, grid puzzle.Grid) ([]image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("nil source image")
	}
	if grid.Rows <= 0 || grid.Cols <= 0 {
		return nil, &puzzle.InvalidGridError{Rows: grid.Rows, Cols: grid.Cols}
	}

	bounds := img.Bounds()
	pieceW := bounds.Dx() / grid.Cols
	pieceH := bounds.Dy() / grid.Rows
	if pieceW == 0 || pieceH == 0 {
		return nil, fmt.Errorf("image %dx%d too small for a %s grid",
			bounds.Dx(), bounds.Dy(), grid)
	}

	pieces := make([]image.Image, 0, grid.Cells())
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			x0 := bounds.Min.X + col*pieceW
			y0 := bounds.Min.Y + row*pieceH
			pieces = append(pieces, imaging.Crop(img, image.Rect(x0, y0, x0+pieceW, y0+pieceH)))
		}
	}
	return pieces, nil
}
