// Package report turns reconstruction results into artifacts: a stitched
// output image and a YAML reconstruction map, written side by side the way
// the solver's consumers expect them.
package report

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"puzzle-solver/internal/puzzle"
)

// Render lays the pieces of a complete placement out into a single image
// matching the original grid geometry.
func Render(ps *puzzle.PieceSet, p puzzle.Placement) (*image.NRGBA, error) {
	grid := ps.Grid()
	if !p.IsBijection(ps.Len()) {
		return nil, fmt.Errorf("placement is not a complete bijection over %d pieces", ps.Len())
	}

	w, h := ps.PieceWidth(), ps.PieceHeight()
	canvas := imaging.New(grid.Cols*w, grid.Rows*h, color.NRGBA{})
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			piece := ps.Piece(p[grid.Cell(row, col)])
			canvas = imaging.Paste(canvas, piece.Image, image.Pt(col*w, row*h))
		}
	}
	return canvas, nil
}
