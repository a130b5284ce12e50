package feature

import (
	"github.com/lucasb-eyer/go-colorful"

	"puzzle-solver/internal/puzzle"
)

// Color extracts the outermost pixel row or column of each side in the CIE
// Lab color space, three values (L, a, b) per border pixel. Lab is
// perceptually uniform, so Euclidean distance between two profiles tracks
// how visually continuous the seam would look.
type Color struct{}

// NewColor returns the Lab color extractor.
func NewColor() *Color { return &Color{} }

func (c *Color) Name() string { return "color" }

// Norm returns 2: Lab profiles are compared by Euclidean distance.
func (c *Color) Norm() float64 { return 2 }

// Extract samples the outermost pixels of each side in canonical direction.
// Descriptors are interleaved as [L0, a0, b0, L1, a1, b1, ...].
func (c *Color) Extract(p puzzle.Piece) (EdgeSet, error) {
	if p.Image == nil {
		return EdgeSet{}, &puzzle.InvalidPieceError{ID: p.ID, Reason: "nil image"}
	}

	bounds := p.Image.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	lab := func(x, y int) (float64, float64, float64) {
		px := p.Image.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
		col := colorful.Color{
			R: float64(px.R) / 255.0,
			G: float64(px.G) / 255.0,
			B: float64(px.B) / 255.0,
		}
		return col.Lab()
	}

	var es EdgeSet
	es[puzzle.SideTop] = make(Descriptor, 0, 3*w)
	es[puzzle.SideBottom] = make(Descriptor, 0, 3*w)
	for x := 0; x < w; x++ {
		l, a, b := lab(x, 0)
		es[puzzle.SideTop] = append(es[puzzle.SideTop], l, a, b)
		l, a, b = lab(x, h-1)
		es[puzzle.SideBottom] = append(es[puzzle.SideBottom], l, a, b)
	}
	es[puzzle.SideLeft] = make(Descriptor, 0, 3*h)
	es[puzzle.SideRight] = make(Descriptor, 0, 3*h)
	for y := 0; y < h; y++ {
		l, a, b := lab(0, y)
		es[puzzle.SideLeft] = append(es[puzzle.SideLeft], l, a, b)
		l, a, b = lab(w-1, y)
		es[puzzle.SideRight] = append(es[puzzle.SideRight], l, a, b)
	}
	return es, nil
}
