package feature

import (
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"

	"puzzle-solver/internal/puzzle"
)

// Gradient extracts Sobel gradient magnitude along each border. Pieces that
// were neighbors in the source image tend to have lines and contours that
// continue across the seam, so their touching gradient profiles are close.
type Gradient struct {
	// BlurRadius is the Gaussian smoothing radius applied before the
	// gradient is computed, to keep pixel noise out of the profiles.
	// Zero or negative disables smoothing.
	BlurRadius float64
}

// NewGradient returns a Gradient extractor with the default smoothing
// radius.
func NewGradient() *Gradient {
	return &Gradient{BlurRadius: 1.0}
}

func (g *Gradient) Name() string { return "gradient" }

// Norm returns 1: gradient profiles are compared by mean absolute
// difference.
func (g *Gradient) Norm() float64 { return 1 }

// Extract computes the gradient magnitude plane of the piece and samples
// its outermost row or column for each side, in canonical direction.
func (g *Gradient) Extract(p puzzle.Piece) (EdgeSet, error) {
	if p.Image == nil {
		return EdgeSet{}, &puzzle.InvalidPieceError{ID: p.ID, Reason: "nil image"}
	}

	gray := effect.Grayscale(p.Image)
	if g.BlurRadius > 0 {
		gray = blur.Gaussian(gray, g.BlurRadius)
	}

	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// Luminance plane; after Grayscale all channels are equal.
	lum := make([][]float64, h)
	for y := 0; y < h; y++ {
		lum[y] = make([]float64, w)
		for x := 0; x < w; x++ {
			lum[y][x] = float64(gray.RGBAAt(bounds.Min.X+x, bounds.Min.Y+y).R) / 255.0
		}
	}

	mag := sobelMagnitude(lum, w, h)

	var es EdgeSet
	es[puzzle.SideTop] = make(Descriptor, w)
	es[puzzle.SideBottom] = make(Descriptor, w)
	for x := 0; x < w; x++ {
		es[puzzle.SideTop][x] = mag[0][x]
		es[puzzle.SideBottom][x] = mag[h-1][x]
	}
	es[puzzle.SideLeft] = make(Descriptor, h)
	es[puzzle.SideRight] = make(Descriptor, h)
	for y := 0; y < h; y++ {
		es[puzzle.SideLeft][y] = mag[y][0]
		es[puzzle.SideRight][y] = mag[y][w-1]
	}
	return es, nil
}

// sobelMagnitude computes per-pixel gradient magnitude with 3x3 Sobel
// kernels. Border pixels use clamped (replicated) neighbors.
func sobelMagnitude(plane [][]float64, w, h int) [][]float64 {
	sobelX := [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY := [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}

	mag := make([][]float64, h)
	for y := 0; y < h; y++ {
		mag[y] = make([]float64, w)
		for x := 0; x < w; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					py := clamp(y+ky, 0, h-1)
					px := clamp(x+kx, 0, w-1)
					gx += plane[py][px] * sobelX[ky+1][kx+1]
					gy += plane[py][px] * sobelY[ky+1][kx+1]
				}
			}
			mag[y][x] = math.Sqrt(gx*gx + gy*gy)
		}
	}
	return mag
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
