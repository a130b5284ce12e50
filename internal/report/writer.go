package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"gopkg.in/yaml.v3"

	"puzzle-solver/internal/puzzle"
)

// Map is the on-disk reconstruction map accompanying a stitched image.
type Map struct {
	Name       string     `yaml:"name"`
	Method     string     `yaml:"method"`
	Rows       int        `yaml:"rows"`
	Cols       int        `yaml:"cols"`
	TotalCost  float64    `yaml:"total_cost"`
	Accuracy   *float64   `yaml:"accuracy,omitempty"`
	Degraded   bool       `yaml:"degraded"`
	Backtracks int        `yaml:"backtracks"`
	Cells      []CellItem `yaml:"cells"`
}

// CellItem records which piece ended up at one grid cell.
type CellItem struct {
	Row   int `yaml:"row"`
	Col   int `yaml:"col"`
	Piece int `yaml:"piece"`
}

// WriteResult renders a result and writes both artifacts into
// root/<name>_<N>slices/: "<method>_reconstructed.png" and
// "<method>_reconstruction_map.yaml". It returns the image path.
func WriteResult(root, name string, ps *puzzle.PieceSet, res *puzzle.Result) (string, error) {
	img, err := Render(ps, res.Placement)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(root, fmt.Sprintf("%s_%dslices", name, ps.Len()))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	imgPath := filepath.Join(dir, fmt.Sprintf("%s_reconstructed.png", res.Method))
	if err := imaging.Save(img, imgPath); err != nil {
		return "", fmt.Errorf("failed to save reconstructed image: %w", err)
	}

	m := Map{
		Name:       name,
		Method:     res.Method,
		Rows:       res.Grid.Rows,
		Cols:       res.Grid.Cols,
		TotalCost:  res.TotalCost,
		Degraded:   res.Degraded,
		Backtracks: res.Backtracks,
	}
	if res.AccuracyKnown {
		acc := res.Accuracy
		m.Accuracy = &acc
	}
	for cell, id := range res.Placement {
		m.Cells = append(m.Cells, CellItem{
			Row:   cell / res.Grid.Cols,
			Col:   cell % res.Grid.Cols,
			Piece: id,
		})
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return "", fmt.Errorf("failed to encode reconstruction map: %w", err)
	}
	mapPath := filepath.Join(dir, fmt.Sprintf("%s_reconstruction_map.yaml", res.Method))
	if err := os.WriteFile(mapPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write reconstruction map: %w", err)
	}
	return imgPath, nil
}
