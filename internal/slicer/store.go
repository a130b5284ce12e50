package slicer

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"gopkg.in/yaml.v3"

	"puzzle-solver/internal/puzzle"
)

const manifestName = "order.yaml"

// Manifest records the shape and ground truth of a persisted piece set.
type Manifest struct {
	Name        string         `yaml:"name"`
	Rows        int            `yaml:"rows"`
	Cols        int            `yaml:"cols"`
	PieceWidth  int            `yaml:"piece_width"`
	PieceHeight int            `yaml:"piece_height"`
	Pieces      []ManifestItem `yaml:"pieces"`
}

// ManifestItem maps one stored piece file to its original grid cell.
type ManifestItem struct {
	File string `yaml:"file"`
	ID   int    `yaml:"id"`
	Row  int    `yaml:"row"`
	Col  int    `yaml:"col"`
}

// WriteSet persists a piece set under root as "<name>_<N>slices/": one PNG
// per piece named "<name>_slice_NNN.png" plus a YAML manifest with the
// ground-truth arrangement. The set must carry a ground truth.
func WriteSet(root, name string, ps *puzzle.PieceSet) (string, error) {
	truth := ps.GroundTruth()
	if truth == nil {
		return "", fmt.Errorf("piece set has no ground truth to persist")
	}

	dir := filepath.Join(root, fmt.Sprintf("%s_%dslices", name, ps.Len()))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	grid := ps.Grid()
	man := Manifest{
		Name:        name,
		Rows:        grid.Rows,
		Cols:        grid.Cols,
		PieceWidth:  ps.PieceWidth(),
		PieceHeight: ps.PieceHeight(),
	}
	for cell, id := range truth {
		file := fmt.Sprintf("%s_slice_%03d.png", name, id)
		if err := imaging.Save(ps.Piece(id).Image, filepath.Join(dir, file)); err != nil {
			return "", fmt.Errorf("failed to save piece %d: %w", id, err)
		}
		man.Pieces = append(man.Pieces, ManifestItem{
			File: file,
			ID:   id,
			Row:  cell / grid.Cols,
			Col:  cell % grid.Cols,
		})
	}

	data, err := yaml.Marshal(&man)
	if err != nil {
		return "", fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, manifestName), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}
	return dir, nil
}

// LoadSet reads a directory written by WriteSet back into a PieceSet with
// its ground truth attached.
func LoadSet(dir string) (*puzzle.PieceSet, *Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestName))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var man Manifest
	if err := yaml.Unmarshal(data, &man); err != nil {
		return nil, nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	grid := puzzle.Grid{Rows: man.Rows, Cols: man.Cols}
	if grid.Cells() != len(man.Pieces) {
		return nil, nil, &puzzle.InvalidGridError{Pieces: len(man.Pieces), Rows: grid.Rows, Cols: grid.Cols}
	}

	images := make([]image.Image, grid.Cells())
	truth := make([]int, grid.Cells())
	for _, item := range man.Pieces {
		if item.ID < 0 || item.ID >= len(images) {
			return nil, nil, fmt.Errorf("manifest references piece id %d out of range", item.ID)
		}
		img, err := imaging.Open(filepath.Join(dir, item.File))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load piece %q: %w", item.File, err)
		}
		images[item.ID] = img
		truth[item.Row*grid.Cols+item.Col] = item.ID
	}

	ps, err := puzzle.NewPieceSet(images, grid)
	if err != nil {
		return nil, nil, err
	}
	if err := ps.SetGroundTruth(truth); err != nil {
		return nil, nil, fmt.Errorf("manifest ground truth: %w", err)
	}
	return ps, &man, nil
}

// SetInfo describes one sliced set found on disk.
type SetInfo struct {
	Name   string
	Pieces int
	Dir    string
}

// ListSets scans root for directories matching "<name>_<N>slices" that
// contain a manifest, sorted by name then piece count.
func ListSets(root string) ([]SetInfo, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", root, err)
	}

	var sets []SetInfo
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name, pieces, ok := parseSetDir(e.Name())
		if !ok {
			continue
		}
		dir := filepath.Join(root, e.Name())
		if _, err := os.Stat(filepath.Join(dir, manifestName)); err != nil {
			continue
		}
		sets = append(sets, SetInfo{Name: name, Pieces: pieces, Dir: dir})
	}
	sort.Slice(sets, func(i, j int) bool {
		if sets[i].Name != sets[j].Name {
			return sets[i].Name < sets[j].Name
		}
		return sets[i].Pieces < sets[j].Pieces
	})
	return sets, nil
}

func parseSetDir(dir string) (name string, pieces int, ok bool) {
	if !strings.HasSuffix(dir, "slices") {
		return "", 0, false
	}
	idx := strings.LastIndex(dir, "_")
	if idx <= 0 {
		return "", 0, false
	}
	count := strings.TrimSuffix(dir[idx+1:], "slices")
	n, err := strconv.Atoi(count)
	if err != nil || n <= 0 {
		return "", 0, false
	}
	return dir[:idx], n, true
}
