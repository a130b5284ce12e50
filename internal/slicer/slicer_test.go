package slicer

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"puzzle-solver/internal/puzzle"
)

// quadrantImage builds a w x h image with four solid-color quadrants.
func quadrantImage(w, h int) *image.NRGBA {
	colors := [2][2]color.NRGBA{
		{{R: 255, A: 255}, {G: 255, A: 255}},
		{{B: 255, A: 255}, {R: 255, G: 255, A: 255}},
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, colors[y*2/h][x*2/w])
		}
	}
	return img
}

func TestSlice(t *testing.T) {
	ps, err := Slice(quadrantImage(32, 32), puzzle.Grid{Rows: 2, Cols: 2})
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}

	if ps.Len() != 4 {
		t.Fatalf("Len: got %d, want 4", ps.Len())
	}
	if ps.PieceWidth() != 16 || ps.PieceHeight() != 16 {
		t.Errorf("piece size: got %dx%d, want 16x16", ps.PieceWidth(), ps.PieceHeight())
	}

	// Unshuffled slicing keeps row-major order: piece 0 is the red
	// top-left quadrant.
	if c := ps.Piece(0).Image.NRGBAAt(8, 8); c.R != 255 || c.G != 0 {
		t.Errorf("piece 0 center: got %v, want red", c)
	}
	if c := ps.Piece(3).Image.NRGBAAt(8, 8); c.R != 255 || c.G != 255 {
		t.Errorf("piece 3 center: got %v, want yellow", c)
	}

	truth := ps.GroundTruth()
	for cell, id := range truth {
		if id != cell {
			t.Errorf("unshuffled ground truth should be identity, cell %d -> %d", cell, id)
		}
	}
}

func TestSliceDiscardsRemainder(t *testing.T) {
	// 33x35 over a 2x2 grid: remainder pixels are dropped.
	ps, err := Slice(quadrantImage(33, 35), puzzle.Grid{Rows: 2, Cols: 2})
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if ps.PieceWidth() != 16 || ps.PieceHeight() != 17 {
		t.Errorf("piece size: got %dx%d, want 16x17", ps.PieceWidth(), ps.PieceHeight())
	}
}

func TestSliceErrors(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
		grid puzzle.Grid
	}{
		{"nil image", nil, puzzle.Grid{Rows: 2, Cols: 2}},
		{"zero grid", quadrantImage(32, 32), puzzle.Grid{}},
		{"grid larger than image", quadrantImage(4, 4), puzzle.Grid{Rows: 8, Cols: 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Slice(tt.img, tt.grid); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSliceShuffledIsSeededPermutation(t *testing.T) {
	img := quadrantImage(32, 32)

	first, err := SliceShuffled(img, puzzle.Grid{Rows: 2, Cols: 2}, 9)
	if err != nil {
		t.Fatalf("SliceShuffled failed: %v", err)
	}
	second, err := SliceShuffled(img, puzzle.Grid{Rows: 2, Cols: 2}, 9)
	if err != nil {
		t.Fatalf("SliceShuffled failed: %v", err)
	}

	// Equal seeds reproduce the same shuffle.
	for i := 0; i < first.Len(); i++ {
		a := first.Piece(i).Image.NRGBAAt(8, 8)
		b := second.Piece(i).Image.NRGBAAt(8, 8)
		if a != b {
			t.Fatalf("piece %d differs between equal-seed shuffles", i)
		}
	}

	// The ground truth must invert the shuffle: the piece the truth puts
	// at a cell must carry that cell's quadrant color.
	want := [4]color.NRGBA{
		{R: 255, A: 255}, {G: 255, A: 255},
		{B: 255, A: 255}, {R: 255, G: 255, A: 255},
	}
	truth := first.GroundTruth()
	if truth == nil {
		t.Fatal("shuffled set should carry a ground truth")
	}
	for cell, id := range truth {
		if got := first.Piece(id).Image.NRGBAAt(8, 8); got != want[cell] {
			t.Errorf("cell %d: ground-truth piece %d has color %v, want %v", cell, id, got, want[cell])
		}
	}
}

func TestWriteLoadRoundtrip(t *testing.T) {
	root := t.TempDir()
	ps, err := SliceShuffled(quadrantImage(32, 32), puzzle.Grid{Rows: 2, Cols: 2}, 3)
	if err != nil {
		t.Fatalf("SliceShuffled failed: %v", err)
	}

	dir, err := WriteSet(root, "quad", ps)
	if err != nil {
		t.Fatalf("WriteSet failed: %v", err)
	}
	if want := filepath.Join(root, "quad_4slices"); dir != want {
		t.Errorf("set dir: got %q, want %q", dir, want)
	}

	loaded, man, err := LoadSet(dir)
	if err != nil {
		t.Fatalf("LoadSet failed: %v", err)
	}
	if man.Name != "quad" || man.Rows != 2 || man.Cols != 2 {
		t.Errorf("manifest: got %+v", man)
	}
	if loaded.PieceWidth() != 16 || loaded.PieceHeight() != 16 {
		t.Errorf("loaded piece size: got %dx%d, want 16x16", loaded.PieceWidth(), loaded.PieceHeight())
	}

	wantTruth := ps.GroundTruth()
	gotTruth := loaded.GroundTruth()
	for cell := range wantTruth {
		if gotTruth[cell] != wantTruth[cell] {
			t.Errorf("ground truth cell %d: got %d, want %d", cell, gotTruth[cell], wantTruth[cell])
		}
	}
	for i := 0; i < ps.Len(); i++ {
		a := ps.Piece(i).Image.NRGBAAt(8, 8)
		b := loaded.Piece(i).Image.NRGBAAt(8, 8)
		if a != b {
			t.Errorf("piece %d center: got %v, want %v", i, b, a)
		}
	}
}

func TestLoadSetErrors(t *testing.T) {
	t.Run("missing manifest", func(t *testing.T) {
		if _, _, err := LoadSet(t.TempDir()); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("missing piece file", func(t *testing.T) {
		root := t.TempDir()
		ps, err := Slice(quadrantImage(32, 32), puzzle.Grid{Rows: 2, Cols: 2})
		if err != nil {
			t.Fatalf("Slice failed: %v", err)
		}
		dir, err := WriteSet(root, "quad", ps)
		if err != nil {
			t.Fatalf("WriteSet failed: %v", err)
		}
		if err := os.Remove(filepath.Join(dir, "quad_slice_002.png")); err != nil {
			t.Fatal(err)
		}
		if _, _, err := LoadSet(dir); err == nil {
			t.Error("expected error")
		}
	})
}

func TestListSets(t *testing.T) {
	root := t.TempDir()
	ps, err := Slice(quadrantImage(32, 32), puzzle.Grid{Rows: 2, Cols: 2})
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	for _, name := range []string{"beta", "alpha"} {
		if _, err := WriteSet(root, name, ps); err != nil {
			t.Fatalf("WriteSet %s failed: %v", name, err)
		}
	}
	// A matching directory without a manifest is skipped.
	if err := os.MkdirAll(filepath.Join(root, "empty_9slices"), 0o755); err != nil {
		t.Fatal(err)
	}

	sets, err := ListSets(root)
	if err != nil {
		t.Fatalf("ListSets failed: %v", err)
	}
	if len(sets) != 2 {
		t.Fatalf("got %d sets, want 2", len(sets))
	}
	if sets[0].Name != "alpha" || sets[1].Name != "beta" {
		t.Errorf("sets out of order: %+v", sets)
	}
	if sets[0].Pieces != 4 {
		t.Errorf("pieces: got %d, want 4", sets[0].Pieces)
	}
}

func TestParseSetDir(t *testing.T) {
	tests := []struct {
		dir        string
		wantName   string
		wantPieces int
		wantOK     bool
	}{
		{"photo_16slices", "photo", 16, true},
		{"my_image_64slices", "my_image", 64, true},
		{"photo", "", 0, false},
		{"photo_slices", "", 0, false},
		{"photo_xslices", "", 0, false},
		{"_16slices", "", 0, false},
	}
	for _, tt := range tests {
		name, pieces, ok := parseSetDir(tt.dir)
		if ok != tt.wantOK || name != tt.wantName || pieces != tt.wantPieces {
			t.Errorf("parseSetDir(%q) = (%q, %d, %v), want (%q, %d, %v)",
				tt.dir, name, pieces, ok, tt.wantName, tt.wantPieces, tt.wantOK)
		}
	}
}
