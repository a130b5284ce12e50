package puzzle

import "fmt"

// InvalidGridError reports a grid shape that cannot hold the piece count:
// either the count is not a perfect square and no explicit shape was given,
// or the supplied rows*cols does not equal the count.
type InvalidGridError struct {
	Pieces int
	Rows   int
	Cols   int
}

func (e *InvalidGridError) Error() string {
	if e.Rows == 0 && e.Cols == 0 {
		return fmt.Sprintf("piece count %d is not a perfect square and no grid shape was given", e.Pieces)
	}
	return fmt.Sprintf("grid %dx%d does not hold %d pieces", e.Rows, e.Cols, e.Pieces)
}

// PieceSizeMismatchError reports a piece whose dimensions differ from the
// first piece in the set. All pieces in a set must share one size.
type PieceSizeMismatchError struct {
	ID            int
	Width, Height int
	WantWidth     int
	WantHeight    int
}

func (e *PieceSizeMismatchError) Error() string {
	return fmt.Sprintf("piece %d is %dx%d, want %dx%d",
		e.ID, e.Width, e.Height, e.WantWidth, e.WantHeight)
}

// InvalidPieceError reports a piece whose image data is unusable.
type InvalidPieceError struct {
	ID     int
	Reason string
}

func (e *InvalidPieceError) Error() string {
	return fmt.Sprintf("piece %d: %s", e.ID, e.Reason)
}
