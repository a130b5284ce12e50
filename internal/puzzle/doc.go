// Package puzzle defines the core data model for image puzzle reconstruction.
//
// A puzzle is an unordered collection of equally sized square image pieces
// (a PieceSet) together with the grid shape they must be restored into.
// Solvers produce a Placement, a row-major mapping of grid cells to piece
// ids, wrapped in a Result with the total seam cost and, when a ground
// truth is known, an accuracy figure.
//
// # Coordinate System
//
// Grid cells are addressed row-major: cell index = row*cols + col, with
// (0,0) the top-left cell. Piece ids are assigned by position in the input
// collection and are stable for the lifetime of a PieceSet.
//
// # Validation
//
// NewPieceSet is the single entry point for building a valid puzzle. It
// rejects empty or inconsistent inputs with typed errors (InvalidGridError,
// PieceSizeMismatchError, InvalidPieceError) so callers can distinguish
// configuration mistakes from corrupt input data.
package puzzle
