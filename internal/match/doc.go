// Package match computes pairwise edge compatibility costs between pieces.
//
// The Matrix caches, for every ordered pair of distinct pieces, the cost of
// the two meaningful touching-side combinations: A's right against B's left
// (horizontal) and A's bottom against B's top (vertical). Costs are
// nonnegative distances between edge descriptors; lower is better. The
// build is embarrassingly parallel and fans out across an errgroup; once
// built the matrix is read-only and safe for concurrent readers.
package match
