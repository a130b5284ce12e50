// Package slicer builds puzzles: it cuts a source image into an equal
// grid of square pieces, shuffles them with a seeded permutation, and
// keeps the ground-truth arrangement for accuracy reporting.
//
// Sliced sets can be persisted to a directory ("<name>_<N>slices/" with
// one PNG per piece and a YAML manifest holding the ground truth) and
// loaded back, so slicing and solving can run as separate invocations.
package slicer
