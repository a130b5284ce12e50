// Package feature computes edge descriptors used for piece matching.
//
// A descriptor is a fixed-length vector sampled along one side of a piece
// in a canonical direction: top and bottom are read left to right, left and
// right are read top to bottom. Under this convention the touching sides of
// two neighboring pieces (for example A's right against B's left) run in
// the same physical direction, so descriptors are compared index for index
// with no reversal.
//
// Two interchangeable strategies are provided: Gradient samples Sobel
// gradient magnitude along each border after grayscale conversion and
// Gaussian smoothing, which favors continuity of lines and contours across
// seams; Color samples the outermost pixels in the CIE Lab color space,
// which favors chromatic continuity.
package feature
