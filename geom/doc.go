// Package geom provides the 2D affine geometry kernel: vectors, affine
// transforms, axis-aligned rectangles and a scalar clamp.
//
// All types are plain values. Every operation returns a new value and
// nothing is mutated in place, so values can be shared freely between
// goroutines. Invalid inputs are never rejected; NaN and Inf propagate
// through the arithmetic.
//
// The coordinate space has its origin in the top left corner with +y
// pointing down.
package geom
