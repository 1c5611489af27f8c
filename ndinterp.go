// Package ndinterp evaluates N-dimensional arrays at fractional coordinates.
//
// It is a generalized "resample at these coordinates" primitive: each output
// value is a weighted sum of nearby grid samples, with a configurable
// interpolation order and boundary mode.
package ndinterp

import (
	"context"

	"golang.org/x/exp/constraints"
)

// A Number is a numeric element type that an Array can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// A Grid is an N-dimensional source of samples.
type Grid interface {
	// Shape returns the extent of each axis.
	Shape() []int
	// Samples returns the samples at indexes. Every index has one in-range
	// component per axis.
	Samples(ctx context.Context, indexes [][]int) ([]float64, error)
}
