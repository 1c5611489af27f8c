package ndinterp

import (
	"context"
	"fmt"
	"math"
	"slices"
)

// A corner is one vertex of the interpolation hypercube around a point.
type corner struct {
	point  int
	weight float64
	sample int // Index into the gathered samples, or -1 for the fill value.
}

// Interpolate returns the values of grid at points, each of which has one
// coordinate per axis of grid. All samples are gathered with a single call to
// grid.Samples. Points with a non-finite coordinate interpolate to NaN.
func Interpolate(ctx context.Context, grid Grid, points [][]float64, order Order, mode Mode, options ...Option) ([]float64, error) {
	interpolationsTotal.Inc()
	o := newOptions(options...)
	shape := grid.Shape()
	for i, point := range points {
		if len(point) != len(shape) {
			validationErrorsTotal.WithLabelValues("shape").Inc()
			return nil, fmt.Errorf("point %d: %w: %d coordinates for %d axes", i, ErrShapeMismatch, len(point), len(shape))
		}
	}
	if err := validate(order, mode, shape); err != nil {
		return nil, err
	}
	return interpolate(ctx, grid, shape, points, order, mode, o.fillValue)
}

// validate checks that order and mode are supported and that mode can map
// indexes onto every axis of shape.
func validate(order Order, mode Mode, shape []int) error {
	if err := mode.validate(); err != nil {
		validationErrorsTotal.WithLabelValues("mode").Inc()
		return err
	}
	if err := order.validate(); err != nil {
		validationErrorsTotal.WithLabelValues("order").Inc()
		return err
	}
	if mode != ModeConstant {
		for axis, size := range shape {
			if size == 0 {
				validationErrorsTotal.WithLabelValues("shape").Inc()
				return fmt.Errorf("axis %d: %w: zero extent in mode %s", axis, ErrShapeMismatch, mode)
			}
		}
	}
	return nil
}

// interpolate interpolates grid at points. Its arguments must already be
// validated.
func interpolate(ctx context.Context, grid Grid, shape []int, points [][]float64, order Order, mode Mode, fillValue float64) ([]float64, error) {
	ndim := len(shape)
	result := make([]float64, len(points))

	var (
		axes     = make([][]contribution, ndim)
		counters = make([]int, ndim)
		index    = make([]int, ndim)
		corners  []corner
		indexes  [][]int
	)
	for i, point := range points {
		if !allFinite(point) {
			result[i] = math.NaN()
			continue
		}

		// Fix every axis independently before visiting any corner.
		for axis, coordinate := range point {
			axes[axis] = contributions(axes[axis][:0], order, mode, coordinate, shape[axis])
		}

		// Visit every corner of the hypercube exactly once.
		clear(counters)
		for {
			weight, valid := 1.0, true
			for axis, counter := range counters {
				c := axes[axis][counter]
				index[axis] = c.index
				valid = valid && c.valid
				weight *= c.weight
			}
			if valid {
				corners = append(corners, corner{point: i, weight: weight, sample: len(indexes)})
				indexes = append(indexes, slices.Clone(index))
			} else {
				corners = append(corners, corner{point: i, weight: weight, sample: -1})
			}
			if !nextCorner(counters, axes) {
				break
			}
		}
	}

	var samples []float64
	if len(indexes) > 0 {
		var err error
		samples, err = grid.Samples(ctx, indexes)
		if err != nil {
			return nil, err
		}
		if len(samples) != len(indexes) {
			return nil, fmt.Errorf("%w: %d samples for %d indexes", ErrShapeMismatch, len(samples), len(indexes))
		}
	}

	fillCorners := 0
	for _, c := range corners {
		value := fillValue
		if c.sample >= 0 {
			value = samples[c.sample]
		} else {
			fillCorners++
		}
		result[c.point] += c.weight * value
	}

	pointsTotal.Add(float64(len(points)))
	cornersTotal.Add(float64(len(corners)))
	fillCornersTotal.Add(float64(fillCorners))

	return result, nil
}

// nextCorner advances counters to the next corner, with the last axis moving
// fastest. It returns false when every corner has been visited.
func nextCorner(counters []int, axes [][]contribution) bool {
	for axis := len(counters) - 1; axis >= 0; axis-- {
		counters[axis]++
		if counters[axis] < len(axes[axis]) {
			return true
		}
		counters[axis] = 0
	}
	return false
}

func allFinite(point []float64) bool {
	for _, coordinate := range point {
		if math.IsNaN(coordinate) || math.IsInf(coordinate, 0) {
			return false
		}
	}
	return true
}
