package ndinterp

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// MapCoordinates returns input evaluated at coordinates. coordinates must
// contain one array per axis of input, and the arrays must broadcast to a
// common shape, which is the shape of the result.
//
// The output positions are split into chunks that are interpolated
// concurrently. The result does not depend on the chunk size or the
// concurrency.
func MapCoordinates[T Number](ctx context.Context, input *Array[T], coordinates []*Array[float64], order Order, mode Mode, options ...Option) (*Array[T], error) {
	interpolationsTotal.Inc()
	o := newOptions(options...)

	if len(coordinates) != input.NDim() {
		validationErrorsTotal.WithLabelValues("shape").Inc()
		return nil, fmt.Errorf("%w: %d coordinate arrays for %d-dimensional input", ErrShapeMismatch, len(coordinates), input.NDim())
	}
	if err := validate(order, mode, input.shape); err != nil {
		return nil, err
	}

	coordinateShapes := make([][]int, len(coordinates))
	for axis, c := range coordinates {
		coordinateShapes[axis] = c.shape
	}
	shape, err := BroadcastShapes(coordinateShapes...)
	if err != nil {
		validationErrorsTotal.WithLabelValues("shape").Inc()
		return nil, err
	}
	coordinateStrides := make([][]int, len(coordinates))
	for axis, c := range coordinates {
		coordinateStrides[axis] = c.broadcastStrides(shape)
	}

	n := 1
	for _, size := range shape {
		n *= size
	}
	data := make([]T, n)
	integer := isInteger[T]()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for start := 0; start < n; start += o.chunkSize {
		end := min(start+o.chunkSize, n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			points := chunkPoints(coordinates, coordinateStrides, shape, start, end)
			values, err := interpolate(ctx, input, input.shape, points, order, mode, o.fillValue)
			if err != nil {
				return err
			}
			for i, value := range values {
				data[start+i] = fromFloat64[T](value, integer, o.integerRounding)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Array[T]{
		shape:   shape,
		strides: rowMajorStrides(shape),
		data:    data,
	}, nil
}

// chunkPoints returns the coordinates of the output positions in [start, end)
// of shape.
func chunkPoints(coordinates []*Array[float64], coordinateStrides [][]int, shape []int, start, end int) [][]float64 {
	ndim := len(coordinates)
	pointsFlat := make([]float64, ndim*(end-start))
	points := make([][]float64, end-start)
	position := unravel(start, shape)
	for i := range points {
		point := pointsFlat[ndim*i : ndim*(i+1) : ndim*(i+1)]
		for axis, c := range coordinates {
			offset := 0
			for k, p := range position {
				offset += p * coordinateStrides[axis][k]
			}
			point[axis] = c.data[offset]
		}
		points[i] = point
		increment(position, shape)
	}
	return points
}

// unravel returns the position of the offset-th element of shape in
// row-major order.
func unravel(offset int, shape []int) []int {
	position := make([]int, len(shape))
	for axis := len(shape) - 1; axis >= 0; axis-- {
		position[axis] = offset % shape[axis]
		offset /= shape[axis]
	}
	return position
}

// increment advances position to the next element of shape in row-major
// order.
func increment(position, shape []int) {
	for axis := len(position) - 1; axis >= 0; axis-- {
		position[axis]++
		if position[axis] < shape[axis] {
			return
		}
		position[axis] = 0
	}
}

func isInteger[T Number]() bool {
	half := 0.5
	return T(half) == 0
}

func fromFloat64[T Number](value float64, integer, round bool) T {
	if integer {
		if math.IsNaN(value) {
			return 0
		}
		if round {
			value = math.Round(value)
		}
	}
	return T(value)
}
