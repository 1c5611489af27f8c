package ndinterp

import (
	"context"
	"fmt"
	"slices"
)

// An Array is a dense, row-major, N-dimensional array.
type Array[T Number] struct {
	shape   []int
	strides []int
	data    []T
}

// NewArray returns a new Array with the given shape backed by data. The
// Array does not copy data.
func NewArray[T Number](shape []int, data []T) (*Array[T], error) {
	n := 1
	for axis, size := range shape {
		if size < 0 {
			return nil, fmt.Errorf("axis %d: %w: negative extent %d", axis, ErrShapeMismatch, size)
		}
		n *= size
	}
	if len(data) != n {
		return nil, fmt.Errorf("%w: %d elements for shape %v", ErrShapeMismatch, len(data), shape)
	}
	return &Array[T]{
		shape:   slices.Clone(shape),
		strides: rowMajorStrides(shape),
		data:    data,
	}, nil
}

// Shape returns a's shape.
func (a *Array[T]) Shape() []int {
	return slices.Clone(a.shape)
}

// NDim returns the number of axes of a.
func (a *Array[T]) NDim() int {
	return len(a.shape)
}

// Len returns the number of elements in a.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// Data returns a's elements in row-major order.
func (a *Array[T]) Data() []T {
	return a.data
}

// At returns the element at index. It panics if index is out of range.
func (a *Array[T]) At(index ...int) T {
	offset, ok := a.offset(index)
	if !ok {
		panic(fmt.Sprintf("index %v out of range for shape %v", index, a.shape))
	}
	return a.data[offset]
}

// Samples returns the elements at indexes as float64s.
func (a *Array[T]) Samples(ctx context.Context, indexes [][]int) ([]float64, error) {
	samples := make([]float64, len(indexes))
	for i, index := range indexes {
		offset, ok := a.offset(index)
		if !ok {
			return nil, fmt.Errorf("%v: %w for shape %v", index, ErrIndexOutOfRange, a.shape)
		}
		samples[i] = float64(a.data[offset])
	}
	return samples, nil
}

// offset returns the offset of index in a's data.
func (a *Array[T]) offset(index []int) (int, bool) {
	if len(index) != len(a.shape) {
		return 0, false
	}
	offset := 0
	for axis, i := range index {
		if i < 0 || a.shape[axis] <= i {
			return 0, false
		}
		offset += i * a.strides[axis]
	}
	return offset, true
}

// BroadcastShapes returns the shape that all of shapes broadcast to. Shapes
// are aligned at their last axis. Axes of extent 1 stretch to match.
func BroadcastShapes(shapes ...[]int) ([]int, error) {
	ndim := 0
	for _, shape := range shapes {
		ndim = max(ndim, len(shape))
	}
	result := slices.Repeat([]int{1}, ndim)
	for _, shape := range shapes {
		for i, size := range shape {
			axis := ndim - len(shape) + i
			switch {
			case size == result[axis]:
			case size == 1:
			case result[axis] == 1:
				result[axis] = size
			default:
				return nil, fmt.Errorf("%w: shapes %v are not broadcastable", ErrShapeMismatch, shapes)
			}
		}
	}
	return result, nil
}

// broadcastStrides returns strides that index a's data using indexes in
// shape, which a's shape must broadcast to.
func (a *Array[T]) broadcastStrides(shape []int) []int {
	strides := make([]int, len(shape))
	for i, size := range a.shape {
		axis := len(shape) - len(a.shape) + i
		if size != 1 {
			strides[axis] = a.strides[i]
		}
	}
	return strides
}

func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	stride := 1
	for axis := len(shape) - 1; axis >= 0; axis-- {
		strides[axis] = stride
		stride *= shape[axis]
	}
	return strides
}
