package ndinterp

import "math"

// An Order is an interpolation order.
type Order int

const (
	// OrderNearest uses the single nearest sample on each axis.
	OrderNearest Order = 0
	// OrderLinear blends the two bracketing samples on each axis.
	OrderLinear Order = 1
)

// A contribution is a node on a single axis that contributes to an
// interpolated value.
type contribution struct {
	index  int
	valid  bool
	weight float64
}

func (o Order) validate() error {
	switch o {
	case OrderNearest, OrderLinear:
		return nil
	default:
		return &UnsupportedOrderError{Order: o}
	}
}

// nodes appends the raw nodes contributing at coordinate to dst. Indexes are
// not corrected for the boundary. coordinate must be finite.
func (o Order) nodes(dst []contribution, coordinate float64) []contribution {
	switch o {
	case OrderNearest:
		// math.Round rounds half away from zero.
		return append(dst, contribution{
			index:  int(math.Round(coordinate)),
			weight: 1,
		})
	case OrderLinear:
		lower := math.Floor(coordinate)
		upperWeight := coordinate - lower
		return append(dst,
			contribution{index: int(lower), weight: 1 - upperWeight},
			contribution{index: int(lower) + 1, weight: upperWeight},
		)
	default:
		panic("unreachable")
	}
}

// contributions appends the boundary-corrected nodes contributing at
// coordinate on an axis of length size to dst.
func contributions(dst []contribution, order Order, mode Mode, coordinate float64, size int) []contribution {
	start := len(dst)
	dst = order.nodes(dst, mode.reduceCoordinate(coordinate, size))
	for i := start; i < len(dst); i++ {
		index := dst[i].index
		dst[i].index = mode.fixIndex(index, size)
		dst[i].valid = mode.isValid(index, size)
	}
	return dst
}
