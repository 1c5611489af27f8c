package ndinterp

import (
	"math"
	"slices"
)

// A Mode determines how indexes outside an axis are mapped back into it.
type Mode string

const (
	// ModeConstant leaves indexes unchanged and replaces samples outside the
	// array with the fill value.
	ModeConstant Mode = "constant"
	// ModeNearest clamps indexes to the nearest edge sample.
	ModeNearest Mode = "nearest"
	// ModeWrap wraps indexes around to the opposite edge.
	ModeWrap Mode = "wrap"
	// ModeMirror reflects indexes about the edge samples, so -1 maps to 1.
	ModeMirror Mode = "mirror"
	// ModeReflect reflects indexes about the edges of the edge cells, so -1
	// maps to 0.
	ModeReflect Mode = "reflect"
)

var supportedModes = []Mode{
	ModeConstant,
	ModeNearest,
	ModeWrap,
	ModeMirror,
	ModeReflect,
}

// Modes returns all supported modes.
func Modes() []Mode {
	return slices.Clone(supportedModes)
}

// ParseMode returns the Mode named s.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if err := mode.validate(); err != nil {
		return "", err
	}
	return mode, nil
}

func (m Mode) String() string {
	return string(m)
}

func (m Mode) validate() error {
	switch m {
	case ModeConstant, ModeNearest, ModeWrap, ModeMirror, ModeReflect:
		return nil
	default:
		return &UnsupportedModeError{Mode: m}
	}
}

// fixIndex maps index onto an axis of length size. The result is in [0, size)
// for every mode except ModeConstant, which returns index unchanged.
func (m Mode) fixIndex(index, size int) int {
	switch m {
	case ModeConstant:
		return index
	case ModeNearest:
		return min(max(index, 0), size-1)
	case ModeWrap:
		return floorMod(index, size)
	case ModeMirror:
		return mirrorIndex(index, size)
	case ModeReflect:
		return floorDiv(mirrorIndex(2*index+1, 2*size+1)-1, 2)
	default:
		panic("unreachable")
	}
}

// reduceCoordinate returns a coordinate that m maps to the same samples as
// coordinate and that is small enough to convert to an int. Periodic modes
// subtract a whole number of periods, which keeps the sign and the fractional
// part. The other modes clamp to [-2, size+1], beyond which every node is
// either outside the array or clamped to the same edge.
func (m Mode) reduceCoordinate(coordinate float64, size int) float64 {
	switch {
	case m == ModeWrap:
		return math.Mod(coordinate, float64(size))
	case m == ModeMirror && size > 1:
		return math.Mod(coordinate, float64(2*(size-1)))
	case m == ModeReflect:
		return math.Mod(coordinate, float64(2*size))
	default:
		return min(max(coordinate, -2), float64(size)+1)
	}
}

// isValid returns whether index addresses a real sample under m.
func (m Mode) isValid(index, size int) bool {
	if m != ModeConstant {
		return true
	}
	return 0 <= index && index < size
}

// mirrorIndex evaluates a triangular wave with period 2*(size-1) whose peaks
// are at 0 and size-1.
func mirrorIndex(index, size int) int {
	s := size - 1
	if s == 0 {
		return 0
	}
	t := floorMod(index+s, 2*s)
	if t < s {
		return s - t
	}
	return t - s
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
