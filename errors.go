package ndinterp

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrShapeMismatch is returned when array or coordinate shapes are
	// inconsistent.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrIndexOutOfRange is returned when a sample is requested outside an
	// array.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// An UnsupportedModeError is returned when a boundary mode is not supported.
type UnsupportedModeError struct {
	Mode Mode
}

func (e *UnsupportedModeError) Error() string {
	modeStrs := make([]string, 0, len(supportedModes))
	for _, mode := range supportedModes {
		modeStrs = append(modeStrs, string(mode))
	}
	return fmt.Sprintf("%q: unsupported mode, supported modes are %s", string(e.Mode), strings.Join(modeStrs, ", "))
}

func (e *UnsupportedModeError) Unwrap() error {
	return errors.ErrUnsupported
}

// An UnsupportedOrderError is returned when an interpolation order is not
// supported.
type UnsupportedOrderError struct {
	Order Order
}

func (e *UnsupportedOrderError) Error() string {
	return fmt.Sprintf("%d: unsupported order, supported orders are 0 and 1", int(e.Order))
}

func (e *UnsupportedOrderError) Unwrap() error {
	return errors.ErrUnsupported
}
