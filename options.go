package ndinterp

import "runtime"

// An Option sets an option on an interpolation.
type Option func(*options)

type options struct {
	fillValue       float64
	concurrency     int
	chunkSize       int
	integerRounding bool
}

func newOptions(opts ...Option) *options {
	o := &options{
		concurrency: runtime.GOMAXPROCS(0),
		chunkSize:   4096,
	}
	for _, opt := range opts {
		opt(o)
	}
	o.concurrency = max(o.concurrency, 1)
	o.chunkSize = max(o.chunkSize, 1)
	return o
}

// WithFillValue sets the value used for samples outside the array in
// ModeConstant. The default is zero.
func WithFillValue(fillValue float64) Option {
	return func(o *options) {
		o.fillValue = fillValue
	}
}

// WithConcurrency sets the maximum number of chunks that MapCoordinates
// interpolates at once. The default is runtime.GOMAXPROCS(0).
func WithConcurrency(concurrency int) Option {
	return func(o *options) {
		o.concurrency = concurrency
	}
}

// WithChunkSize sets the number of output positions in each chunk of work
// in MapCoordinates.
func WithChunkSize(chunkSize int) Option {
	return func(o *options) {
		o.chunkSize = chunkSize
	}
}

// WithIntegerRounding sets whether results are rounded half away from zero
// before being stored in an integer-typed array. If false, results are
// truncated toward zero.
func WithIntegerRounding(integerRounding bool) Option {
	return func(o *options) {
		o.integerRounding = integerRounding
	}
}
