package ndinterp

import (
	"context"
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

// A CachedGrid is a Grid that caches the samples of another Grid. It is
// useful when gathering samples from the underlying Grid is expensive, for
// example when the samples are loaded lazily from disk.
type CachedGrid struct {
	grid        Grid
	shape       []int
	strides     []int
	sampleCache *lru.Cache[int, float64]
}

// A CachedGridOption sets an option on a CachedGrid.
type CachedGridOption func(*cachedGridOptions)

type cachedGridOptions struct {
	cacheSize int
}

// WithCacheSize sets the maximum number of samples held by a CachedGrid.
func WithCacheSize(cacheSize int) CachedGridOption {
	return func(o *cachedGridOptions) {
		o.cacheSize = cacheSize
	}
}

// NewCachedGrid returns a new CachedGrid in front of grid.
func NewCachedGrid(grid Grid, options ...CachedGridOption) (*CachedGrid, error) {
	o := &cachedGridOptions{
		cacheSize: 1 << 16,
	}
	for _, option := range options {
		option(o)
	}

	shape := grid.Shape()
	sampleCache, err := lru.NewWithEvict(o.cacheSize, func(int, float64) {
		sampleCacheEvictions.Inc()
	})
	if err != nil {
		return nil, err
	}
	return &CachedGrid{
		grid:        grid,
		shape:       shape,
		strides:     rowMajorStrides(shape),
		sampleCache: sampleCache,
	}, nil
}

// Shape returns g's shape.
func (g *CachedGrid) Shape() []int {
	return slices.Clone(g.shape)
}

// Samples returns the samples at indexes. Samples that are not cached are
// gathered from the underlying Grid with a single call.
func (g *CachedGrid) Samples(ctx context.Context, indexes [][]int) ([]float64, error) {
	samples := make([]float64, len(indexes))

	// Group uncached indexes by key.
	var missingIndexes [][]int
	positionsByKey := make(map[int][]int)
	for position, index := range indexes {
		key, ok := g.key(index)
		if !ok {
			return nil, fmt.Errorf("%v: %w for shape %v", index, ErrIndexOutOfRange, g.shape)
		}
		if sample, ok := g.sampleCache.Get(key); ok {
			sampleCacheHits.Inc()
			samples[position] = sample
			continue
		}
		if _, ok := positionsByKey[key]; !ok {
			sampleCacheMisses.Inc()
			missingIndexes = append(missingIndexes, index)
		}
		positionsByKey[key] = append(positionsByKey[key], position)
	}

	if len(missingIndexes) == 0 {
		return samples, nil
	}

	missingSamples, err := g.grid.Samples(ctx, missingIndexes)
	if err != nil {
		return nil, err
	}
	if len(missingSamples) != len(missingIndexes) {
		return nil, fmt.Errorf("%w: %d samples for %d indexes", ErrShapeMismatch, len(missingSamples), len(missingIndexes))
	}
	for i, index := range missingIndexes {
		key, _ := g.key(index)
		g.sampleCache.Add(key, missingSamples[i])
		for _, position := range positionsByKey[key] {
			samples[position] = missingSamples[i]
		}
	}

	return samples, nil
}

// key returns the row-major offset of index.
func (g *CachedGrid) key(index []int) (int, bool) {
	if len(index) != len(g.shape) {
		return 0, false
	}
	key := 0
	for axis, i := range index {
		if i < 0 || g.shape[axis] <= i {
			return 0, false
		}
		key += i * g.strides[axis]
	}
	return key, true
}
