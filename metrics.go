package ndinterp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	interpolationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ndinterp_interpolations_total",
		Help: "The total number of interpolation calls",
	})
	pointsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ndinterp_points_total",
		Help: "The total number of points interpolated",
	})
	cornersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ndinterp_corners_total",
		Help: "The total number of interpolation corners visited",
	})
	fillCornersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ndinterp_fill_corners_total",
		Help: "The total number of corners replaced by the fill value",
	})
	validationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ndinterp_validation_errors_total",
		Help: "The total number of rejected interpolation calls",
	}, []string{"reason"})
	sampleCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ndinterp_sample_cache_hits_total",
		Help: "The total number of hits on sample caches",
	})
	sampleCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ndinterp_sample_cache_misses_total",
		Help: "The total number of misses on sample caches",
	})
	sampleCacheEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ndinterp_sample_cache_evictions_total",
		Help: "The total number of evictions from sample caches",
	})
)
