package multiplier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	multiplicationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "piranha_multiplications_total",
			Help: "The total number of series multiplications processed",
		},
		[]string{"strategy", "status"},
	)
	multiplicationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "piranha_multiplication_duration_seconds",
			Help: "The duration of series multiplications in seconds",
		},
		[]string{"strategy"},
	)
	estimatorAccuracy = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "piranha_estimator_accuracy_ratio",
			Help: "Predicted over actual output cardinality of the last multiplication",
		},
	)
)
