package gorawrcache

import (
	"github.com/Keksclan/goRawrCache/tracing"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultOptions returns the recommended set of options for production use:
// tracing through the global tracer provider and metrics on the default
// Prometheus registerer. Logging stays off until a logger is supplied.
func DefaultOptions() []Option {
	return []Option{
		WithTracing(&tracing.Config{}),
		WithMetrics(prometheus.DefaultRegisterer),
	}
}
