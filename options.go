package gorawrcache

import (
	"github.com/Keksclan/goRawrCache/tracing"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures the middleware applied by [New] and [Wrap].
type Option func(*config)

// WithTracing enables OpenTelemetry spans for every backend operation. An
// empty Config uses the global tracer provider.
func WithTracing(cfg *tracing.Config) Option {
	return func(c *config) {
		c.tracing = cfg
	}
}

// WithMetrics registers Prometheus collectors with reg and records every
// backend operation.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *config) {
		c.registerer = reg
	}
}

// WithMetricsNamespace sets the metric name prefix used by WithMetrics.
func WithMetricsNamespace(ns string) Option {
	return func(c *config) {
		c.namespace = ns
	}
}

// WithLogger logs every backend operation to l.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
