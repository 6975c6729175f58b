package gorawrcache

import (
	"github.com/Keksclan/goRawrCache/cache"
	"github.com/Keksclan/goRawrCache/internal/core"
	"github.com/Keksclan/goRawrCache/logging"
	"github.com/Keksclan/goRawrCache/metrics"
	"github.com/Keksclan/goRawrCache/tracing"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Priority levels for the built-in middleware. Lower values wrap further out.
const (
	orderTracing = 100
	orderMetrics = 200
	orderLogging = 300
)

// config holds the internal configuration assembled via functional options.
type config struct {
	tracing    *tracing.Config
	registerer prometheus.Registerer
	namespace  string
	logger     *zap.Logger
}

// middlewares builds the configured middleware for value type T, sorted by
// priority.
func middlewares[T cache.Cacheable](cfg *config) ([]cache.Middleware[T], error) {
	var b core.Builder[cache.Middleware[T]]

	if cfg.tracing != nil {
		b.Add(orderTracing, tracing.Middleware[T](cfg.tracing))
	}
	if cfg.registerer != nil {
		m, err := metrics.New(cfg.registerer, cfg.namespace)
		if err != nil {
			return nil, err
		}
		b.Add(orderMetrics, metrics.Middleware[T](m))
	}
	if cfg.logger != nil {
		b.Add(orderLogging, logging.Middleware[T](cfg.logger))
	}

	return b.Build(), nil
}
