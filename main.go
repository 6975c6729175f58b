// Package gorawrcache assembles cache backends from the building blocks in
// the cache, tracing, metrics and logging packages.
//
// The cache package defines the [cache.Backend] contract and the in-memory
// reference backend. This package layers optional instrumentation around any
// backend via functional [Option] values:
//
//	b, err := gorawrcache.New[int](
//		gorawrcache.WithTracing(&tracing.Config{}),
//		gorawrcache.WithMetrics(prometheus.DefaultRegisterer),
//		gorawrcache.WithLogger(logger),
//	)
//
// Middleware execution order is determined by fixed priority levels, not by
// the order options are passed: tracing wraps metrics, which wraps logging.
package gorawrcache

import (
	"fmt"

	"github.com/Keksclan/goRawrCache/cache"
)

// New creates an empty in-memory backend and wraps it with the middleware
// selected by opts.
func New[T cache.Cacheable](opts ...Option) (cache.Backend[T], error) {
	return Wrap[T](cache.NewMemory[T](), opts...)
}

// Wrap layers the middleware selected by opts around b. Without options b is
// returned unchanged.
func Wrap[T cache.Cacheable](b cache.Backend[T], opts ...Option) (cache.Backend[T], error) {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}

	mw, err := middlewares[T](&cfg)
	if err != nil {
		return nil, fmt.Errorf("gorawrcache: %w", err)
	}
	return cache.Wrap(b, mw...), nil
}
