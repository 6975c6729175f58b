// Package metrics exposes Prometheus counters and latency histograms for
// cache backend operations.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/Keksclan/goRawrCache/cache"
	"github.com/prometheus/client_golang/prometheus"
)

// Result label values besides the error kinds reported by cache.Kind.
const (
	ResultOK   = "ok"
	ResultHit  = "hit"
	ResultMiss = "miss"
)

// Metrics holds the collectors shared by every instrumented backend.
type Metrics struct {
	ops      *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates the cache collectors and registers them with reg. Collectors
// that are already registered under the same name are reused, so several
// backends may share one registry.
func New(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "operations_total",
		Help:      "Cache backend operations by operation and result.",
	}, []string{"operation", "result"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "operation_duration_seconds",
		Help:      "Latency of cache backend operations.",
		Buckets:   []float64{1e-7, 1e-6, 1e-5, 1e-4, 1e-3, 1e-2, 1e-1},
	}, []string{"operation"})

	var err error
	if ops, err = register(reg, ops); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	return &Metrics{ops: ops, duration: duration}, nil
}

// register registers c with reg, returning the existing collector if an
// identical one is already registered.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// Middleware returns a [cache.Middleware] that counts every operation and
// observes its latency. If m is nil the middleware is a no-op passthrough.
func Middleware[T cache.Cacheable](m *Metrics) cache.Middleware[T] {
	if m == nil {
		return func(next cache.Backend[T]) cache.Backend[T] { return next }
	}
	return func(next cache.Backend[T]) cache.Backend[T] {
		return &backend[T]{next: next, m: m}
	}
}

type backend[T cache.Cacheable] struct {
	next cache.Backend[T]
	m    *Metrics
}

func (b *backend[T]) Retrieve(ctx context.Context, key cache.Key) (T, bool, error) {
	start := time.Now()
	v, ok, err := b.next.Retrieve(ctx, key)
	b.m.observe("retrieve", start, lookupResult(ok, err))
	return v, ok, err
}

func (b *backend[T]) Store(ctx context.Context, key cache.Key, val T) error {
	start := time.Now()
	err := b.next.Store(ctx, key, val)
	b.m.observe("store", start, result(err))
	return err
}

func (b *backend[T]) Update(ctx context.Context, key cache.Key, val T) error {
	start := time.Now()
	err := b.next.Update(ctx, key, val)
	b.m.observe("update", start, result(err))
	return err
}

func (b *backend[T]) Expire(ctx context.Context, key cache.Key) error {
	start := time.Now()
	err := b.next.Expire(ctx, key)
	b.m.observe("expire", start, result(err))
	return err
}

func (b *backend[T]) Take(ctx context.Context, key cache.Key) (T, bool, error) {
	start := time.Now()
	v, ok, err := cache.Take(ctx, b.next, key)
	b.m.observe("take", start, lookupResult(ok, err))
	return v, ok, err
}

func (m *Metrics) observe(op string, start time.Time, res string) {
	m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	m.ops.WithLabelValues(op, res).Inc()
}

func result(err error) string {
	if err != nil {
		return cache.KindOf(err).String()
	}
	return ResultOK
}

func lookupResult(ok bool, err error) string {
	switch {
	case err != nil:
		return cache.KindOf(err).String()
	case ok:
		return ResultHit
	default:
		return ResultMiss
	}
}
