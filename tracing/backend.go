// Package tracing provides an OpenTelemetry tracing middleware for cache
// backends. It is entirely optional: tracing is only active when a [Config]
// is wired in via the WithTracing option or passed to [Middleware].
package tracing

import (
	"context"
	"strconv"

	"github.com/Keksclan/goRawrCache/cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/Keksclan/goRawrCache/tracing"

// Config holds the OpenTelemetry configuration used by the tracing
// middleware.
type Config struct {
	// TracerProvider supplies the Tracer used to create spans. When nil the
	// global otel.GetTracerProvider() is used.
	TracerProvider trace.TracerProvider
}

// tracer returns a configured [trace.Tracer].
func (c *Config) tracer() trace.Tracer {
	tp := c.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer(instrumentationName)
}

// Middleware returns a [cache.Middleware] that records a span for every
// backend operation. If cfg is nil the middleware is a no-op passthrough.
func Middleware[T cache.Cacheable](cfg *Config) cache.Middleware[T] {
	if cfg == nil {
		return func(next cache.Backend[T]) cache.Backend[T] { return next }
	}
	return func(next cache.Backend[T]) cache.Backend[T] {
		return &backend[T]{next: next, tracer: cfg.tracer()}
	}
}

type backend[T cache.Cacheable] struct {
	next   cache.Backend[T]
	tracer trace.Tracer
}

func (b *backend[T]) Retrieve(ctx context.Context, key cache.Key) (T, bool, error) {
	ctx, span := b.start(ctx, "retrieve", key)
	defer span.End()

	v, ok, err := b.next.Retrieve(ctx, key)
	span.SetAttributes(attribute.Bool("cache.hit", ok))
	recordStatus(span, err)
	return v, ok, err
}

func (b *backend[T]) Store(ctx context.Context, key cache.Key, val T) error {
	ctx, span := b.start(ctx, "store", key)
	defer span.End()

	err := b.next.Store(ctx, key, val)
	recordStatus(span, err)
	return err
}

func (b *backend[T]) Update(ctx context.Context, key cache.Key, val T) error {
	ctx, span := b.start(ctx, "update", key)
	defer span.End()

	err := b.next.Update(ctx, key, val)
	recordStatus(span, err)
	return err
}

func (b *backend[T]) Expire(ctx context.Context, key cache.Key) error {
	ctx, span := b.start(ctx, "expire", key)
	defer span.End()

	err := b.next.Expire(ctx, key)
	recordStatus(span, err)
	return err
}

func (b *backend[T]) Take(ctx context.Context, key cache.Key) (T, bool, error) {
	ctx, span := b.start(ctx, "take", key)
	defer span.End()

	v, ok, err := cache.Take(ctx, b.next, key)
	span.SetAttributes(attribute.Bool("cache.hit", ok))
	recordStatus(span, err)
	return v, ok, err
}

// --- helpers ----------------------------------------------------------------

// start opens a span named "cache.<op>".
func (b *backend[T]) start(ctx context.Context, op string, key cache.Key) (context.Context, trace.Span) {
	return b.tracer.Start(ctx, "cache."+op,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("cache.operation", op),
			attribute.String("cache.key", strconv.FormatUint(uint64(key), 10)),
		),
	)
}

// recordStatus sets the span status and, on failure, the cache error kind.
func recordStatus(span trace.Span, err error) {
	if err != nil {
		span.SetAttributes(attribute.String("cache.error_kind", cache.KindOf(err).String()))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
