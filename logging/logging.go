// Package logging provides a zap-based logging middleware for cache backends.
package logging

import (
	"context"

	"github.com/Keksclan/goRawrCache/cache"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Middleware returns a [cache.Middleware] that logs every operation at debug
// level and failed operations at warn level. Entries carry the trace ID of
// the span active in ctx, if any. If log is nil the middleware is a no-op
// passthrough.
func Middleware[T cache.Cacheable](log *zap.Logger) cache.Middleware[T] {
	if log == nil {
		return func(next cache.Backend[T]) cache.Backend[T] { return next }
	}
	return func(next cache.Backend[T]) cache.Backend[T] {
		return &backend[T]{next: next, log: log.Named("cache")}
	}
}

type backend[T cache.Cacheable] struct {
	next cache.Backend[T]
	log  *zap.Logger
}

func (b *backend[T]) Retrieve(ctx context.Context, key cache.Key) (T, bool, error) {
	v, ok, err := b.next.Retrieve(ctx, key)
	b.write(ctx, "retrieve", key, err, zap.Bool("hit", ok))
	return v, ok, err
}

func (b *backend[T]) Store(ctx context.Context, key cache.Key, val T) error {
	err := b.next.Store(ctx, key, val)
	b.write(ctx, "store", key, err)
	return err
}

func (b *backend[T]) Update(ctx context.Context, key cache.Key, val T) error {
	err := b.next.Update(ctx, key, val)
	b.write(ctx, "update", key, err)
	return err
}

func (b *backend[T]) Expire(ctx context.Context, key cache.Key) error {
	err := b.next.Expire(ctx, key)
	b.write(ctx, "expire", key, err)
	return err
}

func (b *backend[T]) Take(ctx context.Context, key cache.Key) (T, bool, error) {
	v, ok, err := cache.Take(ctx, b.next, key)
	b.write(ctx, "take", key, err, zap.Bool("hit", ok))
	return v, ok, err
}

func (b *backend[T]) write(ctx context.Context, op string, key cache.Key, err error, extra ...zap.Field) {
	fields := append([]zap.Field{
		zap.String("op", op),
		zap.Uint64("key", uint64(key)),
	}, extra...)
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		fields = append(fields, zap.String("trace_id", sc.TraceID().String()))
	}

	if err != nil {
		fields = append(fields, zap.Stringer("kind", cache.KindOf(err)), zap.Error(err))
		b.log.Warn("cache operation failed", fields...)
		return
	}
	b.log.Debug("cache operation", fields...)
}
