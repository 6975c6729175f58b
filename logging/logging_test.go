package logging

import (
	"errors"
	"testing"

	"github.com/Keksclan/goRawrCache/cache"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(t *testing.T, level zapcore.Level) (cache.Backend[int], *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(level)
	return Middleware[int](zap.New(core))(cache.NewMemory[int]()), logs
}

func TestMiddleware_LogsOperationsAtDebug(t *testing.T) {
	b, logs := newObserved(t, zapcore.DebugLevel)

	_ = b.Store(t.Context(), 23, 13)
	_, _, _ = b.Retrieve(t.Context(), 23)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Level != zapcore.DebugLevel {
			t.Fatalf("expected debug level, got %v", e.Level)
		}
		if e.LoggerName != "cache" {
			t.Fatalf("expected logger name %q, got %q", "cache", e.LoggerName)
		}
	}

	store := entries[0].ContextMap()
	if store["op"] != "store" || store["key"] != uint64(23) {
		t.Fatalf("unexpected store fields: %v", store)
	}
	retrieve := entries[1].ContextMap()
	if retrieve["op"] != "retrieve" || retrieve["hit"] != true {
		t.Fatalf("unexpected retrieve fields: %v", retrieve)
	}
}

func TestMiddleware_WarnsOnDuplicateStore(t *testing.T) {
	b, logs := newObserved(t, zapcore.WarnLevel)

	_ = b.Store(t.Context(), 23, 13)
	err := b.Store(t.Context(), 23, 13)
	if !errors.Is(err, cache.ErrKeyAlreadyPresent) {
		t.Fatalf("expected ErrKeyAlreadyPresent, got %v", err)
	}

	entries := logs.FilterMessage("cache operation failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["kind"] != "key_already_present" {
		t.Fatalf("kind = %v, want key_already_present", fields["kind"])
	}
	if fields["error"] != "cache: key 23 already present" {
		t.Fatalf("error = %v", fields["error"])
	}
}

func TestMiddleware_TakeAndExpire(t *testing.T) {
	b, logs := newObserved(t, zapcore.DebugLevel)

	_ = b.Update(t.Context(), 1, 10)
	v, ok, err := cache.Take(t.Context(), b, 1)
	if err != nil || !ok || v != 10 {
		t.Fatalf("Take = (%d, %v, %v), want (10, true, nil)", v, ok, err)
	}
	_ = b.Expire(t.Context(), 1)

	if n := logs.FilterField(zap.String("op", "take")).Len(); n != 1 {
		t.Fatalf("expected 1 take entry, got %d", n)
	}
	if n := logs.FilterField(zap.String("op", "expire")).Len(); n != 1 {
		t.Fatalf("expected 1 expire entry, got %d", n)
	}
}

func TestMiddleware_NilLogger_Passthrough(t *testing.T) {
	mem := cache.NewMemory[int]()
	if b := Middleware[int](nil)(mem); b != cache.Backend[int](mem) {
		t.Fatal("nil logger should return the backend unchanged")
	}
}
