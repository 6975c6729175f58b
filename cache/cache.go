// Package cache defines the storage contract every cache backend satisfies
// and ships the in-memory reference backend.
//
// A backend is addressed by [Key] and holds values of a single type T. The
// four operations are deliberately asymmetric: [Backend.Store] is write-once
// and fails with a [KindKeyAlreadyPresent] error on a duplicate key, while
// [Backend.Update] always overwrites. [Backend.Expire] is idempotent.
package cache

import (
	"bytes"
	"context"
)

// Key identifies a cached value within one backend instance.
type Key uint64

// Cacheable constrains the value types a backend may hold. Any Go value
// qualifies; values that share memory are kept independent by [Cloner] or,
// for byte slices, by copying.
type Cacheable interface {
	any
}

// Cloner is implemented by values that must be deep-copied when they enter or
// leave a backend so that the caller's copy and the cached copy never alias.
type Cloner[T any] interface {
	Clone() T
}

// Backend is the contract every cache storage strategy implements.
type Backend[T Cacheable] interface {
	// Retrieve returns the value stored under key. The boolean reports a hit;
	// a miss is not an error.
	Retrieve(ctx context.Context, key Key) (T, bool, error)

	// Store inserts val under key. It fails with a KeyAlreadyPresent error
	// when key already exists and leaves the stored value untouched.
	Store(ctx context.Context, key Key, val T) error

	// Update associates val with key whether or not key already exists.
	Update(ctx context.Context, key Key, val T) error

	// Expire removes key. Removing an absent key succeeds.
	Expire(ctx context.Context, key Key) error
}

// Taker is implemented by backends that can remove and return an entry in a
// single operation.
type Taker[T Cacheable] interface {
	// Take removes key and returns the value it held. The boolean reports
	// whether key was present.
	Take(ctx context.Context, key Key) (T, bool, error)
}

// Take removes key from b and returns the value it held. Backends that
// implement [Taker] do this in one step; for the rest Take falls back to
// Retrieve followed by Expire.
func Take[T Cacheable](ctx context.Context, b Backend[T], key Key) (T, bool, error) {
	if t, ok := b.(Taker[T]); ok {
		return t.Take(ctx, key)
	}

	var zero T
	v, ok, err := b.Retrieve(ctx, key)
	if err != nil || !ok {
		return zero, false, err
	}
	if err := b.Expire(ctx, key); err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// clone returns an independent copy of v when T can alias memory.
func clone[T Cacheable](v T) T {
	switch c := any(v).(type) {
	case Cloner[T]:
		return c.Clone()
	case []byte:
		if c == nil {
			return v
		}
		return any(bytes.Clone(c)).(T)
	}
	return v
}
