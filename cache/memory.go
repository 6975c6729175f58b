package cache

import "context"

// Memory is the simplest possible backend: a Go map with neither eviction nor
// capacity control. It is not safe for concurrent use; a Memory belongs to a
// single owner. The zero value is an empty backend ready to use.
type Memory[T Cacheable] struct {
	entries map[Key]T
}

// NewMemory creates an empty in-memory backend.
func NewMemory[T Cacheable]() *Memory[T] {
	return &Memory[T]{entries: make(map[Key]T)}
}

// Retrieve returns the value stored under key.
func (m *Memory[T]) Retrieve(_ context.Context, key Key) (T, bool, error) {
	v, ok := m.entries[key]
	if !ok {
		var zero T
		return zero, false, nil
	}
	return clone(v), true, nil
}

// Store inserts val under key unless key is already present.
func (m *Memory[T]) Store(_ context.Context, key Key, val T) error {
	if _, ok := m.entries[key]; ok {
		return KeyAlreadyPresent(key)
	}
	m.init()
	m.entries[key] = clone(val)
	return nil
}

// Update inserts or overwrites the value under key.
func (m *Memory[T]) Update(_ context.Context, key Key, val T) error {
	m.init()
	m.entries[key] = clone(val)
	return nil
}

// Expire removes key if present.
func (m *Memory[T]) Expire(_ context.Context, key Key) error {
	delete(m.entries, key)
	return nil
}

// Take removes key and returns the value it held.
func (m *Memory[T]) Take(_ context.Context, key Key) (T, bool, error) {
	v, ok := m.entries[key]
	if ok {
		delete(m.entries, key)
	}
	return v, ok, nil
}

// Len returns the number of stored entries.
func (m *Memory[T]) Len() int {
	return len(m.entries)
}

func (m *Memory[T]) init() {
	if m.entries == nil {
		m.entries = make(map[Key]T)
	}
}
