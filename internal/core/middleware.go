package core

import (
	"cmp"
	"slices"
)

// entry is a single middleware with a deterministic execution order. Lower
// Order values run first, i.e. wrap further out.
type entry[M any] struct {
	M     M
	Order int
}

// Builder collects middleware entries and produces a slice sorted by order,
// ready for chaining.
type Builder[M any] struct {
	entries []entry[M]
}

// Add registers m with the given order.
func (b *Builder[M]) Add(order int, m M) {
	b.entries = append(b.entries, entry[M]{M: m, Order: order})
}

// Len returns the number of registered entries.
func (b *Builder[M]) Len() int {
	return len(b.entries)
}

// Build sorts the collected middleware by Order (stable) and returns them.
// Entries registered with the same order keep their registration order.
func (b *Builder[M]) Build() []M {
	slices.SortStableFunc(b.entries, func(a, c entry[M]) int {
		return cmp.Compare(a.Order, c.Order)
	})

	out := make([]M, 0, len(b.entries))
	for _, e := range b.entries {
		out = append(out, e.M)
	}
	return out
}
