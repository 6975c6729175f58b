package cache

// Middleware decorates a Backend, adding behaviour around its operations
// without changing their contract.
type Middleware[T Cacheable] func(Backend[T]) Backend[T]

// Chain composes middlewares from left to right, i.e., Chain(A, B)(b) => A(B(b)).
func Chain[T Cacheable](mw ...Middleware[T]) Middleware[T] {
	return func(next Backend[T]) Backend[T] {
		for i := len(mw) - 1; i >= 0; i-- {
			next = mw[i](next)
		}
		return next
	}
}

// Wrap applies the middleware chain to b and returns the wrapped backend.
func Wrap[T Cacheable](b Backend[T], mw ...Middleware[T]) Backend[T] {
	if len(mw) == 0 {
		return b
	}
	return Chain(mw...)(b)
}
