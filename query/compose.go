package query

// Op is a same-type chain step, usable with Chain and Pipe to build
// reusable operation pipelines. Type-changing steps compose as ordinary
// nested calls instead, since each changes the query's element type.
type Op[T any] func(*Query[T]) *Query[T]

// Chain composes multiple same-type operations into a single operation,
// applied left to right. With no operations it returns the identity.
func Chain[T any](ops ...Op[T]) Op[T] {
	return func(q *Query[T]) *Query[T] {
		for _, op := range ops {
			q = op(q)
		}
		return q
	}
}

// Pipe applies a series of same-type operations to a query, returning
// the final query. Convenience for applying a prebuilt pipeline inline.
func Pipe[T any](q *Query[T], ops ...Op[T]) *Query[T] {
	return Chain(ops...)(q)
}
