package query

import (
	"iter"

	"github.com/awalsh128/fluentgo/query/core"
)

// From creates a Query owning the given slice. Ownership transfers: the
// caller must not retain or mutate the slice afterwards.
func From[T any](items []T) *Query[T] {
	return core.New(items)
}

// Of creates a Query from a literal list of items.
func Of[T any](items ...T) *Query[T] {
	return core.New(items)
}

// Range creates a Query of integers from start (inclusive) to end
// (exclusive). If start >= end the query is empty.
func Range(start, end int) *Query[int] {
	if start >= end {
		return core.New([]int{})
	}
	items := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, i)
	}
	return core.New(items)
}

// FromIter materializes a Go 1.23+ iterator sequence into a Query.
func FromIter[T any](seq iter.Seq[T]) *Query[T] {
	var items []T
	for item := range seq {
		items = append(items, item)
	}
	return core.New(items)
}

// FromMap creates a Query of key-value pairs from the given map. Pairs
// are ordered by insertion of Go's map iteration, which is
// non-deterministic; sort or order afterwards when order matters.
func FromMap[K comparable, V any](m map[K]V) *Query[Pair[K, V]] {
	items := make([]Pair[K, V], 0, len(m))
	for k, v := range m {
		items = append(items, Pair[K, V]{First: k, Second: v})
	}
	return core.New(items)
}
