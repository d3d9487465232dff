// Package core defines the query sequence container and its operation
// vocabulary. A Query owns a fully materialized ordered sequence; every
// chain operation consumes its input and produces a fresh Query, so a
// sequence has exactly one owner at any point in a chain.
//
// Operations that preserve the element type and need no type constraints
// are methods on Query. Operations that change the element type or
// constrain it (Select, Join, Zip, GroupBy, OrderBy, the set algebra,
// folds and extractions) are package functions, since Go methods cannot
// introduce type parameters.
//
// NOTE: this package depends only on the standard library and
// queryerrors. Adapters (sql, csv, json, observe) live in sibling
// packages.
package core

import (
	"math/rand"
	"time"

	"github.com/awalsh128/fluentgo/query/queryerrors"
)

// Query holds an ordered sequence of items. Duplicates are permitted and
// order is significant. A Query is single-use: any chain operation or
// terminal extraction consumes it, and further calls on the consumed
// value panic with a queryerrors.StateError.
//
// The zero value is not usable; construct with New (or the entry points
// in the query package).
type Query[T any] struct {
	items    []T
	consumed bool
	hooks    []Hook
}

// New creates a Query owning the given items. The caller must not
// retain or mutate the slice afterwards; ownership transfers to the
// Query.
func New[T any](items []T) *Query[T] {
	return &Query[T]{items: items}
}

// detach consumes the query and takes its backing slice. Every operation
// goes through here so reuse of a moved-from query fails loudly.
func (q *Query[T]) detach(op string) []T {
	if q.consumed {
		queryerrors.Consumed(op)
	}
	q.consumed = true
	items := q.items
	q.items = nil
	return items
}

// peek reads the items of a live query without consuming it. Used by the
// read-only observers (Size, Empty, All, Any, Equal).
func (q *Query[T]) peek(op string) []T {
	if q.consumed {
		queryerrors.Consumed(op)
	}
	return q.items
}

// emit wraps a result slice in a new Query carrying the same hooks, and
// notifies the hooks with the operation's input and output cardinality.
func emit[U any](hooks []Hook, op string, in int, items []U) *Query[U] {
	notify(hooks, op, in, len(items))
	return &Query[U]{items: items, hooks: hooks}
}

// Size returns the number of items. Does not consume the query.
func (q *Query[T]) Size() int {
	return len(q.peek("size"))
}

// Empty reports whether the sequence has no items. Does not consume the
// query.
func (q *Query[T]) Empty() bool {
	return len(q.peek("empty")) == 0
}

// Where keeps, in original order, exactly the items for which the
// predicate is true.
func (q *Query[T]) Where(predicate func(T) bool) *Query[T] {
	items := q.detach("where")
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if predicate(item) {
			filtered = append(filtered, item)
		}
	}
	return emit(q.hooks, "where", len(items), filtered)
}

// Skip bypasses the first n items and keeps the rest. n must not exceed
// the sequence size.
func (q *Query[T]) Skip(n int) *Query[T] {
	items := q.detach("skip")
	queryerrors.Invariant(n >= 0 && n <= len(items), "skip",
		"skip count must be between zero and the sequence size", n, len(items))
	return emit(q.hooks, "skip", len(items), items[n:])
}

// Take keeps the first n items. n must not exceed the sequence size;
// a too-large n fails rather than silently clamping.
func (q *Query[T]) Take(n int) *Query[T] {
	items := q.detach("take")
	queryerrors.Invariant(n >= 0 && n <= len(items), "take",
		"take count must be between zero and the sequence size", n, len(items))
	return emit(q.hooks, "take", len(items), items[:n])
}

// TakeRandom keeps n items chosen at random positions, in random order.
// Each call draws from a fresh non-deterministic permutation.
func (q *Query[T]) TakeRandom(n int) *Query[T] {
	items := q.detach("take_random")
	queryerrors.Invariant(n >= 0 && n <= len(items), "take_random",
		"take count must be between zero and the sequence size", n, len(items))
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	perm := rng.Perm(len(items))
	taken := make([]T, n)
	for i := 0; i < n; i++ {
		taken[i] = items[perm[i]]
	}
	return emit(q.hooks, "take_random", len(items), taken)
}

// Trim drops n items from the back of the sequence. n must not exceed
// the sequence size.
func (q *Query[T]) Trim(n int) *Query[T] {
	items := q.detach("trim")
	queryerrors.Invariant(n >= 0 && n <= len(items), "trim",
		"trim count must be between zero and the sequence size", n, len(items))
	return emit(q.hooks, "trim", len(items), items[:len(items)-n])
}

// Slice extracts count items starting at start, advancing stride
// positions between picks. A stride of zero is permitted and yields
// count repetitions of the item at start. start must index into the
// sequence and, for a positive stride, the strided span must fit.
func (q *Query[T]) Slice(start, count, stride int) *Query[T] {
	items := q.detach("slice")
	size := len(items)
	queryerrors.Invariant(start >= 0 && start < size, "slice",
		"slice start index must be less than the sequence size", start, size)
	queryerrors.Invariant(count >= 0 && stride >= 0, "slice",
		"slice count and stride must be non-negative", count, size)
	if count > 0 && stride > 0 {
		last := start + (count-1)*stride
		queryerrors.Invariant(last < size, "slice",
			"slice end index must be less than the sequence size", last, size)
	}
	sliced := make([]T, count)
	for i := 0; i < count; i++ {
		sliced[i] = items[start+i*stride]
	}
	return emit(q.hooks, "slice", size, sliced)
}

// Reverse inverts the order of the items.
func (q *Query[T]) Reverse() *Query[T] {
	items := q.detach("reverse")
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return emit(q.hooks, "reverse", len(items), items)
}

// Shuffle randomizes the order of the items. Each call draws a fresh
// non-deterministic permutation; no reproducibility is guaranteed.
func (q *Query[T]) Shuffle() *Query[T] {
	items := q.detach("shuffle")
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	return emit(q.hooks, "shuffle", len(items), items)
}

// Action invokes fn once per item for side effects and passes the
// sequence through unchanged so the chain can continue.
func (q *Query[T]) Action(fn func(T)) *Query[T] {
	items := q.detach("action")
	for _, item := range items {
		fn(item)
	}
	return emit(q.hooks, "action", len(items), items)
}

// All reports whether every item satisfies the predicate. Vacuously true
// for an empty sequence. Does not consume the query.
func (q *Query[T]) All(predicate func(T) bool) bool {
	for _, item := range q.peek("all") {
		if !predicate(item) {
			return false
		}
	}
	return true
}

// Any reports whether at least one item satisfies the predicate. Does
// not consume the query.
func (q *Query[T]) Any(predicate func(T) bool) bool {
	for _, item := range q.peek("any") {
		if predicate(item) {
			return true
		}
	}
	return false
}

// FirstOrDefault returns the first item satisfying the predicate, or the
// zero value and false if none does. Terminal: consumes the query.
func (q *Query[T]) FirstOrDefault(predicate func(T) bool) (T, bool) {
	items := q.detach("first_or_default")
	notify(q.hooks, "first_or_default", len(items), len(items))
	for _, item := range items {
		if predicate(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// ToVector extracts the sequence as a slice. Terminal: consumes the
// query; the returned slice is owned by the caller.
func (q *Query[T]) ToVector() []T {
	items := q.detach("to_vector")
	notify(q.hooks, "to_vector", len(items), len(items))
	return items
}

// Equal reports whether the query's sequence is pairwise equal, in
// order, to the given slice. Does not consume the query.
func Equal[T comparable](q *Query[T], items []T) bool {
	have := q.peek("equal")
	if len(have) != len(items) {
		return false
	}
	for i := range have {
		if have[i] != items[i] {
			return false
		}
	}
	return true
}
