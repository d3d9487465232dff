// Package query provides a fluent, chainable query layer over in-memory
// ordered sequences: filter, project, sort, group, join, set algebra,
// and a branch/merge protocol, with every stage fully materialized.
//
// This package is the primary user-facing API. Most users should only
// need to import this package. The query/core subpackage contains the
// container and operation implementations; query/branch holds the
// branch/merge state machine.
//
// Ownership is move-based: every chain operation consumes its receiver
// and returns a new query. Reusing a consumed query panics with a
// queryerrors.StateError, and precondition violations (for example
// Take(n) with n larger than the sequence) panic with a
// queryerrors.InvariantError.
package query

import (
	"cmp"

	"github.com/awalsh128/fluentgo/query/branch"
	"github.com/awalsh128/fluentgo/query/core"
)

// Type aliases for the core abstractions, so callers can stay on this
// package alone.
type (
	// Query owns an ordered sequence of T and exposes the chain methods.
	Query[T any] = core.Query[T]

	// Pair holds two associated values, as produced by Join, Zip,
	// KeyedGroupBy, and Merge.
	Pair[A, B any] = core.Pair[A, B]

	// Hook observes chain operations; see Observed.
	Hook = core.Hook

	// TrueBranch is the first branch/merge stage, holding both raw
	// partitions.
	TrueBranch[T any] = branch.TrueBranch[T]

	// FalseBranch is the second stage: transformed true partition plus
	// raw false partition.
	FalseBranch[U, T any] = branch.FalseBranch[U, T]

	// Merger is the final stage, holding both transformed partitions.
	Merger[U, V any] = branch.Merger[U, V]
)

// Projection and fold operations - wrappers around core functions.

// Select projects each item into a new form inferred from the selector.
func Select[T, U any](q *Query[T], selector func(T) U) *Query[U] {
	return core.Select(q, selector)
}

// Flatten concatenates a sequence of sequences into one.
func Flatten[T any](q *Query[[]T]) *Query[T] {
	return core.Flatten(q)
}

// Accumulate folds the sequence into a single value.
func Accumulate[T, U any](q *Query[T], initial U, fn func(U, T) U) U {
	return core.Accumulate(q, initial, fn)
}

// Relational operations.

// Join inner-equijoins the sequence with rhs on matching keys.
func Join[T, U any, K comparable](q *Query[T], rhs []U, leftKey func(T) K, rightKey func(U) K) *Query[Pair[T, U]] {
	return core.Join(q, rhs, leftKey, rightKey)
}

// Zip pairs items positionally with rhs, truncating or zero-padding.
func Zip[T, U any](q *Query[T], rhs []U, truncate bool) *Query[Pair[T, U]] {
	return core.Zip(q, rhs, truncate)
}

// GroupBy partitions items into groups ordered ascending by key.
func GroupBy[T any, K cmp.Ordered](q *Query[T], keySelector func(T) K) *Query[[]T] {
	return core.GroupBy(q, keySelector)
}

// KeyedGroupBy is GroupBy with each group paired with its key.
func KeyedGroupBy[T any, K cmp.Ordered](q *Query[T], keySelector func(T) K) *Query[Pair[K, []T]] {
	return core.KeyedGroupBy(q, keySelector)
}

// Ordering operations.

// OrderBy stably sorts by the selected value.
func OrderBy[T any, K cmp.Ordered](q *Query[T], valueSelector func(T) K, descending bool) *Query[T] {
	return core.OrderBy(q, valueSelector, descending)
}

// Sort orders items ascending by natural ordering.
func Sort[T cmp.Ordered](q *Query[T]) *Query[T] {
	return core.Sort(q)
}

// Max returns the maximum item; fails on an empty sequence.
func Max[T cmp.Ordered](q *Query[T]) T { return core.Max(q) }

// MaxBy returns the item with the greatest selected value.
func MaxBy[T any, K cmp.Ordered](q *Query[T], valueSelector func(T) K) T {
	return core.MaxBy(q, valueSelector)
}

// Min returns the minimum item; fails on an empty sequence.
func Min[T cmp.Ordered](q *Query[T]) T { return core.Min(q) }

// MinBy returns the item with the least selected value.
func MinBy[T any, K cmp.Ordered](q *Query[T], valueSelector func(T) K) T {
	return core.MinBy(q, valueSelector)
}

// Set algebra. Results follow ordered-set semantics: ascending element
// order, duplicates discarded.

// Distinct keeps each distinct item exactly once.
func Distinct[T cmp.Ordered](q *Query[T]) *Query[T] { return core.Distinct(q) }

// Union combines the sequence with rhs.
func Union[T cmp.Ordered](q *Query[T], rhs []T) *Query[T] { return core.Union(q, rhs) }

// Difference keeps items not present in rhs.
func Difference[T cmp.Ordered](q *Query[T], rhs []T) *Query[T] { return core.Difference(q, rhs) }

// Intersect keeps items present in both sequences.
func Intersect[T cmp.Ordered](q *Query[T], rhs []T) *Query[T] { return core.Intersect(q, rhs) }

// Terminal extractions.

// ToSet extracts the sequence as a membership set.
func ToSet[T comparable](q *Query[T]) map[T]struct{} { return core.ToSet(q) }

// ToMultiValueMap buckets items by key into a map of groups.
func ToMultiValueMap[T any, K comparable](q *Query[T], keySelector func(T) K) map[K][]T {
	return core.ToMultiValueMap(q, keySelector)
}

// ToSingleValueMap maps each key to the first item seen with it.
func ToSingleValueMap[T any, K comparable](q *Query[T], keySelector func(T) K) map[K]T {
	return core.ToSingleValueMap(q, keySelector)
}

// Equal reports structural equality against a raw slice without
// consuming the query.
func Equal[T comparable](q *Query[T], items []T) bool { return core.Equal(q, items) }

// Observed attaches hooks that fire once per chain operation.
func Observed[T any](q *Query[T], hooks ...Hook) *Query[T] { return core.Observed(q, hooks...) }

// Branch/merge stages - wrappers around the branch package.

// Branch partitions the query by predicate into a TrueBranch.
func Branch[T any](q *Query[T], predicate func(T) bool) *TrueBranch[T] {
	return branch.Branch(q, predicate)
}

// WhenTrue transforms the true partition.
func WhenTrue[T, U any](b *TrueBranch[T], transform func(*Query[T]) *Query[U]) *FalseBranch[U, T] {
	return branch.WhenTrue(b, transform)
}

// WhenFalse transforms the false partition, yielding a Merger whose
// Merge method recombines the partitions positionally.
func WhenFalse[U, T, V any](b *FalseBranch[U, T], transform func(*Query[T]) *Query[V]) *Merger[U, V] {
	return branch.WhenFalse(b, transform)
}
