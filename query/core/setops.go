package core

import (
	"cmp"
	"sort"
)

// The set algebra routes through ordered-set semantics: results contain
// each element at most once, in ascending element order regardless of
// input order. The canonical order is part of the contract, not an
// implementation accident, and is locked by tests.

// Distinct keeps each distinct item exactly once, in ascending order.
func Distinct[T cmp.Ordered](q *Query[T]) *Query[T] {
	items := q.detach("distinct")
	return emit(q.hooks, "distinct", len(items), sortedSet(items, nil, keepAlways[T]))
}

// Union combines the sequence with rhs, discarding duplicates. Output is
// in ascending order.
func Union[T cmp.Ordered](q *Query[T], rhs []T) *Query[T] {
	items := q.detach("unionize")
	return emit(q.hooks, "unionize", len(items), sortedSet(items, rhs, keepAlways[T]))
}

// Difference keeps the items of the sequence not present in rhs,
// discarding duplicates. Output is in ascending order.
func Difference[T cmp.Ordered](q *Query[T], rhs []T) *Query[T] {
	exclude := memberSet(rhs)
	items := q.detach("difference")
	keep := func(item T) bool { _, in := exclude[item]; return !in }
	return emit(q.hooks, "difference", len(items), sortedSet(items, nil, keep))
}

// Intersect keeps the items present in both the sequence and rhs,
// discarding duplicates. Output is in ascending order.
func Intersect[T cmp.Ordered](q *Query[T], rhs []T) *Query[T] {
	include := memberSet(rhs)
	items := q.detach("intersect")
	keep := func(item T) bool { _, in := include[item]; return in }
	return emit(q.hooks, "intersect", len(items), sortedSet(items, nil, keep))
}

// ToSet extracts the sequence as a membership set. Terminal: consumes
// the query.
func ToSet[T comparable](q *Query[T]) map[T]struct{} {
	items := q.detach("to_set")
	set := memberSet(items)
	notify(q.hooks, "to_set", len(items), len(set))
	return set
}

func keepAlways[T any](T) bool { return true }

func memberSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

// sortedSet collects the unique items of both slices that pass keep and
// returns them ascending.
func sortedSet[T cmp.Ordered](items, more []T, keep func(T) bool) []T {
	seen := make(map[T]struct{}, len(items)+len(more))
	out := make([]T, 0, len(items)+len(more))
	for _, source := range [][]T{items, more} {
		for _, item := range source {
			if !keep(item) {
				continue
			}
			if _, dup := seen[item]; dup {
				continue
			}
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
