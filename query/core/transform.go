package core

import (
	"cmp"
	"sort"
)

// Pair holds two positionally or relationally associated values. Join,
// Zip, KeyedGroupBy, and the branch merge all produce Pair sequences.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Select projects each item into a new form, one output per input, in
// order. The output element type is inferred from the selector.
func Select[T, U any](q *Query[T], selector func(T) U) *Query[U] {
	items := q.detach("select")
	selected := make([]U, len(items))
	for i, item := range items {
		selected[i] = selector(item)
	}
	return emit(q.hooks, "select", len(items), selected)
}

// Flatten concatenates a sequence of sequences into one, preserving
// outer and inner order.
func Flatten[T any](q *Query[[]T]) *Query[T] {
	items := q.detach("flatten")
	n := 0
	for _, group := range items {
		n += len(group)
	}
	flattened := make([]T, 0, n)
	for _, group := range items {
		flattened = append(flattened, group...)
	}
	return emit(q.hooks, "flatten", len(items), flattened)
}

// Accumulate folds the sequence into a single value, starting from
// initial and applying fn left to right. Terminal: consumes the query.
func Accumulate[T, U any](q *Query[T], initial U, fn func(U, T) U) U {
	items := q.detach("accumulate")
	notify(q.hooks, "accumulate", len(items), 1)
	acc := initial
	for _, item := range items {
		acc = fn(acc, item)
	}
	return acc
}

// Join correlates the sequence with rhs on matching keys: an inner
// equijoin. The right side is pre-indexed by key, then each left item
// emits one pair per matching right item, preserving left order. Both
// selectors must produce the same key type.
func Join[T, U any, K comparable](q *Query[T], rhs []U, leftKey func(T) K, rightKey func(U) K) *Query[Pair[T, U]] {
	items := q.detach("join")

	index := make(map[K][]U)
	for _, r := range rhs {
		k := rightKey(r)
		index[k] = append(index[k], r)
	}

	var joined []Pair[T, U]
	for _, l := range items {
		for _, r := range index[leftKey(l)] {
			joined = append(joined, Pair[T, U]{First: l, Second: r})
		}
	}
	return emit(q.hooks, "join", len(items), joined)
}

// Zip pairs items positionally with rhs. With truncate true the result
// length is the minimum of the two sizes and the longer tail is dropped.
// With truncate false the result length is the maximum and the shorter
// side is padded with zero values, so no constructibility requirement
// arises either way.
func Zip[T, U any](q *Query[T], rhs []U, truncate bool) *Query[Pair[T, U]] {
	items := q.detach("zip")

	shorter, longer := len(items), len(rhs)
	if shorter > longer {
		shorter, longer = longer, shorter
	}

	size := longer
	if truncate {
		size = shorter
	}

	zipped := make([]Pair[T, U], size)
	for i := 0; i < shorter; i++ {
		zipped[i] = Pair[T, U]{First: items[i], Second: rhs[i]}
	}
	if !truncate {
		for i := shorter; i < len(items); i++ {
			zipped[i] = Pair[T, U]{First: items[i]}
		}
		for i := shorter; i < len(rhs); i++ {
			zipped[i] = Pair[T, U]{Second: rhs[i]}
		}
	}
	return emit(q.hooks, "zip", len(items), zipped)
}

// GroupBy partitions the sequence into groups keyed by the selector.
// Groups are ordered ascending by key; items within a group keep their
// relative order.
func GroupBy[T any, K cmp.Ordered](q *Query[T], keySelector func(T) K) *Query[[]T] {
	items := q.detach("group_by")
	keys, grouped := groupItems(items, keySelector)
	groups := make([][]T, len(keys))
	for i, k := range keys {
		groups[i] = grouped[k]
	}
	return emit(q.hooks, "group_by", len(items), groups)
}

// KeyedGroupBy is GroupBy but each group is paired with its key.
func KeyedGroupBy[T any, K cmp.Ordered](q *Query[T], keySelector func(T) K) *Query[Pair[K, []T]] {
	items := q.detach("keyed_group_by")
	keys, grouped := groupItems(items, keySelector)
	groups := make([]Pair[K, []T], len(keys))
	for i, k := range keys {
		groups[i] = Pair[K, []T]{First: k, Second: grouped[k]}
	}
	return emit(q.hooks, "keyed_group_by", len(items), groups)
}

// groupItems buckets items by key and returns the keys in ascending
// order alongside the buckets.
func groupItems[T any, K cmp.Ordered](items []T, keySelector func(T) K) ([]K, map[K][]T) {
	grouped := make(map[K][]T)
	var keys []K
	for _, item := range items {
		k := keySelector(item)
		if _, seen := grouped[k]; !seen {
			keys = append(keys, k)
		}
		grouped[k] = append(grouped[k], item)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys, grouped
}
