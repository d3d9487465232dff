package core

import (
	"cmp"
	"sort"

	"github.com/awalsh128/fluentgo/query/queryerrors"
)

// OrderBy sorts the sequence by the selector's output, ascending unless
// descending is set. The sort is stable: items with equal keys keep
// their relative input order.
func OrderBy[T any, K cmp.Ordered](q *Query[T], valueSelector func(T) K, descending bool) *Query[T] {
	items := q.detach("order_by")
	sort.SliceStable(items, func(i, j int) bool {
		a, b := valueSelector(items[i]), valueSelector(items[j])
		if descending {
			return b < a
		}
		return a < b
	})
	return emit(q.hooks, "order_by", len(items), items)
}

// Sort orders the items ascending by their natural ordering. Stable,
// which is indistinguishable from unstable here since equal keys are
// equal items.
func Sort[T cmp.Ordered](q *Query[T]) *Query[T] {
	items := q.detach("sort")
	sort.SliceStable(items, func(i, j int) bool { return items[i] < items[j] })
	return emit(q.hooks, "sort", len(items), items)
}

// Max returns the maximum item. Fails with an invariant violation on an
// empty sequence. Terminal: consumes the query.
func Max[T cmp.Ordered](q *Query[T]) T {
	return MaxBy(q, func(item T) T { return item })
}

// MaxBy returns the item whose selected value is greatest. Fails with an
// invariant violation on an empty sequence. Terminal: consumes the
// query.
func MaxBy[T any, K cmp.Ordered](q *Query[T], valueSelector func(T) K) T {
	items := q.detach("max")
	queryerrors.NotEmpty("max", len(items))
	notify(q.hooks, "max", len(items), 1)
	best := items[0]
	bestValue := valueSelector(best)
	for _, item := range items[1:] {
		if v := valueSelector(item); bestValue < v {
			best, bestValue = item, v
		}
	}
	return best
}

// Min returns the minimum item. Fails with an invariant violation on an
// empty sequence. Terminal: consumes the query.
func Min[T cmp.Ordered](q *Query[T]) T {
	return MinBy(q, func(item T) T { return item })
}

// MinBy returns the item whose selected value is least. Fails with an
// invariant violation on an empty sequence. Terminal: consumes the
// query.
func MinBy[T any, K cmp.Ordered](q *Query[T], valueSelector func(T) K) T {
	items := q.detach("min")
	queryerrors.NotEmpty("min", len(items))
	notify(q.hooks, "min", len(items), 1)
	best := items[0]
	bestValue := valueSelector(best)
	for _, item := range items[1:] {
		if v := valueSelector(item); v < bestValue {
			best, bestValue = item, v
		}
	}
	return best
}
