// Package branch splits a query into two partitions by predicate, lets
// each partition run through an independent transformation chain, and
// recombines the results positionally.
//
// The three stages form a state machine enforced by the type system:
//
//	Branch(q, pred) -> *TrueBranch[T]
//	WhenTrue(tb, ft) -> *FalseBranch[U, T]
//	WhenFalse(fb, ff) -> *Merger[U, V]
//	m.Merge(truncate) -> *core.Query[core.Pair[U, V]]
//
// Each transition method exists only on its stage's holder, so calling
// WhenFalse before WhenTrue, or Merge before both transforms, does not
// type-check. Every holder is single-use: passing it to its transition
// consumes it, and reuse panics with a queryerrors.StateError.
package branch

import (
	"github.com/awalsh128/fluentgo/query/core"
	"github.com/awalsh128/fluentgo/query/queryerrors"
)

// Transform is a caller-supplied chain applied to one partition. It
// receives a fresh query over the partition and must consume it.
type Transform[T, U any] func(*core.Query[T]) *core.Query[U]

// TrueBranch holds both partitions of a branched sequence before either
// has been transformed. Produced by Branch; consumed by WhenTrue.
type TrueBranch[T any] struct {
	whenTrue  []T
	whenFalse []T
	hooks     []core.Hook
	consumed  bool
}

// FalseBranch holds the transformed true partition alongside the still
// untransformed false partition. Produced by WhenTrue; consumed by
// WhenFalse.
type FalseBranch[U, T any] struct {
	whenTrue  []U
	whenFalse []T
	hooks     []core.Hook
	consumed  bool
}

// Merger holds both fully transformed partitions. Produced by WhenFalse;
// consumed by Merge.
type Merger[U, V any] struct {
	whenTrue  []U
	whenFalse []V
	hooks     []core.Hook
	consumed  bool
}

// Branch partitions the query by predicate in a single pass, preserving
// relative order within each partition, and consumes the source. Hooks
// attached to the source carry over to both partition chains.
func Branch[T any](q *core.Query[T], predicate func(T) bool) *TrueBranch[T] {
	hooks := q.Hooks()
	items := q.ToVector()
	b := &TrueBranch[T]{hooks: hooks}
	for _, item := range items {
		if predicate(item) {
			b.whenTrue = append(b.whenTrue, item)
		} else {
			b.whenFalse = append(b.whenFalse, item)
		}
	}
	return b
}

// WhenTrue applies the transform to the true partition and carries the
// false partition through untouched. Consumes the holder.
func WhenTrue[T, U any](b *TrueBranch[T], transform Transform[T, U]) *FalseBranch[U, T] {
	if b.consumed {
		queryerrors.Consumed("when_true")
	}
	b.consumed = true
	partition := core.Observed(core.New(b.whenTrue), b.hooks...)
	return &FalseBranch[U, T]{
		whenTrue:  transform(partition).ToVector(),
		whenFalse: b.whenFalse,
		hooks:     b.hooks,
	}
}

// WhenFalse applies the transform to the false partition. Consumes the
// holder.
func WhenFalse[U, T, V any](b *FalseBranch[U, T], transform Transform[T, V]) *Merger[U, V] {
	if b.consumed {
		queryerrors.Consumed("when_false")
	}
	b.consumed = true
	partition := core.Observed(core.New(b.whenFalse), b.hooks...)
	return &Merger[U, V]{
		whenTrue:  b.whenTrue,
		whenFalse: transform(partition).ToVector(),
		hooks:     b.hooks,
	}
}

// Merge pairs the two transformed partitions positionally, with the same
// truncate-or-pad behavior as core.Zip. Consumes the holder.
func (m *Merger[U, V]) Merge(truncate bool) *core.Query[core.Pair[U, V]] {
	if m.consumed {
		queryerrors.Consumed("merge")
	}
	m.consumed = true
	merged := core.Observed(core.New(m.whenTrue), m.hooks...)
	return core.Zip(merged, m.whenFalse, truncate)
}
