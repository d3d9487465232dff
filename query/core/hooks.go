package core

// Hook observes chain operations. It is invoked once per operation with
// the operation name and the input and output cardinality. Hooks attach
// to a Query via Observed and are inherited by every Query derived from
// it, including the partition queries a branched chain runs through, so
// a single attachment covers the whole chain.
//
// Hooks must not mutate items and must be cheap; they run synchronously
// inside each operation.
type Hook func(op string, in, out int)

// Observed consumes the query and returns an equivalent one with the
// given hooks attached in addition to any it already carries.
func Observed[T any](q *Query[T], hooks ...Hook) *Query[T] {
	items := q.detach("observed")
	combined := make([]Hook, 0, len(q.hooks)+len(hooks))
	combined = append(combined, q.hooks...)
	combined = append(combined, hooks...)
	return &Query[T]{items: items, hooks: combined}
}

// Hooks returns a copy of the hooks attached to the query without
// consuming it. Packages that split a query into fresh ones use it to
// carry the attachments across the split.
func (q *Query[T]) Hooks() []Hook {
	if len(q.hooks) == 0 {
		return nil
	}
	return append([]Hook(nil), q.hooks...)
}

func notify(hooks []Hook, op string, in, out int) {
	for _, h := range hooks {
		h(op, in, out)
	}
}
