package core

// ToMultiValueMap buckets items by the selected key into a map of
// key to group, with relative item order preserved within each group.
// Terminal: consumes the query.
func ToMultiValueMap[T any, K comparable](q *Query[T], keySelector func(T) K) map[K][]T {
	items := q.detach("to_multi_value_map")
	mapped := make(map[K][]T)
	for _, item := range items {
		k := keySelector(item)
		mapped[k] = append(mapped[k], item)
	}
	notify(q.hooks, "to_multi_value_map", len(items), len(mapped))
	return mapped
}

// ToSingleValueMap maps each selected key to the first item seen with
// that key; later duplicates are discarded. Terminal: consumes the
// query.
func ToSingleValueMap[T any, K comparable](q *Query[T], keySelector func(T) K) map[K]T {
	items := q.detach("to_single_value_map")
	mapped := make(map[K]T)
	for _, item := range items {
		k := keySelector(item)
		if _, seen := mapped[k]; !seen {
			mapped[k] = item
		}
	}
	notify(q.hooks, "to_single_value_map", len(items), len(mapped))
	return mapped
}
