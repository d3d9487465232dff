// Package json sources query sequences from JSON arrays and encodes
// them back. The whole array is materialized into the returned query.
package json

import (
	"encoding/json"
	"io"

	"github.com/awalsh128/fluentgo/query/core"
)

// Decode parses a JSON array into a query sequence of typed values.
func Decode[T any](data []byte) (*core.Query[T], error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return core.New(items), nil
}

// DecodeFrom parses a JSON array read from r into a query sequence.
func DecodeFrom[T any](r io.Reader) (*core.Query[T], error) {
	var items []T
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, err
	}
	return core.New(items), nil
}

// Encode consumes the query and renders its sequence as a JSON array.
func Encode[T any](q *core.Query[T]) ([]byte, error) {
	items := q.ToVector()
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

// EncodeTo consumes the query and writes its sequence as a JSON array
// to w.
func EncodeTo[T any](w io.Writer, q *core.Query[T]) error {
	items := q.ToVector()
	if items == nil {
		items = []T{}
	}
	return json.NewEncoder(w).Encode(items)
}
