// Package queryerrors defines the failure taxonomy for query chains.
//
// Two kinds of failure exist at run time:
//
//   - InvariantError: a precondition violation, e.g. asking Take for more
//     items than the sequence holds. These are programmer errors and are
//     delivered by panic at the violating call.
//   - StateError: reuse of a consumed (moved-from) query or branch holder.
//
// Type-constraint violations (ordering a non-ordered element type, joining
// on mismatched key types) are rejected at compile time by generic bounds
// and never reach this package.
package queryerrors

import (
	"errors"
	"fmt"
)

// InvariantError reports a precondition violation on a chain operation.
// It carries the operation name, the offending value, and the sequence
// size at the time of the call.
type InvariantError struct {
	Op      string
	Message string
	Value   int
	Size    int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("query: %s: %s (value %d, size %d)", e.Op, e.Message, e.Value, e.Size)
}

// Invariant panics with an InvariantError unless the condition holds.
func Invariant(condition bool, op, message string, value, size int) {
	if !condition {
		panic(&InvariantError{Op: op, Message: message, Value: value, Size: size})
	}
}

// NotEmpty panics with an InvariantError if size is zero. Used by
// operations that are undefined over an empty sequence, such as Max and Min.
func NotEmpty(op string, size int) {
	Invariant(size > 0, op, "empty sequence", 0, size)
}

// StateError reports use of a query or branch holder after it has been
// consumed by a chain operation.
type StateError struct {
	Op string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("query: %s: called on a consumed sequence", e.Op)
}

// Consumed panics with a StateError for the named operation.
func Consumed(op string) {
	panic(&StateError{Op: op})
}

// Recover runs fn and converts a panic carrying an InvariantError or
// StateError into an ordinary error return. Other panic values are
// re-raised. It gives callers an error-return boundary around a chain
// without weakening the fail-loud contract inside it.
func Recover(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			var inv *InvariantError
			var st *StateError
			if errors.As(e, &inv) || errors.As(e, &st) {
				err = e
				return
			}
		}
		panic(r)
	}()
	fn()
	return nil
}
