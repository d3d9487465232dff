package core_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/awalsh128/fluentgo/query/core"
	"github.com/awalsh128/fluentgo/query/queryerrors"
)

// catchPanic runs fn and returns the recovered panic value, or nil if fn
// returned normally.
func catchPanic(fn func()) (recovered any) {
	defer func() { recovered = recover() }()
	fn()
	return nil
}

func wantInvariant(t *testing.T, fn func()) *queryerrors.InvariantError {
	t.Helper()
	r := catchPanic(fn)
	if r == nil {
		t.Fatal("expected invariant violation, got none")
	}
	err, ok := r.(error)
	if !ok {
		t.Fatalf("expected error panic, got %v", r)
	}
	var inv *queryerrors.InvariantError
	if !errors.As(err, &inv) {
		t.Fatalf("expected InvariantError, got %v", err)
	}
	return inv
}

func wantState(t *testing.T, fn func()) *queryerrors.StateError {
	t.Helper()
	r := catchPanic(fn)
	if r == nil {
		t.Fatal("expected state error, got none")
	}
	err, ok := r.(error)
	if !ok {
		t.Fatalf("expected error panic, got %v", r)
	}
	var st *queryerrors.StateError
	if !errors.As(err, &st) {
		t.Fatalf("expected StateError, got %v", err)
	}
	return st
}

func equalSlices[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestWhere(t *testing.T) {
	tests := []struct {
		name      string
		input     []int
		predicate func(int) bool
		want      []int
	}{
		{
			name:      "keeps original order",
			input:     []int{1, 2, 3, 4},
			predicate: func(n int) bool { return n%2 == 0 },
			want:      []int{2, 4},
		},
		{
			name:      "keep all",
			input:     []int{1, 2, 3},
			predicate: func(n int) bool { return true },
			want:      []int{1, 2, 3},
		},
		{
			name:      "keep none",
			input:     []int{1, 2, 3},
			predicate: func(n int) bool { return false },
			want:      []int{},
		},
		{
			name:      "empty sequence",
			input:     []int{},
			predicate: func(n int) bool { return true },
			want:      []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := core.New(tt.input).Where(tt.predicate).ToVector()
			equalSlices(t, got, tt.want)
		})
	}
}

func TestConsumedReuseFails(t *testing.T) {
	q := core.New([]int{1, 2, 3})
	_ = q.Where(func(n int) bool { return true })
	wantState(t, func() { q.ToVector() })
}

func TestConsumedReadFails(t *testing.T) {
	q := core.New([]int{1, 2, 3})
	_ = q.ToVector()
	wantState(t, func() { q.Size() })
}

func TestSkipTakeTrim(t *testing.T) {
	tests := []struct {
		name string
		op   func(*core.Query[int]) *core.Query[int]
		want []int
	}{
		{"skip two", func(q *core.Query[int]) *core.Query[int] { return q.Skip(2) }, []int{3, 4, 5}},
		{"skip all", func(q *core.Query[int]) *core.Query[int] { return q.Skip(5) }, []int{}},
		{"take two", func(q *core.Query[int]) *core.Query[int] { return q.Take(2) }, []int{1, 2}},
		{"take zero", func(q *core.Query[int]) *core.Query[int] { return q.Take(0) }, []int{}},
		{"trim two", func(q *core.Query[int]) *core.Query[int] { return q.Trim(2) }, []int{1, 2, 3}},
		{"trim all", func(q *core.Query[int]) *core.Query[int] { return q.Trim(5) }, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op(core.New([]int{1, 2, 3, 4, 5})).ToVector()
			equalSlices(t, got, tt.want)
		})
	}
}

func TestBoundsViolationsFailLoudly(t *testing.T) {
	tests := []struct {
		name string
		fn   func(*core.Query[int])
	}{
		{"skip beyond size", func(q *core.Query[int]) { q.Skip(3) }},
		{"take beyond size", func(q *core.Query[int]) { q.Take(5) }},
		{"take negative", func(q *core.Query[int]) { q.Take(-1) }},
		{"trim beyond size", func(q *core.Query[int]) { q.Trim(3) }},
		{"take random beyond size", func(q *core.Query[int]) { q.TakeRandom(3) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := wantInvariant(t, func() { tt.fn(core.New([]int{1, 2})) })
			if inv.Size != 2 {
				t.Errorf("error size = %d, want 2", inv.Size)
			}
		})
	}
}

func TestSlice(t *testing.T) {
	tests := []struct {
		name                 string
		start, count, stride int
		want                 []int
	}{
		{"strided", 2, 3, 2, []int{3, 5, 7}},
		{"contiguous", 1, 3, 1, []int{2, 3, 4}},
		{"zero stride repeats start", 2, 3, 0, []int{3, 3, 3}},
		{"single item", 0, 1, 1, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := core.New([]int{1, 2, 3, 4, 5, 6, 7})
			got := q.Slice(tt.start, tt.count, tt.stride).ToVector()
			equalSlices(t, got, tt.want)
		})
	}
}

func TestSliceBounds(t *testing.T) {
	t.Run("start beyond size", func(t *testing.T) {
		wantInvariant(t, func() { core.New([]int{1, 2}).Slice(2, 1, 1) })
	})
	t.Run("span beyond size", func(t *testing.T) {
		wantInvariant(t, func() { core.New([]int{1, 2, 3}).Slice(1, 3, 2) })
	})
	t.Run("end index one past size", func(t *testing.T) {
		inv := wantInvariant(t, func() { core.New([]int{1, 2}).Slice(1, 2, 1) })
		if inv.Value != 2 || inv.Size != 2 {
			t.Errorf("error value = %d size = %d, want 2 and 2", inv.Value, inv.Size)
		}
	})
}

func TestReverse(t *testing.T) {
	got := core.New([]int{1, 2, 3, 4}).Reverse().ToVector()
	equalSlices(t, got, []int{4, 3, 2, 1})
}

func TestShuffleIsPermutation(t *testing.T) {
	input := []int{1, 2, 3, 4, 5, 6, 7, 8}
	got := core.New(append([]int(nil), input...)).Shuffle().ToVector()
	if len(got) != len(input) {
		t.Fatalf("shuffle changed size: got %d, want %d", len(got), len(input))
	}
	sorted := append([]int(nil), got...)
	sort.Ints(sorted)
	equalSlices(t, sorted, input)
}

func TestTakeRandom(t *testing.T) {
	input := []int{1, 2, 3, 4, 5}
	got := core.New(append([]int(nil), input...)).TakeRandom(3).ToVector()
	if len(got) != 3 {
		t.Fatalf("got %d items, want 3", len(got))
	}
	seen := map[int]bool{}
	for _, n := range got {
		if n < 1 || n > 5 {
			t.Fatalf("item %d not drawn from input", n)
		}
		if seen[n] {
			t.Fatalf("item %d drawn twice", n)
		}
		seen[n] = true
	}
}

func TestAction(t *testing.T) {
	var visited []int
	got := core.New([]int{1, 2, 3}).
		Action(func(n int) { visited = append(visited, n) }).
		ToVector()
	equalSlices(t, visited, []int{1, 2, 3})
	equalSlices(t, got, []int{1, 2, 3})
}

func TestQuantifiers(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	q := core.New([]int{2, 4, 6})
	if !q.All(even) {
		t.Error("All(even) over evens = false, want true")
	}
	if !q.Any(even) {
		t.Error("Any(even) over evens = false, want true")
	}
	// Quantifiers are read-only, so the query is still live.
	equalSlices(t, q.ToVector(), []int{2, 4, 6})

	mixed := core.New([]int{1, 2, 3})
	if mixed.All(even) {
		t.Error("All(even) over mixed = true, want false")
	}
	if !mixed.Any(even) {
		t.Error("Any(even) over mixed = false, want true")
	}

	empty := core.New([]int{})
	if !empty.All(even) {
		t.Error("All over empty = false, want vacuous true")
	}
	if empty.Any(even) {
		t.Error("Any over empty = true, want false")
	}
}

func TestFirstOrDefault(t *testing.T) {
	got, ok := core.New([]int{1, 2, 3, 4}).FirstOrDefault(func(n int) bool { return n > 2 })
	if !ok || got != 3 {
		t.Errorf("got (%d, %v), want (3, true)", got, ok)
	}

	got, ok = core.New([]int{1, 2}).FirstOrDefault(func(n int) bool { return n > 10 })
	if ok || got != 0 {
		t.Errorf("got (%d, %v), want (0, false)", got, ok)
	}
}

func TestEqual(t *testing.T) {
	q := core.New([]int{1, 2, 3})
	if !core.Equal(q, []int{1, 2, 3}) {
		t.Error("Equal against same sequence = false, want true")
	}
	if core.Equal(q, []int{3, 2, 1}) {
		t.Error("Equal against reordered sequence = true, want false")
	}
	if core.Equal(q, []int{1, 2}) {
		t.Error("Equal against shorter sequence = true, want false")
	}
	// Equality does not consume.
	equalSlices(t, q.ToVector(), []int{1, 2, 3})
}

func TestSizeEmpty(t *testing.T) {
	q := core.New([]int{1, 2})
	if q.Size() != 2 {
		t.Errorf("Size = %d, want 2", q.Size())
	}
	if q.Empty() {
		t.Error("Empty = true, want false")
	}
	if !core.New([]int{}).Empty() {
		t.Error("Empty over empty sequence = false, want true")
	}
}
