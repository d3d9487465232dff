// Package observe bridges query chain hooks to metrics. It provides a
// plain in-process Counter for tests and debugging, and an OpenTelemetry
// meter bridge for production instrumentation.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/awalsh128/fluentgo/query/core"
)

// Counter tallies chain operations and the items flowing through them,
// keyed by operation name. Safe for concurrent reads while a chain runs,
// though chains themselves are single-threaded.
type Counter struct {
	mu    sync.Mutex
	ops   map[string]int64
	items map[string]int64
}

// NewCounter creates an empty Counter.
func NewCounter() *Counter {
	return &Counter{
		ops:   make(map[string]int64),
		items: make(map[string]int64),
	}
}

// Hook returns a core.Hook that records into the counter.
func (c *Counter) Hook() core.Hook {
	return func(op string, in, _ int) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.ops[op]++
		c.items[op] += int64(in)
	}
}

// Ops returns how many times the named operation ran.
func (c *Counter) Ops(op string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ops[op]
}

// Items returns how many items entered the named operation in total.
func (c *Counter) Items(op string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items[op]
}

// TotalOps returns the total number of chain operations recorded.
func (c *Counter) TotalOps() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total int64
	for _, n := range c.ops {
		total += n
	}
	return total
}

// Meter builds a core.Hook that records each chain operation to
// OpenTelemetry counters on the given meter: query.operations counts
// invocations and query.items counts input items, both tagged with the
// operation name.
func Meter(m metric.Meter) (core.Hook, error) {
	ops, err := m.Int64Counter("query.operations",
		metric.WithDescription("count of query chain operations"))
	if err != nil {
		return nil, err
	}
	items, err := m.Int64Counter("query.items",
		metric.WithDescription("count of items entering query chain operations"))
	if err != nil {
		return nil, err
	}
	ctx := context.Background()
	return func(op string, in, _ int) {
		attrs := metric.WithAttributes(attribute.String("op", op))
		ops.Add(ctx, 1, attrs)
		items.Add(ctx, int64(in), attrs)
	}, nil
}
