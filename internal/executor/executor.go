// Package executor drives per-layer computation over a built graph in
// schedule order.
package executor

import "context"

// Executor runs one pass over a graph.
type Executor interface {
	Execute(ctx context.Context) error
}
