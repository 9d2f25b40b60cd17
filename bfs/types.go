// Package bfs provides tunable options and error definitions
// for breadth-first traversal of Go values.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/keycrawler/core"
)

// ErrOptionViolation is returned by New when an invalid Option is supplied.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation by New.
type Option func(*BFSOptions)

// BFSOptions holds parameters and hooks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation. A cancelled context ends the traversal
	// with State.Err set to ctx.Err().
	Ctx context.Context

	// OnEnqueue is called for every child route added to the queue.
	OnEnqueue func(route *core.Route)

	// MaxDepth, if > 0, stops enqueueing routes longer than this.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op OnEnqueue hook
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(*core.Route) {},
		MaxDepth:  0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(route *core.Route)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithMaxDepth stops the search at the given route length.
//
//	d > 0: no route longer than d is enqueued
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}
