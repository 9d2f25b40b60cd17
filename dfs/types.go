// Package dfs defines the options and errors of the depth-first strategy.
package dfs

import (
	"context"
	"errors"
)

// Order selects when the single callback of Traverse fires.
type Order int

const (
	// PreOrder fires the callback on entering a value, before its children.
	PreOrder Order = iota

	// PostOrder fires the callback after all children have been walked.
	PostOrder
)

// Vertex colors used by DetectCycles.
const (
	White = iota // White: not reached yet.
	Gray         // Gray: on the current route.
	Black        // Black: fully explored.
)

var (
	// ErrOptionViolation indicates an invalid option value passed to New.
	ErrOptionViolation = errors.New("dfs: invalid option")

	// ErrDepthExceeded is recorded on State.Err when a route grows past
	// the configured maximum depth.
	ErrDepthExceeded = errors.New("dfs: maximum depth exceeded")
)

// Option configures a DepthFirstSearch.
type Option func(*Options)

// Options holds the configurable parameters of a DepthFirstSearch.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	// A cancelled context ends the traversal with State.Err set to ctx.Err().
	Ctx context.Context

	// Order selects pre- or post-order callbacks for Traverse. Default PreOrder.
	Order Order

	// MaxDepth, if non-negative, is the longest route allowed. Reaching a
	// value deeper than that ends the traversal with ErrDepthExceeded.
	// Default is -1 (no limit).
	MaxDepth int

	// PruneDepth, if non-negative, is the route length past which the walk
	// stops descending. Values at that length are still visited, their
	// children are not, and the rest of the walk carries on.
	// Default is -1 (no pruning).
	PruneDepth int

	err error
}

// DefaultOptions returns Options with:
//   - Background context
//   - PreOrder
//   - No depth limit (MaxDepth = -1)
//   - No pruning (PruneDepth = -1)
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Order:      PreOrder,
		MaxDepth:   -1,
		PruneDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrder selects pre- or post-order callbacks.
func WithOrder(order Order) Option {
	return func(o *Options) {
		if order != PreOrder && order != PostOrder {
			o.err = ErrOptionViolation
			return
		}
		o.Order = order
	}
}

// WithMaxDepth limits route length to limit steps. A negative limit
// removes the bound.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			limit = -1
		}
		o.MaxDepth = limit
	}
}

// WithPruneDepth stops descending below routes of length limit without
// ending the walk. A negative limit removes the bound.
func WithPruneDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			limit = -1
		}
		o.PruneDepth = limit
	}
}
