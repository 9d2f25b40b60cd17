package dfs

import (
	"fmt"

	"github.com/katalvlaran/keycrawler/core"
	"github.com/katalvlaran/keycrawler/vertex"
)

// DepthFirstSearch walks a value graph depth first, one branch at a time.
// The zero value behaves like Default().
type DepthFirstSearch struct {
	opts Options
}

// New builds a depth-first strategy. It returns ErrOptionViolation when an
// option was given an invalid value.
func New(opts ...Option) (*DepthFirstSearch, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &DepthFirstSearch{opts: o}, nil
}

// Default returns a pre-order strategy with no limits.
func Default() *DepthFirstSearch {
	return &DepthFirstSearch{opts: DefaultOptions()}
}

// Options returns the effective options.
func (d *DepthFirstSearch) Options() Options {
	if d == nil || d.opts.Ctx == nil {
		return DefaultOptions()
	}

	return d.opts
}

// Traverse walks root, calling callback in the configured order.
// The returned state is always Completed.
func (d *DepthFirstSearch) Traverse(root any, callback core.Callback, factory *vertex.Factory) *core.State {
	state := core.NewRootState(root)
	d.ExtendTraversal(state, callback, factory)
	state.Completed = true

	return state
}

// ExtendTraversal walks the current target of state and everything below
// it, calling callback in the configured order.
func (d *DepthFirstSearch) ExtendTraversal(state *core.State, callback core.Callback, factory *vertex.Factory) {
	if d.Options().Order == PostOrder {
		d.ExtendPhasedTraversal(state, nil, callback, factory)
		return
	}
	d.ExtendPhasedTraversal(state, callback, nil, factory)
}

// StartPhasedTraversal walks root with separate pre- and post-order
// callbacks. Either callback may be nil. The returned state is always
// Completed.
func (d *DepthFirstSearch) StartPhasedTraversal(root any, pre, post core.Callback, factory *vertex.Factory) *core.State {
	state := core.NewRootState(root)
	d.ExtendPhasedTraversal(state, pre, post, factory)
	state.Completed = true

	return state
}

// ExtendPhasedTraversal walks the current target of state with separate
// pre- and post-order callbacks.
//
// Objects already in state.Visited are skipped without callbacks. Setting
// state.SkipIteration in the pre-order callback skips the children of the
// current object; the flag is cleared once honored. On return the route
// points back at the target it started from, unless the walk completed.
func (d *DepthFirstSearch) ExtendPhasedTraversal(state *core.State, pre, post core.Callback, factory *vertex.Factory) {
	w := &dfsWalker{
		opts:    d.Options(),
		state:   state,
		pre:     pre,
		post:    post,
		factory: factory,
	}
	w.extend()
}

// dfsWalker carries the per-call traversal context.
type dfsWalker struct {
	opts    Options
	state   *core.State
	pre     core.Callback
	post    core.Callback
	factory *vertex.Factory
}

// halt ends the traversal when the context is done or the route is too deep.
func (w *dfsWalker) halt() bool {
	select {
	case <-w.opts.Ctx.Done():
		w.state.Err = w.opts.Ctx.Err()
		w.state.Completed = true
		return true
	default:
	}
	if depth := w.state.Route.Len(); w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		w.state.Err = fmt.Errorf("%w: depth %d > %d", ErrDepthExceeded, depth, w.opts.MaxDepth)
		w.state.Completed = true
		return true
	}

	return false
}

// pruned reports whether the current route is at the prune depth.
func (w *dfsWalker) pruned() bool {
	return w.opts.PruneDepth >= 0 && w.state.Route.Len() >= w.opts.PruneDepth
}

// call invokes cb when set.
func (w *dfsWalker) call(cb core.Callback) {
	if cb != nil {
		cb(w.state)
	}
}

// extend visits the current target and, for unvisited objects, its children.
func (w *dfsWalker) extend() {
	state := w.state
	// 1. Completed latch and limits
	if state.Completed || w.halt() {
		return
	}

	target := state.Route.Target
	if !vertex.IsComposite(target) {
		// 2. Terminal values only get the two callbacks
		w.call(w.pre)
		if state.Completed {
			return
		}
		w.call(w.post)
		return
	}

	// 3. Cycle guard: a repeat truncates this branch silently
	if state.Visited.Has(target) {
		return
	}
	state.Visited.Add(target)

	// 4. Pre-order
	w.call(w.pre)
	if state.Completed {
		return
	}

	// 5. Children, unless asked to skip them or pruned
	if state.SkipIteration {
		state.SkipIteration = false
	} else if keyed, ok := w.factory.CreateKeyed(target); ok && !w.pruned() {
		for key := range keyed.Keys() {
			value, _ := keyed.KeyValue(key)
			state.Route.Push(key, keyed, value)
			w.extend()
			if state.Completed {
				return
			}
			state.Route.Pop()
		}
	}

	// 6. Post-order
	w.call(w.post)
}
