// Package bfs provides breadth-first traversal over arbitrary Go values.
//
// BFS processes every value a given number of keys away from the root
// before moving on to the next layer, with optional cancellation, an
// enqueue hook and depth limiting.
package bfs

import (
	"github.com/katalvlaran/keycrawler/core"
	"github.com/katalvlaran/keycrawler/vertex"
)

// BreadthFirstSearch is the queue-based traversal strategy.
// The zero value behaves like Default().
type BreadthFirstSearch struct {
	opts BFSOptions
}

// New builds a breadth-first strategy, returning ErrOptionViolation for
// bad options.
func New(opts ...Option) (*BreadthFirstSearch, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &BreadthFirstSearch{opts: o}, nil
}

// Default returns a strategy with no limits.
func Default() *BreadthFirstSearch {
	return &BreadthFirstSearch{opts: DefaultOptions()}
}

// Options returns the effective options.
func (b *BreadthFirstSearch) Options() BFSOptions {
	if b == nil || b.opts.Ctx == nil {
		return DefaultOptions()
	}

	return b.opts
}

// Traverse walks root layer by layer, calling callback once per value
// reached. The returned state is always Completed.
func (b *BreadthFirstSearch) Traverse(root any, callback core.Callback, factory *vertex.Factory) *core.State {
	state := core.NewRootState(root)
	state.RouteQueue = []*core.Route{state.Route}
	b.ExtendTraversal(state, callback, factory)
	state.Completed = true

	return state
}

// ExtendTraversal drains state.RouteQueue. A nil queue is seeded with the
// current route.
//
// Each dequeued route becomes state.Route. Reaching an object that was
// already visited ends the whole traversal, not only that branch.
func (b *BreadthFirstSearch) ExtendTraversal(state *core.State, callback core.Callback, factory *vertex.Factory) {
	if state.Completed {
		return
	}
	if state.RouteQueue == nil {
		state.RouteQueue = []*core.Route{state.Route}
	}
	w := &walker{opts: b.Options(), state: state, callback: callback, factory: factory}
	w.loop()
}

// walker encapsulates one drain of the route queue.
type walker struct {
	opts     BFSOptions
	state    *core.State
	callback core.Callback
	factory  *vertex.Factory
}

// loop processes the queue until empty, completion or cancellation.
func (w *walker) loop() {
	state := w.state
	for len(state.RouteQueue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			state.Err = w.opts.Ctx.Err()
			state.Completed = true
			return
		default:
		}

		state.Route = w.dequeue()
		target := state.Route.Target
		if !vertex.IsComposite(target) {
			w.call()
			if state.Completed {
				return
			}
			continue
		}

		if state.Visited.Has(target) {
			return
		}
		state.Visited.Add(target)
		w.call()
		if state.Completed {
			return
		}

		if state.SkipIteration {
			state.SkipIteration = false
			continue
		}
		w.enqueueChildren()
	}
}

// dequeue pops the first pending route.
func (w *walker) dequeue() *core.Route {
	route := w.state.RouteQueue[0]
	w.state.RouteQueue[0] = nil
	w.state.RouteQueue = w.state.RouteQueue[1:]

	return route
}

// call invokes the callback when set.
func (w *walker) call() {
	if w.callback != nil {
		w.callback(w.state)
	}
}

// enqueueChildren adds one route per key of the current target, each
// with its own copy of the parent path and vertices.
func (w *walker) enqueueChildren() {
	parent := w.state.Route
	if w.opts.MaxDepth > 0 && parent.Len() >= w.opts.MaxDepth {
		return
	}
	keyed, ok := w.factory.CreateKeyed(parent.Target)
	if !ok {
		return
	}
	for key := range keyed.Keys() {
		value, _ := keyed.KeyValue(key)
		sub := parent.Clone()
		sub.Push(key, keyed, value)
		w.opts.OnEnqueue(sub)
		w.state.RouteQueue = append(w.state.RouteQueue, sub)
	}
}
