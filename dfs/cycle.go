package dfs

import (
	"github.com/katalvlaran/keycrawler/core"
	"github.com/katalvlaran/keycrawler/vertex"
)

// DetectCycles reports every back reference reachable from root: a key
// whose value is an object already on the route leading to it. Each
// returned route ends with that key, and its Target is the ancestor the
// key points back to. Routes are listed in depth-first preorder.
//
// The walk uses three-color marking by identity: White objects are new,
// Gray objects are on the current route, Black objects are fully explored
// and never re-entered. A nil factory applies the default vertex rules.
//
// Complexity: O(V + E) over the reachable objects and keys.
func DetectCycles(root any, factory *vertex.Factory) []*core.Route {
	w := &cycleWalker{
		factory: factory,
		colors:  make(map[vertex.Identity]int),
		route:   core.NewRootRoute(root),
	}
	w.visit()

	return w.cycles
}

// cycleWalker holds the coloring and the routes found so far.
type cycleWalker struct {
	factory *vertex.Factory
	colors  map[vertex.Identity]int
	route   *core.Route
	cycles  []*core.Route
}

// visit explores the current target.
func (w *cycleWalker) visit() {
	target := w.route.Target
	if !vertex.IsComposite(target) {
		return
	}
	id, hasID := vertex.IdentityOf(target)
	if hasID {
		w.colors[id] = Gray
	}

	if keyed, ok := w.factory.CreateKeyed(target); ok {
		for key := range keyed.Keys() {
			value, _ := keyed.KeyValue(key)
			if childID, ok := vertex.IdentityOf(value); ok {
				switch w.colors[childID] {
				case Gray:
					back := w.route.Clone()
					back.Push(key, keyed, value)
					w.cycles = append(w.cycles, back)
					continue
				case Black:
					continue
				}
			}
			w.route.Push(key, keyed, value)
			w.visit()
			w.route.Pop()
		}
	}

	if hasID {
		w.colors[id] = Black
	}
}
