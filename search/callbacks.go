package search

import (
	"reflect"

	"github.com/katalvlaran/keycrawler/core"
	"github.com/katalvlaran/keycrawler/dfs"
	"github.com/katalvlaran/keycrawler/vertex"
)

// CallbackFactory builds the standard term callbacks on top of a vertex
// factory and a shared pre-order depth-first strategy.
type CallbackFactory struct {
	factory *vertex.Factory
	search  *dfs.DepthFirstSearch
}

// NewCallbackFactory returns a factory reading keys through factory.
func NewCallbackFactory(factory *vertex.Factory) *CallbackFactory {
	return &CallbackFactory{factory: factory, search: dfs.Default()}
}

// VertexFactory returns the vertex factory in use.
func (f *CallbackFactory) VertexFactory() *vertex.Factory { return f.factory }

// SearchCallback claims every term getCheck returns a check for, and
// visits each position at or below the current target that passes the
// check, in preorder. With shallow set, the descendants of a match are
// not searched for further matches of the same term.
func (f *CallbackFactory) SearchCallback(getCheck CheckFactory, shallow bool) TermCallback {
	return func(state *core.State, term Term, visit Visit) bool {
		check := getCheck(term)
		if check == nil {
			return false
		}
		f.searchWith(state, check, visit, shallow)

		return true
	}
}

// searchWith runs check over the current subtree, visiting every match.
func (f *CallbackFactory) searchWith(state *core.State, check CheckFunc, visit Visit, shallow bool) {
	f.search.ExtendTraversal(state, func(state *core.State) {
		if !check(state) {
			return
		}
		visit(state)
		if shallow {
			state.SkipIteration = true
		}
	}, f.factory)
}

// KeyCallback resolves literal key terms. See ResolveKey.
func (f *CallbackFactory) KeyCallback() TermCallback {
	return f.ResolveKey
}

// ResolveKey claims any string or number term and steps from the current
// target through that key, visiting the child when it exists. The route
// is restored afterwards unless the search completed.
func (f *CallbackFactory) ResolveKey(state *core.State, term Term, visit Visit) bool {
	if !isKeyTerm(term) {
		return false
	}
	target := state.Route.Target
	if !vertex.IsComposite(target) {
		return true
	}
	keyed, ok := f.factory.CreateKeyed(target)
	if !ok {
		return true
	}
	value, ok := keyed.KeyValue(term)
	if !ok {
		return true
	}
	state.Route.Push(term, keyed, value)
	visit(state)
	if !state.Completed {
		state.Route.Pop()
	}

	return true
}

// PropertyItemAtCallback resolves numeric terms as positions inside the
// first list-valued property of the current object. See ResolvePropertyItemAt.
func (f *CallbackFactory) PropertyItemAtCallback(properties []string) TermCallback {
	return func(state *core.State, term Term, visit Visit) bool {
		return f.ResolvePropertyItemAt(properties, state, term, visit)
	}
}

// ResolvePropertyItemAt claims numeric terms when the current target is a
// non-list object holding a list under one of properties, tried in order.
// The route advances two steps, through the property then the position,
// and the item is visited. Negative positions count back from the end,
// clamped at the first item. The route is restored afterwards unless the
// search completed.
func (f *CallbackFactory) ResolvePropertyItemAt(properties []string, state *core.State, term Term, visit Visit) bool {
	position, ok := numericTerm(term)
	if !ok {
		return false
	}
	target := state.Route.Target
	if !vertex.IsComposite(target) || vertex.IsList(target) {
		return false
	}
	for _, property := range properties {
		collection, ok := vertex.LookupProperty(target, property)
		if !ok || !vertex.IsList(collection) {
			continue
		}
		list := vertex.NewArrayVertex(collection)
		index := position
		if index < 0 {
			index = max(0, list.Len()+index)
		}
		parentVertex, ok := f.factory.CreateKeyed(target)
		if !ok {
			parentVertex = vertex.NewObjectVertex(target)
		}
		collectionVertex, ok := f.factory.CreateKeyed(collection)
		if !ok {
			collectionVertex = list
		}
		item, _ := list.KeyValue(index)

		state.Route.Push(property, parentVertex, collection)
		state.Route.Push(index, collectionVertex, item)
		visit(state)
		if !state.Completed {
			state.Route.Pop()
			state.Route.Pop()
		}
		return true
	}

	return false
}

// isKeyTerm reports whether term is a literal key: a string or a number.
func isKeyTerm(term Term) bool {
	if term == nil {
		return false
	}
	switch reflect.TypeOf(term).Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// numericTerm converts integer-valued number terms to int. Strings do not
// count as numbers here.
func numericTerm(term Term) (int, bool) {
	if term == nil || reflect.TypeOf(term).Kind() == reflect.String {
		return 0, false
	}

	return vertex.KeyToIndex(term)
}
