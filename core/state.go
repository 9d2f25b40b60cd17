package core

import "github.com/katalvlaran/keycrawler/vertex"

// VisitedSet records the objects already entered during a traversal by
// reference identity. Values without identity (struct and array values,
// empty slices, scalars) are never recorded and therefore never repeat.
type VisitedSet struct {
	seen  map[vertex.Identity]struct{}
	items []any
}

// NewVisitedSet returns an empty set.
func NewVisitedSet() *VisitedSet {
	return &VisitedSet{seen: make(map[vertex.Identity]struct{})}
}

// Has reports whether value was added before.
func (s *VisitedSet) Has(value any) bool {
	id, ok := vertex.IdentityOf(value)
	if !ok {
		return false
	}
	_, found := s.seen[id]

	return found
}

// Add records value. It returns false when value has no identity or was
// already present.
func (s *VisitedSet) Add(value any) bool {
	id, ok := vertex.IdentityOf(value)
	if !ok {
		return false
	}
	if _, found := s.seen[id]; found {
		return false
	}
	s.seen[id] = struct{}{}
	s.items = append(s.items, value)

	return true
}

// Len returns the number of recorded objects.
func (s *VisitedSet) Len() int {
	return len(s.items)
}

// Items returns the recorded objects in insertion order.
func (s *VisitedSet) Items() []any {
	return append([]any(nil), s.items...)
}

// State is the mutable context handed to traversal callbacks.
//
// Callbacks steer the traversal through it: setting Completed ends the
// traversal, setting SkipIteration skips the children of the current
// target. The strategy consumes SkipIteration once it has acted on it.
type State struct {
	// Route is the current position.
	Route *Route

	// Visited holds the objects entered so far.
	Visited *VisitedSet

	// Completed latches the end of the traversal.
	Completed bool

	// SkipIteration asks the strategy not to descend into the current target.
	SkipIteration bool

	// RouteQueue holds pending routes for breadth-first traversal.
	RouteQueue []*Route

	// Err records why a traversal stopped early, if it was not by request.
	Err error
}

// NewRootState returns a fresh state positioned at root.
func NewRootState(root any) *State {
	return &State{
		Route:   NewRootRoute(root),
		Visited: NewVisitedSet(),
	}
}

// Callback is invoked by a strategy for every value it reaches.
type Callback func(state *State)

// Strategy walks a value graph, invoking a callback per reached value.
type Strategy interface {
	// Traverse starts from root and returns the final state, which is
	// always marked Completed.
	Traverse(root any, callback Callback, factory *vertex.Factory) *State

	// ExtendTraversal continues from the current route of state.
	ExtendTraversal(state *State, callback Callback, factory *vertex.Factory)
}
