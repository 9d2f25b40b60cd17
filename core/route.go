package core

import "github.com/katalvlaran/keycrawler/vertex"

// Route is a position inside a traversal: the keys taken from the root,
// the keyed vertices those keys were taken from, and the value reached.
//
// Path[i] was taken from Vertices[i]. Traversal strategies keep both
// slices the same length; route operations of the crawler package stop
// before a terminal value so the parity holds there too.
type Route struct {
	// Path lists the keys followed from the root.
	Path []vertex.Key

	// Vertices lists the keyed vertices each key was taken from.
	Vertices []vertex.Keyed

	// Target is the value currently reached.
	Target any
}

// NewRootRoute returns the empty route pointing at root.
func NewRootRoute(root any) *Route {
	return &Route{
		Path:     []vertex.Key{},
		Vertices: []vertex.Keyed{},
		Target:   root,
	}
}

// Clone returns a route with fresh Path and Vertices slices holding the
// same elements, so extending the copy never disturbs r.
func (r *Route) Clone() *Route {
	if r == nil {
		return nil
	}

	return &Route{
		Path:     append(make([]vertex.Key, 0, len(r.Path)), r.Path...),
		Vertices: append(make([]vertex.Keyed, 0, len(r.Vertices)), r.Vertices...),
		Target:   r.Target,
	}
}

// Len returns the number of steps taken from the root.
func (r *Route) Len() int {
	return len(r.Path)
}

// LastKey returns the final key of the path, if any.
func (r *Route) LastKey() (vertex.Key, bool) {
	if len(r.Path) == 0 {
		return nil, false
	}

	return r.Path[len(r.Path)-1], true
}

// Values lists the value of every vertex along the route followed by the
// target.
func (r *Route) Values() []any {
	values := make([]any, 0, len(r.Vertices)+1)
	for _, v := range r.Vertices {
		values = append(values, v.Value())
	}

	return append(values, r.Target)
}

// Push appends one step: the key taken and the vertex it was taken from.
// The target becomes value.
func (r *Route) Push(key vertex.Key, from vertex.Keyed, value any) {
	r.Path = append(r.Path, key)
	r.Vertices = append(r.Vertices, from)
	r.Target = value
}

// Pop removes the last step and makes its source vertex the target again.
// It is a no-op on an empty route.
func (r *Route) Pop() {
	n := len(r.Vertices)
	if n == 0 {
		return
	}
	r.Target = r.Vertices[n-1].Value()
	r.Vertices = r.Vertices[:n-1]
	if len(r.Path) >= n {
		r.Path = r.Path[:n-1]
	}
}
