// Package navigation steps through a tree as if it were flattened into
// its pre-order depth-first sequence.
//
// Positions are routes of a crawler.KeyCrawler whose vertices key child
// nodes by position, such as content.NewIndexedContentTreeCrawler. Moving
// past either end leaves a route with a nil target.
package navigation

import (
	"github.com/katalvlaran/keycrawler/core"
	"github.com/katalvlaran/keycrawler/crawler"
	"github.com/katalvlaran/keycrawler/vertex"
)

// LinearTreeNavigator moves routes to the next or previous node in
// preorder.
type LinearTreeNavigator struct {
	crawler *crawler.KeyCrawler
}

// NewLinearTreeNavigator returns a navigator reading the tree through c.
func NewLinearTreeNavigator(c *crawler.KeyCrawler) *LinearTreeNavigator {
	return &LinearTreeNavigator{crawler: c}
}

// Crawler returns the crawler that builds and extends routes.
func (n *LinearTreeNavigator) Crawler() *crawler.KeyCrawler { return n.crawler }

// FirstNodeRoute returns the route to the first top-level node of source.
func (n *LinearTreeNavigator) FirstNodeRoute(source any) *core.Route {
	return n.crawler.CreateRouteFrom(source, []vertex.Key{0})
}

// LastNodeRoute returns the route to the node a preorder traversal of
// source visits last.
func (n *LinearTreeNavigator) LastNodeRoute(source any) *core.Route {
	route := n.crawler.CreateRouteFrom(source, nil)
	n.GoToLastDescendant(route)

	return route
}

// GoToNextNode moves route, in place, to the next node in preorder: the
// first child if there is one, else the next sibling of the node or of its
// closest ancestor that has one. Past the last node the route ends at the
// root with a nil target.
func (n *LinearTreeNavigator) GoToNextNode(route *core.Route) {
	depth := route.Len()
	n.crawler.ExtendRouteByIndices(route, []int{0})
	if route.Len() > depth {
		return
	}
	for route.Len() > 0 {
		last := route.Len() - 1
		if last >= len(route.Vertices) {
			break
		}
		parent := route.Vertices[last]
		index, ok := vertex.KeyToIndex(route.Path[last])
		if !ok {
			break
		}
		if key, ok := parent.IndexedKey(index + 1); ok {
			if value, ok := parent.KeyValue(key); ok && value != nil {
				route.Path[last] = key
				route.Target = value
				return
			}
		}
		n.crawler.RevertRoute(route, 1)
	}
	route.Target = nil
}

// NextNodeRoute returns a copy of route moved to the next node.
func (n *LinearTreeNavigator) NextNodeRoute(route *core.Route) *core.Route {
	next := route.Clone()
	n.GoToNextNode(next)

	return next
}

// GoToPreviousNode moves route, in place, to the previous node in
// preorder: the parent of a first child, else the last descendant of the
// previous sibling. Stepping back from the first node leaves the route at
// the root with a nil target. Routes ending in a non-positional key are
// left untouched.
func (n *LinearTreeNavigator) GoToPreviousNode(route *core.Route) {
	lastKey, ok := route.LastKey()
	if !ok {
		return
	}
	index, ok := vertex.KeyToIndex(lastKey)
	if !ok {
		return
	}
	if index == 0 {
		n.crawler.RevertRoute(route, 1)
		if route.Len() == 0 {
			route.Target = nil
		}
		return
	}
	n.crawler.RevertRoute(route, 1)
	n.crawler.ExtendRoute(route, []vertex.Key{index - 1})
	n.GoToLastDescendant(route)
}

// PreviousNodeRoute returns a copy of route moved to the previous node.
func (n *LinearTreeNavigator) PreviousNodeRoute(route *core.Route) *core.Route {
	previous := route.Clone()
	n.GoToPreviousNode(previous)

	return previous
}

// GoToLastDescendant follows the last child of route's target, in place,
// until it reaches a node without children.
func (n *LinearTreeNavigator) GoToLastDescendant(route *core.Route) {
	for {
		depth := route.Len()
		n.crawler.ExtendRouteByIndices(route, []int{-1})
		if route.Len() <= depth {
			return
		}
	}
}
