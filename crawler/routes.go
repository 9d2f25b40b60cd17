package crawler

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/keycrawler/core"
	"github.com/katalvlaran/keycrawler/vertex"
)

// CreateRouteFrom builds a route from root following path as far as it goes.
func (c *KeyCrawler) CreateRouteFrom(root any, path []vertex.Key) *core.Route {
	route := core.NewRootRoute(root)
	c.ExtendRoute(route, path)

	return route
}

// ExtendRoute follows steps from the route's target, in place. Each step
// pushes the key together with the vertex it was read from. Extension
// stops silently at the first target that has no keys, so the remaining
// steps are dropped and Path and Vertices keep the same length.
// A key the vertex does not have leads to a nil target.
func (c *KeyCrawler) ExtendRoute(route *core.Route, steps []vertex.Key) {
	for i, key := range steps {
		keyed, ok := c.keyedTarget(route)
		if !ok {
			c.logTruncated(route, len(steps)-i)
			return
		}
		value, _ := keyed.KeyValue(key)
		route.Push(key, keyed, value)
	}
}

// ExtendRouteByIndices is ExtendRoute with positional steps. Each index is
// resolved through the vertex's IndexedKey, so negative indices count back
// from the last key. An index with no key stops the extension.
func (c *KeyCrawler) ExtendRouteByIndices(route *core.Route, indices []int) {
	for i, index := range indices {
		keyed, ok := c.keyedTarget(route)
		if !ok {
			c.logTruncated(route, len(indices)-i)
			return
		}
		key, ok := keyed.IndexedKey(index)
		if !ok {
			c.logTruncated(route, len(indices)-i)
			return
		}
		value, _ := keyed.KeyValue(key)
		route.Push(key, keyed, value)
	}
}

// RevertRoute removes the last numSteps steps in place, flooring at the
// root. The target becomes the value of the vertex the first removed key
// was read from, which restores the root when reverting all the way.
// A route that had nothing to remove ends with a nil target.
// numSteps <= 0 leaves the route untouched.
func (c *KeyCrawler) RevertRoute(route *core.Route, numSteps int) {
	if numSteps <= 0 {
		return
	}
	targetLength := max(len(route.Path)-numSteps, 0)
	if len(route.Vertices) > targetLength {
		route.Target = route.Vertices[targetLength].Value()
	} else {
		route.Target = nil
	}
	route.Path = route.Path[:min(targetLength, len(route.Path))]
	route.Vertices = route.Vertices[:min(targetLength, len(route.Vertices))]
}

// GetSubroute returns a copy of route extended by steps.
func (c *KeyCrawler) GetSubroute(route *core.Route, steps []vertex.Key) *core.Route {
	sub := route.Clone()
	c.ExtendRoute(sub, steps)

	return sub
}

// GetChildRoute returns a copy of route extended by the key at index.
func (c *KeyCrawler) GetChildRoute(route *core.Route, index int) *core.Route {
	sub := route.Clone()
	c.ExtendRouteByIndices(sub, []int{index})

	return sub
}

// GetParentRoute returns a copy of route reverted by numSteps.
func (c *KeyCrawler) GetParentRoute(route *core.Route, numSteps int) *core.Route {
	sub := route.Clone()
	c.RevertRoute(sub, numSteps)

	return sub
}

// keyedTarget returns the keyed vertex of the route target, if any.
func (c *KeyCrawler) keyedTarget(route *core.Route) (vertex.Keyed, bool) {
	if !vertex.IsComposite(route.Target) {
		return nil, false
	}

	return c.factory.CreateKeyed(route.Target)
}

// logTruncated notes a route extension that stopped before its last step.
func (c *KeyCrawler) logTruncated(route *core.Route, dropped int) {
	c.log.Debug("route extension truncated",
		zap.Int("length", route.Len()),
		zap.Int("dropped", dropped))
}
