// Package breadcrumbs lists the links leading from the root of a route to
// its target.
package breadcrumbs

import (
	"github.com/katalvlaran/keycrawler/core"
	"github.com/katalvlaran/keycrawler/links"
	"github.com/katalvlaran/keycrawler/vertex"
)

// Factory builds breadcrumb trails.
type Factory struct {
	links links.RouteLinker
}

// NewFactory returns a factory rendering each crumb with linker.
func NewFactory(linker links.RouteLinker) *Factory {
	return &Factory{links: linker}
}

// RouteLinks returns one link per object along route, outermost first,
// ending with the target. The root and list positions get no link.
func (f *Factory) RouteLinks(route *core.Route) []links.HyperlinkSummary {
	var crumbs []links.HyperlinkSummary
	current := route.Clone()
	for current.Len() > 0 {
		target := current.Target
		if vertex.IsComposite(target) && !vertex.IsList(target) {
			crumbs = append(crumbs, f.links.RouteLink(current))
		}
		last := current.Len() - 1
		if last >= len(current.Vertices) {
			break
		}
		current.Target = current.Vertices[last].Value()
		current.Vertices = current.Vertices[:last]
		current.Path = current.Path[:last]
	}
	for i, j := 0, len(crumbs)-1; i < j; i, j = i+1, j-1 {
		crumbs[i], crumbs[j] = crumbs[j], crumbs[i]
	}

	return crumbs
}
