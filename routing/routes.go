// Package routing converts page routes to URLs and back.
//
// A route is written as search terms rather than raw keys: the closest
// page with an id, the local names of pages below it, and child positions
// only where no name is available. Parsing resolves those terms with
// content.NewPageTreeSearchResolver, so URLs survive pages being moved
// around as long as their names stay put.
package routing

import (
	"github.com/katalvlaran/keycrawler/content"
	"github.com/katalvlaran/keycrawler/core"
	"github.com/katalvlaran/keycrawler/links"
	"github.com/katalvlaran/keycrawler/search"
	"github.com/katalvlaran/keycrawler/vertex"
)

// NamedPageRouteParser converts between text and routes into Context,
// a list of page trees.
type NamedPageRouteParser struct {
	Paths    PageContentPathParser
	Resolver *search.Resolver
	Context  any
}

// NewNamedPageRouteParser returns a parser over context reading URL values
// with values; a nil values parser joins page and content paths with "/".
func NewNamedPageRouteParser(values links.TextParser[map[string]string], context any) *NamedPageRouteParser {
	return &NamedPageRouteParser{
		Paths:    PageContentPathParser{Values: values},
		Resolver: content.NewPageTreeSearchResolver(),
		Context:  context,
	}
}

// Parse resolves source to the first matching route, or to the root
// route of Context when nothing matches.
func (p *NamedPageRouteParser) Parse(source string) *core.Route {
	terms := p.Paths.Parse(source)
	response := p.Resolver.Resolve(p.Context, terms, 1)
	if len(response.Results) > 0 {
		return response.Results[0]
	}

	return core.NewRootRoute(p.Context)
}

// Stringify writes route as text.
func (p *NamedPageRouteParser) Stringify(route *core.Route) string {
	return p.Paths.Stringify(SearchTerms(route))
}

// SearchTerms describes route, a route over the content view of a page
// tree, as search terms. Walking back from the target, the first page
// with an id anchors the terms; pages with a local name contribute that
// name, and unnamed pages below the last name contribute their position.
// Keys after a "content" step are kept as the content path.
func SearchTerms(route *core.Route) []search.Term {
	base := route.Path
	var contentPath []vertex.Key
	for i, key := range base {
		if key == "content" {
			contentPath = base[i+1:]
			base = base[:i]
			break
		}
	}

	var page []search.Term
	unnamed := true
	for i := len(base) - 1; i >= 0; i-- {
		target := valueAfter(route, i)
		if !vertex.IsComposite(target) || vertex.IsList(target) {
			continue
		}
		if id, ok := content.PropertyText(target, "id"); ok {
			page = append([]search.Term{search.KeyValuePair{Key: "id", Value: id}}, page...)
			break
		}
		if name, ok := content.PropertyText(target, "localName"); ok {
			page = append([]search.Term{search.KeyValuePair{Key: "localName", Value: name}}, page...)
			unnamed = false
			continue
		}
		if unnamed {
			if _, isIndex := base[i].(int); isIndex {
				page = append([]search.Term{"children", base[i]}, page...)
			}
		}
	}

	if len(page) > 0 && page[0] == "children" {
		page = page[1:]
	}
	terms := page
	if contentPath != nil {
		terms = append(terms, "content")
		for _, key := range contentPath {
			terms = append(terms, key)
		}
	}

	return terms
}

// valueAfter returns the value reached by the step at index i.
func valueAfter(route *core.Route, i int) any {
	if i+1 < len(route.Vertices) {
		return route.Vertices[i+1].Value()
	}

	return route.Target
}
