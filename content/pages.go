package content

import (
	"github.com/katalvlaran/keycrawler/core"
	"github.com/katalvlaran/keycrawler/crawler"
	"github.com/katalvlaran/keycrawler/search"
	"github.com/katalvlaran/keycrawler/vertex"
)

// ContentNodeVertex exposes the content and children of a page node.
type ContentNodeVertex struct {
	*vertex.DefinedObjectVertex
}

// NewContentNodeVertex wraps source.
func NewContentNodeVertex(source any) *ContentNodeVertex {
	return &ContentNodeVertex{
		DefinedObjectVertex: vertex.NewDefinedObjectVertex(source, []vertex.Key{"content", "children"}),
	}
}

// IndexedNodeVertex exposes only the children of a page node, keyed by
// their position, so routes through a page tree read like [1, 0, 2].
type IndexedNodeVertex struct {
	*vertex.LookupVertex
}

// NewIndexedNodeVertex wraps source.
func NewIndexedNodeVertex(source any) *IndexedNodeVertex {
	return &IndexedNodeVertex{
		LookupVertex: vertex.NewLookupVertex(source, []vertex.PathStep{"children", vertex.DefaultKeyAlias}),
	}
}

// isContentNode reports whether source is an object with a content property.
func isContentNode(source any) bool {
	return !vertex.IsList(source) && vertex.HasProperty(source, "content")
}

// ContentNodeRule wraps content nodes in a ContentNodeVertex.
func ContentNodeRule(source any) vertex.Vertex {
	if isContentNode(source) {
		return NewContentNodeVertex(source)
	}
	return nil
}

// IndexedNodeRule wraps content nodes in an IndexedNodeVertex.
func IndexedNodeRule(source any) vertex.Vertex {
	if isContentNode(source) {
		return NewIndexedNodeVertex(source)
	}
	return nil
}

// NewContentCrawler returns a crawler that walks page nodes through their
// content and children. Further options apply on top.
func NewContentCrawler(opts ...crawler.Option) *crawler.KeyCrawler {
	return crawler.New(append([]crawler.Option{crawler.WithRules(ContentNodeRule)}, opts...)...)
}

// NewIndexedContentTreeCrawler returns a crawler that walks page nodes
// through their children only.
func NewIndexedContentTreeCrawler(opts ...crawler.Option) *crawler.KeyCrawler {
	return crawler.New(append([]crawler.Option{crawler.WithRules(IndexedNodeRule)}, opts...)...)
}

// NewPageTreeSearchResolver returns a resolver for page trees: property
// matches such as {"key": "id", "value": "intro"} first, literal keys
// otherwise.
func NewPageTreeSearchResolver(opts ...search.ResolverOption) *search.Resolver {
	f := search.NewPropertySearchFactory(vertex.NewFactory(ContentNodeRule))

	return search.NewResolver([]search.TermCallback{f.PropertySearch(false), f.KeyCallback()}, opts...)
}

// PagesByID indexes every page node carrying an id, in preorder. A later
// node with a repeated id does not replace the first.
func PagesByID(pages any) map[string]any {
	index := make(map[string]any)
	NewContentCrawler().Traverse(pages, func(state *core.State) {
		id, ok := PropertyText(state.Route.Target, "id")
		if !ok || !isContentNode(state.Route.Target) {
			return
		}
		if _, seen := index[id]; !seen {
			index[id] = state.Route.Target
		}
	})

	return index
}
