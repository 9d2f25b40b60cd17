// Package toc builds tables of contents from page trees.
package toc

import (
	"github.com/katalvlaran/keycrawler/content"
	"github.com/katalvlaran/keycrawler/core"
	"github.com/katalvlaran/keycrawler/crawler"
	"github.com/katalvlaran/keycrawler/links"
	"github.com/katalvlaran/keycrawler/vertex"
)

// Node is one entry of a table of contents.
type Node struct {
	Link     links.HyperlinkSummary `json:"link" yaml:"link"`
	Children []*Node                `json:"children" yaml:"children"`
}

// Factory maps page trees to tables of contents.
type Factory struct {
	links   links.RouteLinker
	crawler *crawler.KeyCrawler
}

// NewFactory returns a factory linking entries with linker. Pages are
// read with content.NewIndexedContentTreeCrawler unless opts say
// otherwise.
func NewFactory(linker links.RouteLinker, opts ...crawler.Option) *Factory {
	return &Factory{
		links:   linker,
		crawler: content.NewIndexedContentTreeCrawler(opts...),
	}
}

// MapContentNodes returns one entry per page of source, a list of page
// nodes, nested like the pages. Anything but a list maps to no entries.
func (f *Factory) MapContentNodes(source any) []*Node {
	if !vertex.IsList(source) {
		return []*Node{}
	}
	mapped := f.crawler.MapValue(source, f.mapRoute, addNodeChild)
	if list, ok := mapped.(*[]*Node); ok {
		return compact(*list, make(map[*Node]bool))
	}

	return []*Node{}
}

// mapRoute converts objects to entries and lists to entry lists.
func (f *Factory) mapRoute(state *core.State) any {
	route := state.Route
	if vertex.IsComposite(route.Target) && !vertex.IsList(route.Target) {
		return &Node{Link: f.links.RouteLink(route), Children: []*Node{}}
	}

	return &[]*Node{}
}

// addNodeChild places entry child at position key of its parent.
func addNodeChild(parent any, key vertex.Key, child any) {
	node, ok := child.(*Node)
	if !ok {
		return
	}
	index, ok := vertex.KeyToIndex(key)
	if !ok || index < 0 {
		return
	}
	switch p := parent.(type) {
	case *Node:
		p.Children = placeAt(p.Children, index, node)
	case *[]*Node:
		*p = placeAt(*p, index, node)
	}
}

// placeAt stores node at index, growing list as needed.
func placeAt(list []*Node, index int, node *Node) []*Node {
	for len(list) <= index {
		list = append(list, nil)
	}
	list[index] = node

	return list
}

// compact drops the empty slots left by pages reached only once, such
// as a page listed twice, at every level.
func compact(list []*Node, seen map[*Node]bool) []*Node {
	out := make([]*Node, 0, len(list))
	for _, node := range list {
		if node == nil {
			continue
		}
		if !seen[node] {
			seen[node] = true
			node.Children = compact(node.Children, seen)
		}
		out = append(out, node)
	}

	return out
}
