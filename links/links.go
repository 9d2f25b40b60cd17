// Package links turns routes into hyperlinks and converts between paths
// and their text forms.
package links

import (
	"fmt"

	"github.com/katalvlaran/keycrawler/content"
	"github.com/katalvlaran/keycrawler/core"
	"github.com/katalvlaran/keycrawler/vertex"
)

// HyperlinkSummary describes a link to a route.
type HyperlinkSummary struct {
	Text   string `json:"text" yaml:"text"`
	Href   string `json:"href" yaml:"href"`
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
}

// RouteLinker builds the link for a route.
type RouteLinker interface {
	RouteLink(route *core.Route) HyperlinkSummary
}

// RouteTextFunc renders some text for a route.
type RouteTextFunc func(route *core.Route) string

// RouteLinkFactory builds links from a text and an href renderer.
type RouteLinkFactory struct {
	text       RouteTextFunc
	href       RouteTextFunc
	linkTarget string
}

// NewRouteLinkFactory returns a factory using text and href. A non-empty
// linkTarget is copied onto every link.
func NewRouteLinkFactory(text, href RouteTextFunc, linkTarget string) *RouteLinkFactory {
	return &RouteLinkFactory{text: text, href: href, linkTarget: linkTarget}
}

// RouteLink returns the link for route.
func (f *RouteLinkFactory) RouteLink(route *core.Route) HyperlinkSummary {
	return HyperlinkSummary{
		Text:   f.text(route),
		Href:   f.href(route),
		Target: f.linkTarget,
	}
}

// NewPageLinkFactory returns a factory for page routes. The link text is
// the page title; untitled pages use indexedTitle of their position when
// given, else the last key of the route.
func NewPageLinkFactory(href RouteTextFunc, indexedTitle func(index int) string, linkTarget string) *RouteLinkFactory {
	return NewRouteLinkFactory(func(route *core.Route) string {
		if title, ok := content.PropertyText(route.Target, "title"); ok {
			return title
		}
		lastKey, ok := route.LastKey()
		if !ok {
			return ""
		}
		if indexedTitle != nil {
			if index, ok := vertex.KeyToIndex(lastKey); ok {
				return indexedTitle(index)
			}
		}
		return fmt.Sprint(lastKey)
	}, href, linkTarget)
}

// SectionTitle numbers untitled pages from one: "Section 1", "Section 2"...
func SectionTitle(index int) string {
	return fmt.Sprintf("Section %d", index+1)
}

// PathHref renders the route path as dotted text, such as "0.2.1".
func PathHref(route *core.Route) string {
	return PathText(route.Path)
}
