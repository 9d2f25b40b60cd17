package routing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keycrawler/content"
	"github.com/katalvlaran/keycrawler/links"
	"github.com/katalvlaran/keycrawler/routing"
	"github.com/katalvlaran/keycrawler/search"
	"github.com/katalvlaran/keycrawler/vertex"
)

func TestKeyedPropertySearchParser(t *testing.T) {
	p := routing.KeyedPropertySearchParser{Key: "id"}
	assert.Equal(t, search.KeyValuePair{Key: "id", Value: "me"}, p.Parse("me"))
	assert.Equal(t, "me", p.Stringify(search.KeyValuePair{Key: "id", Value: "me"}))
}

func TestNamedPagePathParser(t *testing.T) {
	terms := []search.Term{
		search.KeyValuePair{Key: "id", Value: "main"},
		search.KeyValuePair{Key: "localName", Value: "terms"},
		0,
	}
	p := routing.NamedPagePathParser{}
	assert.Equal(t, terms, p.Parse("~main.~terms.0"))
	assert.Equal(t, "~main.~terms.0", p.Stringify(terms))
	assert.Empty(t, p.Parse(""))
}

var contentTerms = []search.Term{
	search.KeyValuePair{Key: "id", Value: "main"},
	search.KeyValuePair{Key: "localName", Value: "terms"},
	"children", 0,
	"content", "body", "text",
}

func siteValues() links.KeyedURLValuesParser {
	return links.KeyedURLValuesParser{Template: links.URLTemplate{
		Origin: "http://my.site",
		Path: []links.PathToken{
			{Literal: "view"},
			{Key: routing.PagePathValue},
		},
		Query: []links.QueryParam{{Name: "contentPath", Key: routing.ContentPathValue}},
	}}
}

func TestPageContentPathParser(t *testing.T) {
	p := routing.PageContentPathParser{}
	assert.Equal(t, contentTerms, p.Parse("~main.~terms.0/body.text"))
	assert.Equal(t, "~main.~terms.0/body.text", p.Stringify(contentTerms))
}

func TestPageContentPathParser_URLValues(t *testing.T) {
	p := routing.PageContentPathParser{Values: siteValues()}
	url := "http://my.site/view/~main.~terms.0?contentPath=body.text"
	assert.Equal(t, contentTerms, p.Parse(url))
	assert.Equal(t, url, p.Stringify(contentTerms))
}

func leaf() map[string]any {
	return map[string]any{"content": "", "children": []any{}}
}

func siteContext() []any {
	return []any{
		map[string]any{"id": "mainPage", "content": "", "children": []any{
			map[string]any{"localName": "intro", "content": "", "children": []any{
				map[string]any{"localName": "terms", "content": "", "children": []any{
					map[string]any{"content": "", "children": []any{
						leaf(),
						map[string]any{
							"content":  map[string]any{"body": map[string]any{"text": "something"}},
							"children": []any{},
						},
					}},
				}},
			}},
		}},
	}
}

const textURL = "http://my.site/view/~mainPage.~intro.~terms.0.1?contentPath=body.text"

func TestNamedPageRouteParser_Parse(t *testing.T) {
	p := routing.NewNamedPageRouteParser(siteValues(), siteContext())
	route := p.Parse(textURL)

	assert.Equal(t, "something", route.Target)
	assert.Equal(t, []vertex.Key{0, "children", 0, "children", 0, "children", 0, "children", 1, "content", "body", "text"}, route.Path)
}

func TestNamedPageRouteParser_ParseMiss(t *testing.T) {
	ctx := siteContext()
	p := routing.NewNamedPageRouteParser(siteValues(), ctx)
	route := p.Parse("http://my.site/view/~nowhere")

	assert.Empty(t, route.Path)
	assert.Equal(t, ctx, route.Target)
}

func TestNamedPageRouteParser_Stringify(t *testing.T) {
	ctx := siteContext()
	p := routing.NewNamedPageRouteParser(siteValues(), ctx)
	route := content.NewContentCrawler().CreateRouteFrom(ctx, []vertex.Key{
		0, "children", 0, "children", 0, "children", 0, "children", 1, "content", "body", "text",
	})
	require.Equal(t, "something", route.Target)

	assert.Equal(t, textURL, p.Stringify(route))
}

func TestSearchTerms_Unanchored(t *testing.T) {
	pages := []any{
		map[string]any{"content": "", "children": []any{leaf(), leaf()}},
	}
	route := content.NewContentCrawler().CreateRouteFrom(pages, []vertex.Key{0, "children", 1})

	assert.Equal(t, []search.Term{0, "children", 1}, routing.SearchTerms(route))

	p := routing.NewNamedPageRouteParser(nil, pages)
	assert.Equal(t, "0.1", p.Stringify(route))
	assert.Equal(t, route.Path, p.Parse("0.1").Path)
}
