package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keycrawler/content"
	"github.com/katalvlaran/keycrawler/core"
	"github.com/katalvlaran/keycrawler/search"
	"github.com/katalvlaran/keycrawler/vertex"
)

func samplePages() []*content.PageTreeNode {
	return []*content.PageTreeNode{
		{ID: "intro", Title: "Intro", Content: "welcome"},
		{ID: "main", Content: "", Children: []*content.PageTreeNode{
			{LocalName: "terms", Content: map[string]any{"body": map[string]any{"text": "terms"}}},
			{ID: "faq", Content: "questions"},
		}},
	}
}

func TestRules(t *testing.T) {
	page := map[string]any{"content": "x", "children": []any{}}
	_, isContent := content.ContentNodeRule(page).(*content.ContentNodeVertex)
	assert.True(t, isContent)
	_, isIndexed := content.IndexedNodeRule(page).(*content.IndexedNodeVertex)
	assert.True(t, isIndexed)

	assert.Nil(t, content.ContentNodeRule(map[string]any{"title": "no body"}))
	assert.Nil(t, content.IndexedNodeRule([]any{map[string]any{"content": 1}}))
}

func TestContentNodeVertex_Keys(t *testing.T) {
	v := content.NewContentNodeVertex(map[string]any{"id": "a", "content": "x"})
	var keys []vertex.Key
	for k := range v.Keys() {
		keys = append(keys, k)
	}
	assert.Equal(t, []vertex.Key{"content"}, keys)

	id, ok := v.KeyValue("id")
	require.True(t, ok)
	assert.Equal(t, "a", id)
}

func TestContentCrawler_RouteIntoContent(t *testing.T) {
	c := content.NewContentCrawler()
	route := c.CreateRouteFrom(samplePages(), []vertex.Key{1, "children", 0, "content", "body", "text"})

	assert.Equal(t, "terms", route.Target)
	assert.Len(t, route.Vertices, 6)
}

func TestIndexedCrawler_VisitsPagesOnly(t *testing.T) {
	c := content.NewIndexedContentTreeCrawler()
	var paths [][]vertex.Key
	c.Traverse(samplePages(), func(state *core.State) {
		if _, ok := state.Route.Target.(*content.PageTreeNode); ok {
			paths = append(paths, append([]vertex.Key(nil), state.Route.Path...))
		}
	})

	assert.Equal(t, [][]vertex.Key{{0}, {1}, {1, 0}, {1, 1}}, paths)
}

func TestPageTreeSearchResolver(t *testing.T) {
	r := content.NewPageTreeSearchResolver()
	response := r.Resolve(samplePages(), []search.Term{
		search.KeyValuePair{Key: "id", Value: "main"},
		search.KeyValuePair{Key: "localName", Value: "terms"},
		"content", "body", "text",
	}, 1)

	require.Len(t, response.Results, 1)
	assert.Equal(t, "terms", response.Results[0].Target)
	assert.Equal(t, []vertex.Key{1, "children", 0, "content", "body", "text"}, response.Results[0].Path)
}

func TestPagesByID(t *testing.T) {
	pages := samplePages()
	index := content.PagesByID(pages)

	assert.Len(t, index, 3)
	assert.Same(t, pages[1].Children[1], index["faq"])
	assert.NotContains(t, index, "")
}

func TestPropertyText(t *testing.T) {
	text, ok := content.PropertyText(&content.PageTreeNode{Title: "T"}, "title")
	assert.True(t, ok)
	assert.Equal(t, "T", text)

	_, ok = content.PropertyText(&content.PageTreeNode{}, "title")
	assert.False(t, ok)
	_, ok = content.PropertyText(map[string]any{"title": nil}, "title")
	assert.False(t, ok)
	_, ok = content.PropertyText([]any{"title"}, "title")
	assert.False(t, ok)
}

func TestStyleRuleConflicts(t *testing.T) {
	first := []content.StyleRuleDescription{
		{Selector: "p", Values: map[string]string{"margin": "1px"}},
		{Selector: ".highlight", Values: map[string]string{"color": "yellow"}},
	}
	second := []content.StyleRuleDescription{
		{Selector: ".highlight", Values: map[string]string{"color": "red"}},
		{Selector: "table", Values: map[string]string{"margin": "1px"}},
	}

	conflicts := content.StyleRuleConflicts(first, second)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "yellow", conflicts[0][0].Values["color"])
	assert.Equal(t, "red", conflicts[0][1].Values["color"])

	second[0].Values["color"] = "yellow"
	assert.Empty(t, content.StyleRuleConflicts(first, second))
}

func TestExtendStyleRules(t *testing.T) {
	merged := content.ExtendStyleRules(
		[]content.StyleRuleDescription{
			{Selector: "p", Values: map[string]string{"margin": "1px"}},
			{Selector: "h1", Values: map[string]string{"size": "2em"}},
		},
		[]content.StyleRuleDescription{
			{Selector: "p", Values: map[string]string{"margin": "2px"}},
			{Selector: "table", Values: map[string]string{"border": "0"}},
		},
	)

	require.Len(t, merged, 3)
	assert.Equal(t, []string{"p", "h1", "table"}, []string{merged[0].Selector, merged[1].Selector, merged[2].Selector})
	assert.Equal(t, "2px", merged[0].Values["margin"])
}

func TestDocumentAsPage(t *testing.T) {
	doc := &content.PageTreeDocument{ID: "guide", Title: "Guide", Pages: samplePages()}
	page := content.DocumentAsPage(doc, "cover")

	assert.Equal(t, "Guide", page.Title)
	assert.Equal(t, "cover", page.Content)
	assert.Len(t, page.Children, 2)
}
