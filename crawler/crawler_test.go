package crawler_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keycrawler/bfs"
	"github.com/katalvlaran/keycrawler/core"
	"github.com/katalvlaran/keycrawler/crawler"
	"github.com/katalvlaran/keycrawler/vertex"
)

// node is a small content tree: value first, then children.
type node struct {
	Value    string  `json:"value"`
	Children []*node `json:"children,omitempty"`
}

// buildTree returns root → a(a1, a2), b, c(c1, c2, c3).
func buildTree() *node {
	return &node{Value: "root", Children: []*node{
		{Value: "a", Children: []*node{{Value: "a1"}, {Value: "a2"}}},
		{Value: "b"},
		{Value: "c", Children: []*node{{Value: "c1"}, {Value: "c2"}, {Value: "c3"}}},
	}}
}

// childrenOnly exposes only the children of tree nodes.
func childrenOnly(source any) vertex.Vertex {
	if _, ok := source.(*node); ok {
		return vertex.NewDefinedObjectVertex(source, []vertex.Key{"children"})
	}
	return nil
}

func nodeValue(target any) string {
	if n, ok := target.(*node); ok {
		return n.Value
	}
	return ""
}

func TestSearch_FindsMatch(t *testing.T) {
	c := crawler.New(crawler.WithRules(childrenOnly))
	response := c.Search(buildTree(), func(state *core.State) bool {
		return nodeValue(state.Route.Target) == "c2"
	}, 0)

	require.Len(t, response.Results, 1)
	first := response.Results[0]
	assert.Equal(t, "c2", nodeValue(first.Target))
	assert.Equal(t, []vertex.Key{"children", 2, "children", 1}, first.Path)
	assert.True(t, response.State.Completed)
}

func TestSearch_ResultCap(t *testing.T) {
	c := crawler.New()
	source := [][]int{{0, 1}, {0, 1, 1}}
	isOne := func(state *core.State) bool { return vertex.SameValue(state.Route.Target, 1) }

	capped := c.Search(source, isOne, 1)
	assert.Len(t, capped.Results, 1)
	assert.Equal(t, 2, capped.State.Visited.Len())

	all := c.Search(source, isOne, 0)
	assert.Len(t, all.Results, 3)
}

func TestSearch_ResultsAreSnapshots(t *testing.T) {
	c := crawler.New(crawler.WithRules(childrenOnly))
	response := c.Search(buildTree(), func(state *core.State) bool {
		return len(nodeValue(state.Route.Target)) == 2
	}, 0)

	require.Len(t, response.Results, 5)
	paths := make([][]vertex.Key, len(response.Results))
	for i, r := range response.Results {
		paths[i] = r.Path
	}
	assert.Equal(t, [][]vertex.Key{
		{"children", 0, "children", 0},
		{"children", 0, "children", 1},
		{"children", 2, "children", 0},
		{"children", 2, "children", 1},
		{"children", 2, "children", 2},
	}, paths)
}

func TestSearch_BreadthFirst(t *testing.T) {
	c := crawler.New(crawler.WithStrategy(bfs.Default()), crawler.WithRules(childrenOnly))
	response := c.Search(buildTree(), func(state *core.State) bool {
		return nodeValue(state.Route.Target) != ""
	}, 4)

	var values []string
	for _, r := range response.Results {
		values = append(values, nodeValue(r.Target))
	}
	assert.Equal(t, []string{"root", "a", "b", "c"}, values)
}

func TestMapValue_Floor(t *testing.T) {
	c := crawler.New()
	source := []any{map[string]any{"x": 0.1, "y": 2.3}, 3.14}

	result := c.MapValue(source, func(state *core.State) any {
		switch target := state.Route.Target.(type) {
		case float64:
			return math.Floor(target)
		default:
			if vertex.IsList(target) {
				return &[]any{}
			}
			if vertex.IsComposite(target) {
				return map[string]any{}
			}
			return target
		}
	}, nil)

	want := &[]any{map[string]any{"x": 0.0, "y": 2.0}, 3.0}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("MapValue mismatch (-want +got):\n%s", diff)
	}
}

func TestMapValue_CustomSetter(t *testing.T) {
	c := crawler.New(crawler.WithRules(func(source any) vertex.Vertex {
		if !vertex.IsList(source) {
			return vertex.NewLookupVertex(source, []vertex.PathStep{"children", "$key"})
		}
		return nil
	}))
	source := map[string]any{
		"value":    "a",
		"children": []any{map[string]any{"value": "a1"}, map[string]any{"value": "a2"}},
	}

	result := c.MapValue(source, func(state *core.State) any {
		target := state.Route.Target
		if obj, ok := target.(map[string]any); ok {
			return map[string]any{"value": obj["value"], "depth": state.Route.Len()}
		}
		return target
	}, func(parent any, key vertex.Key, child any) {
		obj, ok := parent.(map[string]any)
		index, isIndex := vertex.KeyToIndex(key)
		if !ok || !isIndex {
			return
		}
		children, _ := obj["children"].([]any)
		for len(children) <= index {
			children = append(children, nil)
		}
		children[index] = child
		obj["children"] = children
	})

	want := map[string]any{
		"value": "a",
		"depth": 0,
		"children": []any{
			map[string]any{"value": "a1", "depth": 1},
			map[string]any{"value": "a2", "depth": 1},
		},
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("MapValue mismatch (-want +got):\n%s", diff)
	}
}

// Mapping with an identity conversion rebuilds an equal structure.
func TestMapValue_Homomorphism(t *testing.T) {
	c := crawler.New()
	source := map[string]any{
		"title": "doc",
		"sections": []any{
			map[string]any{"title": "one", "tags": []any{"x", "y"}},
			map[string]any{"title": "two"},
		},
	}

	result := c.MapValue(source, func(state *core.State) any {
		target := state.Route.Target
		switch {
		case vertex.IsList(target):
			return &[]any{}
		case vertex.IsComposite(target):
			return map[string]any{}
		default:
			return target
		}
	}, nil)

	want := map[string]any{
		"title": "doc",
		"sections": &[]any{
			map[string]any{"title": "one", "tags": &[]any{"x", "y"}},
			map[string]any{"title": "two"},
		},
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("MapValue mismatch (-want +got):\n%s", diff)
	}
}

func TestSetChildValue(t *testing.T) {
	list := &[]any{}
	crawler.SetChildValue(list, 2, "c")
	assert.Equal(t, []any{nil, nil, "c"}, *list)

	crawler.SetChildValue(list, "name", "ignored")
	assert.Len(t, *list, 3)

	fixed := []string{"a", "b"}
	crawler.SetChildValue(fixed, 1, "B")
	crawler.SetChildValue(fixed, 5, "out of range")
	assert.Equal(t, []string{"a", "B"}, fixed)

	m := map[string]any{}
	crawler.SetChildValue(m, 0, "zero")
	crawler.SetChildValue(m, "k", "v")
	assert.Equal(t, map[string]any{"0": "zero", "k": "v"}, m)

	n := &node{}
	crawler.SetChildValue(n, "value", "set")
	crawler.SetChildValue(n, "missing", "x")
	assert.Equal(t, "set", n.Value)
}

func TestAppendChildValue(t *testing.T) {
	list := &[]any{}
	crawler.AppendChildValue(list, "a", 1)
	crawler.AppendChildValue(list, "b", 2)
	assert.Equal(t, []any{1, 2}, *list)
}
