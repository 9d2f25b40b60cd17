package vertex_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keycrawler/vertex"
)

// shelf exposes its items only through methods.
type shelf struct {
	items []string
}

func (s *shelf) Item(i int) (string, bool) {
	if i < 0 || i >= len(s.items) {
		return "", false
	}

	return s.items[i], true
}

func (s *shelf) Joined(sep string) string { return strings.Join(s.items, sep) }

func (s *shelf) Self() *shelf { return s }

func TestLookupVertex_ChildrenTemplate(t *testing.T) {
	src := map[string]any{"value": 0, "children": []any{"a", "b"}}
	v := vertex.NewLookupVertex(src, []vertex.PathStep{"children", vertex.DefaultKeyAlias})

	assert.Equal(t, []vertex.Key{0, 1}, collectKeys(v))
	assert.Equal(t, []vertex.PathStep{"children", 0}, v.ValuePath(0))

	value, ok := v.KeyValue(1)
	assert.True(t, ok)
	assert.Equal(t, "b", value)

	match, ok := v.ValidateValuePath([]vertex.PathStep{"root", "children", 1}, 1)
	require.True(t, ok)
	assert.Equal(t, 1, match.Key)
	assert.Equal(t, []vertex.PathStep{"children", 1}, match.Path)

	_, ok = v.ValidateValuePath([]vertex.PathStep{"root", "kids", 1}, 1)
	assert.False(t, ok, "literal steps must match")
	_, ok = v.ValidateValuePath([]vertex.PathStep{"children"}, 0)
	assert.False(t, ok, "source too short")
}

func TestLookupVertex_CallTemplate(t *testing.T) {
	src := &shelf{items: []string{"x", "y", "z"}}
	v := vertex.NewLookupVertex(src, []vertex.PathStep{
		vertex.CallRequest{Name: "Self"},
		vertex.CallRequest{Name: "Item", Args: []any{"$key"}},
	})

	assert.Equal(t, []vertex.Key{0, 1, 2}, collectKeys(v))
	value, ok := v.KeyValue(2)
	assert.True(t, ok)
	assert.Equal(t, "z", value)

	_, ok = v.KeyValue(3)
	assert.False(t, ok, "a false trailing result means no value")

	match, ok := v.ValidateValuePath(v.ValuePath(1), 0)
	require.True(t, ok)
	assert.Equal(t, 1, match.Key)
}

func TestLookupVertex_CustomAlias(t *testing.T) {
	src := map[string]any{"rows": map[string]any{"r1": 1, "r2": 2}}
	v := vertex.NewLookupVertex(src, []vertex.PathStep{"rows", "@"}, vertex.WithKeyAlias("@"))
	assert.Equal(t, "@", v.KeyAlias())
	assert.Equal(t, []vertex.Key{"r1", "r2"}, collectKeys(v))
	value, ok := v.KeyValue("r2")
	assert.True(t, ok)
	assert.Equal(t, 2, value)
}

func TestResolvePropertyLookup(t *testing.T) {
	src := map[string]any{
		"shelf": &shelf{items: []string{"a", "b"}},
	}
	value, ok := vertex.ResolvePropertyLookup(src, []vertex.PathStep{
		"shelf",
		vertex.CallRequest{Name: "Joined", Args: []any{"-"}},
	})
	assert.True(t, ok)
	assert.Equal(t, "a-b", value)

	value, ok = vertex.ResolvePropertyLookup(src, nil)
	assert.True(t, ok)
	assert.Equal(t, src, value)

	_, ok = vertex.ResolvePropertyLookup(src, []vertex.PathStep{"missing", "x"})
	assert.False(t, ok)

	_, ok = vertex.ResolvePropertyLookup(src, []vertex.PathStep{
		"shelf", vertex.CallRequest{Name: "Joined", Args: []any{1}},
	})
	assert.False(t, ok, "argument type mismatch")
}

func TestExpandCollapseNestedValuePath(t *testing.T) {
	tree := map[string]any{"children": []any{map[string]any{"children": []any{"leaf"}}}}
	template := []vertex.PathStep{"children", vertex.DefaultKeyAlias}
	outer := vertex.NewLookupVertex(tree, template)
	innerValue, ok := outer.KeyValue(0)
	require.True(t, ok)
	inner := vertex.NewLookupVertex(innerValue, template)
	vertices := []vertex.Keyed{outer, inner}

	path, ok := vertex.ExpandNestedValuePath(vertices, []vertex.Key{0, 0})
	require.True(t, ok)
	assert.Equal(t, []vertex.PathStep{"children", 0, "children", 0}, path)

	keys, ok := vertex.CollapseNestedValuePath(vertices, path)
	require.True(t, ok)
	assert.Equal(t, []vertex.Key{0, 0}, keys)

	_, ok = vertex.ExpandNestedValuePath(vertices[:1], []vertex.Key{0, 0})
	assert.False(t, ok)
}
