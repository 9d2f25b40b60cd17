package vertex_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/katalvlaran/keycrawler/vertex"
)

// childrenRule exposes only "children" on objects that have it.
func childrenRule(source any) vertex.Vertex {
	if vertex.HasProperty(source, "children") {
		return vertex.NewDefinedObjectVertex(source, []vertex.Key{"children"})
	}

	return nil
}

func TestFactory_Create(t *testing.T) {
	f := vertex.NewFactory(childrenRule)

	assert.IsType(t, &vertex.ArrayVertex{}, f.Create([]any{}))
	assert.IsType(t, &vertex.ObjectVertex{}, f.Create(map[string]any{}))
	assert.IsType(t, &vertex.DefinedObjectVertex{}, f.Create(map[string]any{"children": []any{}}))
	assert.IsType(t, &vertex.PrimitiveVertex{}, f.Create("text"))
	assert.IsType(t, &vertex.PrimitiveVertex{}, f.Create(nil))
	assert.IsType(t, &vertex.MapVertex{}, f.Create(map[int]string{1: "a"}))
}

func TestFactory_NilIsDefault(t *testing.T) {
	var f *vertex.Factory
	assert.Empty(t, f.Rules())
	assert.IsType(t, &vertex.ObjectVertex{}, f.Create(map[string]any{"children": []any{}}))

	var zero vertex.Factory
	assert.IsType(t, &vertex.ArrayVertex{}, zero.Create([]int{1}))
}

func TestFactory_DOMNodeRule(t *testing.T) {
	doc, err := html.Parse(strings.NewReader("<ul><li>one</li><li>two</li></ul>"))
	require.NoError(t, err)

	f := vertex.NewFactory(vertex.DOMNodeRule)
	root, ok := f.CreateKeyed(doc)
	require.True(t, ok)
	require.IsType(t, &vertex.DOMNodeVertex{}, root)

	// document > html > body > ul
	var node any = doc
	for _, step := range []int{0, 1, 0} {
		v, ok := f.CreateKeyed(node)
		require.True(t, ok)
		node, ok = v.KeyValue(step)
		require.True(t, ok)
	}
	ul := f.Create(node).(*vertex.DOMNodeVertex)
	assert.Equal(t, "ul", ul.Node().Data)
	assert.Equal(t, []vertex.Key{0, 1}, collectKeys(ul))
	assert.Equal(t, []vertex.PathStep{"ChildNodes", 1}, ul.ValuePath(1))
}
