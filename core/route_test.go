package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keycrawler/core"
	"github.com/katalvlaran/keycrawler/vertex"
)

// TestRoute_PushPop walks two steps down and back up again.
func TestRoute_PushPop(t *testing.T) {
	items := []any{"x", "y"}
	doc := map[string]any{"items": items}
	route := core.NewRootRoute(doc)

	route.Push("items", vertex.NewObjectVertex(doc), items)
	route.Push(1, vertex.NewArrayVertex(items), "y")
	assert.Equal(t, []vertex.Key{"items", 1}, route.Path)
	assert.Equal(t, 2, route.Len())
	assert.Equal(t, "y", route.Target)
	last, ok := route.LastKey()
	require.True(t, ok)
	assert.Equal(t, 1, last)

	route.Pop()
	assert.Equal(t, []vertex.Key{"items"}, route.Path)
	assert.Equal(t, items, route.Target)

	route.Pop()
	assert.Empty(t, route.Path)
	assert.Empty(t, route.Vertices)
	assert.Equal(t, doc, route.Target)

	// popping the root is a no-op
	route.Pop()
	assert.Equal(t, doc, route.Target)
	_, ok = route.LastKey()
	assert.False(t, ok)
}

// TestRoute_CloneIsIndependent extends a clone and checks the original.
func TestRoute_CloneIsIndependent(t *testing.T) {
	items := []any{"x", "y"}
	route := core.NewRootRoute(items)
	route.Push(0, vertex.NewArrayVertex(items), "x")

	clone := route.Clone()
	clone.Pop()
	clone.Push(1, vertex.NewArrayVertex(items), "y")

	assert.Equal(t, []vertex.Key{0}, route.Path)
	assert.Equal(t, "x", route.Target)
	assert.Equal(t, []vertex.Key{1}, clone.Path)
	assert.Nil(t, (*core.Route)(nil).Clone())
}

// TestRoute_Values lists every value from the root down.
func TestRoute_Values(t *testing.T) {
	inner := map[string]any{"n": 1}
	doc := map[string]any{"inner": inner}
	route := core.NewRootRoute(doc)
	route.Push("inner", vertex.NewObjectVertex(doc), inner)
	route.Push("n", vertex.NewObjectVertex(inner), 1)

	assert.Equal(t, []any{doc, inner, 1}, route.Values())
}

// TestVisitedSet tracks objects by identity only.
func TestVisitedSet(t *testing.T) {
	s := core.NewVisitedSet()
	a := map[string]any{}
	b := map[string]any{}

	assert.True(t, s.Add(a))
	assert.False(t, s.Add(a), "second add of the same map")
	assert.True(t, s.Has(a))
	assert.False(t, s.Has(b), "equal content, different map")
	assert.False(t, s.Add("text"), "scalars have no identity")
	assert.False(t, s.Has("text"))
	assert.Equal(t, 1, s.Len())
	assert.Len(t, s.Items(), 1)
}

// TestNewRootState starts at root with nothing visited.
func TestNewRootState(t *testing.T) {
	doc := []any{1}
	state := core.NewRootState(doc)

	assert.Equal(t, doc, state.Route.Target)
	assert.Zero(t, state.Visited.Len())
	assert.False(t, state.Completed)
	assert.NoError(t, state.Err)
}
