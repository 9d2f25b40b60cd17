package vertex

import (
	"iter"
	"reflect"

	"golang.org/x/net/html"
)

// MapVertex wraps a Go map of any key type. Its keys are the map keys in
// sorted order and each value path is the key itself.
type MapVertex struct {
	*LookupVertex
}

// MapKeyTemplate is the path template shared by all MapVertex values.
var MapKeyTemplate = []PathStep{DefaultKeyAlias}

// NewMapVertex wraps value, which should be a map or a pointer to one.
func NewMapVertex(value any) *MapVertex {
	return &MapVertex{
		LookupVertex: NewLookupVertex(value, MapKeyTemplate,
			WithKeySeq(mapKeys),
			WithValueFunc(LookupProperty),
		),
	}
}

// mapKeys yields the keys of a map value in sortedMapKeys order.
func mapKeys(value any) iter.Seq[Key] {
	rv := indirect(reflect.ValueOf(value))
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return seqOf(nil)
	}

	return seqOf(sortedMapKeys(rv))
}

// DOMChildNodes is the property step listing the children of an
// *html.Node. See ResolvePropertyRequest.
const DOMChildNodes = "ChildNodes"

// DOMChildTemplate is the value path template of DOMNodeVertex.
var DOMChildTemplate = []PathStep{DOMChildNodes, DefaultKeyAlias}

// DOMNodeVertex wraps an *html.Node. Its keys are child positions and its
// values the child nodes, addressed as ["ChildNodes", i].
type DOMNodeVertex struct {
	*LookupVertex
}

// NewDOMNodeVertex wraps node.
func NewDOMNodeVertex(node *html.Node) *DOMNodeVertex {
	return &DOMNodeVertex{
		LookupVertex: NewLookupVertex(node, DOMChildTemplate,
			WithKeySeq(domChildKeys),
			WithValueFunc(domChildAt),
		),
	}
}

// Node returns the wrapped node.
func (v *DOMNodeVertex) Node() *html.Node {
	node, _ := v.Value().(*html.Node)

	return node
}

// domChildKeys yields 0..n-1 for the children of an *html.Node.
func domChildKeys(value any) iter.Seq[Key] {
	return func(yield func(Key) bool) {
		node, ok := value.(*html.Node)
		if !ok || node == nil {
			return
		}
		i := 0
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if !yield(i) {
				return
			}
			i++
		}
	}
}

// domChildNodes lists the children of source when it is an *html.Node
// with at least one child and step is DOMChildNodes.
func domChildNodes(source any, step PathStep) ([]*html.Node, bool) {
	node, ok := source.(*html.Node)
	if !ok || node == nil || step != DOMChildNodes || node.FirstChild == nil {
		return nil, false
	}
	var children []*html.Node
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		children = append(children, child)
	}

	return children, true
}

// domChildAt returns the child at position key.
func domChildAt(value any, key Key) (any, bool) {
	node, ok := value.(*html.Node)
	if !ok || node == nil {
		return nil, false
	}
	index, ok := KeyToIndex(key)
	if !ok || index < 0 {
		return nil, false
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if index == 0 {
			return child, true
		}
		index--
	}

	return nil, false
}

// DOMNodeRule wraps *html.Node values in a DOMNodeVertex.
func DOMNodeRule(source any) Vertex {
	if node, ok := source.(*html.Node); ok && node != nil {
		return NewDOMNodeVertex(node)
	}

	return nil
}
