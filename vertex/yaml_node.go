package vertex

import (
	"iter"

	yamlv3 "gopkg.in/yaml.v3"
)

// YAMLNodeVertex wraps a *yaml.Node from gopkg.in/yaml.v3.
//
// Documents expose their single root as key 0, sequences their items by
// position, and mappings their values by the scalar text of each key in
// document order. Aliases behave like the node they point to. Scalars
// have no keys.
type YAMLNodeVertex struct {
	node *yamlv3.Node
}

// NewYAMLNodeVertex wraps node.
func NewYAMLNodeVertex(node *yamlv3.Node) *YAMLNodeVertex {
	return &YAMLNodeVertex{node: node}
}

// Value returns the wrapped node.
func (v *YAMLNodeVertex) Value() any { return v.node }

// resolved follows alias nodes to their anchor.
func (v *YAMLNodeVertex) resolved() *yamlv3.Node {
	node := v.node
	for seen := 0; node != nil && node.Kind == yamlv3.AliasNode && seen < 32; seen++ {
		node = node.Alias
	}

	return node
}

// yamlKeys lists the keys of a resolved node.
func (v *YAMLNodeVertex) yamlKeys() []Key {
	node := v.resolved()
	if node == nil {
		return nil
	}
	switch node.Kind {
	case yamlv3.DocumentNode, yamlv3.SequenceNode:
		keys := make([]Key, len(node.Content))
		for i := range node.Content {
			keys[i] = i
		}
		return keys
	case yamlv3.MappingNode:
		keys := make([]Key, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keys = append(keys, node.Content[i].Value)
		}
		return keys
	default:
		return nil
	}
}

// Keys yields positions or mapping keys.
func (v *YAMLNodeVertex) Keys() iter.Seq[Key] {
	return seqOf(v.yamlKeys())
}

// IndexedKey returns the key at the wrapped position index.
func (v *YAMLNodeVertex) IndexedKey(index int) (Key, bool) {
	return indexedKeyOf(v.yamlKeys(), index)
}

// KeyValue returns the child node connected through key.
func (v *YAMLNodeVertex) KeyValue(key Key) (any, bool) {
	node := v.resolved()
	if node == nil {
		return nil, false
	}
	switch node.Kind {
	case yamlv3.DocumentNode, yamlv3.SequenceNode:
		i, ok := KeyToIndex(key)
		if !ok || i < 0 || i >= len(node.Content) {
			return nil, false
		}
		return node.Content[i], true
	case yamlv3.MappingNode:
		name, ok := key.(string)
		if !ok {
			return nil, false
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == name {
				return node.Content[i+1], true
			}
		}
	}

	return nil, false
}

// KeyIndex returns the position of key.
func (v *YAMLNodeVertex) KeyIndex(key Key) (int, bool) {
	return keyIndexOf(v.yamlKeys(), key)
}

// YAMLNodeRule wraps *yaml.Node values in a YAMLNodeVertex.
func YAMLNodeRule(source any) Vertex {
	if node, ok := source.(*yamlv3.Node); ok && node != nil {
		return NewYAMLNodeVertex(node)
	}

	return nil
}
