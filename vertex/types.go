package vertex

import "iter"

// DefaultKeyAlias is the placeholder LookupVertex templates use for "the key itself".
const DefaultKeyAlias = "$key"

// Key identifies one connection out of a Keyed vertex.
// It is an int for positional containers, a string for property names,
// or the native key of a Go map.
type Key = any

// Vertex is a stateless wrapper around one value.
type Vertex interface {
	// Value returns the wrapped value. Vertices never mutate it.
	Value() any
}

// Keyed is a Vertex whose value has outgoing connections, each one
// reachable through a unique Key.
type Keyed interface {
	Vertex

	// Keys returns a fresh lazy sequence over the vertex keys.
	// Iteration order is stable for a given vertex kind and value.
	Keys() iter.Seq[Key]

	// IndexedKey returns the key at the given zero-based position.
	// Negative positions count back from the end.
	IndexedKey(index int) (Key, bool)

	// KeyValue returns the value connected through key, if any.
	KeyValue(key Key) (any, bool)

	// KeyIndex returns the position of key within Keys, if present.
	KeyIndex(key Key) (int, bool)
}

// Pathed is implemented by vertices that reach their values through a
// property path template rather than direct indexing.
type Pathed interface {
	Keyed

	// ValuePath expands the template for key into a concrete lookup path.
	ValuePath(key Key) []PathStep

	// ValidateValuePath checks whether source matches the template starting
	// at position start and extracts the key it encodes.
	ValidateValuePath(source []PathStep, start int) (KeyedPath, bool)
}

// KeyedPath pairs a concrete property path with the key it encodes.
type KeyedPath struct {
	Key  Key
	Path []PathStep
}

// AsKeyed reports whether v supports key-based navigation.
func AsKeyed(v Vertex) (Keyed, bool) {
	if v == nil {
		return nil, false
	}
	k, ok := v.(Keyed)

	return k, ok
}

// indexedKeyOf resolves a wrapped position against a materialized key list.
func indexedKeyOf(keys []Key, index int) (Key, bool) {
	i := GetWrappedIndex(index, len(keys), false)
	if i < 0 || i >= len(keys) {
		return nil, false
	}

	return keys[i], true
}

// keyIndexOf returns the position of key in keys using SameValue.
func keyIndexOf(keys []Key, key Key) (int, bool) {
	for i, k := range keys {
		if SameValue(k, key) {
			return i, true
		}
	}

	return 0, false
}

// seqOf yields the entries of keys in order.
func seqOf(keys []Key) iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for _, k := range keys {
			if !yield(k) {
				return
			}
		}
	}
}
