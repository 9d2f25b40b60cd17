package vertex

import (
	"iter"
	"reflect"
)

// PrimitiveVertex wraps a terminal value. It has no keys.
type PrimitiveVertex struct {
	value any
}

// NewPrimitiveVertex wraps value as a terminal vertex.
func NewPrimitiveVertex(value any) *PrimitiveVertex {
	return &PrimitiveVertex{value: value}
}

// Value returns the wrapped value.
func (v *PrimitiveVertex) Value() any { return v.value }

// ArrayVertex wraps a slice or array. Its keys are the positions 0..n-1.
type ArrayVertex struct {
	value any
	list  reflect.Value
}

// NewArrayVertex wraps value, which should be a slice or array (or a
// pointer to one). Any other value yields a vertex with no keys.
func NewArrayVertex(value any) *ArrayVertex {
	list := indirect(reflect.ValueOf(value))
	if list.IsValid() && list.Kind() != reflect.Slice && list.Kind() != reflect.Array {
		list = reflect.Value{}
	}

	return &ArrayVertex{value: value, list: list}
}

// Value returns the wrapped list.
func (v *ArrayVertex) Value() any { return v.value }

// Len returns the number of elements.
func (v *ArrayVertex) Len() int {
	if !v.list.IsValid() {
		return 0
	}

	return v.list.Len()
}

// Keys yields 0..Len()-1.
func (v *ArrayVertex) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// IndexedKey returns the wrapped position for index.
func (v *ArrayVertex) IndexedKey(index int) (Key, bool) {
	i := GetWrappedIndex(index, v.Len(), false)
	if i < 0 || i >= v.Len() {
		return nil, false
	}

	return i, true
}

// KeyValue returns the element at position key.
func (v *ArrayVertex) KeyValue(key Key) (any, bool) {
	i, ok := KeyToIndex(key)
	if !ok || i < 0 || i >= v.Len() {
		return nil, false
	}

	return v.list.Index(i).Interface(), true
}

// KeyIndex returns key itself when it is a valid position.
func (v *ArrayVertex) KeyIndex(key Key) (int, bool) {
	i, ok := KeyToIndex(key)
	if !ok || i < 0 || i >= v.Len() {
		return 0, false
	}

	return i, true
}

// ObjectVertex wraps an object and exposes its own property names as keys.
// See ObjectKeys for the order used by each kind of object.
type ObjectVertex struct {
	value any
}

// NewObjectVertex wraps value as an object vertex.
func NewObjectVertex(value any) *ObjectVertex {
	return &ObjectVertex{value: value}
}

// Value returns the wrapped object.
func (v *ObjectVertex) Value() any { return v.value }

// Keys yields the property names of the object.
func (v *ObjectVertex) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for _, k := range ObjectKeys(v.value) {
			if !yield(k) {
				return
			}
		}
	}
}

// IndexedKey returns the property name at the wrapped position index.
func (v *ObjectVertex) IndexedKey(index int) (Key, bool) {
	return indexedKeyOf(ObjectKeys(v.value), index)
}

// KeyValue returns the value of property key.
func (v *ObjectVertex) KeyValue(key Key) (any, bool) {
	return LookupProperty(v.value, key)
}

// KeyIndex returns the position of property key.
func (v *ObjectVertex) KeyIndex(key Key) (int, bool) {
	return keyIndexOf(ObjectKeys(v.value), key)
}

// DefinedObjectVertex is an ObjectVertex that only iterates an explicit,
// ordered list of property names. Names missing from the object are skipped.
// KeyValue still reads any property, so routes may step through keys the
// vertex does not enumerate.
type DefinedObjectVertex struct {
	ObjectVertex
	keys []Key
}

// NewDefinedObjectVertex wraps value, limiting its keys to keys.
func NewDefinedObjectVertex(value any, keys []Key) *DefinedObjectVertex {
	return &DefinedObjectVertex{ObjectVertex: ObjectVertex{value: value}, keys: keys}
}

// DefinedKeys returns the configured key list.
func (v *DefinedObjectVertex) DefinedKeys() []Key { return v.keys }

// presentKeys filters the configured keys down to those the object has.
func (v *DefinedObjectVertex) presentKeys() []Key {
	present := make([]Key, 0, len(v.keys))
	for _, k := range v.keys {
		if HasProperty(v.value, k) {
			present = append(present, k)
		}
	}

	return present
}

// Keys yields the configured keys present on the object, in list order.
func (v *DefinedObjectVertex) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for _, k := range v.keys {
			if !HasProperty(v.value, k) {
				continue
			}
			if !yield(k) {
				return
			}
		}
	}
}

// IndexedKey returns the present key at the wrapped position index.
func (v *DefinedObjectVertex) IndexedKey(index int) (Key, bool) {
	return indexedKeyOf(v.presentKeys(), index)
}

// KeyIndex returns the position of key among the present keys.
func (v *DefinedObjectVertex) KeyIndex(key Key) (int, bool) {
	return keyIndexOf(v.presentKeys(), key)
}
