package crawler

import (
	"fmt"
	"reflect"
	"strings"

	goyaml "github.com/goccy/go-yaml"

	"github.com/katalvlaran/keycrawler/core"
	"github.com/katalvlaran/keycrawler/vertex"
)

// ValueFunc converts the value at the current position.
type ValueFunc func(state *core.State) any

// SetChildFunc attaches a converted child to its converted parent.
type SetChildFunc func(parent any, key vertex.Key, child any)

// MapValue converts source into a new value of the same shape. getValueFor
// is called for every reached position in traversal order; each converted
// value is attached to the converted value of its parent through addChild
// (SetChildValue when nil), provided that parent conversion is an object.
// The converted root is returned.
//
// Containers returned by getValueFor must be mutable in place: maps,
// struct pointers, *[]any (which grows as children arrive) or slices
// already long enough for their children.
func (c *KeyCrawler) MapValue(source any, getValueFor ValueFunc, addChild SetChildFunc) any {
	if addChild == nil {
		addChild = SetChildValue
	}
	table := newValueTable()
	c.strategy.Traverse(source, func(state *core.State) {
		route := state.Route
		value := getValueFor(state)
		table.set(route.Target, route.Path, value)

		n := len(route.Path)
		if n == 0 || len(route.Vertices) == 0 {
			return
		}
		parentVertex := route.Vertices[len(route.Vertices)-1]
		parentValue, ok := table.get(parentVertex.Value(), route.Path[:n-1])
		if ok && vertex.IsComposite(parentValue) {
			addChild(parentValue, route.Path[n-1], value)
		}
	}, c.factory)

	value, _ := table.get(source, nil)

	return value
}

// valueTable maps original positions to converted values. Values with an
// identity are keyed by it, so a shared object maps to one conversion;
// anything else is keyed by its path.
type valueTable struct {
	byIdentity map[vertex.Identity]any
	byPath     map[string]any
}

// newValueTable returns an empty table.
func newValueTable() *valueTable {
	return &valueTable{
		byIdentity: make(map[vertex.Identity]any),
		byPath:     make(map[string]any),
	}
}

// set records the conversion of original reached at path.
func (t *valueTable) set(original any, path []vertex.Key, converted any) {
	if id, ok := vertex.IdentityOf(original); ok {
		t.byIdentity[id] = converted
		return
	}
	t.byPath[pathKey(path)] = converted
}

// get finds the conversion of original reached at path.
func (t *valueTable) get(original any, path []vertex.Key) (any, bool) {
	if id, ok := vertex.IdentityOf(original); ok {
		v, found := t.byIdentity[id]
		return v, found
	}
	v, found := t.byPath[pathKey(path)]

	return v, found
}

// pathKey renders a path as a collision-free string.
func pathKey(path []vertex.Key) string {
	var sb strings.Builder
	for _, k := range path {
		fmt.Fprintf(&sb, "/%T:%v", k, k)
	}

	return sb.String()
}

// SetChildValue is the default child setter of MapValue.
//
//   - *[]any and other slice pointers: set the element at the numeric key,
//     growing the slice as needed.
//   - slices and arrays: set in place when the numeric key is in range.
//   - maps: store under key, converted to the map key type; string-keyed
//     maps accept any key through its text.
//   - *goyaml.MapSlice: replace the item with that key or append one.
//   - struct pointers: set the field named key.
//
// A non-numeric key on a list, or a value that cannot be assigned, is
// ignored.
func SetChildValue(parent any, key vertex.Key, child any) {
	if ms, ok := parent.(*goyaml.MapSlice); ok {
		setMapSliceItem(ms, key, child)
		return
	}
	rv := reflect.ValueOf(parent)
	if !rv.IsValid() {
		return
	}
	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Slice {
		setGrowingSlice(rv.Elem(), key, child)
		return
	}
	target := rv
	for target.Kind() == reflect.Pointer || target.Kind() == reflect.Interface {
		if target.IsNil() {
			return
		}
		target = target.Elem()
	}
	switch target.Kind() {
	case reflect.Slice, reflect.Array:
		index, ok := vertex.KeyToIndex(key)
		if !ok || index < 0 || index >= target.Len() {
			return
		}
		assign(target.Index(index), child)
	case reflect.Map:
		if target.IsNil() {
			return
		}
		kv, ok := mapKeyFor(key, target.Type().Key())
		if !ok {
			return
		}
		cv, ok := assignable(child, target.Type().Elem())
		if !ok {
			return
		}
		target.SetMapIndex(kv, cv)
	case reflect.Struct:
		name, ok := key.(string)
		if !ok || !target.CanSet() {
			return
		}
		setStructField(target, name, child)
	}
}

// setGrowingSlice stores child at key, extending the slice with zero
// values when key is past its end.
func setGrowingSlice(slice reflect.Value, key vertex.Key, child any) {
	index, ok := vertex.KeyToIndex(key)
	if !ok || index < 0 {
		return
	}
	if index >= slice.Len() {
		grown := reflect.AppendSlice(slice, reflect.MakeSlice(slice.Type(), index+1-slice.Len(), index+1-slice.Len()))
		slice.Set(grown)
	}
	assign(slice.Index(index), child)
}

// setMapSliceItem replaces or appends the item with the given key.
func setMapSliceItem(ms *goyaml.MapSlice, key vertex.Key, child any) {
	for i := range *ms {
		if vertex.SameValue((*ms)[i].Key, key) {
			(*ms)[i].Value = child
			return
		}
	}
	*ms = append(*ms, goyaml.MapItem{Key: key, Value: child})
}

// setStructField assigns child to the field whose object key is name.
func setStructField(target reflect.Value, name string, child any) {
	if field := fieldByObjectKey(target, name); field.IsValid() {
		assign(field, child)
	}
}

// fieldByObjectKey finds the settable field reported under name by
// vertex.ObjectKeys. Field names follow the json tag, then the yaml tag,
// then the Go name.
func fieldByObjectKey(target reflect.Value, name string) reflect.Value {
	t := target.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if fieldName(f) == name {
			return target.Field(i)
		}
	}

	return reflect.Value{}
}

// fieldName mirrors the naming used for struct object keys.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "yaml"} {
		if v, ok := f.Tag.Lookup(tag); ok {
			name, _, _ := strings.Cut(v, ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
	}

	return f.Name
}

// assign stores child into dst when the types allow it.
func assign(dst reflect.Value, child any) {
	if !dst.CanSet() {
		return
	}
	if cv, ok := assignable(child, dst.Type()); ok {
		dst.Set(cv)
	}
}

// assignable converts child into a value assignable to t.
func assignable(child any, t reflect.Type) (reflect.Value, bool) {
	if child == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice:
			return reflect.Zero(t), true
		default:
			return reflect.Value{}, false
		}
	}
	cv := reflect.ValueOf(child)
	if cv.Type().AssignableTo(t) {
		return cv, true
	}
	if cv.Type().ConvertibleTo(t) && cv.Kind() == t.Kind() {
		return cv.Convert(t), true
	}

	return reflect.Value{}, false
}

// mapKeyFor converts key into a key of type t. String-keyed maps take the
// text of any key, so positional keys can populate them.
func mapKeyFor(key vertex.Key, t reflect.Type) (reflect.Value, bool) {
	if key == nil {
		return reflect.Value{}, false
	}
	kv := reflect.ValueOf(key)
	if kv.Type().AssignableTo(t) {
		return kv, true
	}
	if t.Kind() == reflect.String {
		return reflect.ValueOf(fmt.Sprint(key)).Convert(t), true
	}
	if kv.Type().ConvertibleTo(t) {
		converted := kv.Convert(t)
		if vertex.SameValue(converted.Interface(), key) {
			return converted, true
		}
	}

	return reflect.Value{}, false
}

// AppendChildValue is a SetChildFunc for list-building conversions: it
// appends child to a *[]any parent regardless of key, and defers to
// SetChildValue for anything else.
func AppendChildValue(parent any, key vertex.Key, child any) {
	if list, ok := parent.(*[]any); ok {
		*list = append(*list, child)
		return
	}
	SetChildValue(parent, key, child)
}
