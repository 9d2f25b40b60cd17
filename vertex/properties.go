package vertex

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	goyaml "github.com/goccy/go-yaml"
)

// fieldInfo is the exported, named view of one struct field.
type fieldInfo struct {
	name  string
	index []int
}

// structFieldCache memoizes fieldsOf per struct type.
var structFieldCache sync.Map // map[reflect.Type][]fieldInfo

// fieldsOf lists the exported fields of struct type t in declaration order.
// A field is named by its json tag, then its yaml tag, then its Go name.
// Fields tagged "-" are skipped.
func fieldsOf(t reflect.Type) []fieldInfo {
	if cached, ok := structFieldCache.Load(t); ok {
		return cached.([]fieldInfo)
	}
	fields := make([]fieldInfo, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, skip := tagName(f, "json")
		if skip {
			continue
		}
		if name == "" {
			if name, skip = tagName(f, "yaml"); skip {
				continue
			}
		}
		if name == "" {
			name = f.Name
		}
		fields = append(fields, fieldInfo{name: name, index: f.Index})
	}
	structFieldCache.Store(t, fields)

	return fields
}

// tagName extracts the name part of a struct tag and whether the field is excluded.
func tagName(f reflect.StructField, key string) (string, bool) {
	tag, ok := f.Tag.Lookup(key)
	if !ok {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return "", true
	}

	return name, false
}

// ObjectKeys lists the own property names of an object value:
// sorted keys for string-keyed maps, document order for yaml.MapSlice,
// declaration order for structs. Other values have no property names.
func ObjectKeys(source any) []Key {
	switch ms := source.(type) {
	case goyaml.MapSlice:
		return mapSliceKeys(ms)
	case *goyaml.MapSlice:
		if ms == nil {
			return nil
		}
		return mapSliceKeys(*ms)
	}
	rv := indirect(reflect.ValueOf(source))
	if !rv.IsValid() {
		return nil
	}
	switch rv.Kind() {
	case reflect.Map:
		return sortedMapKeys(rv)
	case reflect.Struct:
		fields := fieldsOf(rv.Type())
		keys := make([]Key, len(fields))
		for i, f := range fields {
			keys[i] = f.name
		}
		return keys
	default:
		return nil
	}
}

// mapSliceKeys returns the item keys of an ordered mapping.
func mapSliceKeys(ms goyaml.MapSlice) []Key {
	keys := make([]Key, len(ms))
	for i, item := range ms {
		keys[i] = item.Key
	}

	return keys
}

// sortedMapKeys returns the keys of map value rv in a stable order:
// numeric keys ascending, string keys lexically, then anything else by
// its formatted text.
func sortedMapKeys(rv reflect.Value) []Key {
	raw := rv.MapKeys()
	keys := make([]Key, len(raw))
	for i, k := range raw {
		keys[i] = k.Interface()
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return lessKey(keys[i], keys[j])
	})

	return keys
}

// lessKey orders two map keys for sortedMapKeys.
func lessKey(a, b Key) bool {
	fa, okA := toFloat(a)
	fb, okB := toFloat(b)
	switch {
	case okA && okB:
		return fa < fb
	case okA != okB:
		return okA
	}
	sa, okA := stringKey(a)
	sb, okB := stringKey(b)
	switch {
	case okA && okB:
		return sa < sb
	case okA != okB:
		return okA
	}

	return formatKey(a) < formatKey(b)
}

// stringKey returns the text of string-kinded keys.
func stringKey(k Key) (string, bool) {
	rv := reflect.ValueOf(k)
	if rv.Kind() != reflect.String {
		return "", false
	}

	return rv.String(), true
}

// HasProperty reports whether source has an own property or element named key.
func HasProperty(source any, key Key) bool {
	_, ok := LookupProperty(source, key)

	return ok
}

// LookupProperty reads the property or element key of source.
// Maps are indexed by key (converted to the map key type when lossless),
// slices and arrays by integer position, yaml.MapSlice by item key and
// structs by field name as reported by ObjectKeys.
func LookupProperty(source any, key Key) (any, bool) {
	if key == nil {
		return nil, false
	}
	switch ms := source.(type) {
	case goyaml.MapSlice:
		return mapSliceValue(ms, key)
	case *goyaml.MapSlice:
		if ms == nil {
			return nil, false
		}
		return mapSliceValue(*ms, key)
	}
	rv := indirect(reflect.ValueOf(source))
	if !rv.IsValid() {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Map:
		kv, ok := convertKey(key, rv.Type().Key())
		if !ok {
			return nil, false
		}
		val := rv.MapIndex(kv)
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	case reflect.Slice, reflect.Array:
		i, ok := KeyToIndex(key)
		if !ok || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	case reflect.Struct:
		name, ok := key.(string)
		if !ok {
			return nil, false
		}
		for _, f := range fieldsOf(rv.Type()) {
			if f.name == name {
				return rv.FieldByIndex(f.index).Interface(), true
			}
		}
		return nil, false
	default:
		return nil, false
	}
}

// mapSliceValue finds the value stored under key in an ordered mapping.
func mapSliceValue(ms goyaml.MapSlice, key Key) (any, bool) {
	for _, item := range ms {
		if SameValue(item.Key, key) {
			return item.Value, true
		}
	}

	return nil, false
}

// convertKey turns key into a value usable with a map whose key type is t.
// Only lossless conversions are attempted: string kinds to string kinds
// and numbers to numbers.
func convertKey(key Key, t reflect.Type) (reflect.Value, bool) {
	kv := reflect.ValueOf(key)
	if !kv.IsValid() {
		return reflect.Value{}, false
	}
	if kv.Type().AssignableTo(t) {
		return kv, true
	}
	if t.Kind() == reflect.Interface {
		return reflect.Value{}, false
	}
	if kv.Kind() == reflect.String && t.Kind() == reflect.String {
		return kv.Convert(t), true
	}
	if _, ok := toFloat(key); ok && isNumberKind(t.Kind()) {
		converted := kv.Convert(t)
		if !SameValue(converted.Interface(), key) {
			return reflect.Value{}, false
		}
		return converted, true
	}

	return reflect.Value{}, false
}

// isNumberKind reports whether k is an integer or floating point kind.
func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
