package vertex

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	goyaml "github.com/goccy/go-yaml"
)

// Identity is the reference identity of a value that can take part in a
// cycle. Two values share an Identity when they denote the same pointer,
// the same map, or the same slice window of the same type.
type Identity struct {
	typ reflect.Type
	ptr uintptr
	n   int
}

// IdentityOf returns the identity of v. Values without reference semantics
// (nil, scalars, struct and array values, empty slices) have none.
func IdentityOf(v any) (Identity, bool) {
	if v == nil {
		return Identity{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Pointer:
		if rv.IsNil() {
			return Identity{}, false
		}
		return Identity{typ: rv.Type(), ptr: rv.Pointer()}, true
	case reflect.Slice:
		if rv.Len() == 0 {
			return Identity{}, false
		}
		return Identity{typ: rv.Type(), ptr: rv.Pointer(), n: rv.Len()}, true
	default:
		return Identity{}, false
	}
}

// IsComposite reports whether v is an "object" for traversal purposes:
// a non-nil map, slice or pointer, or any array or struct value.
func IsComposite(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer:
		return !rv.IsNil()
	case reflect.Array, reflect.Struct:
		return true
	default:
		return false
	}
}

// IsList reports whether v is a positional container: a slice or array,
// possibly behind pointers. Ordered YAML mappings are objects, not lists.
func IsList(v any) bool {
	if !IsComposite(v) {
		return false
	}
	switch v.(type) {
	case goyaml.MapSlice, *goyaml.MapSlice:
		return false
	}
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return false
	}

	return rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array
}

// SameValue is the strict equality used when matching keys and property
// values: identity for reference values, numeric equality across number
// types, and == for other comparable values.
func SameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ia, okA := IdentityOf(a)
	ib, okB := IdentityOf(b)
	if okA || okB {
		return okA && okB && ia == ib
	}
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa == fb
		}
		return false
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}

	return a == b
}

// KeyToIndex converts an integer-like key to an int. Numeric strings are
// accepted, mirroring how positional keys round-trip through text paths.
func KeyToIndex(key Key) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, true
	case string:
		i, err := strconv.Atoi(k)
		if err != nil {
			return 0, false
		}
		return i, true
	}
	rv := reflect.ValueOf(key)
	switch rv.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsInf(f, 0) || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		return int(f), true
	default:
		return 0, false
	}
}

// GetWrappedIndex maps a possibly negative index onto [0, length).
// A negative index counts back from the end. When clamped is false the
// result may stay out of range to signal an invalid position.
func GetWrappedIndex(index, length int, clamped bool) int {
	if index < 0 {
		index += length
	}
	if clamped {
		if index >= length {
			index = length - 1
		}
		if index < 0 {
			index = 0
		}
	}

	return index
}

// toFloat converts any Go number to float64.
func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// indirect follows pointers and interfaces down to a concrete value.
// It returns the zero Value when a nil pointer is met.
func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}

	return rv
}

// formatKey renders a key with its type so distinct keys never collide.
func formatKey(k Key) string {
	return fmt.Sprintf("%T:%v", k, k)
}
