package vertex

import (
	"iter"
	"reflect"
)

// PathStep is one step of a property lookup path: either a literal Key
// (property name, map key or index) or a CallRequest.
type PathStep = any

// CallRequest describes a call to a named method with the given arguments.
type CallRequest struct {
	Name string
	Args []any
}

// ExecutePropertyCall calls method req.Name on target with req.Args.
// Arguments are converted to the parameter types when the conversion is
// lossless; nil becomes the parameter's zero value. The call succeeds when
// the method exists, accepts the arguments and returns at least one value.
// A trailing bool false or non-nil error result marks the call as failed.
func ExecutePropertyCall(target any, req CallRequest) (any, bool) {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() {
		return nil, false
	}
	method := rv.MethodByName(req.Name)
	if !method.IsValid() {
		return nil, false
	}
	mt := method.Type()
	if mt.IsVariadic() || mt.NumIn() != len(req.Args) || mt.NumOut() == 0 {
		return nil, false
	}
	in := make([]reflect.Value, len(req.Args))
	for i, arg := range req.Args {
		av, ok := convertArg(arg, mt.In(i))
		if !ok {
			return nil, false
		}
		in[i] = av
	}
	out := method.Call(in)
	if last := out[len(out)-1]; len(out) > 1 {
		switch {
		case last.Kind() == reflect.Bool && !last.Bool():
			return nil, false
		case last.Type() == errorType && !last.IsNil():
			return nil, false
		}
	}

	return out[0].Interface(), true
}

// errorType is the reflect.Type of the error interface.
var errorType = reflect.TypeOf((*error)(nil)).Elem()

// convertArg prepares arg as a call argument of type t.
func convertArg(arg any, t reflect.Type) (reflect.Value, bool) {
	if arg == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), true
		default:
			return reflect.Value{}, false
		}
	}
	av := reflect.ValueOf(arg)
	if av.Type().AssignableTo(t) {
		return av, true
	}

	return convertKey(arg, t)
}

// ResolvePropertyRequest applies a single step to source: a method call
// for CallRequest steps, the child list for DOMChildNodes on *html.Node
// values, a property read otherwise.
func ResolvePropertyRequest(source any, step PathStep) (any, bool) {
	switch req := step.(type) {
	case CallRequest:
		return ExecutePropertyCall(source, req)
	case *CallRequest:
		if req == nil {
			return nil, false
		}
		return ExecutePropertyCall(source, *req)
	default:
		if children, ok := domChildNodes(source, step); ok {
			return children, true
		}
		return LookupProperty(source, step)
	}
}

// ResolvePropertyLookup walks source through steps. Every intermediate
// value must be composite; the final step may yield any value. An empty
// path resolves to source itself.
func ResolvePropertyLookup(source any, steps []PathStep) (any, bool) {
	if len(steps) == 0 {
		return source, true
	}
	target := source
	last := len(steps) - 1
	for _, step := range steps[:last] {
		value, ok := ResolvePropertyRequest(target, step)
		if !ok || !IsComposite(value) {
			return nil, false
		}
		target = value
	}

	return ResolvePropertyRequest(target, steps[last])
}

// KeySeqFunc produces the key sequence of a wrapped value.
type KeySeqFunc func(value any) iter.Seq[Key]

// ValueFunc reads the value connected to key directly.
type ValueFunc func(value any, key Key) (any, bool)

// LookupOption configures a LookupVertex.
type LookupOption func(*LookupVertex)

// WithKeyAlias replaces DefaultKeyAlias as the template placeholder.
func WithKeyAlias(alias string) LookupOption {
	return func(v *LookupVertex) {
		if alias != "" {
			v.keyAlias = alias
		}
	}
}

// WithKeySeq installs a custom key sequence instead of the template walk.
func WithKeySeq(fn KeySeqFunc) LookupOption {
	return func(v *LookupVertex) {
		if fn != nil {
			v.keySeq = fn
		}
	}
}

// WithValueFunc installs a direct value getter used instead of resolving
// the expanded template.
func WithValueFunc(fn ValueFunc) LookupOption {
	return func(v *LookupVertex) {
		if fn != nil {
			v.valueOf = fn
		}
	}
}

// LookupVertex reaches its values through a path template: a list of
// steps in which the key alias stands for the key itself. For example
// ["children", "$key"] exposes the entries of a children list, and
// [CallRequest{Name: "Get", Args: ["$key"]}] exposes a Get accessor.
type LookupVertex struct {
	value        any
	pathTemplate []PathStep
	keyAlias     string
	keySeq       KeySeqFunc
	valueOf      ValueFunc
}

// NewLookupVertex wraps value using template.
func NewLookupVertex(value any, template []PathStep, opts ...LookupOption) *LookupVertex {
	v := &LookupVertex{
		value:        value,
		pathTemplate: template,
		keyAlias:     DefaultKeyAlias,
	}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Value returns the wrapped value.
func (v *LookupVertex) Value() any { return v.value }

// PathTemplate returns the lookup template.
func (v *LookupVertex) PathTemplate() []PathStep { return v.pathTemplate }

// KeyAlias returns the template placeholder for keys.
func (v *LookupVertex) KeyAlias() string { return v.keyAlias }

// Keys yields the keys of the wrapped value.
func (v *LookupVertex) Keys() iter.Seq[Key] {
	if v.keySeq != nil {
		return v.keySeq(v.value)
	}

	return v.templateKeys
}

// isAlias reports whether step or argument x is the key placeholder.
func (v *LookupVertex) isAlias(x any) bool {
	s, ok := x.(string)

	return ok && s == v.keyAlias
}

// templateKeys walks the template until the step holding the key alias.
// A literal alias step enumerates the container reached so far; an alias
// argument of a call is probed with 0, 1, 2, ... until the call fails.
func (v *LookupVertex) templateKeys(yield func(Key) bool) {
	if !IsComposite(v.value) {
		return
	}
	target := v.value
	for _, step := range v.pathTemplate {
		req, isCall := asCallRequest(step)
		if isCall {
			keyIndex := -1
			for i, arg := range req.Args {
				if v.isAlias(arg) {
					keyIndex = i
					break
				}
			}
			if keyIndex >= 0 {
				probe := CallRequest{Name: req.Name, Args: append([]any(nil), req.Args...)}
				for i := 0; ; i++ {
					probe.Args[keyIndex] = i
					value, ok := ExecutePropertyCall(target, probe)
					if !ok || value == nil || !yield(i) {
						return
					}
				}
			}
			value, ok := ExecutePropertyCall(target, req)
			if !ok || !IsComposite(value) {
				return
			}
			target = value
			continue
		}
		if v.isAlias(step) {
			if IsList(target) {
				for k := range NewArrayVertex(target).Keys() {
					if !yield(k) {
						return
					}
				}
				return
			}
			for _, k := range ObjectKeys(target) {
				if !yield(k) {
					return
				}
			}
			return
		}
		value, ok := LookupProperty(target, step)
		if !ok || !IsComposite(value) {
			return
		}
		target = value
	}
}

// IndexedKey returns the key at position index, wrapping negative indices.
func (v *LookupVertex) IndexedKey(index int) (Key, bool) {
	keys := make([]Key, 0)
	count := 0
	for k := range v.Keys() {
		if count == index {
			return k, true
		}
		count++
		keys = append(keys, k)
	}

	return indexedKeyOf(keys, index)
}

// KeyValue resolves the template for key against the wrapped value.
func (v *LookupVertex) KeyValue(key Key) (any, bool) {
	if !IsComposite(v.value) {
		return nil, false
	}
	if v.valueOf != nil {
		return v.valueOf(v.value, key)
	}

	return ResolvePropertyLookup(v.value, v.ValuePath(key))
}

// KeyIndex returns the position of key within Keys.
func (v *LookupVertex) KeyIndex(key Key) (int, bool) {
	count := 0
	for k := range v.Keys() {
		if SameValue(k, key) {
			return count, true
		}
		count++
	}

	return 0, false
}

// ValuePath substitutes key for the alias throughout the template.
func (v *LookupVertex) ValuePath(key Key) []PathStep {
	path := make([]PathStep, len(v.pathTemplate))
	for i, step := range v.pathTemplate {
		if req, ok := asCallRequest(step); ok {
			args := make([]any, len(req.Args))
			for j, arg := range req.Args {
				if v.isAlias(arg) {
					args[j] = key
				} else {
					args[j] = arg
				}
			}
			path[i] = CallRequest{Name: req.Name, Args: args}
			continue
		}
		if v.isAlias(step) {
			path[i] = key
		} else {
			path[i] = step
		}
	}

	return path
}

// ValidateValuePath checks whether source, read from position start,
// matches the template and extracts the key it encodes. Literal steps
// must match exactly; every alias occurrence must carry the same key.
func (v *LookupVertex) ValidateValuePath(source []PathStep, start int) (KeyedPath, bool) {
	if start < 0 || start+len(v.pathTemplate) > len(source) {
		return KeyedPath{}, false
	}
	var key Key
	path := make([]PathStep, 0, len(v.pathTemplate))
	for i, step := range v.pathTemplate {
		sourceStep := source[i+start]
		sourceReq, sourceIsCall := asCallRequest(sourceStep)
		if req, isCall := asCallRequest(step); isCall {
			if !sourceIsCall || sourceReq.Name != req.Name || len(sourceReq.Args) != len(req.Args) {
				return KeyedPath{}, false
			}
			for argIndex, arg := range req.Args {
				sourceArg := sourceReq.Args[argIndex]
				if !v.isAlias(arg) {
					continue
				}
				if !isKeyLike(sourceArg) {
					return KeyedPath{}, false
				}
				if key == nil {
					key = sourceArg
				} else if !SameValue(sourceArg, key) {
					return KeyedPath{}, false
				}
			}
		} else if v.isAlias(step) {
			if sourceIsCall || !isKeyLike(sourceStep) {
				return KeyedPath{}, false
			}
			if key == nil {
				key = sourceStep
			} else if !SameValue(sourceStep, key) {
				return KeyedPath{}, false
			}
		} else if sourceIsCall || !SameValue(sourceStep, step) {
			return KeyedPath{}, false
		}
		path = append(path, sourceStep)
	}
	if key == nil {
		return KeyedPath{}, false
	}

	return KeyedPath{Key: key, Path: path}, true
}

// asCallRequest unwraps CallRequest values and pointers.
func asCallRequest(step PathStep) (CallRequest, bool) {
	switch req := step.(type) {
	case CallRequest:
		return req, true
	case *CallRequest:
		if req != nil {
			return *req, true
		}
	}

	return CallRequest{}, false
}

// isKeyLike reports whether x can serve as a key: a string or number.
func isKeyLike(x any) bool {
	if x == nil {
		return false
	}
	if _, ok := toFloat(x); ok {
		return true
	}
	_, ok := stringKey(x)

	return ok
}

// ExpandNestedValuePath converts a key path into the full property path,
// expanding each step through its Pathed vertex. It fails when a key has no
// vertex to expand it.
func ExpandNestedValuePath(vertices []Keyed, keys []Key) ([]PathStep, bool) {
	results := make([]PathStep, 0, len(keys))
	for i, key := range keys {
		if i >= len(vertices) || vertices[i] == nil {
			return nil, false
		}
		if pathed, ok := vertices[i].(Pathed); ok {
			results = append(results, pathed.ValuePath(key)...)
			continue
		}
		results = append(results, key)
	}

	return results, true
}

// CollapseNestedValuePath is the inverse of ExpandNestedValuePath: it
// recovers one key per vertex from a full property path.
func CollapseNestedValuePath(vertices []Keyed, path []PathStep) ([]Key, bool) {
	results := make([]Key, 0, len(vertices))
	pathIndex := 0
	for _, vtx := range vertices {
		if pathed, ok := vtx.(Pathed); ok {
			match, ok := pathed.ValidateValuePath(path, pathIndex)
			if !ok {
				return nil, false
			}
			results = append(results, match.Key)
			pathIndex += len(match.Path)
			continue
		}
		if pathIndex >= len(path) {
			return nil, false
		}
		step := path[pathIndex]
		if _, isCall := asCallRequest(step); isCall {
			return nil, false
		}
		results = append(results, step)
		pathIndex++
	}

	return results, true
}
