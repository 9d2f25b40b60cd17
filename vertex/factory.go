package vertex

import "reflect"

// Rule proposes a vertex for source, or returns nil to pass.
type Rule func(source any) Vertex

// Factory turns values into vertices using an ordered rule list.
// The zero value and a nil *Factory are both usable and apply no rules.
type Factory struct {
	rules []Rule
}

// NewFactory builds a factory trying rules in the given order.
// Nil rules are dropped.
func NewFactory(rules ...Rule) *Factory {
	f := &Factory{rules: make([]Rule, 0, len(rules))}
	for _, r := range rules {
		if r != nil {
			f.rules = append(f.rules, r)
		}
	}

	return f
}

// Rules returns a copy of the rule list.
func (f *Factory) Rules() []Rule {
	if f == nil {
		return nil
	}

	return append([]Rule(nil), f.rules...)
}

// Create wraps source:
//  1. non-composite values become a PrimitiveVertex;
//  2. slices and arrays become an ArrayVertex;
//  3. otherwise the first rule returning a vertex wins;
//  4. failing that, maps with non-string keys become a MapVertex and
//     everything else an ObjectVertex.
func (f *Factory) Create(source any) Vertex {
	if !IsComposite(source) {
		return NewPrimitiveVertex(source)
	}
	if IsList(source) {
		return NewArrayVertex(source)
	}
	if f != nil {
		for _, rule := range f.rules {
			if v := rule(source); v != nil {
				return v
			}
		}
	}
	if rv := indirect(reflect.ValueOf(source)); rv.IsValid() &&
		rv.Kind() == reflect.Map && rv.Type().Key().Kind() != reflect.String {
		return NewMapVertex(source)
	}

	return NewObjectVertex(source)
}

// CreateKeyed is Create restricted to vertices with keys.
func (f *Factory) CreateKeyed(source any) (Keyed, bool) {
	return AsKeyed(f.Create(source))
}
