package search

import (
	"github.com/katalvlaran/keycrawler/core"
	"github.com/katalvlaran/keycrawler/vertex"
)

// PropertySearchFactory adds property-match searches to CallbackFactory.
type PropertySearchFactory struct {
	*CallbackFactory
}

// NewPropertySearchFactory returns a property search factory reading keys
// through factory.
func NewPropertySearchFactory(factory *vertex.Factory) *PropertySearchFactory {
	return &PropertySearchFactory{CallbackFactory: NewCallbackFactory(factory)}
}

// PropertyCheckFor returns a check matching objects whose property
// pair.Key holds a value equal to pair.Value, or nil when term is not a
// property match.
func (f *PropertySearchFactory) PropertyCheckFor(term Term) CheckFunc {
	pair, ok := AsKeyValuePair(term)
	if !ok {
		return nil
	}

	return func(state *core.State) bool {
		target := state.Route.Target
		if !vertex.IsComposite(target) {
			return false
		}
		value, ok := vertex.LookupProperty(target, pair.Key)

		return ok && vertex.SameValue(value, pair.Value)
	}
}

// PropertySearch claims property-match terms and visits every object at
// or below the current target that matches.
func (f *PropertySearchFactory) PropertySearch(shallow bool) TermCallback {
	return f.SearchCallback(f.PropertyCheckFor, shallow)
}
