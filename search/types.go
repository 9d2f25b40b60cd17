package search

import (
	"errors"
	"fmt"

	goyaml "github.com/goccy/go-yaml"

	"github.com/katalvlaran/keycrawler/core"
)

// ErrInvalidTerm is returned when a search term cannot be interpreted,
// such as a malformed JSONPath expression.
var ErrInvalidTerm = errors.New("search: invalid term")

// Term is one step of a search path: a literal key (string or number),
// a KeyValuePair, a decoded {"key": ..., "value": ...} map, or a
// JSONPathTerm.
type Term = any

// Visit is the continuation a TermCallback calls for every match.
type Visit func(state *core.State)

// TermCallback tries to resolve term from the current route of state.
// It returns false to pass the term to the next callback, or true to
// claim it, calling visit once per match found.
type TermCallback func(state *core.State, term Term, visit Visit) bool

// CheckFunc tells whether the current position matches a term.
type CheckFunc func(state *core.State) bool

// CheckFactory builds the check for term, or returns nil when it does
// not handle that kind of term.
type CheckFactory func(term Term) CheckFunc

// KeyValuePair matches objects whose property Key equals Value.
type KeyValuePair struct {
	Key   string `json:"key" yaml:"key"`
	Value any    `json:"value" yaml:"value"`
}

// AsKeyValuePair interprets term as a property match. Besides KeyValuePair
// values it accepts maps with a "key" entry, as produced by decoding
// {"key": ..., "value": ...} documents.
func AsKeyValuePair(term Term) (KeyValuePair, bool) {
	switch t := term.(type) {
	case KeyValuePair:
		return t, true
	case *KeyValuePair:
		if t != nil {
			return *t, true
		}
	case map[string]any:
		key, ok := t["key"]
		if !ok || key == nil {
			return KeyValuePair{}, false
		}
		return KeyValuePair{Key: fmt.Sprint(key), Value: t["value"]}, true
	case goyaml.MapSlice:
		decoded := make(map[string]any, len(t))
		for _, item := range t {
			if name, ok := item.Key.(string); ok {
				decoded[name] = item.Value
			}
		}
		return AsKeyValuePair(decoded)
	}

	return KeyValuePair{}, false
}

// JSONPathTerm selects matches with a JSONPath expression evaluated
// against the current target, e.g. "$..[?@.id=='p1']".
type JSONPathTerm struct {
	Expr string
}
