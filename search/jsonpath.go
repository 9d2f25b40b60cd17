package search

import (
	"fmt"

	"github.com/theory/jsonpath"

	"github.com/katalvlaran/keycrawler/core"
	"github.com/katalvlaran/keycrawler/vertex"
)

// ParseJSONPath validates expr and wraps it as a term.
func ParseJSONPath(expr string) (JSONPathTerm, error) {
	if _, err := jsonpath.Parse(expr); err != nil {
		return JSONPathTerm{}, fmt.Errorf("%w: JSONPath %q: %v", ErrInvalidTerm, expr, err)
	}

	return JSONPathTerm{Expr: expr}, nil
}

// JSONPathSearch claims JSONPathTerm terms. The expression is evaluated
// against the current target and every selected object is then visited
// in preorder, with the route leading to it. Selection compares objects
// by identity, so only maps and non-empty slices can match; expressions
// see decoded JSON shapes (map[string]any and []any).
//
// A malformed expression is claimed with no matches and recorded on
// State.Err as ErrInvalidTerm.
func (f *CallbackFactory) JSONPathSearch(shallow bool) TermCallback {
	return func(state *core.State, term Term, visit Visit) bool {
		expr, ok := jsonPathExpr(term)
		if !ok {
			return false
		}
		path, err := jsonpath.Parse(expr)
		if err != nil {
			state.Err = fmt.Errorf("%w: JSONPath %q: %v", ErrInvalidTerm, expr, err)
			return true
		}

		selected := make(map[vertex.Identity]struct{})
		for _, node := range path.Select(state.Route.Target) {
			if id, ok := vertex.IdentityOf(node); ok {
				selected[id] = struct{}{}
			}
		}
		if len(selected) == 0 {
			return true
		}
		f.searchWith(state, func(state *core.State) bool {
			id, ok := vertex.IdentityOf(state.Route.Target)
			if !ok {
				return false
			}
			_, hit := selected[id]

			return hit
		}, visit, shallow)

		return true
	}
}

// jsonPathExpr extracts the expression of JSONPath terms.
func jsonPathExpr(term Term) (string, bool) {
	switch t := term.(type) {
	case JSONPathTerm:
		return t.Expr, true
	case *JSONPathTerm:
		if t != nil {
			return t.Expr, true
		}
	}

	return "", false
}
