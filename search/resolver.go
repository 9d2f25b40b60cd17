package search

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/keycrawler/core"
	"github.com/katalvlaran/keycrawler/crawler"
)

// Resolver matches a path of search terms against a value graph, one term
// at a time. For every term the callbacks are tried in order and the first
// one that claims the term produces its matches; each match then resolves
// the remaining terms from its own position. Positions matching the last
// term are collected as results.
type Resolver struct {
	callbacks []TermCallback
	log       *zap.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLogger sets the debug logger. The default discards everything.
func WithLogger(l *zap.Logger) ResolverOption {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// WithCallbacks appends term callbacks, lowest priority last.
func WithCallbacks(callbacks ...TermCallback) ResolverOption {
	return func(r *Resolver) {
		for _, cb := range callbacks {
			if cb != nil {
				r.callbacks = append(r.callbacks, cb)
			}
		}
	}
}

// NewResolver returns a resolver trying callbacks in the given order.
func NewResolver(callbacks []TermCallback, opts ...ResolverOption) *Resolver {
	r := &Resolver{log: zap.NewNop()}
	WithCallbacks(callbacks...)(r)
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Callbacks returns a copy of the term callbacks in priority order.
func (r *Resolver) Callbacks() []TermCallback {
	return append([]TermCallback(nil), r.callbacks...)
}

// Resolve searches context for terms and returns the matched routes.
// Resolution stops once maxResults routes are found; maxResults <= 0
// means no limit. An empty term list yields no results.
func (r *Resolver) Resolve(context any, terms []Term, maxResults int) crawler.SearchResponse {
	search := &crawler.SearchResponse{State: core.NewRootState(context)}
	r.ExtendSearch(search, terms, maxResults)

	return *search
}

// ExtendSearch resolves terms from the current route of search.State,
// appending matches to search.Results.
//
// Each term is resolved with a fresh visited set, so a value matched by
// an earlier term can be entered again by a later one. The previous set
// is restored afterwards.
func (r *Resolver) ExtendSearch(search *crawler.SearchResponse, terms []Term, maxResults int) {
	if len(terms) == 0 {
		return
	}
	term, rest := terms[0], terms[1:]
	state := search.State
	previouslyVisited := state.Visited
	state.Visited = core.NewVisitedSet()

	visit := func(state *core.State) {
		if len(rest) > 0 {
			r.ExtendSearch(search, rest, maxResults)
			return
		}
		search.Results = append(search.Results, state.Route.Clone())
		if maxResults > 0 && len(search.Results) >= maxResults {
			r.log.Debug("search result cap reached", zap.Int("maxResults", maxResults))
			state.Completed = true
		}
	}

	claimed := false
	for i, callback := range r.callbacks {
		if callback(state, term, visit) {
			r.log.Debug("search term claimed",
				zap.Int("callback", i),
				zap.Any("term", term),
				zap.Int("depth", state.Route.Len()))
			claimed = true
			break
		}
	}
	if !claimed {
		r.log.Debug("search term unclaimed", zap.Any("term", term))
	}
	state.Visited = previouslyVisited
}
