package crawler

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/keycrawler/core"
	"github.com/katalvlaran/keycrawler/dfs"
	"github.com/katalvlaran/keycrawler/vertex"
)

// KeyCrawler pairs a traversal strategy with a vertex factory. Every
// operation, from plain traversal to route algebra, reads keys through
// the same factory so they agree on what a child is.
type KeyCrawler struct {
	strategy core.Strategy
	factory  *vertex.Factory
	log      *zap.Logger
}

// Option configures a KeyCrawler.
type Option func(*KeyCrawler)

// WithStrategy replaces the default pre-order depth-first strategy.
// A nil strategy is ignored.
func WithStrategy(s core.Strategy) Option {
	return func(c *KeyCrawler) {
		if s != nil {
			c.strategy = s
		}
	}
}

// WithFactory sets the vertex factory. A nil factory is ignored.
func WithFactory(f *vertex.Factory) Option {
	return func(c *KeyCrawler) {
		if f != nil {
			c.factory = f
		}
	}
}

// WithRules is shorthand for WithFactory(vertex.NewFactory(rules...)).
func WithRules(rules ...vertex.Rule) Option {
	return WithFactory(vertex.NewFactory(rules...))
}

// WithLogger sets the debug logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *KeyCrawler) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns a crawler using dfs.Default() and a rule-less factory
// unless configured otherwise.
func New(opts ...Option) *KeyCrawler {
	c := &KeyCrawler{
		strategy: dfs.Default(),
		factory:  vertex.NewFactory(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Strategy returns the traversal strategy in use.
func (c *KeyCrawler) Strategy() core.Strategy { return c.strategy }

// Factory returns the vertex factory in use.
func (c *KeyCrawler) Factory() *vertex.Factory { return c.factory }

// Traverse walks root with the configured strategy and factory.
func (c *KeyCrawler) Traverse(root any, callback core.Callback) *core.State {
	return c.strategy.Traverse(root, callback, c.factory)
}

// Predicate decides whether the current position is a search match.
type Predicate func(state *core.State) bool

// SearchResponse holds the final traversal state and the matched routes.
type SearchResponse struct {
	State   *core.State
	Results []*core.Route
}

// Search traverses root and collects a clone of the route at every
// position where predicate holds. Once maxResults routes are collected the
// traversal is marked Completed; maxResults <= 0 means no limit.
func (c *KeyCrawler) Search(root any, predicate Predicate, maxResults int) SearchResponse {
	var results []*core.Route
	state := c.strategy.Traverse(root, func(state *core.State) {
		if !predicate(state) {
			return
		}
		results = append(results, state.Route.Clone())
		if maxResults > 0 && len(results) >= maxResults {
			c.log.Debug("search result cap reached",
				zap.Int("maxResults", maxResults),
				zap.Int("visited", state.Visited.Len()))
			state.Completed = true
		}
	}, c.factory)

	return SearchResponse{State: state, Results: results}
}
