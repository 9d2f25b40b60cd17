// Package crawler provides KeyCrawler, the facade that pairs a traversal
// strategy with a vertex factory.
//
// What:
//
//   - Traverse: delegate to the strategy (dfs.Default() unless configured).
//   - Search: collect a clone of every route where a predicate holds,
//     stopping once a result cap is reached.
//   - MapValue: convert a whole value graph into a new one of the same
//     shape, position by position, with a pluggable child setter.
//   - Route algebra: CreateRouteFrom, ExtendRoute, ExtendRouteByIndices,
//     RevertRoute and the non-mutating GetSubroute, GetChildRoute and
//     GetParentRoute.
//
// Why:
//
//   - Traversal and route algebra read keys through the same factory, so a
//     route recorded during a search can be replayed, shortened or extended
//     and always agrees with what the traversal saw.
//
// Routes:
//
//	Every step pushes a key together with the vertex it was read from, so
//	len(Path) == len(Vertices) for every route this package builds. Route
//	extension is fail-quiet: it stops at the first value without keys and
//	drops the remaining steps.
//
// Complexity:
//
//   - Search, MapValue: one traversal, O(V + K).
//   - ExtendRoute: O(steps) vertex creations.
//   - RevertRoute: O(1).
//
// Errors:
//
//   - None. Callers inspect route length and target instead.
package crawler
