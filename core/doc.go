// Package core defines the route and state model shared by every
// traversal strategy.
//
// What:
//
//   - Route: the keys taken from the root (Path), the keyed vertices they
//     were taken from (Vertices) and the value reached (Target).
//   - VisitedSet: objects already entered, tracked by reference identity.
//   - State: a Route plus the visited set and the control flags callbacks
//     use to steer a walk (Completed, SkipIteration), the breadth-first
//     RouteQueue and an optional terminal Err.
//   - Callback and Strategy: the contract implemented by dfs and bfs.
//
// Why:
//
//   - Callbacks receive the full route, so they can inspect ancestors,
//     snapshot a position (Route.Clone) or stop the walk without any
//     strategy-specific API.
//
// Complexity:
//
//   - Route.Clone: O(depth).
//   - VisitedSet.Add / Has: O(1) amortized.
//
// Errors:
//
//   - None. State.Err is populated by strategies that stop early.
package core
