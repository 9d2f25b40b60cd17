// Package dfs implements the depth-first traversal strategy over arbitrary
// Go values, plus back-reference (cycle) detection.
//
// What:
//
//   - DepthFirstSearch walks one branch to its end before the next one.
//     Traverse fires a single callback in PreOrder or PostOrder;
//     StartPhasedTraversal / ExtendPhasedTraversal fire separate pre- and
//     post-order callbacks.
//   - Callbacks steer the walk through core.State: Completed stops it,
//     SkipIteration (set in the pre-order callback) skips the children of
//     the current object.
//   - Objects are entered at most once per State: a repeat truncates that
//     branch silently, so self-referencing values terminate.
//   - DetectCycles lists the routes that lead back to one of their own
//     ancestors.
//
// Why:
//
//   - Preorder is the natural document order of content trees; postorder
//     suits bottom-up transformations.
//
// Options:
//
//   - WithContext(ctx)     cancellation; State.Err = ctx.Err() when done.
//   - WithOrder(order)     PreOrder (default) or PostOrder for Traverse.
//   - WithMaxDepth(limit)  routes longer than limit end the walk with
//     ErrDepthExceeded. Without a limit recursion depth follows the value
//     depth, which Go's growable stacks absorb for any realistic input.
//   - WithPruneDepth(limit) values at route length limit are visited but
//     not descended into; the walk goes on with their siblings.
//
// Complexity:
//
//   - Time:   O(V + K) where V = objects reached, K = keys enumerated.
//   - Memory: O(depth) for the route and recursion, O(V) for Visited.
//
// Errors:
//
//   - ErrOptionViolation  invalid option passed to New.
//   - ErrDepthExceeded    recorded on State.Err, never returned.
//   - context errors      recorded on State.Err when the context ends.
package dfs
