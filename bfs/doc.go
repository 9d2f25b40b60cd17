// Package bfs provides breadth-first traversal of arbitrary Go values,
// producing core.State snapshots layer by layer.
//
// What
//
//   - Visit values in non-decreasing route length from the root.
//   - Every queued route carries its own copy of Path and Vertices, since
//     routes of different layers are interleaved in the queue.
//   - Callbacks steer the walk through core.State:
//   - Completed ends it immediately (checked after every callback).
//   - SkipIteration keeps the children of the current object out of the queue.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - OnEnqueue observes every child route as it is queued.
//
// Revisits
//
//	Reaching an object that is already in State.Visited ends the entire
//	remaining traversal. The depth-first strategy only truncates the
//	repeated branch. Shared sub-objects therefore cut a breadth-first walk
//	short; use dfs when values may be reachable along several routes.
//
// Determinism
//
//	Keys are enqueued in vertex key order, so the visit sequence is fully
//	reproducible for a given factory.
//
// Complexity (V = objects reached, K = keys enumerated, d = depth)
//
//   - Time:   O(K·d)  (each enqueued route copies its parent's route)
//   - Memory: O(K·d)  for the pending queue, O(V) for the visited set
//
// Usage
//
//	state := bfs.Default().Traverse(root, func(s *core.State) {
//	    fmt.Println(s.Route.Path, s.Route.Target)
//	}, nil)
//
//	walker, err := bfs.New(bfs.WithMaxDepth(2), bfs.WithContext(ctx))
//	if err != nil {
//	    // ErrOptionViolation
//	}
package bfs
