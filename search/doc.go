// Package search resolves search paths: sequences of terms matched one
// after another against a value graph.
//
// What:
//
//   - Resolver tries its TermCallbacks in order for each term; the first
//     callback claiming the term reports every match through a Visit
//     continuation, and each match resolves the remaining terms from its
//     own position. Matches of the last term become results.
//   - CallbackFactory provides the stock callbacks:
//     KeyCallback       literal string or number keys,
//     PropertyItemAtCallback  numbers as positions inside a named list
//     property, JSONPathSearch  JSONPath selections.
//     PropertySearchFactory adds PropertySearch for {key, value} matches.
//
// Why:
//
//   - Page trees are addressed by human terms ("the section with id p1,
//     then its second child") rather than by raw routes.
//
// Complexity:
//
//   - Each search term costs one depth-first walk of the subtree it is
//     resolved from; literal key terms cost a single lookup.
//
// Errors:
//
//   - ErrInvalidTerm  malformed term, e.g. a bad JSONPath expression.
//     ParseJSONPath returns it; JSONPathSearch records it on State.Err.
package search
