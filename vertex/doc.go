// Package vertex wraps arbitrary in-memory Go values in vertices that expose
// key-based navigation, and provides the Factory that decides which vertex
// kind wraps a given value.
//
// What:
//
//   - Vertex: any wrapper exposing Value().
//   - Keyed: a vertex with outgoing connections, each identified by a Key.
//     Keys() is a restartable lazy sequence (iter.Seq) that may be abandoned
//     mid-way; IndexedKey, KeyValue and KeyIndex give random access.
//   - Variants:
//   - PrimitiveVertex  terminal values (numbers, strings, nil, ...)
//   - ArrayVertex      slices and arrays, keys 0..n-1
//   - ObjectVertex     string-keyed maps (sorted), structs (field order),
//     and ordered yaml.MapSlice mappings (document order)
//   - DefinedObjectVertex  an object restricted to an explicit key list
//   - LookupVertex     indirect access through a path template such as
//     ["children", "$key"] or [CallRequest{Name: "Get", Args: ["$key"]}]
//   - MapVertex        any Go map, addressed by the key itself
//   - DOMNodeVertex    *html.Node children by position
//   - YAMLNodeVertex   *yaml.Node documents, sequences and mappings
//   - Factory: turns a value into a vertex, consulting an ordered list of
//     caller-supplied Rules before falling back to the defaults.
//
// Why:
//
//   - Lets one traversal engine walk decoded JSON/YAML, typed structs, DOM
//     trees and custom containers without knowing their shapes.
//   - Rules let domain code redefine what counts as a "child" (for example
//     only the children of content nodes) without touching the engine.
//
// Identity:
//
//	Values that can form cycles (pointers, maps, non-empty slices) have an
//	Identity. Cycle detection elsewhere compares identities, never contents.
//
// Complexity:
//
//   - ArrayVertex / ObjectVertex KeyValue: O(1) for maps and slices,
//     O(fields) for structs.
//   - IndexedKey / KeyIndex on ordered key sets: O(n).
//   - LookupVertex KeyValue: O(len(template)).
//
// Errors:
//
//	This package never returns errors. Missing keys, out-of-range indices and
//	failed calls are reported through the boolean of a (value, ok) pair.
package vertex
