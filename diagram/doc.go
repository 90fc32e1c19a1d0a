// Package diagram provides the read-only graph query surface the validator
// operates on, together with an in-memory diagram implementation used by the
// project loader and the checker.
//
// The validator never sees concrete types: it works against the Node and
// Edge interfaces and the one-hop filtered traversal they expose. Filters
// are plain predicate functions so callers can compose several of them.
//
// A Diagram and its nodes are owned by a single goroutine; the editor (or
// the checker) mutates the graph, the validator only reads it.
package diagram
