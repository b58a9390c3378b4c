// Package index stores the intervals of a dynamic network and answers
// overlap queries against them.
//
// Intervals are kept in one ordered B-tree per category (nodes, edges, and
// one tree per attribute name), ordered by (Start, End, ID). An overlap
// search walks a tree in ascending order and stops at the first interval
// that starts after the query window, so its cost is proportional to the
// intervals starting before the window's end rather than to the whole tree.
//
// An Index resolves intervals back to the entities of a core.Graph and
// satisfies snapshot.Source. It is safe for concurrent use; the snapshot
// engine only reads it.
//
// Errors:
//
//	ErrNilGraph     - New was given a nil graph.
//	ErrUnknownOwner - the owning vertex or edge is not in the graph.
//	ErrEmptyAttr    - an attribute interval without attribute name.
package index
