// Package dijkstra computes single-source shortest paths over the active
// subgraph of a temporal snapshot, with non-negative edge weights taken from
// the snapshot's weight map.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable active vertices in O((V + E) log V) time.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Supports optional path reconstruction, distance caps, and "impassable" edge thresholds.
//
// Temporal use:
//
//   - Weights follow the snapshot's tracked attribute, so calling Dijkstra after each
//     SetInterval gives shortest paths as costs change over time.
//   - Edges without an active attribute weigh 1.0, so an attribute-free snapshot yields hop counts.
//
// Direction:
//
//   - Directed edges are traversed From→To only; undirected edges in both directions.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:      Source was not set.
//   - ErrNilGraph:         the graph is nil.
//   - ErrVertexNotFound:   the source vertex is not active.
//   - ErrNegativeWeight:   an active edge has a negative or NaN weight (O(E) pre-scan).
//   - ErrBadMaxDistance:   WithMaxDistance got a negative or NaN value.
//   - ErrBadInfThreshold:  WithInfEdgeThreshold got a non-positive or NaN value.
//
// Invalid options are recorded and reported by Dijkstra rather than panicking.
//
// API reference:
//
//	func Dijkstra(g Graph, opts ...Option) (dist map[string]float64, prev map[string]string, err error)
//
//	  - dist:    map[v] = minimal distance from Source to v, +Inf if unreachable.
//	  - prev:    map[v] = immediate predecessor of v on one shortest path from Source,
//	              or "" if v is the Source or unreachable. Nil unless WithReturnPath.
//
// Thread safety:
//
//   - Dijkstra reads the snapshot through its locked query methods. A concurrent
//     SetInterval between those reads can mix two intervals; serialize them if that matters.
package dijkstra
