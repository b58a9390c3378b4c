// Package prim_kruskal computes a Minimum Spanning Tree (MST) of the graph
// visible in a temporal snapshot, with Prim's or Kruskal's algorithm.
//
// What & Why
//
//   - An MST of the active graph is a subset T of the active edges that
//     connects every active vertex with the least total weight. Weights come
//     from the snapshot (attribute-driven, 1.0 by default), so the tree
//     changes as the window moves and as attribute values change.
//   - Edge direction is ignored. Self-loops and edges with an inactive
//     endpoint never join the tree.
//
// Algorithms Provided
//
//   - Kruskal(g Graph) ([]core.Edge, float64, error)
//     Sort active edges by (weight, ID), then union-find. O(E log E).
//   - Prim(g Graph, root string) ([]core.Edge, float64, error)
//     Grow from root with a min-heap keyed by (weight, edge ID). O(E log V).
//   - Compute(g, opts...) dispatches on WithMethod / WithRoot.
//
// Both produce a tree of the same total weight; with distinct weights they
// produce the same edge set.
//
// Errors
//
//   - ErrInvalidGraph   nil graph or unknown method
//   - ErrEmptyRoot      Prim without a root
//   - ErrRootNotActive  Prim root not active
//   - ErrDisconnected   empty or disconnected active graph
//
// Example
//
//	s.SetInterval(q)
//	tree, total, err := prim_kruskal.Kruskal(s)
package prim_kruskal
