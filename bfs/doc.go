// Package bfs provides breadth-first search over the active subgraph of a
// temporal snapshot, returning unweighted shortest-path distances, parent
// links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor steps via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Topology
//
//	BFS reads a Topology, which *snapshot.Snapshot satisfies. Only edges
//	active at the snapshot's current interval are crossed and only active
//	vertices are visited, so running BFS after each SetInterval yields
//	reachability over time.
//
//	By default each vertex expands through Neighbors, which crosses every
//	active edge in both directions. WithDirected expands through Successors
//	instead, following edges from From to To only.
//
// Determinism
//
//	The snapshot enumerates neighbors in activation order, and BFS enqueues
//	them in that order, so the visit sequence is reproducible for a given
//	sequence of query intervals.
//
// Complexity (V = active vertices, E = active edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	result, err := bfs.BFS(snap, "start",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithDirected(),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//	    // context errors, or hook errors
//	}
//	path, _ := result.PathTo("target")
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip steps for which fn(curr,neighbor)==false.
//   - WithDirected():              follow Successors instead of Neighbors.
//   - WithOnEnqueue(fn):           hook before a vertex is enqueued.
//   - WithOnDequeue(fn):           hook immediately before visiting a vertex.
//   - WithOnVisit(fn):             hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the topology is nil.
//   - ErrStartVertexNotFound  if the start vertex is not active.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
