// Package dfs implements depth-first search and topological sort over the
// graph visible in a temporal snapshot.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking, over active vertices only. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Forest traversal (WithFullTraversal) recording one root per tree
//   - Components: connected components of the active graph, ignoring
//     edge direction.
//   - TopologicalSort: linear ordering of active vertices consistent with
//     the active directed edges; undirected edges impose no order.
//     Returns ErrCycleDetected if the directed edges form a cycle.
//
// Because the input is a Topology rather than a fixed graph, the same
// call gives different answers as the snapshot window moves:
//
//	s.SetInterval(q1)
//	before, _ := dfs.Components(s)
//	s.SetInterval(q2)
//	after, _ := dfs.Components(s)
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers
//   - Topology / DirectedTopology: the snapshot views the algorithms read
//   - Option, DFSOptions, DFSResult
//
// Complexity:
//
//   - DFS, Components: Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             topology is nil
//   - ErrStartVertexNotFound  start vertex is not active
//   - ErrCycleDetected        directed cycle among active edges
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
