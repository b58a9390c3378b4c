// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over configuration and catalog sizes.
// Policy:
//   - No algorithms or hidden state here.
//   - Stats() is an O(V+E) snapshot; rely on it for quick diagnostics.

package core

// Directed reports the graph-wide default directedness applied to newly created edges.
//
// Notes:
//   - This does not indicate whether the graph currently contains directed edges
//     (use Stats().DirectedEdgeCount for that).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Stats produces a deterministic, read-only snapshot of catalog sizes,
// including a classification of edges by their Directed flag.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot the default flag and vertex count, then release.
//   - Stage 2: Acquire muEdge.RLock, snapshot edge count and scan edges, then release.
//
// Behavior highlights:
//   - Avoids holding both locks simultaneously.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		DirectedDefault: g.directed,
		VertexCount:     len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdge.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.Directed {
			stats.DirectedEdgeCount++
		} else {
			stats.UndirectedEdgeCount++
		}
		if e.From == e.To {
			stats.SelfLoopCount++
		}
	}
	g.muEdge.RUnlock()

	return &stats
}
