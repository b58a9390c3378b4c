// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It spans the active vertices of a snapshot using the active edges.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/lvsnap/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of the active graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph  : if g is nil.
//   - ErrDisconnected  : if no vertex is active, or the active graph is not connected.
//
// Steps:
//  1. Collect active vertices in ID order; one vertex is a trivial MST.
//  2. Collect active edges whose endpoints are both active, skipping self-loops.
//  3. Sort edges by (weight, ID).
//  4. Union endpoints of each edge that joins two components.
//  5. Fewer than |V|-1 tree edges means the graph was disconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(g Graph) ([]core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}

	// 1. Active vertices.
	vertices := g.Nodes()
	sort.Strings(vertices)
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Candidate edges with their weights.
	type weighted struct {
		e *core.Edge
		w float64
	}
	all := g.Edges()
	edges := make([]weighted, 0, len(all))
	for _, e := range all {
		if e.From == e.To || !g.ContainsNode(e.From) || !g.ContainsNode(e.To) {
			continue
		}
		edges = append(edges, weighted{e: e, w: weightOf(g, e)})
	}

	// 3. Deterministic order: weight, then edge ID.
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].w != edges[j].w {
			return edges[i].w < edges[j].w
		}
		return edges[i].e.ID < edges[j].e.ID
	})

	// 4. Disjoint-set forest.
	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, vid := range vertices {
		parent[vid] = vid
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank; reports whether u and v were in different sets.
	union := func(u, v string) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		switch {
		case rank[rootU] < rank[rootV]:
			parent[rootU] = rootV
		case rank[rootU] > rank[rootV]:
			parent[rootV] = rootU
		default:
			parent[rootV] = rootU
			rank[rootU]++
		}

		return true
	}

	var (
		mst         = make([]core.Edge, 0, len(vertices)-1)
		totalWeight float64
	)
	for _, c := range edges {
		if !union(c.e.From, c.e.To) {
			continue
		}
		mst = append(mst, *c.e)
		totalWeight += c.w
		if len(mst) == len(vertices)-1 {
			break
		}
	}

	// 5. Connectivity check.
	if len(mst) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
