// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the tree from a root over the active edges of a snapshot using a min-heap.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvsnap/core"
)

// Prim computes the Minimum Spanning Tree (MST) of the active graph by
// growing outwards from root.
//
// Error Conditions:
//   - ErrInvalidGraph  : if g is nil.
//   - ErrEmptyRoot     : if root is empty.
//   - ErrRootNotActive : if root is not an active vertex.
//   - ErrDisconnected  : if some active vertex cannot be reached from root.
//
// Steps:
//  1. Validate input and root.
//  2. Mark root visited; push its incident edges.
//  3. Pop the lightest edge; if its far end is new, take it and push the
//     far end's incident edges.
//  4. Fewer than |V|-1 tree edges means the graph was disconnected.
//
// Ties are broken by edge ID.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(g Graph, root string) ([]core.Edge, float64, error) {
	// 1. Validate.
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !g.ContainsNode(root) {
		return nil, 0, fmt.Errorf("%w: %q", ErrRootNotActive, root)
	}

	n := len(g.Nodes())
	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight float64

	pq := &edgePQ{}
	heap.Init(pq)
	push := func(from string) {
		for _, e := range g.IncidentEdges(from) {
			to := e.To
			if to == from {
				to = e.From
			}
			if to == from || visited[to] || !g.ContainsNode(to) {
				continue
			}
			heap.Push(pq, &candidate{edge: e, to: to, weight: weightOf(g, e)})
		}
	}

	// 2. Seed with root.
	visited[root] = true
	push(root)

	// 3. Grow.
	for pq.Len() > 0 && len(mst) < n-1 {
		c := heap.Pop(pq).(*candidate)
		if visited[c.to] {
			continue
		}
		visited[c.to] = true
		mst = append(mst, *c.edge)
		totalWeight += c.weight
		push(c.to)
	}

	// 4. Connectivity check.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// candidate is an edge leading out of the tree towards to.
type candidate struct {
	edge   *core.Edge
	to     string
	weight float64
}

// edgePQ implements heap.Interface for a min-heap of candidates ordered by
// (weight, edge ID).
type edgePQ []*candidate

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].edge.ID < pq[j].edge.ID
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(*candidate)) }

func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
