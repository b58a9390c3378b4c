// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/GetEdge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal), skipping taken IDs.
// Concurrency:
//   - Mutations under muEdge write lock; endpoints checked under muVert read lock first.

package core

import (
	"fmt"
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix of generated edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge registers an edge from → to and returns its ID.
//
// Steps:
//  1. Validate endpoint IDs and require both vertices to exist.
//  2. Lock muEdge; reject a taken explicit ID with ErrEdgeExists.
//  3. Generate an ID when id == "".
//  4. Build Edge with the graph default directedness, apply opts, store.
//
// Unlike a mutable analysis graph, the catalog never auto-creates vertices:
// a network file that names an unknown endpoint is malformed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(id, from, to string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.HasVertex(from) {
		return "", fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if !g.HasVertex(to) {
		return "", fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if id == "" {
		id = g.nextEdgeID()
	} else if _, taken := g.edges[id]; taken {
		return "", fmt.Errorf("%w: %q", ErrEdgeExists, id)
	}

	e := &Edge{ID: id, From: from, To: to, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}
	g.edges[id] = e

	return id, nil
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only by callers.
// Complexity: O(1).
func (g *Graph) GetEdge(id string) (*Edge, error) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// HasEdge reports whether an edge with the given ID exists.
func (g *Graph) HasEdge(id string) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	_, ok := g.edges[id]

	return ok
}

// EdgeLabel returns the display label of an edge, falling back to its ID.
func (g *Graph) EdgeLabel(id string) string {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	if e, ok := g.edges[id]; ok && e.Label != "" {
		return e.Label
	}

	return id
}

// Edges returns all edges sorted by Edge.ID asc.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns the next free generated ID. Caller holds muEdge.
func (g *Graph) nextEdgeID() string {
	buf := make([]byte, 0, 8)
	for {
		g.edgeSeq++
		buf = append(buf[:0], edgeIDPrefix)
		buf = strconv.AppendUint(buf, g.edgeSeq, 10)
		if _, taken := g.edges[string(buf)]; !taken {
			return string(buf)
		}
	}
}
