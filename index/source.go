// File: source.go
// Role: the read surface consumed by the snapshot engine.

package index

import (
	"github.com/katalvlaran/lvsnap/core"
	"github.com/katalvlaran/lvsnap/interval"
)

// SearchNodes returns every node interval overlapping q.
func (ix *Index) SearchNodes(q interval.Interval) []interval.Interval {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return search(ix.nodes, q)
}

// SearchEdges returns every edge interval overlapping q.
func (ix *Index) SearchEdges(q interval.Interval) []interval.Interval {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return search(ix.edges, q)
}

// SearchEdgeAttrs returns every interval of attribute attr overlapping q.
// An unknown attribute yields nil.
func (ix *Index) SearchEdgeAttrs(q interval.Interval, attr string) []interval.Interval {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	tr, ok := ix.attrs[attr]
	if !ok {
		return nil
	}

	return search(tr, q)
}

// ResolveNode maps a node interval to its vertex ID.
func (ix *Index) ResolveNode(iv interval.Interval) (string, bool) {
	if iv.Kind != interval.KindNode || !ix.graph.HasVertex(iv.Owner) {
		return "", false
	}

	return iv.Owner, true
}

// ResolveEdge maps an edge or attribute interval to its edge.
func (ix *Index) ResolveEdge(iv interval.Interval) (*core.Edge, bool) {
	if iv.Kind == interval.KindNode {
		return nil, false
	}
	e, err := ix.graph.GetEdge(iv.Owner)
	if err != nil {
		return nil, false
	}

	return e, true
}
