// File: queries.go
// Role: read-only query surface over the current projection.
// Determinism:
//   - Sequences come back in insertion order; every slice is a fresh copy.
// Concurrency:
//   - All methods take the read lock.
// AI-HINT (file):
//   - Unknown IDs yield nil, zero or false; queries never fail.

package snapshot

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/lvsnap/core"
	"github.com/katalvlaran/lvsnap/interval"
)

// Nodes returns the active node IDs in activation order.
func (s *Snapshot) Nodes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.nodes.Items()
}

// Edges returns the active edges in activation order.
func (s *Snapshot) Edges() []*core.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.edgeList(s.edges)
}

func (s *Snapshot) NodeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.nodes.Len()
}

func (s *Snapshot) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.edges.Len()
}

func (s *Snapshot) ContainsNode(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.nodes.Has(id)
}

func (s *Snapshot) ContainsEdge(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.edges.Has(id)
}

// InEdges returns the edges wired into id's in list (id is their target).
func (s *Snapshot) InEdges(id string) []*core.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.edgeList(s.in[id])
}

// OutEdges returns the edges wired into id's out list (id is their source).
func (s *Snapshot) OutEdges(id string) []*core.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.edgeList(s.out[id])
}

// IncidentEdges returns InEdges followed by OutEdges. A self-loop appears
// twice, matching its contribution to Degree.
func (s *Snapshot) IncidentEdges(id string) []*core.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	in, out := s.edgeList(s.in[id]), s.edgeList(s.out[id])
	if in == nil && out == nil {
		return nil
	}

	return append(in, out...)
}

// Neighbors returns the unique union of in-edge sources and out-edge
// targets of id, in first-seen order (in list first).
func (s *Snapshot) Neighbors(id string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := newOrderedSet[string]()
	s.in[id].each(func(eid string) bool {
		seen.Add(s.edgeObj[eid].From)
		return true
	})
	s.out[id].each(func(eid string) bool {
		seen.Add(s.edgeObj[eid].To)
		return true
	})
	if seen.Len() == 0 {
		return nil
	}

	return seen.Items()
}

// IsNeighbor reports whether b appears in Neighbors(a).
func (s *Snapshot) IsNeighbor(a, b string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hasEndpoint(s.in[a], b, true) || s.hasEndpoint(s.out[a], b, false)
}

// Predecessors returns the unique sources of id's in-edges.
func (s *Snapshot) Predecessors(id string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.endpoints(s.in[id], true)
}

// Successors returns the unique targets of id's out-edges.
func (s *Snapshot) Successors(id string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.endpoints(s.out[id], false)
}

func (s *Snapshot) PredecessorCount(id string) int {
	return len(s.Predecessors(id))
}

func (s *Snapshot) SuccessorCount(id string) int {
	return len(s.Successors(id))
}

// IsPredecessor reports whether some in-edge of b has source a.
func (s *Snapshot) IsPredecessor(a, b string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hasEndpoint(s.in[b], a, true)
}

// IsSuccessor reports whether some out-edge of a has target b.
func (s *Snapshot) IsSuccessor(a, b string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hasEndpoint(s.out[a], b, false)
}

// Degree is InDegree + OutDegree.
func (s *Snapshot) Degree(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.in[id].Len() + s.out[id].Len()
}

func (s *Snapshot) InDegree(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.in[id].Len()
}

func (s *Snapshot) OutDegree(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.out[id].Len()
}

// FindEdge returns the first active edge, in edge-sequence order, joining a
// and b in either orientation.
func (s *Snapshot) FindEdge(a, b string) (*core.Edge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *core.Edge
	s.edges.each(func(eid string) bool {
		if e := s.edgeObj[eid]; joins(e, a, b) {
			found = e
			return false
		}
		return true
	})

	return found, found != nil
}

// FindEdges returns every active edge joining a and b in either orientation.
func (s *Snapshot) FindEdges(a, b string) []*core.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []*core.Edge
	s.edges.each(func(eid string) bool {
		if e := s.edgeObj[eid]; joins(e, a, b) {
			res = append(res, e)
		}
		return true
	})

	return res
}

// DirectedEdges returns the active edges whose Directed flag equals directed.
func (s *Snapshot) DirectedEdges(directed bool) []*core.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []*core.Edge
	s.edges.each(func(eid string) bool {
		if e := s.edgeObj[eid]; e.Directed == directed {
			res = append(res, e)
		}
		return true
	})

	return res
}

func (s *Snapshot) DirectedEdgeCount(directed bool) int {
	return len(s.DirectedEdges(directed))
}

// EdgeNodes returns [From, To] of e, or nil for a nil edge.
func (s *Snapshot) EdgeNodes(e *core.Edge) []string {
	if e == nil {
		return nil
	}

	return []string{e.From, e.To}
}

// Opposite returns the endpoint of e that is not node, or "" when node is
// not an endpoint. For a self-loop it returns node.
func (s *Snapshot) Opposite(node string, e *core.Edge) string {
	switch {
	case e == nil:
		return ""
	case e.From == node:
		return e.To
	case e.To == node:
		return e.From
	default:
		return ""
	}
}

// IsIncident reports whether node is an endpoint of e.
func (s *Snapshot) IsIncident(node string, e *core.Edge) bool {
	return e != nil && e.Touches(node)
}

// Interval returns the current query interval; ok is false before the
// first successful SetInterval and after Reset.
func (s *Snapshot) Interval() (interval.Interval, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.query, s.hasQuery
}

// NodeInterval returns the controlling interval of an active node.
func (s *Snapshot) NodeInterval(id string) (interval.Interval, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return last(s.nodeIvs[id])
}

// EdgeInterval returns the controlling interval of an active edge.
func (s *Snapshot) EdgeInterval(id string) (interval.Interval, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return last(s.edgeIvs[id])
}

// AttrInterval returns the most recently activated attribute interval
// still on for the edge, whether or not the edge is active.
func (s *Snapshot) AttrInterval(edgeID string) (interval.Interval, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return last(s.attrIvs[edgeID])
}

// IsOn reports whether the interval with this ID overlaps the current
// query interval, i.e. belongs to the cached baseline of its category.
func (s *Snapshot) IsOn(id uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for c := range s.baselines {
		if s.baselines[c].has(id) {
			return true
		}
	}

	return false
}

// Stats returns a summary of the projection.
func (s *Snapshot) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		Interval:    s.query,
		HasInterval: s.hasQuery,
		NodeCount:   s.nodes.Len(),
		EdgeCount:   s.edges.Len(),
	}
	s.edges.each(func(eid string) bool {
		if s.edgeObj[eid].Directed {
			st.DirectedEdgeCount++
		} else {
			st.UndirectedEdgeCount++
		}
		return true
	})
	for c := range s.baselines {
		st.TrackedIntervals += len(s.baselines[c].order)
	}

	return st
}

func (s *Snapshot) edgeList(set *orderedSet[string]) []*core.Edge {
	if set.Len() == 0 {
		return nil
	}
	res := make([]*core.Edge, 0, set.Len())
	set.each(func(eid string) bool {
		res = append(res, s.edgeObj[eid])
		return true
	})

	return res
}

// endpoints collects the unique sources (fromSide) or targets of the edges in set.
func (s *Snapshot) endpoints(set *orderedSet[string], fromSide bool) []string {
	seen := newOrderedSet[string]()
	set.each(func(eid string) bool {
		e := s.edgeObj[eid]
		if fromSide {
			seen.Add(e.From)
		} else {
			seen.Add(e.To)
		}
		return true
	})
	if seen.Len() == 0 {
		return nil
	}

	return seen.Items()
}

func (s *Snapshot) hasEndpoint(set *orderedSet[string], node string, fromSide bool) bool {
	found := false
	set.each(func(eid string) bool {
		e := s.edgeObj[eid]
		if (fromSide && e.From == node) || (!fromSide && e.To == node) {
			found = true
			return false
		}
		return true
	})

	return found
}

func joins(e *core.Edge, a, b string) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

func last(ivs []interval.Interval) (interval.Interval, bool) {
	if len(ivs) == 0 {
		return interval.Interval{}, false
	}

	return ivs[len(ivs)-1], true
}
