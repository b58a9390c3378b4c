// File: transitions.go
// Role: node, edge and attribute state transitions applied by SetInterval.
// Concurrency:
//   - Every function here expects s.mu held for writing.
// AI-HINT (file):
//   - An entity activates on its first on interval and deactivates when its
//     last on interval turns off; intermediate intervals only shift the
//     controlling interval.

package snapshot

import (
	"github.com/katalvlaran/lvsnap/core"
	"github.com/katalvlaran/lvsnap/interval"
)

func (s *Snapshot) nodeOn(id string, iv interval.Interval) {
	prev := s.nodeIvs[id]
	s.nodeIvs[id] = append(prev, iv)
	if len(prev) == 0 {
		s.activateNode(id)
	}
}

func (s *Snapshot) nodeOff(id string, iv interval.Interval) {
	rest := removeInterval(s.nodeIvs[id], iv)
	if len(rest) > 0 {
		s.nodeIvs[id] = rest
		return
	}
	delete(s.nodeIvs, id)
	s.deactivateNode(id)
}

// activateNode appends id to the node sequence and wires every active edge
// touching it: out if id is the source, in if id is the target.
func (s *Snapshot) activateNode(id string) {
	s.nodes.Add(id)
	in, out := newOrderedSet[string](), newOrderedSet[string]()
	s.in[id], s.out[id] = in, out
	s.touching[id].each(func(eid string) bool {
		e := s.edgeObj[eid]
		if e.From == id {
			out.Add(eid)
		}
		if e.To == id {
			in.Add(eid)
		}
		return true
	})
}

// deactivateNode drops id's adjacency lists. Its edges stay active.
func (s *Snapshot) deactivateNode(id string) {
	s.nodes.Remove(id)
	delete(s.in, id)
	delete(s.out, id)
}

func (s *Snapshot) edgeOn(e *core.Edge, iv interval.Interval) {
	prev := s.edgeIvs[e.ID]
	s.edgeIvs[e.ID] = append(prev, iv)
	if len(prev) == 0 {
		s.activateEdge(e)
	}
}

func (s *Snapshot) edgeOff(id string, iv interval.Interval) {
	rest := removeInterval(s.edgeIvs[id], iv)
	if len(rest) > 0 {
		s.edgeIvs[id] = rest
		return
	}
	delete(s.edgeIvs, id)
	s.deactivateEdge(id)
}

func (s *Snapshot) activateEdge(e *core.Edge) {
	s.edges.Add(e.ID)
	s.edgeObj[e.ID] = e
	s.touchingSet(e.From).Add(e.ID)
	s.touchingSet(e.To).Add(e.ID)
	if out, ok := s.out[e.From]; ok {
		out.Add(e.ID)
	}
	if in, ok := s.in[e.To]; ok {
		in.Add(e.ID)
	}

	// Attribute intervals that turned on while the edge was inactive.
	tracked := s.attrIvs[e.ID]
	values := make([]float64, 0, len(tracked))
	weight := DefaultWeight
	for _, a := range tracked {
		values = append(values, a.Value.Float64())
		weight = a.Value.Float64()
	}
	s.weights[e.ID] = weight
	s.attrValues[e.ID] = values
}

func (s *Snapshot) deactivateEdge(id string) {
	e, ok := s.edgeObj[id]
	if !ok {
		return
	}
	if out, ok := s.out[e.From]; ok {
		out.Remove(id)
	}
	if in, ok := s.in[e.To]; ok {
		in.Remove(id)
	}
	s.untouch(e.From, id)
	s.untouch(e.To, id)
	s.edges.Remove(id)
	delete(s.edgeObj, id)
	delete(s.weights, id)
	delete(s.attrValues, id)
}

// attrOn sets the edge weight to the interval's value when the edge is
// active and appends the value to the accumulated list. The interval is
// tracked either way so a later edge activation can pick it up.
func (s *Snapshot) attrOn(edgeID string, iv interval.Interval) {
	s.attrIvs[edgeID] = append(s.attrIvs[edgeID], iv)
	if !s.edges.Has(edgeID) {
		return
	}
	v := iv.Value.Float64()
	s.weights[edgeID] = v
	s.attrValues[edgeID] = append(s.attrValues[edgeID], v)
}

// attrOff resets the accumulated list; the weight is left as is.
func (s *Snapshot) attrOff(edgeID string, iv interval.Interval) {
	rest := removeInterval(s.attrIvs[edgeID], iv)
	if len(rest) == 0 {
		delete(s.attrIvs, edgeID)
	} else {
		s.attrIvs[edgeID] = rest
	}
	if s.edges.Has(edgeID) {
		s.attrValues[edgeID] = []float64{}
	}
}

func (s *Snapshot) touchingSet(node string) *orderedSet[string] {
	t, ok := s.touching[node]
	if !ok {
		t = newOrderedSet[string]()
		s.touching[node] = t
	}

	return t
}

func (s *Snapshot) untouch(node, edgeID string) {
	t, ok := s.touching[node]
	if !ok {
		return
	}
	t.Remove(edgeID)
	if t.Len() == 0 {
		delete(s.touching, node)
	}
}
