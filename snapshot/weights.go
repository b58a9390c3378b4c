// File: weights.go
// Role: weight map access and the mean aggregation path.

package snapshot

import (
	"gonum.org/v1/gonum/stat"
)

// Weight returns the weight of an active edge.
func (s *Snapshot) Weight(edgeID string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.weights[edgeID]

	return w, ok
}

// WeightMap returns a copy of the weight of every active edge.
func (s *Snapshot) WeightMap() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m := make(map[string]float64, len(s.weights))
	for id, w := range s.weights {
		m[id] = w
	}

	return m
}

// AttrValues returns a copy of the values accumulated for an active edge
// since its last attribute turn-off.
func (s *Snapshot) AttrValues(edgeID string) []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.attrValues[edgeID]
	if !ok {
		return nil
	}

	return append([]float64{}, v...)
}

// RecomputeWeights sets the weight of every active edge to the mean of its
// accumulated values, DefaultWeight when the list is empty. SetInterval
// calls it automatically in AggregateMean mode.
func (s *Snapshot) RecomputeWeights() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recomputeLocked()
}

func (s *Snapshot) recomputeLocked() {
	s.edges.each(func(eid string) bool {
		s.weights[eid] = mean(s.attrValues[eid])
		return true
	})
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return DefaultWeight
	}

	return stat.Mean(values, nil)
}
