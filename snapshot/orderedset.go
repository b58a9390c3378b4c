// File: orderedset.go
// Role: insertion-ordered set used for node/edge sequences and adjacency lists.
// Determinism:
//   - Items() enumerates in insertion order; Remove preserves the order of the rest.

package snapshot

// orderedSet is a vector plus a position index. Enumeration order is
// observable through the query API, so it is kept explicit rather than
// derived from map iteration.
type orderedSet[K comparable] struct {
	items []K
	pos   map[K]int
}

func newOrderedSet[K comparable]() *orderedSet[K] {
	return &orderedSet[K]{pos: make(map[K]int)}
}

// Add appends k unless present. It reports whether k was added.
func (s *orderedSet[K]) Add(k K) bool {
	if _, ok := s.pos[k]; ok {
		return false
	}
	s.pos[k] = len(s.items)
	s.items = append(s.items, k)

	return true
}

// Remove deletes k, shifting later items down. It reports whether k was present.
// Complexity: O(n - position(k)).
func (s *orderedSet[K]) Remove(k K) bool {
	i, ok := s.pos[k]
	if !ok {
		return false
	}
	delete(s.pos, k)
	copy(s.items[i:], s.items[i+1:])
	var zero K
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	for j := i; j < len(s.items); j++ {
		s.pos[s.items[j]] = j
	}

	return true
}

func (s *orderedSet[K]) Has(k K) bool {
	if s == nil {
		return false
	}
	_, ok := s.pos[k]

	return ok
}

func (s *orderedSet[K]) Len() int {
	if s == nil {
		return 0
	}

	return len(s.items)
}

// Items returns a copy of the items in insertion order.
func (s *orderedSet[K]) Items() []K {
	if s == nil {
		return nil
	}
	out := make([]K, len(s.items))
	copy(out, s.items)

	return out
}

// each calls fn for every item in order until fn returns false.
// fn must not mutate the set.
func (s *orderedSet[K]) each(fn func(K) bool) {
	if s == nil {
		return
	}
	for _, k := range s.items {
		if !fn(k) {
			return
		}
	}
}
