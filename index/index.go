// File: index.go
// Role: B-tree backed interval storage and overlap search.
// Determinism:
//   - Search results are ordered by (Start, End, ID) ascending.
// Concurrency:
//   - mu guards every tree and the ID catalog; queries take the read lock.

package index

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/tidwall/btree"

	"github.com/katalvlaran/lvsnap/core"
	"github.com/katalvlaran/lvsnap/interval"
)

// Sentinel errors for index operations.
var (
	// ErrNilGraph indicates New was called without a graph.
	ErrNilGraph = errors.New("index: graph is nil")

	// ErrUnknownOwner indicates an interval for a vertex or edge the graph does not know.
	ErrUnknownOwner = errors.New("index: owner not in graph")

	// ErrEmptyAttr indicates an attribute interval without attribute name.
	ErrEmptyAttr = errors.New("index: attribute name is empty")
)

type tree = btree.BTreeG[interval.Interval]

func newTree() *tree { return btree.NewBTreeG[interval.Interval](interval.Less) }

// Index is an interval store over the entities of one core.Graph.
type Index struct {
	mu    sync.RWMutex
	graph *core.Graph
	nodes *tree
	edges *tree
	attrs map[string]*tree                // attribute name → tree
	byID  map[uuid.UUID]interval.Interval // every stored interval
}

// New returns an empty Index resolving owners against g.
func New(g *core.Graph) (*Index, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Index{
		graph: g,
		nodes: newTree(),
		edges: newTree(),
		attrs: make(map[string]*tree),
		byID:  make(map[uuid.UUID]interval.Interval),
	}, nil
}

// Graph returns the graph the index resolves against.
func (ix *Index) Graph() *core.Graph { return ix.graph }

// AddNodeInterval stores [start, end) for vertex node.
func (ix *Index) AddNodeInterval(node string, start, end float64) (interval.Interval, error) {
	if !ix.graph.HasVertex(node) {
		return interval.Interval{}, fmt.Errorf("%w: vertex %q", ErrUnknownOwner, node)
	}
	iv, err := interval.New(interval.KindNode, node, start, end)
	if err != nil {
		return interval.Interval{}, err
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.nodes.Set(iv)
	ix.byID[iv.ID] = iv

	return iv, nil
}

// AddEdgeInterval stores [start, end) for edge.
func (ix *Index) AddEdgeInterval(edge string, start, end float64) (interval.Interval, error) {
	if !ix.graph.HasEdge(edge) {
		return interval.Interval{}, fmt.Errorf("%w: edge %q", ErrUnknownOwner, edge)
	}
	iv, err := interval.New(interval.KindEdge, edge, start, end)
	if err != nil {
		return interval.Interval{}, err
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.edges.Set(iv)
	ix.byID[iv.ID] = iv

	return iv, nil
}

// AddAttrInterval stores [start, end) carrying value for attribute attr of edge.
func (ix *Index) AddAttrInterval(edge, attr string, start, end float64, value interval.Value) (interval.Interval, error) {
	if attr == "" {
		return interval.Interval{}, ErrEmptyAttr
	}
	if !ix.graph.HasEdge(edge) {
		return interval.Interval{}, fmt.Errorf("%w: edge %q", ErrUnknownOwner, edge)
	}
	iv, err := interval.New(interval.KindAttr, edge, start, end)
	if err != nil {
		return interval.Interval{}, err
	}
	iv.Attr = attr
	iv.Value = value

	ix.mu.Lock()
	defer ix.mu.Unlock()
	tr, ok := ix.attrs[attr]
	if !ok {
		tr = newTree()
		ix.attrs[attr] = tr
	}
	tr.Set(iv)
	ix.byID[iv.ID] = iv

	return iv, nil
}

// Remove deletes the interval with the given ID. It reports whether it existed.
func (ix *Index) Remove(id uuid.UUID) bool {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	iv, ok := ix.byID[id]
	if !ok {
		return false
	}
	delete(ix.byID, id)

	switch iv.Kind {
	case interval.KindNode:
		ix.nodes.Delete(iv)
	case interval.KindEdge:
		ix.edges.Delete(iv)
	case interval.KindAttr:
		if tr, ok := ix.attrs[iv.Attr]; ok {
			tr.Delete(iv)
			if tr.Len() == 0 {
				delete(ix.attrs, iv.Attr)
			}
		}
	}

	return true
}

// Get returns the stored interval with the given ID.
func (ix *Index) Get(id uuid.UUID) (interval.Interval, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	iv, ok := ix.byID[id]

	return iv, ok
}

// Len returns the number of stored intervals across all categories.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return len(ix.byID)
}

// Attributes returns the attribute names that have at least one interval, sorted.
func (ix *Index) Attributes() []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	names := make([]string, 0, len(ix.attrs))
	for name := range ix.attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// search collects every interval of tr overlapping q. Caller holds mu.
func search(tr *tree, q interval.Interval) []interval.Interval {
	var out []interval.Interval
	tr.Scan(func(iv interval.Interval) bool {
		// Ordered by Start: nothing after this point can overlap q.
		if iv.Start > q.End || (!q.IsPoint() && iv.Start >= q.End) {
			return false
		}
		if iv.Overlaps(q) {
			out = append(out, iv)
		}

		return true
	})

	return out
}
