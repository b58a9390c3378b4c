// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// active subgraph of a temporal snapshot.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all active edges to detect negative weights and fail fast.
//   - Directed edges are crossed From→To only; undirected edges both ways.
//   - Only active vertices are reachable; an active edge into an inactive vertex is skipped.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable "wall".
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvsnap/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other active vertices of g.
//
// Returns:
//
//   - dist: map from active vertex ID to minimum distance (+Inf if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For unreachable v, prev[v] == "".
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. Source string must be non-empty (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No active edge can have a negative or NaN weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.ContainsNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	vertices := g.Nodes()
	for _, u := range vertices {
		for _, e := range g.OutEdges(u) {
			if w := weightOf(g, e); w < 0 || math.IsNaN(w) {
				return nil, nil, fmt.Errorf("%w: edge %s %s→%s weight=%g", ErrNegativeWeight, e.ID, e.From, e.To, w)
			}
		}
	}

	V := len(vertices)
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	r.init(vertices)
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// weightOf returns the snapshot weight of e, 1.0 if the graph has none.
func weightOf(g Graph, e *core.Edge) float64 {
	if w, ok := g.Weight(e.ID); ok {
		return w
	}

	return 1.0
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// init sets dist[v] = +Inf for every active vertex and pushes Source=0.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited vertex and relaxes its
// edges, until the heap is empty or the next distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true

		for _, e := range r.g.OutEdges(item.id) {
			r.relax(item.id, e.To, e)
		}
		for _, e := range r.g.InEdges(item.id) {
			if !e.Directed {
				r.relax(item.id, e.From, e)
			}
		}
	}
}

// relax tries to improve dist[v] through edge e leaving u.
func (r *runner) relax(u, v string, e *core.Edge) {
	cur, active := r.dist[v]
	if !active {
		return
	}
	w := weightOf(r.g, e)
	if w >= r.options.InfEdgeThreshold {
		return
	}
	newDist := r.dist[u] + w
	if newDist > r.options.MaxDistance || newDist >= cur {
		return
	}
	r.dist[v] = newDist
	r.prev[v] = u
	heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id for stable ties.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
