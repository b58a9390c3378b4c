// File: topological.go
// Role: topological order of the active directed edges.
//
// TopologicalSort computes a linear ordering of active vertices such that
// for every active directed edge u→v, u appears before v. Undirected edges
// are ignored. If the directed edges contain a cycle, ErrCycleDetected is
// returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)

package dfs

import (
	"context"
	"fmt"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	topo  DirectedTopology // the active graph
	opts  topoOptions      // traversal options (cancellation)
	state map[string]int   // visitation state: White, Gray, Black
	order []string         // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all active vertices
// of t. Roots are tried in ascending ID order.
//
// Errors:
//   - ErrGraphNil if t is nil.
//   - ErrCycleDetected (wrapped with the vertex that closed the cycle).
//   - the context error if canceled via WithCancelContext.
func TopologicalSort(t DirectedTopology, options ...TopoOption) ([]string, error) {
	// 1. Validate input
	if t == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state
	verts := sortedNodes(t)
	sorter := &topoSorter{
		topo:  t,
		opts:  opts,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	// 4. Drive DFS from every unvisited vertex
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id string) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Back-edge: id is still on the stack
	if t.state[id] == Gray {
		return fmt.Errorf("%w: at %q", ErrCycleDetected, id)
	}
	if t.state[id] == Black {
		return nil
	}
	t.state[id] = Gray

	// 3. Explore each outgoing directed edge
	for _, e := range t.topo.OutEdges(id) {
		if !e.Directed || e.From != id || !t.topo.ContainsNode(e.To) {
			continue
		}
		if err := t.visit(e.To); err != nil {
			return err
		}
	}

	// 4. Mark as fully explored and record
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
