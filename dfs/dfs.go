// File: dfs.go
// Role: depth-first traversal and connected components over a Topology.
// Determinism:
//   - Forest roots are taken in ascending ID order; neighbors in the order
//     the topology reports them.
// Concurrency:
//   - Read-only over the topology; safe to run concurrently with other
//     readers of the same snapshot.

package dfs

import (
	"fmt"
	"sort"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	topo Topology   // active graph
	opts DFSOptions // traversal options
	res  *DFSResult // result collector
}

// DFS performs depth-first search over the active vertices of t. If opts
// include WithFullTraversal it covers every component; otherwise it starts
// only from startID.
// Returns DFSResult or error if aborted by context or hook.
func DFS(t Topology, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input
	if t == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify startID
	if !dopts.FullTraversal && !t.ContainsNode(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	// 4. Initialize result with capacity hint
	vertices := sortedNodes(t)
	walker := &dfsWalker{topo: t, opts: dopts, res: newResult(len(vertices))}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for _, v := range vertices {
			if walker.res.Visited[v] {
				continue
			}
			walker.res.Roots = append(walker.res.Roots, v)
			if err := walker.traverse(v, 0); err != nil {
				return walker.res, err
			}
		}
	} else {
		walker.res.Roots = append(walker.res.Roots, startID)
		if err := walker.traverse(startID, 0); err != nil {
			return walker.res, err
		}
	}

	// 6. Expose diagnostics
	walker.res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return walker.res, nil
}

// Components returns the connected components of the active graph with
// edge direction ignored. Each component is sorted; components are ordered
// by their smallest ID.
func Components(t Topology) ([][]string, error) {
	if t == nil {
		return nil, ErrGraphNil
	}

	vertices := sortedNodes(t)
	walker := &dfsWalker{topo: t, opts: DefaultOptions(), res: newResult(len(vertices))}
	var comps [][]string
	for _, v := range vertices {
		if walker.res.Visited[v] {
			continue
		}
		mark := len(walker.res.Order)
		if err := walker.traverse(v, 0); err != nil {
			return nil, err
		}
		comp := append([]string(nil), walker.res.Order[mark:]...)
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// traverse visits vertex id at given depth, recursing to neighbors.
func (w *dfsWalker) traverse(id string, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	// 5. Explore each neighbor
	for _, nid := range w.next(id) {
		if nid == id {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.opts.SkippedNeighbors++
			continue
		}
		if !w.res.Visited[nid] && w.topo.ContainsNode(nid) {
			w.res.Parent[nid] = id
			if err := w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	// 7. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}

func (w *dfsWalker) next(id string) []string {
	if w.opts.Directed {
		return w.topo.Successors(id)
	}

	return w.topo.Neighbors(id)
}

func newResult(n int) *DFSResult {
	return &DFSResult{
		Order:   make([]string, 0, n),
		Depth:   make(map[string]int, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}
}

func sortedNodes(t interface{ Nodes() []string }) []string {
	vs := t.Nodes()
	sort.Strings(vs)

	return vs
}
