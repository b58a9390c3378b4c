// Package snapshot maintains the subgraph of a dynamic network that is active
// over a query interval, and moves it incrementally from one interval to the
// next.
//
// What
//
//   - A Snapshot projects nodes, edges, in/out adjacency and per-edge weights
//     from the intervals a Source reports as overlapping the query interval.
//   - SetInterval diffs the new overlap result against the previous one by
//     interval ID and applies only the turn-offs and turn-ons, never a rebuild.
//   - Weights follow an optional edge attribute: the latest activated value
//     (AggregateLatest) or the mean of accumulated values (AggregateMean).
//     Edges without an active attribute weigh DefaultWeight.
//
// Ordering
//
//	Node and edge sequences, and every in/out list, keep activation order.
//	Within one SetInterval, categories run nodes → edges → attributes and
//	turn-offs precede turn-ons. Enumeration order is therefore a pure
//	function of the sequence of query intervals.
//
// Multi-interval entities
//
//	A node or edge is active while at least one of its intervals is on. The
//	controlling interval reported by NodeInterval/EdgeInterval is the most
//	recently activated interval that is still on.
//
// Direction
//
//	An edge is wired into out[From] and in[To] whether it is directed or
//	not. Neighbors walks both lists, so undirected edges are visible from
//	both endpoints; Successors/Predecessors read one list each.
//
// Concurrency
//
//	All methods are safe for concurrent use. SetInterval holds the write
//	lock for the whole update; queries take the read lock.
//
// Usage
//
//	idx, _ := index.New(g)
//	// ... add intervals ...
//	snap, err := snapshot.New(idx, snapshot.WithAttribute("weight"))
//	if err != nil {
//		// ErrNilSource
//	}
//	q, _ := interval.Query(2, 3)
//	if err := snap.SetInterval(q); err != nil {
//		// ErrInvalidInterval
//	}
//	for _, id := range snap.Nodes() {
//		fmt.Println(id, snap.Neighbors(id))
//	}
//
// Errors:
//
//	ErrNilSource       - New without a source.
//	ErrInvalidInterval - SetInterval with NaN or reversed bounds; state unchanged.
package snapshot
