// Package lvsnap is an in-memory engine for looking at dynamic graphs one
// time window at a time.
//
// A dynamic network is a set of nodes, edges and edge attributes, each alive
// over one or more time intervals. lvsnap keeps those intervals in an ordered
// index and maintains an incremental snapshot of the graph visible in a query
// window: moving the window turns on only the intervals that entered it and
// turns off only those that left, updating adjacency and weights in place.
//
// Packages:
//
//	interval/     - half-open time intervals, point intervals and typed attribute values
//	core/         - the static catalog of vertices and edges (IDs, endpoints, direction, labels)
//	index/        - B-tree backed interval index answering overlap queries per category
//	snapshot/     - the incremental snapshot engine and its query surface
//	timeline/     - YAML network files → graph + index
//	bfs/, dfs/    - traversal, components and topological order over a snapshot
//	dijkstra/     - weighted shortest paths over snapshot weights
//	prim_kruskal/ - minimum spanning tree of the active graph
//	force/        - bounded parameter slots for layout forces
//	cmd/lvsnap    - command-line inspection and replay
//
// Quick start:
//
//	net, _ := timeline.LoadFile("network.yaml")
//	s, _ := snapshot.New(net.Index, snapshot.WithAttribute("weight"))
//	q, _ := interval.Query(6, 7)
//	_ = s.SetInterval(q)
//	fmt.Println(s.Nodes(), s.EdgeCount())
package lvsnap
