// Package core provides the static topology of a dynamic network: the full
// catalog of vertices and edges that ever exist, independent of time.
//
// A Graph answers "which vertex or edge does this ID name", "where does this
// edge point", and "how should it be labeled". Time enters only through
// package index, which attaches intervals to these IDs, and package snapshot,
// which materializes the subgraph active inside a query window.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected for the default,
//     WithEdgeDirected per edge). Mixed graphs are always allowed: a dynamic
//     network routinely carries both kinds.
//   - Caller-chosen edge IDs (as read from network files) or generated ones
//     ("e1", "e2", ...) when the ID is empty.
//   - Self-loops and parallel edges, each with its own ID.
//   - Human-readable labels for diagnostics (WithVertexLabel, WithEdgeLabel).
//   - Separate sync.RWMutex for vertices (muVert) and edges (muEdge).
//
// Core Methods:
//
//	AddVertex(id string, opts ...VertexOption) error           // O(1)
//	HasVertex(id string) bool                                   // O(1)
//	Vertex(id string) (*Vertex, error)                          // O(1)
//	AddEdge(id, from, to string, opts ...EdgeOption) (string, error) // O(1)
//	GetEdge(id string) (*Edge, error)                           // O(1)
//	Vertices() []string                                         // O(V log V)
//	Edges() []*Edge                                             // O(E log E)
//	Stats() *GraphStats                                         // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID  - zero-length vertex ID
//	ErrVertexNotFound - missing vertex
//	ErrEdgeNotFound   - missing edge
//	ErrEdgeExists     - edge ID already registered
package core
