// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, options, sentinel errors, NewGraph.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEdgeExists indicates AddEdge was given an ID that is already registered.
	ErrEdgeExists = errors.New("core: edge ID already exists")
)

// Vertex represents a node of the network.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string

	// Label is a display name; empty means "use ID".
	Label string
}

// Edge represents a connection between two vertices.
//
// From and To are weak references: an Edge never keeps a Vertex alive, and a
// snapshot may hold an edge whose endpoints are not active.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the target vertex ID.
	To string

	// Directed indicates a one-way edge (true) or a bidirectional one (false).
	Directed bool

	// Label is a display name; empty means "use ID".
	Label string
}

// Touches reports whether id is one of the edge's endpoints.
func (e *Edge) Touches(id string) bool {
	return e != nil && (e.From == id || e.To == id)
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for new edges.
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// VertexOption configures a single vertex at AddVertex time.
type VertexOption func(v *Vertex)

// WithVertexLabel sets the display label of a vertex.
func WithVertexLabel(label string) VertexOption {
	return func(v *Vertex) { v.Label = label }
}

// EdgeOption configures a single edge at AddEdge time.
type EdgeOption func(e *Edge)

// WithEdgeDirected overrides the graph default directedness for one edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// WithEdgeLabel sets the display label of an edge.
func WithEdgeLabel(label string) EdgeOption {
	return func(e *Edge) { e.Label = label }
}

// Graph is the thread-safe static catalog of a dynamic network.
type Graph struct {
	muVert sync.RWMutex // guards vertices
	muEdge sync.RWMutex // guards edges and edgeSeq

	directed bool // default directedness for new edges

	edgeSeq  uint64             // generator for empty edge IDs
	vertices map[string]*Vertex // vertex ID → Vertex
	edges    map[string]*Edge   // edge ID → Edge
}

// NewGraph creates an empty Graph. By default new edges are undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only summary of a Graph.
type GraphStats struct {
	DirectedDefault     bool
	VertexCount         int
	EdgeCount           int
	DirectedEdgeCount   int
	UndirectedEdgeCount int
	SelfLoopCount       int
}
