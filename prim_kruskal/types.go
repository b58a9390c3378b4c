// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/lvsnap/core"
)

// ErrInvalidGraph indicates a nil graph or an unknown Method.
var ErrInvalidGraph = errors.New("prim_kruskal: invalid graph or method")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrRootNotActive indicates that Prim's root is not an active vertex.
var ErrRootNotActive = errors.New("prim_kruskal: root vertex not active")

// ErrDisconnected indicates that the active graph is not connected, so no
// spanning tree covers all active vertices. It also covers an empty graph.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Graph is the weighted view of a snapshot. *snapshot.Snapshot implements it.
//
// Edge direction is ignored: a spanning tree of a snapshot connects its
// active vertices regardless of which way the edges point.
type Graph interface {
	ContainsNode(id string) bool
	Nodes() []string
	Edges() []*core.Edge
	IncidentEdges(id string) []*core.Edge
	Weight(edgeID string) (float64, bool)
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; ignored by Kruskal.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute runs the algorithm selected by opts.
//
//	– MethodKruskal: Kruskal(g).
//	– MethodPrim:    Prim(g, Root).
//	– otherwise:     ErrInvalidGraph.
//
// Returns the tree edges, their total weight and an error.
func Compute(g Graph, opts ...Option) ([]core.Edge, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, o.Root)
	default:
		return nil, 0, ErrInvalidGraph
	}
}

// weightOf returns the snapshot weight of e, 1.0 when unknown.
func weightOf(g Graph, e *core.Edge) float64 {
	if w, ok := g.Weight(e.ID); ok {
		return w
	}

	return 1.0
}
