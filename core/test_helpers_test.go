// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsnap/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexX = "X"
)

// Common edge IDs used across core tests.
const (
	EdgeAB = "AB"
	EdgeBC = "BC"
	EdgeCA = "CA"
)

// NewTriangle RETURNS a mixed triangle A→B (directed), B–C, C–A (undirected).
func NewTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{VertexA, VertexB, VertexC} {
		require.NoError(t, g.AddVertex(id), "AddVertex(%s)", id)
	}
	_, err := g.AddEdge(EdgeAB, VertexA, VertexB, core.WithEdgeDirected(true))
	require.NoError(t, err)
	_, err = g.AddEdge(EdgeBC, VertexB, VertexC)
	require.NoError(t, err)
	_, err = g.AddEdge(EdgeCA, VertexC, VertexA)
	require.NoError(t, err)

	return g
}
