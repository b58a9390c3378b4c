package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsnap/core"
	"github.com/katalvlaran/lvsnap/index"
	"github.com/katalvlaran/lvsnap/interval"
	"github.com/katalvlaran/lvsnap/snapshot"
)

// costAttr is the edge attribute that drives snapshot weights in these tests.
const costAttr = "cost"

// wEdge is an edge active over the whole fixture span with a constant cost.
type wEdge struct {
	From, To string
	Cost     float64
	Directed bool
}

// fixture wraps a graph and index so tests can add timed intervals before
// building the snapshot.
type fixture struct {
	tb testing.TB
	g  *core.Graph
	ix *index.Index
}

func newFixture(tb testing.TB, vertices ...string) *fixture {
	tb.Helper()
	g := core.NewGraph()
	ix, err := index.New(g)
	require.NoError(tb, err)
	f := &fixture{tb: tb, g: g, ix: ix}
	for _, v := range vertices {
		f.vertex(v, 0, 100)
	}

	return f
}

func (f *fixture) vertex(id string, start, end float64) {
	f.tb.Helper()
	if !f.g.HasVertex(id) {
		require.NoError(f.tb, f.g.AddVertex(id))
	}
	_, err := f.ix.AddNodeInterval(id, start, end)
	require.NoError(f.tb, err)
}

// edge adds an edge active over [0,100) and returns its ID.
func (f *fixture) edge(from, to string, directed bool) string {
	f.tb.Helper()
	id, err := f.g.AddEdge("", from, to, core.WithEdgeDirected(directed))
	require.NoError(f.tb, err)
	_, err = f.ix.AddEdgeInterval(id, 0, 100)
	require.NoError(f.tb, err)

	return id
}

func (f *fixture) cost(edgeID string, start, end, cost float64) {
	f.tb.Helper()
	_, err := f.ix.AddAttrInterval(edgeID, costAttr, start, end, interval.Float(cost))
	require.NoError(f.tb, err)
}

// at returns a cost-weighted snapshot positioned at instant t.
func (f *fixture) at(t float64) *snapshot.Snapshot {
	f.tb.Helper()
	s, err := snapshot.New(f.ix, snapshot.WithAttribute(costAttr))
	require.NoError(f.tb, err)
	require.NoError(f.tb, s.SetInterval(interval.At(t)))

	return s
}

// weighted builds a snapshot at t=1 where every vertex and edge is active.
func weighted(tb testing.TB, edges ...wEdge) *snapshot.Snapshot {
	tb.Helper()
	f := newFixture(tb)
	for _, e := range edges {
		for _, v := range []string{e.From, e.To} {
			if !f.g.HasVertex(v) {
				f.vertex(v, 0, 100)
			}
		}
		id := f.edge(e.From, e.To, e.Directed)
		f.cost(id, 0, 100, e.Cost)
	}

	return f.at(1)
}
