package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/lvsnap/core"
	"github.com/katalvlaran/lvsnap/index"
	"github.com/katalvlaran/lvsnap/interval"
	"github.com/katalvlaran/lvsnap/snapshot"
)

// costAttr is the edge attribute fixtures use as weight.
const costAttr = "cost"

// horizon is how long fixture vertices and edges stay active.
const horizon = 100.0

// span is a weight held over [Start, End).
type span struct {
	W          float64
	Start, End float64
}

// wEdge is an edge active over the whole horizon whose weight follows spans.
type wEdge struct {
	ID, From, To string
	Directed     bool
	Spans        []span
}

// edge is a wEdge with a single constant weight.
func edge(id, from, to string, w float64) wEdge {
	return wEdge{ID: id, From: from, To: to, Spans: []span{{W: w, Start: 0, End: horizon}}}
}

// weighted builds a snapshot at t=1 over edges plus isolated vertices.
func weighted(tb testing.TB, edges []wEdge, isolated ...string) *snapshot.Snapshot {
	tb.Helper()
	g := core.NewGraph()
	ix, err := index.New(g)
	if err != nil {
		tb.Fatal(err)
	}

	addVertex := func(id string) {
		if g.HasVertex(id) {
			return
		}
		if err := g.AddVertex(id); err != nil {
			tb.Fatal(err)
		}
		if _, err := ix.AddNodeInterval(id, 0, horizon); err != nil {
			tb.Fatal(err)
		}
	}
	for _, id := range isolated {
		addVertex(id)
	}
	for _, e := range edges {
		addVertex(e.From)
		addVertex(e.To)
		if _, err := g.AddEdge(e.ID, e.From, e.To, core.WithEdgeDirected(e.Directed)); err != nil {
			tb.Fatal(err)
		}
		if _, err := ix.AddEdgeInterval(e.ID, 0, horizon); err != nil {
			tb.Fatal(err)
		}
		for _, sp := range e.Spans {
			if _, err := ix.AddAttrInterval(e.ID, costAttr, sp.Start, sp.End, interval.Float(sp.W)); err != nil {
				tb.Fatal(err)
			}
		}
	}

	s, err := snapshot.New(ix, snapshot.WithAttribute(costAttr))
	if err != nil {
		tb.Fatal(err)
	}
	moveTo(tb, s, 1)

	return s
}

func moveTo(tb testing.TB, s *snapshot.Snapshot, t float64) {
	tb.Helper()
	if err := s.SetInterval(interval.At(t)); err != nil {
		tb.Fatal(err)
	}
}

// triangle is A—B (1), B—C (2), A—C (3). Its MST is {AB, BC} with weight 3.
func triangle() []wEdge {
	return []wEdge{edge("AB", "A", "B", 1), edge("BC", "B", "C", 2), edge("AC", "A", "C", 3)}
}

// ids returns the edge IDs of an MST.
func ids(mst []core.Edge) []string {
	out := make([]string, len(mst))
	for i, e := range mst {
		out[i] = e.ID
	}

	return out
}
