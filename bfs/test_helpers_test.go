package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvsnap/core"
	"github.com/katalvlaran/lvsnap/index"
	"github.com/katalvlaran/lvsnap/interval"
	"github.com/katalvlaran/lvsnap/snapshot"
)

// span is how long fixture vertices and edges stay active.
const span = 100.0

// timedEdge is an edge active over [Start, End).
type timedEdge struct {
	From, To   string
	Start, End float64
}

// buildSnapshot returns a snapshot over a network whose vertices live for
// the whole span and whose edges follow their own intervals. Interval starts
// are staggered by insertion order so activation order matches it.
func buildSnapshot(tb testing.TB, directed bool, edges []timedEdge) *snapshot.Snapshot {
	tb.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	ix, err := index.New(g)
	if err != nil {
		tb.Fatal(err)
	}

	seq := 0
	stagger := func() float64 { seq++; return float64(seq) * 1e-6 }
	addVertex := func(id string) {
		if g.HasVertex(id) {
			return
		}
		if err := g.AddVertex(id); err != nil {
			tb.Fatal(err)
		}
		if _, err := ix.AddNodeInterval(id, stagger(), span); err != nil {
			tb.Fatal(err)
		}
	}
	for i, e := range edges {
		addVertex(e.From)
		addVertex(e.To)
		id, err := g.AddEdge(fmt.Sprintf("%s-%s#%d", e.From, e.To, i), e.From, e.To)
		if err != nil {
			tb.Fatal(err)
		}
		if _, err := ix.AddEdgeInterval(id, e.Start+stagger(), e.End); err != nil {
			tb.Fatal(err)
		}
	}

	s, err := snapshot.New(ix)
	if err != nil {
		tb.Fatal(err)
	}
	if err := s.SetInterval(interval.At(1)); err != nil {
		tb.Fatal(err)
	}

	return s
}

// always builds edges active for the whole span.
func always(pairs ...string) []timedEdge {
	out := make([]timedEdge, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, timedEdge{From: pairs[i], To: pairs[i+1], Start: 0, End: span})
	}

	return out
}

func moveTo(tb testing.TB, s *snapshot.Snapshot, start, end float64) {
	tb.Helper()
	q, err := interval.Query(start, end)
	if err != nil {
		tb.Fatal(err)
	}
	if err := s.SetInterval(q); err != nil {
		tb.Fatal(err)
	}
}
