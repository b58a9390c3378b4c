package dfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvsnap/core"
	"github.com/katalvlaran/lvsnap/index"
	"github.com/katalvlaran/lvsnap/interval"
	"github.com/katalvlaran/lvsnap/snapshot"
)

// horizon is how long fixture vertices stay active.
const horizon = 100.0

// link is an edge active over [Start, End). End 0 means the whole horizon.
type link struct {
	From, To   string
	Directed   bool
	Start, End float64
}

func dir(from, to string) link   { return link{From: from, To: to, Directed: true} }
func undir(from, to string) link { return link{From: from, To: to} }

// network builds a snapshot positioned at t=1. Vertices are active for the
// whole horizon; isolated lists vertices without edges. Interval starts are
// staggered by insertion order so activation order matches it.
func network(tb testing.TB, links []link, isolated ...string) *snapshot.Snapshot {
	tb.Helper()
	g := core.NewGraph()
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
		if _, err := ix.AddNodeInterval(id, stagger(), horizon); err != nil {
			tb.Fatal(err)
		}
	}
	for _, id := range isolated {
		addVertex(id)
	}
	for i, l := range links {
		addVertex(l.From)
		addVertex(l.To)
		id, err := g.AddEdge(fmt.Sprintf("%s%s#%d", l.From, l.To, i), l.From, l.To, core.WithEdgeDirected(l.Directed))
		if err != nil {
			tb.Fatal(err)
		}
		end := l.End
		if end == 0 {
			end = horizon
		}
		if _, err := ix.AddEdgeInterval(id, l.Start+stagger(), end); err != nil {
			tb.Fatal(err)
		}
	}

	s, err := snapshot.New(ix)
	if err != nil {
		tb.Fatal(err)
	}
	moveTo(tb, s, 1)

	return s
}

// moveTo positions s at the instant t.
func moveTo(tb testing.TB, s *snapshot.Snapshot, t float64) {
	tb.Helper()
	if err := s.SetInterval(interval.At(t)); err != nil {
		tb.Fatal(err)
	}
}

// position returns index of v in slice or -1 if not found.
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}
