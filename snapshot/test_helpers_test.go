// Package snapshot_test contains fixtures shared by the snapshot tests.

package snapshot_test

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsnap/core"
	"github.com/katalvlaran/lvsnap/index"
	"github.com/katalvlaran/lvsnap/interval"
	"github.com/katalvlaran/lvsnap/snapshot"
)

// Node, edge and attribute IDs shared by the snapshot tests.
const (
	N1 = "N1"
	N2 = "N2"
	N3 = "N3"

	E1 = "E1"
	E2 = "E2"

	AttrWeight = "weight"
)

// compile-time check: the index is a snapshot source.
var _ snapshot.Source = (*index.Index)(nil)

// network bundles a graph with its index for building fixtures.
type network struct {
	t  testing.TB
	g  *core.Graph
	ix *index.Index
}

func newNetwork(t testing.TB, nodes ...string) *network {
	t.Helper()
	g := core.NewGraph()
	for _, id := range nodes {
		require.NoError(t, g.AddVertex(id))
	}
	ix, err := index.New(g)
	require.NoError(t, err)

	return &network{t: t, g: g, ix: ix}
}

func (n *network) edge(id, from, to string, directed bool) {
	n.t.Helper()
	_, err := n.g.AddEdge(id, from, to, core.WithEdgeDirected(directed))
	require.NoError(n.t, err)
}

func (n *network) nodeIv(id string, start, end float64) interval.Interval {
	n.t.Helper()
	iv, err := n.ix.AddNodeInterval(id, start, end)
	require.NoError(n.t, err)

	return iv
}

func (n *network) edgeIv(id string, start, end float64) interval.Interval {
	n.t.Helper()
	iv, err := n.ix.AddEdgeInterval(id, start, end)
	require.NoError(n.t, err)

	return iv
}

func (n *network) attrIv(edge string, start, end float64, v interval.Value) interval.Interval {
	n.t.Helper()
	iv, err := n.ix.AddAttrInterval(edge, AttrWeight, start, end, v)
	require.NoError(n.t, err)

	return iv
}

func (n *network) snapshot(opts ...snapshot.Option) *snapshot.Snapshot {
	n.t.Helper()
	s, err := snapshot.New(n.ix, opts...)
	require.NoError(n.t, err)

	return s
}

// directedPair builds N1=[0,10), N2=[5,15), directed E1=[0,10) N1→N2.
func directedPair(t testing.TB) *network {
	t.Helper()
	n := newNetwork(t, N1, N2)
	n.edge(E1, N1, N2, true)
	n.nodeIv(N1, 0, 10)
	n.nodeIv(N2, 5, 15)
	n.edgeIv(E1, 0, 10)

	return n
}

func query(t testing.TB, start, end float64) interval.Interval {
	t.Helper()
	q, err := interval.Query(start, end)
	require.NoError(t, err)

	return q
}

func setInterval(t testing.TB, s *snapshot.Snapshot, start, end float64) {
	t.Helper()
	require.NoError(t, s.SetInterval(query(t, start, end)))
}

func edgeIDs(edges []*core.Edge) []string {
	if edges == nil {
		return nil
	}
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.ID)
	}

	return ids
}

func sorted(ids []string) []string {
	out := append([]string{}, ids...)
	sort.Strings(out)

	return out
}

// logHandlerSpy captures slog records.
type logHandlerSpy struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *logHandlerSpy) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)

	return nil
}

func (h *logHandlerSpy) Enabled(context.Context, slog.Level) bool { return true }
func (h *logHandlerSpy) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *logHandlerSpy) WithGroup(string) slog.Handler { return h }

// find returns the first record with the given level and message.
func (h *logHandlerSpy) find(level slog.Level, msg string) (slog.Record, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.records {
		if r.Level == level && r.Message == msg {
			return r, true
		}
	}

	return slog.Record{}, false
}

func recordAttr(r slog.Record, key string) (slog.Value, bool) {
	var v slog.Value
	found := false
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			v, found = a.Value, true
			return false
		}
		return true
	})

	return v, found
}

// stubSource returns canned search results and resolves by Owner.
type stubSource struct {
	nodes []interval.Interval
	edges []interval.Interval
	attrs []interval.Interval
	graph map[string]*core.Edge
}

func (s *stubSource) SearchNodes(interval.Interval) []interval.Interval {
	return append([]interval.Interval{}, s.nodes...)
}

func (s *stubSource) SearchEdges(interval.Interval) []interval.Interval {
	return append([]interval.Interval{}, s.edges...)
}

func (s *stubSource) SearchEdgeAttrs(interval.Interval, string) []interval.Interval {
	return append([]interval.Interval{}, s.attrs...)
}

func (s *stubSource) ResolveNode(iv interval.Interval) (string, bool) {
	return iv.Owner, iv.Owner != ""
}

func (s *stubSource) ResolveEdge(iv interval.Interval) (*core.Edge, bool) {
	e, ok := s.graph[iv.Owner]

	return e, ok
}
