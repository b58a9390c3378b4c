package snapshot_test

import (
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsnap/core"
	"github.com/katalvlaran/lvsnap/interval"
	"github.com/katalvlaran/lvsnap/snapshot"
)

func TestNew_NilSource(t *testing.T) {
	s, err := snapshot.New(nil)
	require.ErrorIs(t, err, snapshot.ErrNilSource)
	require.Nil(t, s)
}

func TestDefaultOptions(t *testing.T) {
	o := snapshot.DefaultOptions()
	assert.Equal(t, "", o.Attribute)
	assert.Equal(t, snapshot.AggregateLatest, o.Aggregation)
	assert.NotNil(t, o.Logger)
	assert.Equal(t, "latest", snapshot.AggregateLatest.String())
	assert.Equal(t, "mean", snapshot.AggregateMean.String())
}

// TestSetInterval_SourceNodeLeaves walks a directed edge through activation and deactivation
// of its source node.
func TestSetInterval_SourceNodeLeaves(t *testing.T) {
	n := directedPair(t)
	s := n.snapshot()

	setInterval(t, s, 6, 7)
	require.Equal(t, []string{N1, N2}, s.Nodes())
	require.Equal(t, []string{E1}, edgeIDs(s.Edges()))
	assert.Equal(t, 1, s.OutDegree(N1))
	assert.Equal(t, 1, s.InDegree(N2))

	setInterval(t, s, 12, 13)
	require.Equal(t, []string{N2}, s.Nodes())
	require.Empty(t, s.Edges())
	assert.Equal(t, 0, s.OutDegree(N2))
	assert.Equal(t, 0, s.InDegree(N2))
	assert.False(t, s.ContainsNode(N1))
}

// TestSetInterval_TargetActivatesLate checks that a node activating after its edge is
// wired into the edge's adjacency.
func TestSetInterval_TargetActivatesLate(t *testing.T) {
	n := directedPair(t)
	s := n.snapshot()

	setInterval(t, s, 2, 3)
	require.Equal(t, []string{N1}, s.Nodes())
	require.Equal(t, []string{E1}, edgeIDs(s.Edges()))
	assert.Equal(t, 1, s.OutDegree(N1))
	assert.Equal(t, 0, s.InDegree(N2))

	setInterval(t, s, 6, 7)
	assert.Equal(t, []string{E1}, edgeIDs(s.InEdges(N2)))
	assert.True(t, s.IsSuccessor(N1, N2))
	assert.True(t, s.IsPredecessor(N1, N2))
}

func TestWeight_FollowsAttributeWindow(t *testing.T) {
	n := newNetwork(t, N1, N2)
	n.edge(E1, N1, N2, true)
	n.nodeIv(N1, 0, 10)
	n.nodeIv(N2, 0, 10)
	n.edgeIv(E1, 0, 10)
	n.attrIv(E1, 0, 5, interval.Float(2.0))
	a2 := n.attrIv(E1, 5, 10, interval.Float(4.0))
	s := n.snapshot(snapshot.WithAttribute(AttrWeight))

	setInterval(t, s, 1, 2)
	w, ok := s.Weight(E1)
	require.True(t, ok)
	assert.Equal(t, 2.0, w)

	setInterval(t, s, 6, 7)
	w, ok = s.Weight(E1)
	require.True(t, ok)
	assert.Equal(t, 4.0, w)

	ctrl, ok := s.AttrInterval(E1)
	require.True(t, ok)
	assert.Equal(t, a2.ID, ctrl.ID)
}

func TestIsNeighbor_EdgeDeactivated(t *testing.T) {
	n := newNetwork(t, N1, N2)
	n.edge(E1, N1, N2, false)
	n.nodeIv(N1, 0, 20)
	n.nodeIv(N2, 0, 20)
	n.edgeIv(E1, 0, 10)
	s := n.snapshot()

	setInterval(t, s, 1, 2)
	assert.True(t, s.IsNeighbor(N1, N2))
	assert.True(t, s.IsNeighbor(N2, N1))

	setInterval(t, s, 12, 13)
	require.True(t, s.ContainsNode(N1))
	require.True(t, s.ContainsNode(N2))
	assert.False(t, s.IsNeighbor(N1, N2))
	assert.False(t, s.IsNeighbor(N2, N1))
}

func TestQuerySurface(t *testing.T) {
	n := newNetwork(t, N1, N2, N3)
	n.edge(E1, N1, N2, true)
	n.edge(E2, N3, N1, true)
	n.edge("E3", N1, N3, false)
	for _, id := range []string{N1, N2, N3} {
		n.nodeIv(id, 0, 10)
	}
	n.edgeIv(E1, 0, 10)
	e2 := n.edgeIv(E2, 1, 10)
	n.edgeIv("E3", 2, 10)
	s := n.snapshot()

	setInterval(t, s, 5, 6)

	require.Equal(t, []string{E1, E2, "E3"}, edgeIDs(s.Edges()))
	assert.Equal(t, []string{E2}, edgeIDs(s.InEdges(N1)))
	assert.Equal(t, []string{E1, "E3"}, edgeIDs(s.OutEdges(N1)))
	assert.Equal(t, []string{E2, E1, "E3"}, edgeIDs(s.IncidentEdges(N1)))
	assert.Equal(t, []string{N3, N2}, s.Neighbors(N1))
	assert.Equal(t, []string{N3}, s.Predecessors(N1))
	assert.Equal(t, []string{N2, N3}, s.Successors(N1))
	assert.Equal(t, 1, s.PredecessorCount(N1))
	assert.Equal(t, 2, s.SuccessorCount(N1))
	assert.Equal(t, 3, s.Degree(N1))

	assert.True(t, s.IsPredecessor(N3, N1))
	assert.True(t, s.IsSuccessor(N1, N2))
	assert.False(t, s.IsSuccessor(N2, N1))
	assert.True(t, s.IsNeighbor(N1, N3))
	assert.False(t, s.IsNeighbor(N2, N3))

	e, ok := s.FindEdge(N1, N3)
	require.True(t, ok)
	assert.Equal(t, E2, e.ID)
	assert.Equal(t, []string{E2, "E3"}, edgeIDs(s.FindEdges(N3, N1)))
	_, ok = s.FindEdge(N2, N3)
	assert.False(t, ok)

	assert.Equal(t, 2, s.DirectedEdgeCount(true))
	assert.Equal(t, []string{"E3"}, edgeIDs(s.DirectedEdges(false)))

	assert.Equal(t, []string{N1, N2}, s.EdgeNodes(edgeE1(t, n)))
	assert.Equal(t, N2, s.Opposite(N1, edgeE1(t, n)))
	assert.Equal(t, "", s.Opposite(N3, edgeE1(t, n)))
	assert.True(t, s.IsIncident(N2, edgeE1(t, n)))
	assert.False(t, s.IsIncident(N3, edgeE1(t, n)))
	assert.Nil(t, s.EdgeNodes(nil))

	ctrl, ok := s.EdgeInterval(E2)
	require.True(t, ok)
	assert.Equal(t, e2.ID, ctrl.ID)
	assert.True(t, s.IsOn(e2.ID))

	st := s.Stats()
	assert.True(t, st.HasInterval)
	assert.Equal(t, 3, st.NodeCount)
	assert.Equal(t, 3, st.EdgeCount)
	assert.Equal(t, 2, st.DirectedEdgeCount)
	assert.Equal(t, 1, st.UndirectedEdgeCount)
	assert.Equal(t, 6, st.TrackedIntervals)

	setInterval(t, s, 20, 21)
	assert.False(t, s.IsOn(e2.ID))
	assert.Zero(t, s.Stats().TrackedIntervals)
}

// edgeE1 returns the static E1 edge from the graph.
func edgeE1(t *testing.T, n *network) *core.Edge {
	t.Helper()
	e, err := n.g.GetEdge(E1)
	require.NoError(t, err)

	return e
}

func TestUnknownIDs(t *testing.T) {
	s := directedPair(t).snapshot()
	setInterval(t, s, 6, 7)

	assert.Nil(t, s.Neighbors("ghost"))
	assert.Nil(t, s.InEdges("ghost"))
	assert.Nil(t, s.IncidentEdges("ghost"))
	assert.Zero(t, s.Degree("ghost"))
	assert.False(t, s.IsNeighbor("ghost", N1))
	assert.False(t, s.IsPredecessor("ghost", N1))
	_, ok := s.Weight("ghost")
	assert.False(t, ok)
	_, ok = s.NodeInterval("ghost")
	assert.False(t, ok)
}

func TestMultiIntervalNode(t *testing.T) {
	n := newNetwork(t, N1, N2)
	n.edge(E1, N1, N2, true)
	first := n.nodeIv(N1, 0, 5)
	second := n.nodeIv(N1, 3, 10)
	n.nodeIv(N2, 0, 10)
	n.edgeIv(E1, 0, 10)
	s := n.snapshot()

	setInterval(t, s, 1, 2)
	ctrl, ok := s.NodeInterval(N1)
	require.True(t, ok)
	assert.Equal(t, first.ID, ctrl.ID)

	setInterval(t, s, 4, 5)
	ctrl, _ = s.NodeInterval(N1)
	assert.Equal(t, second.ID, ctrl.ID)

	setInterval(t, s, 6, 7)
	require.True(t, s.ContainsNode(N1))
	ctrl, _ = s.NodeInterval(N1)
	assert.Equal(t, second.ID, ctrl.ID)
	assert.Equal(t, 1, s.OutDegree(N1))
	assert.Equal(t, []string{N1, N2}, sorted(s.Nodes()))

	setInterval(t, s, 11, 12)
	assert.False(t, s.ContainsNode(N1))
}

func TestNodeDeactivationKeepsEdges(t *testing.T) {
	n := newNetwork(t, N1, N2)
	n.edge(E1, N1, N2, true)
	n.nodeIv(N1, 0, 5)
	n.nodeIv(N2, 0, 10)
	n.edgeIv(E1, 0, 10)
	s := n.snapshot()

	setInterval(t, s, 1, 2)
	setInterval(t, s, 6, 7)

	assert.False(t, s.ContainsNode(N1))
	assert.True(t, s.ContainsEdge(E1))
	assert.Nil(t, s.OutEdges(N1))
	assert.Equal(t, []string{E1}, edgeIDs(s.InEdges(N2)))
	assert.Equal(t, []string{N1}, s.Neighbors(N2))
}

func TestSelfLoop(t *testing.T) {
	n := newNetwork(t, N1)
	n.edge("L", N1, N1, true)
	n.nodeIv(N1, 0, 10)
	n.edgeIv("L", 0, 10)
	s := n.snapshot()

	setInterval(t, s, 1, 2)
	assert.Equal(t, 2, s.Degree(N1))
	assert.Equal(t, []string{N1}, s.Neighbors(N1))
	assert.Len(t, s.IncidentEdges(N1), 2)
	e, ok := s.FindEdge(N1, N1)
	require.True(t, ok)
	assert.Equal(t, N1, s.Opposite(N1, e))
}

func TestAttributeBeforeEdge(t *testing.T) {
	n := newNetwork(t, N1, N2)
	n.edge(E1, N1, N2, true)
	n.nodeIv(N1, 0, 10)
	n.nodeIv(N2, 0, 10)
	n.edgeIv(E1, 3, 10)
	n.attrIv(E1, 0, 10, interval.Int(5))
	s := n.snapshot(snapshot.WithAttribute(AttrWeight))

	setInterval(t, s, 1, 2)
	_, ok := s.Weight(E1)
	require.False(t, ok)
	_, ok = s.AttrInterval(E1)
	require.True(t, ok)

	setInterval(t, s, 4, 5)
	w, ok := s.Weight(E1)
	require.True(t, ok)
	assert.Equal(t, 5.0, w)
	assert.Equal(t, []float64{5}, s.AttrValues(E1))
}

func TestAttributeDisabled(t *testing.T) {
	for _, name := range []string{"", snapshot.AttributeNone} {
		n := newNetwork(t, N1, N2)
		n.edge(E1, N1, N2, true)
		n.edgeIv(E1, 0, 10)
		n.attrIv(E1, 0, 10, interval.Float(9))
		s := n.snapshot(snapshot.WithAttribute(name))

		setInterval(t, s, 1, 2)
		w, ok := s.Weight(E1)
		require.True(t, ok, "attribute %q", name)
		assert.Equal(t, snapshot.DefaultWeight, w, "attribute %q", name)
		_, ok = s.AttrInterval(E1)
		assert.False(t, ok, "attribute %q", name)
	}
}

func TestSetInterval_Invalid(t *testing.T) {
	s := directedPair(t).snapshot()
	setInterval(t, s, 6, 7)
	before := s.Nodes()

	for _, q := range []interval.Interval{
		{Start: 5, End: 1},
		{Start: math.NaN(), End: 1},
	} {
		err := s.SetInterval(q)
		require.ErrorIs(t, err, snapshot.ErrInvalidInterval)
		require.True(t, errors.Is(err, interval.ErrInvalidBounds))
	}

	assert.Equal(t, before, s.Nodes())
	cur, ok := s.Interval()
	require.True(t, ok)
	assert.Equal(t, 6.0, cur.Start)
	assert.Equal(t, 7.0, cur.End)
}

func TestReset(t *testing.T) {
	s := directedPair(t).snapshot()
	setInterval(t, s, 6, 7)

	s.Reset()
	assert.Zero(t, s.NodeCount())
	assert.Zero(t, s.EdgeCount())
	assert.Empty(t, s.WeightMap())
	_, ok := s.Interval()
	assert.False(t, ok)

	setInterval(t, s, 6, 7)
	assert.Equal(t, []string{N1, N2}, s.Nodes())
	assert.Equal(t, 1, s.OutDegree(N1))
}

func TestDuplicateResultsCollapsed(t *testing.T) {
	iv, err := interval.New(interval.KindNode, N1, 0, 10)
	require.NoError(t, err)
	src := &stubSource{nodes: []interval.Interval{iv, iv}}
	s, err := snapshot.New(src)
	require.NoError(t, err)

	setInterval(t, s, 1, 2)
	assert.Equal(t, []string{N1}, s.Nodes())
	assert.Equal(t, 1, s.Stats().TrackedIntervals)

	setInterval(t, s, 1, 2)
	assert.Equal(t, []string{N1}, s.Nodes())
}

func TestUnresolvableIntervalIsSkipped(t *testing.T) {
	ghost, err := interval.New(interval.KindEdge, "ghost", 0, 10)
	require.NoError(t, err)
	src := &stubSource{edges: []interval.Interval{ghost}}
	spy := &logHandlerSpy{}
	s, err := snapshot.New(src, snapshot.WithLogger(slog.New(spy)))
	require.NoError(t, err)

	setInterval(t, s, 1, 2)
	assert.Zero(t, s.EdgeCount())
	_, found := spy.find(slog.LevelWarn, "snapshot: unresolvable edge interval")
	assert.True(t, found)

	src.edges = nil
	setInterval(t, s, 1, 2)
	assert.Zero(t, s.EdgeCount())
}

func TestSetInterval_Logs(t *testing.T) {
	spy := &logHandlerSpy{}
	s := directedPair(t).snapshot(snapshot.WithLogger(slog.New(spy)))
	setInterval(t, s, 6, 7)

	r, found := spy.find(slog.LevelDebug, "snapshot: interval set")
	require.True(t, found)
	v, ok := recordAttr(r, "nodes_on")
	require.True(t, ok)
	assert.Equal(t, int64(2), v.Int64())
	v, ok = recordAttr(r, "interval")
	require.True(t, ok)
	assert.Equal(t, "[6, 7)", v.String())
}
