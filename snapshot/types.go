// File: types.go
// Role: Source contract, options, sentinel errors, Stats.

package snapshot

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/lvsnap/core"
	"github.com/katalvlaran/lvsnap/interval"
)

// Sentinel errors returned by the snapshot engine.
var (
	// ErrNilSource indicates New was called without an interval source.
	ErrNilSource = errors.New("snapshot: source is nil")

	// ErrInvalidInterval indicates SetInterval was given a reversed or NaN window.
	// The call is aborted and the projection is left untouched.
	ErrInvalidInterval = errors.New("snapshot: invalid query interval")
)

// DefaultWeight is the weight of an edge with no active attribute interval,
// and the mean of an empty value list.
const DefaultWeight = 1.0

// AttributeNone is the sentinel attribute name that disables attribute tracking.
const AttributeNone = "none"

// Source is the interval index the engine diffs against.
//
// Search results must be fresh slices; the engine keeps them as its baseline.
// Intervals are compared by ID only.
type Source interface {
	// SearchNodes returns all node intervals overlapping q.
	SearchNodes(q interval.Interval) []interval.Interval
	// SearchEdges returns all edge intervals overlapping q.
	SearchEdges(q interval.Interval) []interval.Interval
	// SearchEdgeAttrs returns all intervals of attribute attr overlapping q.
	SearchEdgeAttrs(q interval.Interval, attr string) []interval.Interval
	// ResolveNode maps a node interval to its node ID.
	ResolveNode(iv interval.Interval) (string, bool)
	// ResolveEdge maps an edge or attribute interval to its edge.
	ResolveEdge(iv interval.Interval) (*core.Edge, bool)
}

// Labeler supplies display names for Dump. *core.Graph implements it.
type Labeler interface {
	VertexLabel(id string) string
	EdgeLabel(id string) string
}

// Aggregation selects how attribute intervals turn into edge weights.
type Aggregation int

const (
	// AggregateLatest sets the weight to the value of the most recently
	// activated attribute interval. Weights are left in place when an
	// attribute interval turns off.
	AggregateLatest Aggregation = iota

	// AggregateMean recomputes every active edge weight after each
	// SetInterval as the mean of the values accumulated since the edge's
	// last attribute turn-off (DefaultWeight when none).
	AggregateMean
)

// String returns the flag spelling of the aggregation mode.
func (a Aggregation) String() string {
	switch a {
	case AggregateLatest:
		return "latest"
	case AggregateMean:
		return "mean"
	default:
		return "unknown"
	}
}

// Option configures a Snapshot at construction.
type Option func(*Options)

// Options holds the engine configuration.
type Options struct {
	// Attribute names the edge attribute driving weights. "" or AttributeNone disables it.
	Attribute string

	// Aggregation selects the weight policy.
	Aggregation Aggregation

	// Logger receives debug records for every SetInterval. Never nil after DefaultOptions.
	Logger *slog.Logger
}

// DefaultOptions returns Options with:
//   - no attribute tracking
//   - AggregateLatest
//   - a logger that discards everything
func DefaultOptions() Options {
	return Options{
		Attribute:   "",
		Aggregation: AggregateLatest,
		Logger:      slog.New(slog.DiscardHandler),
	}
}

// WithAttribute enables weight tracking for the named edge attribute.
func WithAttribute(name string) Option {
	return func(o *Options) { o.Attribute = name }
}

// WithAggregation selects the weight policy.
func WithAggregation(a Aggregation) Option {
	return func(o *Options) { o.Aggregation = a }
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func (o Options) attrEnabled() bool {
	return o.Attribute != "" && o.Attribute != AttributeNone
}

// Stats is a read-only summary of the current projection.
type Stats struct {
	Interval            interval.Interval
	HasInterval         bool
	NodeCount           int
	EdgeCount           int
	DirectedEdgeCount   int
	UndirectedEdgeCount int
	TrackedIntervals    int
}
