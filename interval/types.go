// File: types.go
// Role: Interval, Kind, and Value types plus sentinel errors.
// Determinism:
//   - Less orders by (Start, End, ID) so equal bounds never collide.

package interval

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// ErrInvalidBounds indicates an interval whose Start is after its End or whose bounds are NaN.
var ErrInvalidBounds = errors.New("interval: invalid bounds")

// Kind tells which category of entity an interval belongs to.
type Kind uint8

const (
	// KindNode marks an interval controlling a node.
	KindNode Kind = iota
	// KindEdge marks an interval controlling an edge.
	KindEdge
	// KindAttr marks an interval carrying an edge attribute value.
	KindAttr
)

// String returns the lower-case category name used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindEdge:
		return "edge"
	case KindAttr:
		return "attr"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a numeric attribute value. It remembers whether it was ingested as
// an integer or a float, but always reads back as float64.
type Value struct {
	f     float64
	isInt bool
	set   bool
}

// Int returns an integer-tagged Value.
func Int(n int64) Value { return Value{f: float64(n), isInt: true, set: true} }

// Float returns a float-tagged Value.
func Float(f float64) Value { return Value{f: f, set: true} }

// Float64 returns the normalized value. An unset Value reads as 0.
func (v Value) Float64() float64 { return v.f }

// IsInt reports whether the value was ingested as an integer.
func (v Value) IsInt() bool { return v.isInt }

// IsSet reports whether the value was assigned at all.
func (v Value) IsSet() bool { return v.set }

// String formats the value according to its tag.
func (v Value) String() string {
	switch {
	case !v.set:
		return "<none>"
	case v.isInt:
		return fmt.Sprintf("%d", int64(v.f))
	default:
		return fmt.Sprintf("%g", v.f)
	}
}

// Interval is a half-open time range [Start, End) owned by one node, edge,
// or edge attribute.
type Interval struct {
	// ID is the stable identity of the interval.
	ID uuid.UUID

	// Start is the inclusive lower bound.
	Start float64

	// End is the exclusive upper bound. End == Start denotes a point.
	End float64

	// Kind is the owner category.
	Kind Kind

	// Owner is the node ID (KindNode) or edge ID (KindEdge, KindAttr).
	Owner string

	// Attr is the attribute name for KindAttr intervals; empty otherwise.
	Attr string

	// Value is the attribute value for KindAttr intervals.
	Value Value
}

// New returns an interval with a fresh ID. It returns ErrInvalidBounds when
// start > end or either bound is NaN.
func New(kind Kind, owner string, start, end float64) (Interval, error) {
	if err := checkBounds(start, end); err != nil {
		return Interval{}, err
	}

	return Interval{ID: uuid.New(), Start: start, End: end, Kind: kind, Owner: owner}, nil
}

// Query returns an anonymous interval used only as a search window.
func Query(start, end float64) (Interval, error) {
	if err := checkBounds(start, end); err != nil {
		return Interval{}, err
	}

	return Interval{Start: start, End: end}, nil
}

// At returns the point query interval [t, t].
func At(t float64) Interval { return Interval{Start: t, End: t} }

// Validate reports ErrInvalidBounds for a reversed or NaN interval.
func (iv Interval) Validate() error { return checkBounds(iv.Start, iv.End) }

// IsPoint reports whether the interval has zero width.
func (iv Interval) IsPoint() bool { return iv.Start == iv.End }

// Contains reports whether t lies inside the interval.
func (iv Interval) Contains(t float64) bool {
	if iv.IsPoint() {
		return t == iv.Start
	}

	return iv.Start <= t && t < iv.End
}

// Overlaps reports whether iv and q share at least one instant.
//
// Two proper intervals overlap when each starts before the other ends.
// A point interval overlaps whatever contains its instant.
func (iv Interval) Overlaps(q Interval) bool {
	switch {
	case iv.IsPoint() && q.IsPoint():
		return iv.Start == q.Start
	case q.IsPoint():
		return iv.Contains(q.Start)
	case iv.IsPoint():
		return q.Contains(iv.Start)
	default:
		return iv.Start < q.End && q.Start < iv.End
	}
}

// String renders the interval as "[start, end)".
func (iv Interval) String() string {
	if iv.IsPoint() {
		return fmt.Sprintf("[%g]", iv.Start)
	}

	return fmt.Sprintf("[%g, %g)", iv.Start, iv.End)
}

// Less orders intervals by (Start, End, ID).
func Less(a, b Interval) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	if a.End != b.End {
		return a.End < b.End
	}

	return bytes.Compare(a.ID[:], b.ID[:]) < 0
}

func checkBounds(start, end float64) error {
	if math.IsNaN(start) || math.IsNaN(end) {
		return fmt.Errorf("%w: NaN bound", ErrInvalidBounds)
	}
	if start > end {
		return fmt.Errorf("%w: start %g after end %g", ErrInvalidBounds, start, end)
	}

	return nil
}
