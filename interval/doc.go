// Package interval defines the time interval value carried by every node,
// edge, and edge attribute of a dynamic network.
//
// An Interval is half-open, [Start, End). A point interval (Start == End)
// contains exactly Start and is the usual way to ask "what is active at t".
// Intervals are identified by a stable uuid.UUID; two intervals with equal
// bounds but different IDs are different intervals. Consumers that diff
// interval sets (see package snapshot) compare IDs, never bounds.
//
// Attribute intervals carry a Value, a tagged numeric variant that is either
// an integer or a float at ingestion time and is read back as float64:
//
//	v := interval.Int(3)
//	v.Float64() // 3.0
//	v.IsInt()   // true
//
// Errors:
//
//	ErrInvalidBounds - Start > End, or a bound is NaN.
package interval
