// Package timeline loads dynamic networks from YAML files into a core.Graph
// and an index.Index ready for snapshotting.
//
// File shape:
//
//	directed: true            # default direction of edges
//	nodes:
//	  - id: a
//	    label: Alice          # optional
//	    intervals: [[0, 10], [20, 30]]
//	edges:
//	  - id: ab                # optional; generated when empty
//	    source: a
//	    target: b
//	    directed: false       # optional override
//	    intervals: [[0, 10]]
//	    attributes:
//	      weight:
//	        - {start: 0, end: 5, value: 2}
//	        - {start: 5, end: 10, value: 0.5}
//
// Intervals are half-open [start, end); a pair with start == end is an
// instant. Attribute values keep their YAML type: an integer literal becomes
// interval.Int, a float literal interval.Float.
//
// Every structural or range problem is reported as an error wrapping
// ErrBadNetwork, naming the offending node or edge.
package timeline
