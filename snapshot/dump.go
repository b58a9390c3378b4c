// File: dump.go
// Role: human-readable listing of the projection for diagnostics.

package snapshot

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const dumpRule = "********************"

// Dump writes every active node with its in/out edges, predecessors and
// successors. Labels come from labels when non-nil, IDs otherwise.
// all-edges is the active edge count of the whole projection.
//
// Format per node:
//
//	********************
//	LABEL:<node> all-edges:<n> in-edges:<n> out-edges:<n>
//	    in-edge label:<edge>
//	    out-edge label:<edge>
//	 predecessors:
//	    p-node:<node>
//	 successors:
//	    s-node:<node>
func (s *Snapshot) Dump(w io.Writer, labels Labeler) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vertex := func(id string) string { return id }
	edge := func(id string) string { return id }
	if labels != nil {
		vertex, edge = labels.VertexLabel, labels.EdgeLabel
	}

	bw := bufio.NewWriter(w)
	for _, id := range s.nodes.items {
		in, out := s.in[id], s.out[id]
		var b strings.Builder
		b.WriteString(dumpRule + "\n")
		b.WriteString("LABEL:" + vertex(id))
		b.WriteString(" all-edges:" + strconv.Itoa(s.edges.Len()))
		b.WriteString(" in-edges:" + strconv.Itoa(in.Len()))
		b.WriteString(" out-edges:" + strconv.Itoa(out.Len()) + "\n")
		in.each(func(eid string) bool {
			b.WriteString("    in-edge label:" + edge(eid) + "\n")
			return true
		})
		out.each(func(eid string) bool {
			b.WriteString("    out-edge label:" + edge(eid) + "\n")
			return true
		})
		b.WriteString(" predecessors:\n")
		for _, p := range s.endpoints(in, true) {
			b.WriteString("    p-node:" + vertex(p) + "\n")
		}
		b.WriteString(" successors:\n")
		for _, n := range s.endpoints(out, false) {
			b.WriteString("    s-node:" + vertex(n) + "\n")
		}
		if _, err := bw.WriteString(b.String()); err != nil {
			return err
		}
	}

	return bw.Flush()
}
