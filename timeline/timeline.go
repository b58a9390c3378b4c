// File: timeline.go
// Role: YAML network decoding and graph/index construction.
// Determinism:
//   - Nodes and edges are added in file order; attributes of an edge in
//     name order.

package timeline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsnap/core"
	"github.com/katalvlaran/lvsnap/index"
	"github.com/katalvlaran/lvsnap/interval"
)

// ErrBadNetwork wraps every error caused by the content of a network file.
var ErrBadNetwork = errors.New("timeline: bad network")

// Network is a loaded dynamic network.
type Network struct {
	Graph *core.Graph
	Index *index.Index
}

type networkFile struct {
	Directed bool       `yaml:"directed"`
	Nodes    []nodeSpec `yaml:"nodes"`
	Edges    []edgeSpec `yaml:"edges"`
}

type nodeSpec struct {
	ID        string `yaml:"id"`
	Label     string `yaml:"label"`
	Intervals []span `yaml:"intervals"`
}

type edgeSpec struct {
	ID         string                `yaml:"id"`
	Source     string                `yaml:"source"`
	Target     string                `yaml:"target"`
	Directed   *bool                 `yaml:"directed"`
	Label      string                `yaml:"label"`
	Intervals  []span                `yaml:"intervals"`
	Attributes map[string][]attrSpec `yaml:"attributes"`
}

type attrSpec struct {
	Start float64   `yaml:"start"`
	End   float64   `yaml:"end"`
	Value attrValue `yaml:"value"`
}

// span is a [start, end] pair.
type span struct {
	Start, End float64
}

func (s *span) UnmarshalYAML(n *yaml.Node) error {
	var pair []float64
	if err := n.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("line %d: interval needs exactly 2 bounds, got %d", n.Line, len(pair))
	}
	s.Start, s.End = pair[0], pair[1]

	return nil
}

// attrValue keeps the integer/float distinction of the YAML scalar.
type attrValue struct {
	v interval.Value
}

func (a *attrValue) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: attribute value must be a number", n.Line)
	}
	switch n.ShortTag() {
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return err
		}
		a.v = interval.Int(i)
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return err
		}
		a.v = interval.Float(f)
	default:
		return fmt.Errorf("line %d: attribute value %q is not a number", n.Line, n.Value)
	}

	return nil
}

// Load decodes a network from r. Unknown keys are rejected.
func Load(r io.Reader) (*Network, error) {
	var f networkFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrBadNetwork)
		}
		return nil, fmt.Errorf("%w: %w", ErrBadNetwork, err)
	}

	return build(&f)
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Network, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("timeline: open network: %w", err)
	}
	defer fh.Close()

	return Load(fh)
}

func build(f *networkFile) (*Network, error) {
	g := core.NewGraph(core.WithDirected(f.Directed))
	ix, err := index.New(g)
	if err != nil {
		return nil, err
	}

	for i, n := range f.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("%w: node #%d has no id", ErrBadNetwork, i)
		}
		if g.HasVertex(n.ID) {
			return nil, fmt.Errorf("%w: duplicate node %q", ErrBadNetwork, n.ID)
		}
		if err := g.AddVertex(n.ID, core.WithVertexLabel(n.Label)); err != nil {
			return nil, fmt.Errorf("%w: node %q: %w", ErrBadNetwork, n.ID, err)
		}
		for _, s := range n.Intervals {
			if _, err := ix.AddNodeInterval(n.ID, s.Start, s.End); err != nil {
				return nil, fmt.Errorf("%w: node %q: %w", ErrBadNetwork, n.ID, err)
			}
		}
	}

	for i, e := range f.Edges {
		opts := []core.EdgeOption{core.WithEdgeLabel(e.Label)}
		if e.Directed != nil {
			opts = append(opts, core.WithEdgeDirected(*e.Directed))
		}
		id, err := g.AddEdge(e.ID, e.Source, e.Target, opts...)
		if err != nil {
			return nil, fmt.Errorf("%w: edge #%d %q: %w", ErrBadNetwork, i, e.ID, err)
		}
		for _, s := range e.Intervals {
			if _, err := ix.AddEdgeInterval(id, s.Start, s.End); err != nil {
				return nil, fmt.Errorf("%w: edge %q: %w", ErrBadNetwork, id, err)
			}
		}
		names := make([]string, 0, len(e.Attributes))
		for name := range e.Attributes {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			for _, a := range e.Attributes[name] {
				if !a.Value.v.IsSet() {
					return nil, fmt.Errorf("%w: edge %q attribute %q: missing value", ErrBadNetwork, id, name)
				}
				if _, err := ix.AddAttrInterval(id, name, a.Start, a.End, a.Value.v); err != nil {
					return nil, fmt.Errorf("%w: edge %q attribute %q: %w", ErrBadNetwork, id, name, err)
				}
			}
		}
	}

	return &Network{Graph: g, Index: ix}, nil
}
