package flowgraph

import (
	"fmt"

	"github.com/procflow/seqdecomp/model"
)

// BuildFromModel constructs a Graph from a model.Model: nodes are the
// parent units of every arc's source/destination ports, and edges are the
// arcs themselves, keyed by arc name to disambiguate parallel arcs between
// the same pair of units. Construction fails if any arc is undirected or
// unexpanded.
func BuildFromModel(m model.Model) (*Graph, error) {
	g := NewGraph()
	for _, arc := range m.Arcs() {
		if !arc.Directed() {
			return nil, fmt.Errorf("flowgraph: arc %q: %w", arc.Name(), ErrUndirectedArc)
		}
		if _, ok := arc.Expanded(); !ok {
			return nil, fmt.Errorf("flowgraph: arc %q: %w", arc.Name(), ErrUnexpandedArc)
		}

		src := arc.SrcUnit()
		dest := arc.DestUnit()
		if _, err := g.AddEdge(src.Name(), dest.Name(), arc.Name(), arc); err != nil {
			return nil, fmt.Errorf("flowgraph: arc %q: %w", arc.Name(), err)
		}
	}

	return g, nil
}
