package tear

import (
	"fmt"
	"sort"

	"github.com/procflow/seqdecomp/flowgraph"
	"github.com/procflow/seqdecomp/sccycle"
)

// Selection is a finished tear-set choice, whether it came from a Solver
// or a caller-supplied override validated by Validate.
type Selection struct {
	Edges         map[int]bool
	MaxCycleTears int
	TotalTears    int
}

// FromSolverResult adapts a SolverResult into a Selection.
func FromSolverResult(r SolverResult) Selection {
	return Selection{Edges: r.Edges, MaxCycleTears: r.MaxCycleTears, TotalTears: r.TotalTears}
}

// Arcs returns the edge payloads (typically model.Arc values) of the
// selection's tear edges, in ascending edge-index order — a reporting
// convenience for callers that want the actual arcs rather than bare
// edge indices.
func (s Selection) Arcs(g *flowgraph.Graph) []any {
	indices := make([]int, 0, len(s.Edges))
	for e := range s.Edges {
		indices = append(indices, e)
	}
	sort.Ints(indices)

	arcs := make([]any, 0, len(indices))
	for _, idx := range indices {
		if e, err := g.Edge(idx); err == nil {
			arcs = append(arcs, e.Payload)
		}
	}

	return arcs
}

// Validate checks a caller-supplied tear-set override against g and the
// cycle enumeration it must cover: every named edge must exist in g, and
// every cycle must contain at least one of the override's edges. On
// success it returns the override's Selection (with MaxCycleTears/
// TotalTears computed), letting a caller skip solving entirely when it
// already knows a good tear set.
func Validate(g *flowgraph.Graph, cycles []sccycle.Cycle, override map[int]bool) (Selection, error) {
	for e := range override {
		if _, err := g.Edge(e); err != nil {
			return Selection{}, fmt.Errorf("tear: edge %d: %w", e, ErrOverrideUnknownEdge)
		}
	}

	maxTears := 0
	for _, c := range cycles {
		hit := 0
		for _, e := range c.Edges {
			if override[e] {
				hit++
			}
		}
		if hit == 0 {
			return Selection{}, fmt.Errorf("tear: cycle through nodes %v: %w", c.Nodes, ErrOverrideMissesCycle)
		}
		if hit > maxTears {
			maxTears = hit
		}
	}

	return Selection{Edges: override, MaxCycleTears: maxTears, TotalTears: len(override)}, nil
}
