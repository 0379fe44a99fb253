package tear

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/procflow/seqdecomp/sccycle"
)

// MIPModel is the solver-neutral value object handed to a Solver: a
// cycle-by-candidate-edge incidence matrix plus the column->global-edge-
// index mapping needed to translate a solution back into graph terms.
type MIPModel struct {
	// Incidence is a (#cycles x #candidate edges) 0/1 matrix: row i,
	// column j is 1 iff candidate edge j participates in cycle i.
	Incidence *mat.Dense

	// EdgeOf maps a column index to the global flowgraph edge index it
	// represents.
	EdgeOf []int

	// columnOf is the inverse of EdgeOf, used internally to build cycle
	// row vectors without a linear scan.
	columnOf map[int]int

	// cycleCols precomputes, for each cycle row, the column indices that
	// are nonzero in that row — the list-of-sets form the search in bb.go
	// actually walks, since iterating a dense matrix row in a hot loop is
	// wasteful once the model is built once.
	cycleCols [][]int
}

// BuildMIPModel constructs a MIPModel from a cycle enumeration (typically
// sccycle.EnumerateCycles' output). Candidate columns are every distinct
// edge index appearing in at least one cycle, ordered ascending.
func BuildMIPModel(cycles []sccycle.Cycle) (*MIPModel, error) {
	if len(cycles) == 0 {
		return nil, ErrNoCandidateEdges
	}

	edgeSet := make(map[int]bool)
	for _, c := range cycles {
		for _, e := range c.Edges {
			edgeSet[e] = true
		}
	}
	edgeOf := make([]int, 0, len(edgeSet))
	for e := range edgeSet {
		edgeOf = append(edgeOf, e)
	}
	sort.Ints(edgeOf)

	columnOf := make(map[int]int, len(edgeOf))
	for j, e := range edgeOf {
		columnOf[e] = j
	}

	incidence := mat.NewDense(len(cycles), len(edgeOf), nil)
	cycleCols := make([][]int, len(cycles))
	for i, c := range cycles {
		seen := make(map[int]bool, len(c.Edges))
		var cols []int
		for _, e := range c.Edges {
			j := columnOf[e]
			if seen[j] {
				continue
			}
			seen[j] = true
			incidence.Set(i, j, 1)
			cols = append(cols, j)
		}
		sort.Ints(cols)
		cycleCols[i] = cols
	}

	return &MIPModel{
		Incidence: incidence,
		EdgeOf:    edgeOf,
		columnOf:  columnOf,
		cycleCols: cycleCols,
	}, nil
}

// NumEdges returns the number of candidate tear edges (matrix columns).
func (m *MIPModel) NumEdges() int { return len(m.EdgeOf) }

// NumCycles returns the number of cycles the model must cover (matrix rows).
func (m *MIPModel) NumCycles() int { return len(m.cycleCols) }
