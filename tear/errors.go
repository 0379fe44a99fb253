package tear

import "errors"

var (
	// ErrNoCandidateEdges is returned when a MIPModel is built from zero
	// cycles — there is nothing to tear and callers should skip tearing
	// entirely rather than invoking a solver.
	ErrNoCandidateEdges = errors.New("tear: no candidate edges: graph has no cycles")

	// ErrInfeasible indicates the search space was exhausted without
	// covering every cycle — it should never occur for a MIPModel built
	// directly from a real cycle enumeration (every cycle trivially
	// covers itself), and signals a malformed MIPModel if it does.
	ErrInfeasible = errors.New("tear: no feasible tear set covers every cycle")

	// ErrOverrideMissesCycle is returned by Validate when a caller-supplied
	// tear-set override leaves at least one cycle untorn.
	ErrOverrideMissesCycle = errors.New("tear: tear-set override leaves a cycle untorn")

	// ErrOverrideUnknownEdge is returned by Validate when a caller-supplied
	// tear-set override names an edge index outside the graph.
	ErrOverrideUnknownEdge = errors.New("tear: tear-set override names an unknown edge")
)
