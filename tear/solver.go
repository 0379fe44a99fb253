package tear

import "time"

// SolverOptions configures a Solver invocation.
type SolverOptions struct {
	// TimeLimit bounds search wall-clock time. Zero means no limit (the
	// search runs to exhaustion and the result is always optimal).
	TimeLimit time.Duration
}

// SolverResult is what a Solver returns: which candidate edges to tear,
// the resulting lexicographic objective components, and whether the
// search actually proved optimality or gave up at a time limit.
type SolverResult struct {
	// Edges is the chosen tear set, as global flowgraph edge indices.
	Edges map[int]bool

	// MaxCycleTears is the largest number of torn edges landing in any
	// single cycle under this selection.
	MaxCycleTears int

	// TotalTears is len(Edges).
	TotalTears int

	// Optimal is true iff the search exhausted the decision tree rather
	// than stopping at SolverOptions.TimeLimit.
	Optimal bool
}

// Solver is the narrow external-collaborator interface for tear-set
// selection: given a MIPModel, produce a SolverResult covering every
// cycle. The engine ships two Solver implementations built on the same
// branch-and-bound search (bb.go) — NewExhaustiveSolver and
// NewBranchAndBoundHeuristic — but a host application may supply its own,
// e.g. wrapping a real MIP/LP library.
type Solver interface {
	Solve(m *MIPModel) (SolverResult, error)
}

// exhaustiveSolver runs the branch-and-bound search with no time budget,
// so its result is always provably optimal.
type exhaustiveSolver struct{}

// NewExhaustiveSolver returns the engine's default Solver: an exact
// branch-and-bound search over the 0/1 tear-selection problem, minimizing
// (MaxCycleTears, TotalTears) lexicographically. No third-party MIP or LP
// solver appears anywhere in the stack this repository draws its
// dependencies from, so this search plays that role directly.
func NewExhaustiveSolver() Solver { return exhaustiveSolver{} }

func (exhaustiveSolver) Solve(m *MIPModel) (SolverResult, error) {
	return runBranchAndBound(m, SolverOptions{})
}

// bbHeuristicSolver runs the same search under a soft time budget,
// returning its best incumbent (Optimal=false) if the budget is exhausted
// before the tree is fully explored.
type bbHeuristicSolver struct {
	opts SolverOptions
}

// NewBranchAndBoundHeuristic returns a Solver that runs the same exact
// search as NewExhaustiveSolver but bails out at timeLimit, returning
// whatever incumbent it has found so far. Use it on graphs too large for
// the exact solver to finish in an acceptable time.
func NewBranchAndBoundHeuristic(timeLimit time.Duration) Solver {
	return bbHeuristicSolver{opts: SolverOptions{TimeLimit: timeLimit}}
}

func (h bbHeuristicSolver) Solve(m *MIPModel) (SolverResult, error) {
	return runBranchAndBound(m, h.opts)
}
