// Package tear selects a tear set: a minimal set of edges that, once
// excluded, makes the flowgraph acyclic. Candidate tear edges are the
// union of every edge appearing in at least one elementary cycle
// (package sccycle's enumeration); the selection problem is a 0/1 set-cover
// variant minimized lexicographically on (the largest number of tears
// landing in any single cycle, the total number of tears), since a cycle
// torn by many edges converges no faster than one torn by a single edge
// but costs more iteration-state to carry.
//
// Two search strategies share one branch-and-bound engine (bb.go): an
// exact solver with no time budget (NewExhaustiveSolver) and a heuristic
// solver with a soft deadline that returns its best incumbent if the
// budget runs out before the search completes (NewBranchAndBoundHeuristic).
// A much cheaper DFS back-edge heuristic (FastHeuristic) returns a
// feasible tear set in one pass. The branch-and-bound engine does not use
// it: the search starts with no incumbent and takes its first bound from
// the first complete assignment that covers every cycle.
package tear
