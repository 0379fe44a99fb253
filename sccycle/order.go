package sccycle

import (
	"sort"

	"github.com/procflow/seqdecomp/flowgraph"
)

// Levels groups the components of r into topological levels of the
// condensation DAG: level 0 holds every component with no predecessor
// component, and level k+1 holds every component all of whose predecessor
// components lie at level <= k. The condensation of a graph is always
// acyclic, so this always terminates having placed every component.
func (r *Result) Levels(g *flowgraph.Graph) [][]int {
	numComp := len(r.SCCs)
	if numComp == 0 {
		return nil
	}

	succ := make([][]int, numComp)
	predCount := make([]int, numComp)
	seen := make(map[[2]int]bool)

	for _, e := range g.Edges() {
		cu, cv := r.NodeSCC[e.From], r.NodeSCC[e.To]
		if cu == cv {
			continue
		}
		key := [2]int{cu, cv}
		if seen[key] {
			continue
		}
		seen[key] = true
		succ[cu] = append(succ[cu], cv)
		predCount[cv]++
	}

	var levels [][]int
	var frontier []int
	for c := 0; c < numComp; c++ {
		if predCount[c] == 0 {
			frontier = append(frontier, c)
		}
	}

	remaining := append([]int(nil), predCount...)
	for len(frontier) > 0 {
		sort.Ints(frontier)
		levels = append(levels, frontier)

		var next []int
		for _, c := range frontier {
			for _, nb := range succ[c] {
				remaining[nb]--
				if remaining[nb] == 0 {
					next = append(next, nb)
				}
			}
		}
		frontier = next
	}

	return levels
}
