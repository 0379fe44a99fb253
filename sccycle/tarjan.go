package sccycle

import (
	"sort"

	"github.com/procflow/seqdecomp/flowgraph"
)

// Result is the outcome of FindSCCs: the graph's strongly connected
// components in topological order (a component with an edge into another
// always precedes it — sources first, sinks last) plus the inverse mapping
// from global node index to component index.
type Result struct {
	// SCCs holds each component's member node indices, sorted ascending.
	// The outer slice itself is in topological order of the condensation
	// DAG.
	SCCs [][]int

	// NodeSCC maps a global node index to the index of its component
	// within SCCs.
	NodeSCC []int
}

// FindSCCs partitions g into strongly connected components using Tarjan's
// algorithm (Tarjan 1972), run over an explicit work stack rather than
// native recursion. A nil graph yields an empty Result.
func FindSCCs(g *flowgraph.Graph) *Result {
	if g == nil {
		return &Result{}
	}

	view := g.AdjacencyLists(flowgraph.AdjacencyOptions{})
	localSCCs := tarjanSCCs(view)

	// tarjanSCCs completes components in reverse topological order (a
	// component finishes once every component reachable from it has
	// already finished); reverse to get sources first.
	sccs := make([][]int, len(localSCCs))
	nodeSCC := make([]int, len(view.Universe))
	for i, comp := range localSCCs {
		target := len(localSCCs) - 1 - i
		global := make([]int, len(comp))
		for j, local := range comp {
			global[j] = view.Universe[local]
			nodeSCC[global[j]] = target
		}
		sort.Ints(global)
		sccs[target] = global
	}

	return &Result{SCCs: sccs, NodeSCC: nodeSCC}
}

// tarjanSCCs runs Tarjan's algorithm over view, returning components as
// LOCAL indices (indices into view.Universe), in the order Tarjan's
// algorithm naturally completes them (reverse topological order).
func tarjanSCCs(view *flowgraph.AdjacencyView) [][]int {
	n := len(view.Universe)
	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = -1
	}

	var nodeStack []int
	var sccs [][]int
	next := 0

	type frame struct {
		node int
		pos  int
	}

	for start := 0; start < n; start++ {
		if index[start] != -1 {
			continue
		}

		var work []frame
		index[start] = next
		lowlink[start] = next
		next++
		nodeStack = append(nodeStack, start)
		onStack[start] = true
		work = append(work, frame{node: start, pos: 0})

		for len(work) > 0 {
			top := len(work) - 1
			v := work[top].node
			pos := work[top].pos

			if pos < len(view.Succ[v]) {
				w := view.Succ[v][pos].Neighbor
				work[top].pos++

				switch {
				case index[w] == -1:
					index[w] = next
					lowlink[w] = next
					next++
					nodeStack = append(nodeStack, w)
					onStack[w] = true
					work = append(work, frame{node: w, pos: 0})
				case onStack[w]:
					if index[w] < lowlink[v] {
						lowlink[v] = index[w]
					}
				}
				continue
			}

			// Every successor of v has been examined: pop v's frame,
			// fold its lowlink into its parent's, and close out the
			// component if v is its own root.
			work = work[:top]
			if len(work) > 0 {
				p := work[len(work)-1].node
				if lowlink[v] < lowlink[p] {
					lowlink[p] = lowlink[v]
				}
			}
			if lowlink[v] == index[v] {
				var comp []int
				for {
					w := nodeStack[len(nodeStack)-1]
					nodeStack = nodeStack[:len(nodeStack)-1]
					onStack[w] = false
					comp = append(comp, w)
					if w == v {
						break
					}
				}
				sccs = append(sccs, comp)
			}
		}
	}

	return sccs
}
