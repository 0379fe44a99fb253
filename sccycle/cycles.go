package sccycle

import (
	"sort"

	"github.com/procflow/seqdecomp/flowgraph"
)

// Cycle is one elementary (simple) cycle: a closed walk that revisits no
// node before returning to its start. Nodes is closed (Nodes[0] ==
// Nodes[len(Nodes)-1]) and Nodes[0] is the minimum global node index
// appearing in the cycle. Edges holds the global edge index used for each
// hop, so parallel edges between the same pair of units are enumerated as
// distinct cycles — tear selection needs to choose among them.
type Cycle struct {
	Nodes []int
	Edges []int
}

// EnumerateCycles returns every elementary cycle of g, restricted to the
// node set of each component of sccs (typically FindSCCs(g).SCCs — cycles
// never cross component boundaries). Each component is searched
// independently with Johnson's algorithm (Johnson 1975 / Tarjan 1973),
// using an explicit stack in place of the recursive "circuit" and "unblock"
// procedures of the original formulation. Results are sorted deterministically.
func EnumerateCycles(g *flowgraph.Graph, sccs [][]int) []Cycle {
	if g == nil {
		return nil
	}

	var all []Cycle
	for _, comp := range sccs {
		all = append(all, enumerateComponent(g, comp)...)
	}
	sort.Slice(all, func(i, j int) bool { return cycleLess(all[i], all[j]) })

	return all
}

func cycleLess(a, b Cycle) bool {
	for i := 0; i < len(a.Nodes) && i < len(b.Nodes); i++ {
		if a.Nodes[i] != b.Nodes[i] {
			return a.Nodes[i] < b.Nodes[i]
		}
	}
	if len(a.Nodes) != len(b.Nodes) {
		return len(a.Nodes) < len(b.Nodes)
	}
	for i := 0; i < len(a.Edges) && i < len(b.Edges); i++ {
		if a.Edges[i] != b.Edges[i] {
			return a.Edges[i] < b.Edges[i]
		}
	}

	return false
}

// enumerateComponent runs Johnson's algorithm over one component: for each
// candidate start vertex s (in ascending global-index order), it restricts
// the search to the subgraph induced by {s} union every not-yet-processed
// vertex of the component, finds the strongly connected subcomponent
// containing s within that restriction, and searches it for cycles rooted
// at s. Once s has been searched it is never revisited, which is what
// guarantees every cycle is found exactly once (at its minimum vertex).
func enumerateComponent(g *flowgraph.Graph, comp []int) []Cycle {
	if len(comp) == 0 {
		return nil
	}

	remaining := append([]int(nil), comp...)
	sort.Ints(remaining)

	var out []Cycle
	for i, s := range remaining {
		subset := remaining[i:]
		view := g.AdjacencyLists(flowgraph.AdjacencyOptions{Nodes: subset, Multi: true})
		sLocal, ok := view.LocalIndexOf(s)
		if !ok {
			continue
		}

		local := tarjanSCCs(view)
		var target []int
		for _, c := range local {
			for _, ln := range c {
				if ln == sLocal {
					target = c
					break
				}
			}
			if target != nil {
				break
			}
		}

		if len(target) <= 1 {
			hasSelfLoop := false
			for _, e := range view.Succ[sLocal] {
				if e.Neighbor == sLocal {
					hasSelfLoop = true
					break
				}
			}
			if !hasSelfLoop {
				continue
			}
		}

		targetGlobal := make([]int, len(target))
		for j, ln := range target {
			targetGlobal[j] = view.Universe[ln]
		}
		view2 := g.AdjacencyLists(flowgraph.AdjacencyOptions{Nodes: targetGlobal, Multi: true})
		sLocal2, _ := view2.LocalIndexOf(s)
		out = append(out, findCircuits(view2, sLocal2)...)
	}

	return out
}

type circuitFrame struct {
	v     int
	pos   int
	found bool
}

// findCircuits enumerates every elementary cycle rooted at view.Universe[s0]
// within view, via Johnson's blocked-set circuit search. The recursive
// "circuit(v)" and "unblock(v)" procedures of the original algorithm are
// both flattened onto explicit stacks.
func findCircuits(view *flowgraph.AdjacencyView, s0 int) []Cycle {
	n := len(view.Universe)
	blocked := make([]bool, n)
	blockedBy := make([][]int, n)
	var cycles []Cycle

	unblock := func(start int) {
		queue := []int{start}
		for len(queue) > 0 {
			x := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			if !blocked[x] {
				continue
			}
			blocked[x] = false
			queue = append(queue, blockedBy[x]...)
			blockedBy[x] = nil
		}
	}

	var pathNodes []int
	var pathEdges []int
	var work []circuitFrame

	blocked[s0] = true
	pathNodes = append(pathNodes, s0)
	work = append(work, circuitFrame{v: s0, pos: 0})

	for len(work) > 0 {
		top := len(work) - 1
		v := work[top].v
		adj := view.Succ[v]

		if work[top].pos < len(adj) {
			e := adj[work[top].pos]
			w := e.Neighbor
			work[top].pos++

			if w == s0 {
				nodes := make([]int, len(pathNodes)+1)
				for i, ln := range pathNodes {
					nodes[i] = view.Universe[ln]
				}
				nodes[len(pathNodes)] = view.Universe[s0]
				edges := append(append([]int(nil), pathEdges...), e.EdgeIndex)
				cycles = append(cycles, Cycle{Nodes: nodes, Edges: edges})
				work[top].found = true
				continue
			}

			if !blocked[w] {
				blocked[w] = true
				pathNodes = append(pathNodes, w)
				pathEdges = append(pathEdges, e.EdgeIndex)
				work = append(work, circuitFrame{v: w, pos: 0})
			}
			continue
		}

		// v exhausted: close its frame, propagate blocking/unblocking,
		// and fold its found flag into its caller.
		if work[top].found {
			unblock(v)
		} else {
			for _, e := range adj {
				w := e.Neighbor
				if !containsInt(blockedBy[w], v) {
					blockedBy[w] = append(blockedBy[w], v)
				}
			}
		}

		found := work[top].found
		work = work[:top]
		if v != s0 {
			pathNodes = pathNodes[:len(pathNodes)-1]
			pathEdges = pathEdges[:len(pathEdges)-1]
		}
		if len(work) > 0 && found {
			work[len(work)-1].found = true
		}
	}

	return cycles
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}

	return false
}
