package tear

import "github.com/procflow/seqdecomp/flowgraph"

// FastHeuristic returns a feasible (but not necessarily minimal) tear set
// in a single O(V+E) DFS pass: every edge whose destination is still on
// the current DFS path (a back edge, three-color White/Gray/Black marking)
// is torn. It serves as a standalone quick answer and as an upper bound to
// compare an exact solve against; runBranchAndBound does not seed its
// incumbent from it.
func FastHeuristic(g *flowgraph.Graph) map[int]bool {
	const (
		white = iota
		gray
		black
	)

	n := g.NodeCount()
	view := g.AdjacencyLists(flowgraph.AdjacencyOptions{Multi: true})
	state := make([]int, n)
	torn := make(map[int]bool)

	type frame struct {
		node int
		pos  int
	}

	for start := 0; start < n; start++ {
		if state[start] != white {
			continue
		}

		var work []frame
		state[start] = gray
		work = append(work, frame{node: start, pos: 0})

		for len(work) > 0 {
			top := len(work) - 1
			v := work[top].node
			pos := work[top].pos

			if pos >= len(view.Succ[v]) {
				state[v] = black
				work = work[:top]
				continue
			}

			edge := view.Succ[v][pos]
			work[top].pos++
			w := edge.Neighbor

			switch state[w] {
			case white:
				state[w] = gray
				work = append(work, frame{node: w, pos: 0})
			case gray:
				torn[edge.EdgeIndex] = true
			}
			// state[w] == black: forward/cross edge, never a tear candidate.
		}
	}

	return torn
}
