package flowgraph

import "sort"

// LocalEdge is one adjacency entry inside an AdjacencyView: Neighbor is a
// *local* node index (an index into AdjacencyView.Universe, not a global
// flowgraph node index), and EdgeIndex is the global edge index that
// produced the entry — it doubles as the disambiguating "key" for parallel
// edges, since every physical edge already carries a unique index.
type LocalEdge struct {
	Neighbor  int
	EdgeIndex int
}

// AdjacencyView is a deterministic, local-index adjacency snapshot of a
// (possibly restricted) node subset of a Graph, with a chosen set of edges
// excluded. It is the shape every cycle-detection and ordering algorithm
// in this module consumes instead of talking to Graph directly, so a
// torn or SCC-restricted subgraph never needs its own copy of Graph.
type AdjacencyView struct {
	// Universe maps local index -> global node index, in the order the
	// universe was supplied (ascending global index for the whole-graph
	// case). Universe[i] is the global node backing local node i.
	Universe []int

	// Succ[i] / Pred[i] are the successor/predecessor adjacency of local
	// node i. When Multi is false, at most one LocalEdge per distinct
	// neighbor is kept (the first one encountered in global edge-index
	// order); when Multi is true every non-excluded edge appears.
	Succ [][]LocalEdge
	Pred [][]LocalEdge

	Multi bool
}

// LocalIndexOf returns the local index of a global node index within this
// view, or (-1,false) if that node is not part of the view's universe.
func (v *AdjacencyView) LocalIndexOf(globalNode int) (int, bool) {
	// Linear scan is fine: views are rebuilt per call site and typically
	// scoped to a single SCC or the whole (small/medium) flowsheet.
	for i, g := range v.Universe {
		if g == globalNode {
			return i, true
		}
	}

	return -1, false
}

// AdjacencyOptions configures AdjacencyLists.
type AdjacencyOptions struct {
	// Nodes restricts the view to this set of global node indices, in the
	// given order. A nil slice means "every node in the graph, ascending".
	Nodes []int

	// Exclude is the set of global edge indices to omit entirely.
	Exclude map[int]bool

	// Multi, when true, preserves parallel edges as distinct adjacency
	// entries instead of collapsing them to one per neighbor.
	Multi bool
}

// AdjacencyLists builds a filtered, local-indexed adjacency view
// parameterized by an excluded edge-index set, an optional node subset,
// and whether parallel edges should be preserved.
func (g *Graph) AdjacencyLists(opts AdjacencyOptions) *AdjacencyView {
	g.mu.RLock()
	defer g.mu.RUnlock()

	universe := opts.Nodes
	if universe == nil {
		universe = make([]int, len(g.nodeID))
		for i := range universe {
			universe[i] = i
		}
	}

	inUniverse := make(map[int]bool, len(universe))
	local := make(map[int]int, len(universe))
	for i, n := range universe {
		inUniverse[n] = true
		local[n] = i
	}

	view := &AdjacencyView{
		Universe: universe,
		Succ:     make([][]LocalEdge, len(universe)),
		Pred:     make([][]LocalEdge, len(universe)),
		Multi:    opts.Multi,
	}

	for i, gn := range universe {
		seenSucc := make(map[int]bool)
		for _, ei := range g.out[gn] {
			if opts.Exclude[ei] {
				continue
			}
			e := g.edges[ei]
			if !inUniverse[e.To] {
				continue
			}
			if !opts.Multi {
				if seenSucc[e.To] {
					continue
				}
				seenSucc[e.To] = true
			}
			view.Succ[i] = append(view.Succ[i], LocalEdge{Neighbor: local[e.To], EdgeIndex: ei})
		}
		sort.Slice(view.Succ[i], func(a, b int) bool { return view.Succ[i][a].EdgeIndex < view.Succ[i][b].EdgeIndex })

		seenPred := make(map[int]bool)
		for _, ei := range g.in[gn] {
			if opts.Exclude[ei] {
				continue
			}
			e := g.edges[ei]
			if !inUniverse[e.From] {
				continue
			}
			if !opts.Multi {
				if seenPred[e.From] {
					continue
				}
				seenPred[e.From] = true
			}
			view.Pred[i] = append(view.Pred[i], LocalEdge{Neighbor: local[e.From], EdgeIndex: ei})
		}
		sort.Slice(view.Pred[i], func(a, b int) bool { return view.Pred[i][a].EdgeIndex < view.Pred[i][b].EdgeIndex })
	}

	return view
}
