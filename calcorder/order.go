package calcorder

import (
	"fmt"
	"sort"

	"github.com/procflow/seqdecomp/flowgraph"
)

// Options configures Order.
type Options struct {
	// Nodes restricts layering to this subset of global node indices; a
	// nil slice means every node in g.
	Nodes []int

	// TornEdges is the set of global edge indices to exclude before
	// layering — normally a tear set returned by package tear.
	TornEdges map[int]bool

	// Roots, if non-nil, adds this set of global node indices to level 0
	// regardless of their remaining in-degree. Every node with no
	// remaining predecessor in the view is seeded at level 0 as well, and
	// the layering is not restricted to the roots' descendants.
	Roots []int
}

// Result is the outcome of Order.
type Result struct {
	// Levels[k] lists the global node indices placed at level k, each
	// sorted ascending for determinism.
	Levels [][]int

	// Order flattens Levels level by level into a single calculation
	// sequence.
	Order []int
}

// Order layers the DAG (g minus opts.TornEdges, restricted to opts.Nodes)
// into calculation-order levels via BFS over remaining-predecessor counts
// (Kahn's algorithm). It returns ErrCycleDuringOrdering if any node cannot
// be reached once every zero-in-degree frontier has been exhausted.
func Order(g *flowgraph.Graph, opts Options) (*Result, error) {
	view := g.AdjacencyLists(flowgraph.AdjacencyOptions{
		Nodes:   opts.Nodes,
		Exclude: opts.TornEdges,
	})
	n := len(view.Universe)

	predCount := make([]int, n)
	for i := range view.Pred {
		predCount[i] = len(view.Pred[i])
	}

	// The frontier always includes every node with no remaining
	// predecessor in the view; opts.Roots additionally force-seeds nodes
	// a caller already knows are safe to start from (e.g. units whose
	// remaining inputs were resolved by an earlier pass), even if they
	// still show a nonzero in-degree here.
	var frontier []int
	placed := make([]bool, n)
	for i := 0; i < n; i++ {
		if predCount[i] == 0 {
			frontier = append(frontier, i)
			placed[i] = true
		}
	}
	for _, g0 := range opts.Roots {
		if local, ok := view.LocalIndexOf(g0); ok && !placed[local] {
			frontier = append(frontier, local)
			placed[local] = true
		}
	}

	var levels [][]int
	remaining := predCount
	total := 0
	for len(frontier) > 0 {
		sort.Ints(frontier)
		level := make([]int, len(frontier))
		for i, local := range frontier {
			level[i] = view.Universe[local]
		}
		sort.Ints(level)
		levels = append(levels, level)
		total += len(frontier)

		var next []int
		for _, local := range frontier {
			for _, e := range view.Succ[local] {
				nb := e.Neighbor
				if placed[nb] {
					continue
				}
				remaining[nb]--
				if remaining[nb] <= 0 {
					next = append(next, nb)
					placed[nb] = true
				}
			}
		}
		frontier = next
	}

	if total < n {
		return nil, fmt.Errorf("calcorder: %d of %d nodes ordered: %w", total, n, ErrCycleDuringOrdering)
	}

	order := make([]int, 0, n)
	for _, level := range levels {
		order = append(order, level...)
	}

	return &Result{Levels: levels, Order: order}, nil
}
