package flowgraph

import (
	"sort"
	"sync"
)

// Edge is a single directed arc of the flowgraph. Index is dense in
// [0, |E|) and assigned at first enumeration; it is never reused even if
// the underlying model arc is later re-built into a fresh Graph.
//
// Key disambiguates parallel edges between the same ordered node pair —
// it is opaque to flowgraph and only needs to be distinct among edges
// sharing the same (From, To).
type Edge struct {
	Index   int
	From    int // source node index
	To      int // destination node index
	Key     string
	Payload any // the arc payload (opaque to flowgraph; typically a model.Arc)
}

// Graph is a directed multigraph with dense integer node/edge indices.
//
// Nodes are identified externally by an opaque string ID (the unit name);
// internally every node also has a stable index in [0, |V|). Edges are
// triples (From, To, Key) with an opaque Payload.
type Graph struct {
	mu sync.RWMutex

	nodeIndex map[string]int // node ID -> index
	nodeID    []string       // index -> node ID, dense

	edges []*Edge // index -> edge, dense

	out [][]int // node index -> sorted edge indices leaving it
	in  [][]int // node index -> sorted edge indices entering it
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		nodeIndex: make(map[string]int),
	}
}

// EnsureNode returns the index of id, creating a fresh one if this is the
// first time id is seen. Indices are assigned in the order nodes are first
// observed, which is what makes AdjacencyLists' default ordering
// deterministic.
func (g *Graph) EnsureNode(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if idx, ok := g.nodeIndex[id]; ok {
		return idx, nil
	}
	idx := len(g.nodeID)
	g.nodeIndex[id] = idx
	g.nodeID = append(g.nodeID, id)
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)

	return idx, nil
}

// AddEdge appends a new edge fromID -> toID (disambiguated by key) and
// returns its freshly assigned, never-reused index. Endpoints are created
// via EnsureNode if not already present.
func (g *Graph) AddEdge(fromID, toID, key string, payload any) (int, error) {
	from, err := g.EnsureNode(fromID)
	if err != nil {
		return 0, err
	}
	to, err := g.EnsureNode(toID)
	if err != nil {
		return 0, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	idx := len(g.edges)
	e := &Edge{Index: idx, From: from, To: to, Key: key, Payload: payload}
	g.edges = append(g.edges, e)
	g.out[from] = append(g.out[from], idx)
	g.in[to] = append(g.in[to], idx)

	return idx, nil
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodeID)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Nodes returns every node index in [0, |V|), in index (creation) order.
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, len(g.nodeID))
	for i := range out {
		out[i] = i
	}

	return out
}

// NodeID returns the external ID for a node index.
func (g *Graph) NodeID(idx int) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if idx < 0 || idx >= len(g.nodeID) {
		return "", false
	}

	return g.nodeID[idx], true
}

// NodeIndexOf returns the index of an already-known node ID.
func (g *Graph) NodeIndexOf(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.nodeIndex[id]

	return idx, ok
}

// Edge returns the edge stored at idx.
func (g *Graph) Edge(idx int) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if idx < 0 || idx >= len(g.edges) {
		return nil, ErrEdgeNotFound
	}

	return g.edges[idx], nil
}

// Edges returns every edge in index order.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// OutEdges returns the edges leaving node idx, sorted by edge index.
func (g *Graph) OutEdges(idx int) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if idx < 0 || idx >= len(g.out) {
		return nil
	}
	ids := g.out[idx]
	out := make([]*Edge, len(ids))
	for i, ei := range ids {
		out[i] = g.edges[ei]
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })

	return out
}

// InEdges returns the edges entering node idx, sorted by edge index.
func (g *Graph) InEdges(idx int) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if idx < 0 || idx >= len(g.in) {
		return nil
	}
	ids := g.in[idx]
	out := make([]*Edge, len(ids))
	for i, ei := range ids {
		out[i] = g.edges[ei]
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })

	return out
}
