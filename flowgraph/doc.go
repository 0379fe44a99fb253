// Package flowgraph is the in-memory multigraph that the sequential
// decomposition engine runs on: units are nodes, streams are directed edges,
// and every node/edge carries a stable integer index assigned on first
// enumeration and never reused.
//
// flowgraph provides node/edge index bijections, adjacency and reverse-
// adjacency views, and a filtered-adjacency builder parameterized by an
// excluded-edge set, an optional node subset, and a multi/simple toggle.
// Everything here is a pure, deterministic view over the graph's current
// contents — callers needing memoization across a run own that cache
// themselves (package decomp keeps none), flowgraph just guarantees the
// same inputs always produce the same output order.
//
// Thread-safety: Graph guards its node/edge catalog with a sync.RWMutex so a
// caller can keep building or inspecting a flowgraph.Graph from one
// goroutine while another goroutine runs a decomp.Run elsewhere. The engine
// itself never evaluates concurrently: decomp.Run calls each unit's
// Function one at a time.
package flowgraph
