package flowgraph

import "errors"

// Sentinel errors for flowgraph. Callers branch on these with errors.Is;
// call sites are expected to wrap with additional %w context.
var (
	// ErrEmptyNodeID indicates a node ID of "" was supplied to EnsureNode/AddEdge.
	ErrEmptyNodeID = errors.New("flowgraph: node id is empty")

	// ErrUndirectedArc indicates a model arc was not directed when building
	// a Graph from a model.Model; undirected arcs have no well-defined
	// calculation direction, so construction fails rather than guessing one.
	ErrUndirectedArc = errors.New("flowgraph: arc is not directed")

	// ErrUnexpandedArc indicates a model arc had no expanded block when
	// building a Graph from a model.Model.
	ErrUnexpandedArc = errors.New("flowgraph: arc is not expanded")

	// ErrEdgeNotFound indicates a lookup by edge index missed.
	ErrEdgeNotFound = errors.New("flowgraph: edge index out of range")

	// ErrNodeNotFound indicates a lookup by node index or ID missed.
	ErrNodeNotFound = errors.New("flowgraph: node not found")
)
