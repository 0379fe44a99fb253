package calcorder

import "errors"

// ErrCycleDuringOrdering is returned when Order is asked to layer a graph
// that still has a cycle once TornEdges have been excluded — a fatal
// configuration error, since layering is only defined over a DAG.
var ErrCycleDuringOrdering = errors.New("calcorder: cycle remains after excluding tear set")
