// Package seqdecomp implements sequential modular decomposition for
// flowsheet-style process networks: partitioning a directed graph of units
// and streams into strongly connected components, enumerating the
// elementary cycles inside each component, selecting a minimal tear set
// that breaks every cycle, laying the torn graph out into calculation-
// order levels, and driving any remaining tear streams to convergence via
// direct substitution or Wegstein acceleration.
//
// The pipeline is organized as five packages, each usable on its own:
//
//	flowgraph/ — the directed multigraph data model
//	sccycle/   — Tarjan SCC detection + Johnson cycle enumeration
//	tear/      — exact and heuristic tear-set selection
//	calcorder/ — topological layering of the torn graph
//	decomp/    — orchestration: ordering, value propagation, convergence
//
// model/ declares the narrow collaborator interfaces (Unit, Port, Arc, ...)
// that decomp.Run consumes; simnet/ is a small reference implementation of
// them used by this module's own tests. cmd/seqdecomp does not use simnet:
// it builds a flowgraph directly from its YAML input.
package seqdecomp
