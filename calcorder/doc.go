// Package calcorder computes the calculation order of a torn, now-acyclic
// flowsheet: the BFS-style layering of a DAG into levels, where every node
// in level k has every predecessor in some level < k, and nodes sharing a
// level have no dependency on one another and may be evaluated in any
// order (including in parallel, though this package does not itself
// parallelize anything). It is driven by package tear's output graph —
// the original graph with its tear-set edges excluded.
package calcorder
