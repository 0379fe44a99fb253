// Package sccycle implements the graph-structural analysis stage of the
// sequential decomposition engine: strongly connected component detection
// (Tarjan's algorithm) and the condensation DAG's topological order, plus
// elementary cycle enumeration scoped to each non-trivial component
// (Johnson's algorithm). Every traversal here uses an explicit work stack
// rather than native recursion, since flowsheet graphs arriving from a host
// application are not bounded in size ahead of time.
//
// Complexity:
//   - FindSCCs: O(V + E) time, O(V) space.
//   - EnumerateCycles: O((V + E)(C + 1)) time where C is the number of
//     elementary cycles found, O(V + C*L) space for L the average cycle
//     length — the classic Johnson bound.
package sccycle
