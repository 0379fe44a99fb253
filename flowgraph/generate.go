package flowgraph

import "fmt"

// GenerateCycle builds a directed n-vertex simple cycle C_n: vertices
// "v0".."v(n-1)" with edges vi -> v(i+1 mod n), each edge keyed and
// payload-tagged by its own stable name. Useful as a synthetic fixture for
// exercising tear-set selection and cycle enumeration at a chosen size,
// since hand-built test networks don't scale past a handful of nodes.
func GenerateCycle(n int) (*Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("flowgraph: GenerateCycle requires n>=3, got %d", n)
	}

	g := NewGraph()
	for i := 0; i < n; i++ {
		from := fmt.Sprintf("v%d", i)
		to := fmt.Sprintf("v%d", (i+1)%n)
		key := fmt.Sprintf("e%d", i)
		if _, err := g.AddEdge(from, to, key, key); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// GenerateWheel builds a directed wheel: an (n-1)-cycle ring plus a hub
// vertex "center" with a spoke to and from every ring vertex. Wheels give
// tear-set selection a harder instance than a bare cycle: the hub
// participates in n-1 distinct two-edge cycles (spoke out + spoke back),
// plus longer cycles that follow ring edges from a spoke out to a spoke
// back, so the elementary-cycle count grows with the ring rather than
// staying fixed at one.
func GenerateWheel(n int) (*Graph, error) {
	if n < 4 {
		return nil, fmt.Errorf("flowgraph: GenerateWheel requires n>=4, got %d", n)
	}

	ringSize := n - 1
	g, err := GenerateCycle(ringSize)
	if err != nil {
		return nil, err
	}

	for i := 0; i < ringSize; i++ {
		rim := fmt.Sprintf("v%d", i)
		outKey := fmt.Sprintf("spoke-out-%d", i)
		inKey := fmt.Sprintf("spoke-in-%d", i)
		if _, err := g.AddEdge("center", rim, outKey, outKey); err != nil {
			return nil, err
		}
		if _, err := g.AddEdge(rim, "center", inKey, inKey); err != nil {
			return nil, err
		}
	}

	return g, nil
}
