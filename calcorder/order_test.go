package calcorder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procflow/seqdecomp/calcorder"
	"github.com/procflow/seqdecomp/flowgraph"
)

func TestOrder_LinearChain(t *testing.T) {
	g := flowgraph.NewGraph()
	_, _ = g.AddEdge("A", "B", "e0", nil)
	_, _ = g.AddEdge("B", "C", "e1", nil)

	res, err := calcorder.Order(g, calcorder.Options{})
	require.NoError(t, err)
	require.Len(t, res.Levels, 3)

	a, _ := g.NodeIndexOf("A")
	b, _ := g.NodeIndexOf("B")
	c, _ := g.NodeIndexOf("C")
	assert.Equal(t, []int{a}, res.Levels[0])
	assert.Equal(t, []int{b}, res.Levels[1])
	assert.Equal(t, []int{c}, res.Levels[2])
}

func TestOrder_DiamondSharesALevel(t *testing.T) {
	g := flowgraph.NewGraph()
	_, _ = g.AddEdge("A", "B", "e0", nil)
	_, _ = g.AddEdge("A", "C", "e1", nil)
	_, _ = g.AddEdge("B", "D", "e2", nil)
	_, _ = g.AddEdge("C", "D", "e3", nil)

	res, err := calcorder.Order(g, calcorder.Options{})
	require.NoError(t, err)
	require.Len(t, res.Levels, 3)
	assert.Len(t, res.Levels[1], 2) // B and C are independent, same level
}

func TestOrder_CycleWithoutTearingFails(t *testing.T) {
	g := flowgraph.NewGraph()
	_, _ = g.AddEdge("A", "B", "e0", nil)
	_, _ = g.AddEdge("B", "A", "e1", nil)

	_, err := calcorder.Order(g, calcorder.Options{})
	assert.ErrorIs(t, err, calcorder.ErrCycleDuringOrdering)
}

func TestOrder_TearingTheBackEdgeResolvesTheCycle(t *testing.T) {
	g := flowgraph.NewGraph()
	_, _ = g.AddEdge("A", "B", "e0", nil)
	backEdge, _ := g.AddEdge("B", "A", "e1", nil)

	res, err := calcorder.Order(g, calcorder.Options{TornEdges: map[int]bool{backEdge: true}})
	require.NoError(t, err)
	require.Len(t, res.Levels, 2)
}

func TestOrder_RootWithTornBackEdgeSeedsLevelZero(t *testing.T) {
	g := flowgraph.NewGraph()
	_, _ = g.AddEdge("A", "B", "e0", nil)
	tear, _ := g.AddEdge("B", "A", "e1", nil)
	_, _ = g.AddEdge("A", "C", "e2", nil)

	a, _ := g.NodeIndexOf("A")
	res, err := calcorder.Order(g, calcorder.Options{
		TornEdges: map[int]bool{tear: true},
		Roots:     []int{a},
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Levels)
	assert.Equal(t, []int{a}, res.Levels[0])
}
