package simnet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procflow/seqdecomp/flowgraph"
	"github.com/procflow/seqdecomp/simnet"
)

func TestConnect_ScalarMemberEquality(t *testing.T) {
	uA := simnet.NewUnit("A")
	outA := uA.AddPort(simnet.NewPort("out"))
	outA.AddScalar("temperature")

	uB := simnet.NewUnit("B")
	inB := uB.AddPort(simnet.NewPort("in"))
	inB.AddScalar("temperature")

	arc, err := simnet.Connect(uA, uB, outA, inB, "s1")
	require.NoError(t, err)

	block, ok := arc.Expanded()
	require.True(t, ok)
	require.Len(t, block.Constraints(), 1)

	constant, free, linearOK := block.Constraints()[0].Repn()
	assert.True(t, linearOK)
	assert.Equal(t, float64(0), constant)
	assert.Len(t, free, 2)
}

func TestConnect_ExtensiveMemberGetsExpandedCopy(t *testing.T) {
	uA := simnet.NewUnit("A")
	outA := uA.AddPort(simnet.NewPort("out"))
	outA.AddExtensive("flow")

	uB := simnet.NewUnit("B")
	inB := uB.AddPort(simnet.NewPort("in"))
	inB.AddExtensive("flow")

	arc, err := simnet.Connect(uA, uB, outA, inB, "s1", simnet.WithSplitFrac(0.5))
	require.NoError(t, err)

	v, ok := arc.ExpandedVar("flow", "")
	require.True(t, ok)
	assert.Equal(t, "s1.flow.expanded", v.Name())

	block, _ := arc.Expanded()
	splitVar, ok := block.SplitFrac()
	require.True(t, ok)
	val, _ := splitVar.Value()
	assert.Equal(t, 0.5, val)
}

func TestConnect_MissingSourceMemberFails(t *testing.T) {
	uA := simnet.NewUnit("A")
	outA := uA.AddPort(simnet.NewPort("out"))

	uB := simnet.NewUnit("B")
	inB := uB.AddPort(simnet.NewPort("in"))
	inB.AddScalar("flow")

	_, err := simnet.Connect(uA, uB, outA, inB, "s1")
	assert.Error(t, err)
}

func TestNetwork_BuildsIntoFlowgraph(t *testing.T) {
	uA := simnet.NewUnit("A")
	outA := uA.AddPort(simnet.NewPort("out"))
	outA.AddScalar("x")

	uB := simnet.NewUnit("B")
	inB := uB.AddPort(simnet.NewPort("in"))
	inB.AddScalar("x")

	arc, err := simnet.Connect(uA, uB, outA, inB, "s1")
	require.NoError(t, err)

	net := simnet.NewNetwork()
	net.AddArc(arc)

	g, err := flowgraph.BuildFromModel(net)
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
}
