package flowgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procflow/seqdecomp/flowgraph"
)

func TestGenerateCycle_ShapeAndValidation(t *testing.T) {
	g, err := flowgraph.GenerateCycle(5)
	require.NoError(t, err)
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 5, g.EdgeCount())

	_, err = flowgraph.GenerateCycle(2)
	assert.Error(t, err)
}

func TestGenerateWheel_ShapeAndValidation(t *testing.T) {
	g, err := flowgraph.GenerateWheel(6)
	require.NoError(t, err)
	// 5-vertex ring + hub, each ring vertex gets a spoke out and in.
	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, 5+5+5, g.EdgeCount())

	_, err = flowgraph.GenerateWheel(3)
	assert.Error(t, err)
}
