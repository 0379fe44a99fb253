package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/procflow/seqdecomp/model"
)

func TestNewScalarGuess(t *testing.T) {
	g := model.NewScalarGuess(4.5)
	assert.Equal(t, model.GuessScalar, g.Shape)
	assert.Equal(t, 4.5, g.Scalar)
}

func TestNewIndexedGuess(t *testing.T) {
	g := model.NewIndexedGuess(map[string]float64{"c1": 0.3, "c2": 0.7})
	assert.Equal(t, model.GuessIndexedValue, g.Shape)
	assert.Equal(t, 0.3, g.Indexed["c1"])
	assert.Equal(t, 0.7, g.Indexed["c2"])
}

func TestNewPerArcGuess(t *testing.T) {
	g := model.NewPerArcGuess(map[string]float64{"ac": 4, "bc": 6})
	assert.Equal(t, model.GuessPerArc, g.Shape)
	assert.Equal(t, float64(4), g.PerArc["ac"])
	assert.Equal(t, float64(6), g.PerArc["bc"])
}
