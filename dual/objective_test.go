package dual_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mcmcf/dual"
	"github.com/katalvlaran/mcmcf/mcgraph"
)

func TestObjective_SumsCapacityTimesLength(t *testing.T) {
	g := mcgraph.NewGraph([]*mcgraph.Edge{
		{Head: "A", Tail: "B", Capacity: 2, Length: 3},
		{Head: "B", Tail: "C", Capacity: 5, Length: 0.5},
	})

	assert.InDelta(t, 2*3+5*0.5, dual.Objective(g), 1e-12)
}

func TestObjective_EmptyGraphIsZero(t *testing.T) {
	g := mcgraph.NewGraph(nil)
	assert.Equal(t, 0.0, dual.Objective(g))
}
