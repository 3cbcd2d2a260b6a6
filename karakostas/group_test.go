package karakostas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcmcf/augment"
	"github.com/katalvlaran/mcmcf/karakostas"
	"github.com/katalvlaran/mcmcf/mcgraph"
)

// sharedSourceEdges is the 8-edge fixture from spec §8 scenario 2/3.
func sharedSourceEdges() []*mcgraph.Edge {
	return []*mcgraph.Edge{
		{Head: "S", Tail: "1", Capacity: 4, Length: 1},
		{Head: "S", Tail: "4", Capacity: 5, Length: 1},
		{Head: "4", Tail: "1", Capacity: 1, Length: 1},
		{Head: "1", Tail: "2", Capacity: 5, Length: 1},
		{Head: "4", Tail: "5", Capacity: 3, Length: 1},
		{Head: "2", Tail: "5", Capacity: 2, Length: 1},
		{Head: "2", Tail: "3", Capacity: 4, Length: 1},
		{Head: "5", Tail: "6", Capacity: 5, Length: 1},
	}
}

func TestRun_SingletonGroupDegeneratesToPlainAugment(t *testing.T) {
	gA := mcgraph.NewGraph(sharedSourceEdges())
	gB := mcgraph.NewGraph(sharedSourceEdges())

	cA := &mcgraph.Commodity{Source: "S", Sink: "3", Demand: 4}
	cB := &mcgraph.Commodity{Source: "S", Sink: "3", Demand: 4}

	require.NoError(t, karakostas.Run(gA, []*mcgraph.Commodity{cA}, 0.1, nil))
	require.NoError(t, augment.Augment(gB, cB, 0.1, nil))

	for _, e := range gA.Edges() {
		other, ok := gB.Lookup(e.Head, e.Tail)
		require.True(t, ok)
		assert.InDelta(t, other.Flow, e.Flow, 1e-9, "edge %s->%s", e.Head, e.Tail)
		assert.InDelta(t, other.Length, e.Length, 1e-9, "edge %s->%s", e.Head, e.Tail)
	}
}

func TestRun_GroupPushesEachMembersFullDemand(t *testing.T) {
	g := mcgraph.NewGraph(sharedSourceEdges())

	commodities := []*mcgraph.Commodity{
		{Source: "S", Sink: "3", Demand: 4},
		{Source: "S", Sink: "6", Demand: 4},
		{Source: "S", Sink: "1", Demand: 2},
	}
	original := []float64{4, 4, 2}

	require.NoError(t, karakostas.Run(g, commodities, 0.1, nil))

	for i, c := range commodities {
		assert.InDelta(t, original[i], c.Demand, 1e-9, "Run must not mutate Demand; only facade rescale/doubling do")
	}

	sinkFlow := func(sink string) float64 {
		var total float64
		for _, e := range g.Edges() {
			if e.Tail == sink {
				total += e.Flow
			}
		}
		return total
	}
	assert.Greater(t, sinkFlow("3"), 0.0)
	assert.Greater(t, sinkFlow("6"), 0.0)
	assert.Greater(t, sinkFlow("1"), 0.0)
}

func TestRun_UnreachableSinkPropagates(t *testing.T) {
	g := mcgraph.NewGraph([]*mcgraph.Edge{
		{Head: "S", Tail: "1", Capacity: 1, Length: 1},
	})
	commodities := []*mcgraph.Commodity{
		{Source: "S", Sink: "1", Demand: 1},
		{Source: "S", Sink: "nope", Demand: 1},
	}

	err := karakostas.Run(g, commodities, 0.1, nil)
	assert.Error(t, err)
}
