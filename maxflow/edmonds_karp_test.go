package maxflow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcmcf/maxflow"
	"github.com/katalvlaran/mcmcf/mcgraph"
)

func wikipediaGraph() *mcgraph.Graph {
	return mcgraph.NewGraph([]*mcgraph.Edge{
		{Head: "S", Tail: "1", Capacity: 4},
		{Head: "S", Tail: "2", Capacity: 3},
		{Head: "1", Tail: "2", Capacity: 3},
		{Head: "1", Tail: "T", Capacity: 4},
		{Head: "2", Tail: "T", Capacity: 5},
	})
}

func TestEdmondsKarp_WikipediaExampleMaxFlowIsSeven(t *testing.T) {
	g := wikipediaGraph()

	flow, err := maxflow.EdmondsKarp(context.Background(), g, "S", "T")
	require.NoError(t, err)
	assert.InDelta(t, 7.0, flow, 1e-9)
}

func TestEdmondsKarp_SourceOrSinkMissing(t *testing.T) {
	g := wikipediaGraph()

	_, err := maxflow.EdmondsKarp(context.Background(), g, "nope", "T")
	assert.ErrorIs(t, err, maxflow.ErrSourceNotFound)

	_, err = maxflow.EdmondsKarp(context.Background(), g, "S", "nope")
	assert.ErrorIs(t, err, maxflow.ErrSinkNotFound)
}

func TestEdmondsKarp_DoesNotMutateSolverState(t *testing.T) {
	g := wikipediaGraph()

	_, err := maxflow.EdmondsKarp(context.Background(), g, "S", "T")
	require.NoError(t, err)

	for _, e := range g.Edges() {
		assert.Equal(t, 0.0, e.Flow)
		assert.Equal(t, 0.0, e.Length)
	}
}

func TestEdmondsKarp_SharedSourceGraph(t *testing.T) {
	g := mcgraph.NewGraph([]*mcgraph.Edge{
		{Head: "S", Tail: "1", Capacity: 4},
		{Head: "S", Tail: "4", Capacity: 5},
		{Head: "4", Tail: "1", Capacity: 1},
		{Head: "1", Tail: "2", Capacity: 5},
		{Head: "4", Tail: "5", Capacity: 3},
		{Head: "2", Tail: "5", Capacity: 2},
		{Head: "2", Tail: "3", Capacity: 4},
		{Head: "5", Tail: "6", Capacity: 5},
	})

	flow, err := maxflow.EdmondsKarp(context.Background(), g, "S", "3")
	require.NoError(t, err)
	assert.Greater(t, flow, 0.0)
	assert.LessOrEqual(t, flow, 4.0+1e-9)
}
