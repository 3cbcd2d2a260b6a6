package spath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcmcf/mcgraph"
	"github.com/katalvlaran/mcmcf/spath"
)

func wikipediaGraph() *mcgraph.Graph {
	return mcgraph.NewGraph([]*mcgraph.Edge{
		{Head: "S", Tail: "1", Capacity: 4, Length: 1},
		{Head: "S", Tail: "2", Capacity: 3, Length: 1},
		{Head: "1", Tail: "2", Capacity: 3, Length: 1},
		{Head: "1", Tail: "T", Capacity: 4, Length: 1},
		{Head: "2", Tail: "T", Capacity: 5, Length: 1},
	})
}

func TestPath_FindsShortestByLength(t *testing.T) {
	g := wikipediaGraph()

	path, err := spath.Path(g, "S", "T")
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, "S", path[0].Head)
	assert.Equal(t, "T", path[1].Tail)
}

func TestPath_Unreachable(t *testing.T) {
	g := mcgraph.NewGraph([]*mcgraph.Edge{
		{Head: "A", Tail: "B", Capacity: 1, Length: 1},
	})

	_, err := spath.Path(g, "A", "Z")
	assert.ErrorIs(t, err, spath.ErrUnreachableSink)
}

func TestPath_EmptySource(t *testing.T) {
	g := wikipediaGraph()
	_, err := spath.Path(g, "", "T")
	assert.ErrorIs(t, err, spath.ErrEmptySource)
}

func TestBuildTree_ReachesEverySink(t *testing.T) {
	g := wikipediaGraph()

	tree, err := spath.BuildTree(g, "S")
	require.NoError(t, err)

	for _, dst := range []string{"1", "2", "T"} {
		d, ok := tree.Dist(dst)
		assert.True(t, ok, "expected %s reachable", dst)
		assert.Greater(t, d, 0.0)
	}

	path, err := tree.PathTo("T")
	require.NoError(t, err)
	assert.NotEmpty(t, path)
}

func TestBuildTree_SourceToSourceIsEmptyPath(t *testing.T) {
	g := wikipediaGraph()
	tree, err := spath.BuildTree(g, "S")
	require.NoError(t, err)

	path, err := tree.PathTo("S")
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestPath_PrefersLowerTotalLength(t *testing.T) {
	// Direct S->T edge is long; the two-hop path through "1" is shorter.
	g := mcgraph.NewGraph([]*mcgraph.Edge{
		{Head: "S", Tail: "T", Capacity: 1, Length: 100},
		{Head: "S", Tail: "1", Capacity: 1, Length: 1},
		{Head: "1", Tail: "T", Capacity: 1, Length: 1},
	})

	path, err := spath.Path(g, "S", "T")
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, "1", path[0].Tail)
}
