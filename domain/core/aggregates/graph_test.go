package aggregates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphlens/domain/core/entities"
	"graphlens/domain/core/valueobjects"
	pkgerrors "graphlens/pkg/errors"
)

func buildTriangle(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph()
	a := entities.NewNode("a", "1")
	b := entities.NewNode("b", "2")
	c := entities.NewNode("c", "3")
	require.NoError(t, g.AddNode(a))
	require.NoError(t, g.AddNode(b))
	require.NoError(t, g.AddNode(c))
	require.NoError(t, g.AddEdge(entities.NewEdge(a, b, valueobjects.Directed)))
	require.NoError(t, g.AddEdge(entities.NewEdge(b, c, valueobjects.Directed)))
	return g
}

func TestAddNodeRejectsDuplicateID(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddNode(entities.NewNode("first", "1")))

	err := g.AddNode(entities.NewNode("second", "1"))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindDuplicateID))
	assert.Equal(t, 1, g.NodeCount())
}

func TestAddEdgeRejectsDuplicateOrderedPair(t *testing.T) {
	g := buildTriangle(t)
	a, _ := g.NodeByID("1")
	b, _ := g.NodeByID("2")

	err := g.AddEdge(entities.NewEdge(a, b, valueobjects.Directed))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindDuplicateEdge))

	// The reverse pair is a distinct edge
	require.NoError(t, g.AddEdge(entities.NewEdge(b, a, valueobjects.Directed)))
	assert.Equal(t, 3, g.EdgeCount())
}

func TestRemoveNodeBlockedByIncidentEdges(t *testing.T) {
	g := buildTriangle(t)

	err := g.RemoveNode("2")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindNodeInUse))
	assert.Equal(t, 3, g.NodeCount(), "failed removal leaves the graph untouched")

	require.NoError(t, g.RemoveEdge("1", "2"))
	require.NoError(t, g.RemoveEdge("2", "3"))
	require.NoError(t, g.RemoveNode("2"))
	assert.Equal(t, 2, g.NodeCount())
	assert.False(t, g.HasNode("2"))
}

func TestRemoveMissing(t *testing.T) {
	g := NewGraph()
	assert.True(t, pkgerrors.IsKind(g.RemoveNode("nope"), pkgerrors.KindNodeNotFound))
	assert.True(t, pkgerrors.IsKind(g.RemoveEdge("a", "b"), pkgerrors.KindEdgeNotFound))
}

func TestInducePreservesOrderAndEdges(t *testing.T) {
	g := buildTriangle(t)

	induced := g.Induce(map[string]bool{"1": true, "2": true})

	ids := make([]string, 0, induced.NodeCount())
	for _, n := range induced.Nodes() {
		ids = append(ids, n.ID())
	}
	assert.Equal(t, []string{"1", "2"}, ids)

	require.Equal(t, 1, induced.EdgeCount())
	assert.True(t, induced.Edges()[0].Connects("1", "2"))

	// Source graph is untouched
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestClear(t *testing.T) {
	g := buildTriangle(t)
	g.Clear()
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
	assert.False(t, g.HasNode("1"))
	require.NoError(t, g.Validate())
}

func TestValidate(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.Validate())
}
