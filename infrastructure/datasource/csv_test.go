package datasource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphlens/domain/core/aggregates"
	"graphlens/domain/core/entities"
	pkgerrors "graphlens/pkg/errors"
)

func nodeByName(t *testing.T, g *aggregates.Graph, name string) *entities.Node {
	t.Helper()
	for _, node := range g.Nodes() {
		if node.Name() == name {
			return node
		}
	}
	t.Fatalf("no node named %q", name)
	return nil
}

func attrString(t *testing.T, node *entities.Node, name string) string {
	t.Helper()
	v, ok := node.Attributes().Get(name)
	require.True(t, ok, "attribute %q on node %q", name, node.Name())
	return v.String()
}

func TestCSVLoaderBasic(t *testing.T) {
	loader := NewCSVLoader()
	graph, err := loader.Load("name,age\nAlice,30\nBob,25")
	require.NoError(t, err)

	// ROOT plus one node per data row
	require.Equal(t, 3, graph.NodeCount())

	alice := nodeByName(t, graph, "Alice")
	assert.Equal(t, "Alice", attrString(t, alice, "name"))
	assert.Equal(t, "30", attrString(t, alice, "age"))
	assert.Equal(t, "1", attrString(t, alice, "row_index"))

	bob := nodeByName(t, graph, "Bob")
	assert.Equal(t, "2", attrString(t, bob, "row_index"))

	// First row hangs under ROOT structurally, the second arrives
	// through the orphan pass
	root := nodeByName(t, graph, "ROOT")
	assert.True(t, graph.HasEdge(root.ID(), alice.ID()))
	assert.True(t, graph.HasEdge(root.ID(), bob.ID()))
	assert.Equal(t, 2, graph.EdgeCount())
}

func TestCSVLoaderLinkAllRows(t *testing.T) {
	loader := NewCSVLoaderWithPolicy(true)
	graph, err := loader.Load("name\nAlice\nBob\nCarol")
	require.NoError(t, err)

	root := nodeByName(t, graph, "ROOT")
	assert.Equal(t, 3, graph.EdgeCount())
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		assert.True(t, graph.HasEdge(root.ID(), nodeByName(t, graph, name).ID()))
	}
}

func TestCSVLoaderCrossReferences(t *testing.T) {
	loader := NewCSVLoader()
	graph, err := loader.Load("name,ref\nAlice,Bob\nBob,")
	require.NoError(t, err)

	alice := nodeByName(t, graph, "Alice")
	bob := nodeByName(t, graph, "Bob")
	assert.True(t, graph.HasEdge(alice.ID(), bob.ID()), "ref column resolves by node name")
}

func TestCSVLoaderEmptyInput(t *testing.T) {
	loader := NewCSVLoader()
	graph, err := loader.Load("")
	require.NoError(t, err)
	assert.Zero(t, graph.NodeCount(), "empty input yields an empty graph, no ROOT")
}

func TestCSVLoaderEmptyCellsAndMissingName(t *testing.T) {
	loader := NewCSVLoader()
	graph, err := loader.Load("name,city\nAlice,\n,Paris")
	require.NoError(t, err)

	alice := nodeByName(t, graph, "Alice")
	_, ok := alice.Attributes().Get("city")
	assert.False(t, ok, "empty cells do not become attributes")

	unnamed := nodeByName(t, graph, "row_2")
	assert.Equal(t, "Paris", attrString(t, unnamed, "city"))
}

func TestCSVLoaderParseError(t *testing.T) {
	loader := NewCSVLoader()
	_, err := loader.Load("a,\"b\nbroken")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindParse))
}

func TestCounterSpansLoads(t *testing.T) {
	loader := NewCSVLoader()

	first, err := loader.Load("name\nAlice")
	require.NoError(t, err)
	second, err := loader.Load("name\nBob")
	require.NoError(t, err)

	// Ids never restart, so the two graphs share no ids
	for _, node := range second.Nodes() {
		assert.False(t, first.HasNode(node.ID()), "id %s reused across loads", node.ID())
	}
}
