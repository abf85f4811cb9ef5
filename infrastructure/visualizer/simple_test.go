package visualizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphlens/domain/core/aggregates"
	"graphlens/domain/core/entities"
	"graphlens/domain/core/valueobjects"
)

func TestSimpleVisualizer(t *testing.T) {
	g := aggregates.NewGraph()
	alice := entities.NewNode("Alice", "1")
	alice.AddAttribute("city", valueobjects.StringValue("Berlin"))
	bob := entities.NewNode("Bob", "2")
	require.NoError(t, g.AddNode(alice))
	require.NoError(t, g.AddNode(bob))
	require.NoError(t, g.AddEdge(entities.NewEdge(alice, bob, valueobjects.Directed)))

	viz := NewSimpleVisualizer()
	assert.Equal(t, "simple_graph_visualizer", viz.Identifier())

	out, err := viz.Visualize(g)
	require.NoError(t, err)

	assert.Contains(t, out, `data-node-id="1"`)
	assert.Contains(t, out, `data-node-id="2"`)
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "<dt>city</dt><dd>Berlin</dd>")
	assert.Contains(t, out, `data-source="1" data-target="2" data-direction="DIRECTED"`)
}

func TestSimpleVisualizerEscapesMarkup(t *testing.T) {
	g := aggregates.NewGraph()
	node := entities.NewNode("<script>", "1")
	node.AddAttribute("note", valueobjects.StringValue(`"quoted" & <tagged>`))
	require.NoError(t, g.AddNode(node))

	out, err := NewSimpleVisualizer().Visualize(g)
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestSimpleVisualizerEmptyGraph(t *testing.T) {
	out, err := NewSimpleVisualizer().Visualize(aggregates.NewGraph())
	require.NoError(t, err)
	assert.Contains(t, out, `<ul class="nodes">`)
	assert.Contains(t, out, `<ul class="edges">`)
}
