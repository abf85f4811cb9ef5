package datasource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "graphlens/pkg/errors"
)

func TestJSONLoaderObjectsAndScalars(t *testing.T) {
	loader := NewJSONLoader()
	graph, err := loader.Load(`{
		"server": {"host": "localhost", "port": 8080, "tls": false}
	}`)
	require.NoError(t, err)

	// ROOT, the top-level object, and "server"
	require.Equal(t, 3, graph.NodeCount())

	server := nodeByName(t, graph, "server")
	assert.Equal(t, "localhost", attrString(t, server, "host"))
	assert.Equal(t, "8080", attrString(t, server, "port"))
	assert.Equal(t, "false", attrString(t, server, "tls"))
	assert.Equal(t, []string{"host", "port", "tls"}, server.Attributes().Names(),
		"attribute order follows the document")

	top := nodeByName(t, graph, "object")
	root := nodeByName(t, graph, "ROOT")
	assert.True(t, graph.HasEdge(root.ID(), top.ID()))
	assert.True(t, graph.HasEdge(top.ID(), server.ID()))
}

func TestJSONLoaderArraysRepeatLabel(t *testing.T) {
	loader := NewJSONLoader()
	graph, err := loader.Load(`{"users": [{"id": "u1"}, {"id": "u2"}]}`)
	require.NoError(t, err)

	var users []string
	for _, node := range graph.Nodes() {
		if node.Name() == "users" {
			users = append(users, attrString(t, node, "id"))
		}
	}
	assert.Equal(t, []string{"u1", "u2"}, users)
}

func TestJSONLoaderTopLevelArray(t *testing.T) {
	loader := NewJSONLoader()
	graph, err := loader.Load(`[{"a": 1}, {"b": 2}]`)
	require.NoError(t, err)

	// ROOT plus one "item" node per element
	items := 0
	for _, node := range graph.Nodes() {
		if node.Name() == "item" {
			items++
		}
	}
	assert.Equal(t, 2, items)
	assert.Equal(t, 3, graph.NodeCount())
}

func TestJSONLoaderCrossReferences(t *testing.T) {
	loader := NewJSONLoader()
	graph, err := loader.Load(`{"a": {"ref": "b"}, "b": {"id": "b"}}`)
	require.NoError(t, err)

	a := nodeByName(t, graph, "a")
	b := nodeByName(t, graph, "b")
	assert.True(t, graph.HasEdge(a.ID(), b.ID()), "ref resolves against the node name")
}

func TestJSONLoaderCommaSeparatedRefs(t *testing.T) {
	loader := NewJSONLoader()
	graph, err := loader.Load(`{"hub": {"refs": "left, right, hub, missing"}, "left": {}, "right": {}}`)
	require.NoError(t, err)

	hub := nodeByName(t, graph, "hub")
	left := nodeByName(t, graph, "left")
	right := nodeByName(t, graph, "right")

	assert.True(t, graph.HasEdge(hub.ID(), left.ID()))
	assert.True(t, graph.HasEdge(hub.ID(), right.ID()))
	assert.False(t, graph.HasEdge(hub.ID(), hub.ID()), "self references are dropped")
}

func TestJSONLoaderDuplicateReferencesCollapse(t *testing.T) {
	loader := NewJSONLoader()
	// parent already links to kid structurally, and the refs value
	// names kid twice on top of that
	graph, err := loader.Load(`{"parent": {"refs": "kid, kid", "kid": {"x": 1}}}`)
	require.NoError(t, err)

	parent := nodeByName(t, graph, "parent")
	kid := nodeByName(t, graph, "kid")

	count := 0
	for _, edge := range graph.Edges() {
		if edge.Connects(parent.ID(), kid.ID()) {
			count++
		}
	}
	assert.Equal(t, 1, count, "at most one edge per ordered pair")
}

func TestJSONLoaderErrors(t *testing.T) {
	loader := NewJSONLoader()

	_, err := loader.Load(`{"broken":`)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindParse))

	_, err = loader.Load(`{} trailing`)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindParse))
}

func TestJSONLoaderNullAndNumbers(t *testing.T) {
	loader := NewJSONLoader()
	graph, err := loader.Load(`{"thing": {"gone": null, "pi": 3.5}}`)
	require.NoError(t, err)

	thing := nodeByName(t, graph, "thing")
	_, ok := thing.Attributes().Get("gone")
	assert.False(t, ok, "null members are skipped")
	assert.Equal(t, "3.5", attrString(t, thing, "pi"))
}
