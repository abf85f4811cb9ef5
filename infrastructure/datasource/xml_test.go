package datasource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "graphlens/pkg/errors"
)

func TestXMLLoaderElementsAttributesAndText(t *testing.T) {
	loader := NewXMLLoader()
	graph, err := loader.Load(`<config env="prod"><host>localhost</host><port>8080</port></config>`)
	require.NoError(t, err)

	// ROOT, config, host, port
	require.Equal(t, 4, graph.NodeCount())

	config := nodeByName(t, graph, "config")
	assert.Equal(t, "prod", attrString(t, config, "env"))

	host := nodeByName(t, graph, "host")
	assert.Equal(t, "localhost", attrString(t, host, "value"))

	root := nodeByName(t, graph, "ROOT")
	assert.True(t, graph.HasEdge(root.ID(), config.ID()))
	assert.True(t, graph.HasEdge(config.ID(), host.ID()))
	assert.True(t, graph.HasEdge(config.ID(), nodeByName(t, graph, "port").ID()))
}

func TestXMLLoaderMixedContentTrimmed(t *testing.T) {
	loader := NewXMLLoader()
	graph, err := loader.Load("<note>\n  hello\n  <to>Bob</to>\n</note>")
	require.NoError(t, err)

	note := nodeByName(t, graph, "note")
	assert.Equal(t, "hello", attrString(t, note, "value"))
}

func TestXMLLoaderCrossReferences(t *testing.T) {
	loader := NewXMLLoader()
	graph, err := loader.Load(`<doc><a ref="b"/><b/></doc>`)
	require.NoError(t, err)

	a := nodeByName(t, graph, "a")
	b := nodeByName(t, graph, "b")
	assert.True(t, graph.HasEdge(a.ID(), b.ID()))
}

func TestXMLLoaderParseError(t *testing.T) {
	loader := NewXMLLoader()
	_, err := loader.Load(`<open><unclosed></open>`)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindParse))
}

func TestXMLLoaderChildOrder(t *testing.T) {
	loader := NewXMLLoader()
	graph, err := loader.Load(`<list><x/><y/><z/></list>`)
	require.NoError(t, err)

	var names []string
	for _, node := range graph.Nodes() {
		if node.Name() != "ROOT" && node.Name() != "list" {
			names = append(names, node.Name())
		}
	}
	assert.Equal(t, []string{"x", "y", "z"}, names)
}
