package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphlens/domain/core/valueobjects"
	pkgerrors "graphlens/pkg/errors"
)

func TestAttributesPreserveInsertionOrder(t *testing.T) {
	attrs := NewAttributes()
	attrs.Set("zebra", valueobjects.StringValue("z"))
	attrs.Set("alpha", valueobjects.StringValue("a"))
	attrs.Set("mid", valueobjects.NumberValue(5))

	assert.Equal(t, []string{"zebra", "alpha", "mid"}, attrs.Names())

	// Overwriting keeps the original position
	attrs.Set("zebra", valueobjects.StringValue("updated"))
	assert.Equal(t, []string{"zebra", "alpha", "mid"}, attrs.Names())

	v, ok := attrs.Get("zebra")
	require.True(t, ok)
	assert.Equal(t, "updated", v.String())
}

func TestAttributesRemove(t *testing.T) {
	attrs := NewAttributes()
	attrs.Set("a", valueobjects.NumberValue(1))
	attrs.Set("b", valueobjects.NumberValue(2))
	attrs.Set("c", valueobjects.NumberValue(3))

	require.NoError(t, attrs.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, attrs.Names())

	err := attrs.Remove("b")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindAttributeNotFound))
}

func TestAttributesMarshalJSONOrdered(t *testing.T) {
	attrs := NewAttributes()
	attrs.Set("name", valueobjects.StringValue("Alice"))
	attrs.Set("age", valueobjects.NumberValue(30))
	attrs.Set("active", valueobjects.BoolValue(true))

	data, err := json.Marshal(attrs)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Alice","age":30,"active":true}`, string(data))
	// Key order in the raw bytes matches insertion order
	assert.Equal(t, `{"name":"Alice","age":30,"active":true}`, string(data))
}

func TestAttributesClone(t *testing.T) {
	attrs := NewAttributes()
	attrs.Set("a", valueobjects.NumberValue(1))
	attrs.Set("b", valueobjects.StringValue("x"))

	clone := attrs.Clone()
	attrs.Set("a", valueobjects.NumberValue(2))
	require.NoError(t, attrs.Remove("b"))

	assert.Equal(t, []string{"a", "b"}, clone.Names())
	v, ok := clone.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", v.String())
}

func TestAttributesRange(t *testing.T) {
	attrs := NewAttributes()
	attrs.Set("a", valueobjects.NumberValue(1))
	attrs.Set("b", valueobjects.NumberValue(2))
	attrs.Set("c", valueobjects.NumberValue(3))

	var seen []string
	attrs.Range(func(name string, _ valueobjects.Value) bool {
		seen = append(seen, name)
		return name != "b"
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestNodeIdentity(t *testing.T) {
	a := NewNode("Display A", "1")
	b := NewNode("Display B", "1")
	c := NewNode("Display A", "2")

	assert.True(t, a.Equals(b), "nodes with equal ids are the same node")
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
}

func TestEdgeConnects(t *testing.T) {
	src := NewNode("src", "1")
	dst := NewNode("dst", "2")
	edge := NewEdge(src, dst, valueobjects.Directed)

	assert.True(t, edge.Connects("1", "2"))
	assert.False(t, edge.Connects("2", "1"), "pair is ordered")

	edge.SetDirection(valueobjects.Undirected)
	assert.Equal(t, valueobjects.Undirected, edge.Direction())
}
