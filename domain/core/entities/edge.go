package entities

import (
	"graphlens/domain/core/valueobjects"
)

// Edge is a connection between two nodes. Both endpoints are expected
// to live in the same graph; mutation and query operations preserve
// that, the entity itself does not enforce it.
type Edge struct {
	source      *Node
	destination *Node
	direction   valueobjects.Direction
	attributes  *Attributes
}

// NewEdge creates an edge between source and destination
func NewEdge(source, destination *Node, direction valueobjects.Direction) *Edge {
	return &Edge{
		source:      source,
		destination: destination,
		direction:   direction,
		attributes:  NewAttributes(),
	}
}

// Source returns the edge's source node
func (e *Edge) Source() *Node {
	return e.source
}

// Destination returns the edge's destination node
func (e *Edge) Destination() *Node {
	return e.destination
}

// Direction returns whether the edge is directed or undirected
func (e *Edge) Direction() valueobjects.Direction {
	return e.direction
}

// SetDirection changes the edge's direction
func (e *Edge) SetDirection(direction valueobjects.Direction) {
	e.direction = direction
}

// Attributes returns the edge's attribute map
func (e *Edge) Attributes() *Attributes {
	return e.attributes
}

// AddAttribute attaches or overwrites an attribute on this edge
func (e *Edge) AddAttribute(name string, value valueobjects.Value) {
	e.attributes.Set(name, value)
}

// RemoveAttribute removes an attribute; it fails when the name is absent
func (e *Edge) RemoveAttribute(name string) error {
	return e.attributes.Remove(name)
}

// Connects reports whether the edge joins the given ordered pair of ids
func (e *Edge) Connects(sourceID, destinationID string) bool {
	return e.source.ID() == sourceID && e.destination.ID() == destinationID
}
