package entities

import (
	"graphlens/domain/core/valueobjects"
)

// Node is a vertex in a graph. Its identity is the id alone: two nodes
// with equal ids are interchangeable for membership and lookup purposes
// regardless of name or attributes.
type Node struct {
	id         string
	name       string
	attributes *Attributes
}

// NewNode creates a node with the given display name and stable id
func NewNode(name, id string) *Node {
	return &Node{
		id:         id,
		name:       name,
		attributes: NewAttributes(),
	}
}

// ID returns the node's stable identifier
func (n *Node) ID() string {
	return n.id
}

// Name returns the node's display label
func (n *Node) Name() string {
	return n.name
}

// Attributes returns the node's attribute map
func (n *Node) Attributes() *Attributes {
	return n.attributes
}

// AddAttribute attaches or overwrites an attribute on this node
func (n *Node) AddAttribute(name string, value valueobjects.Value) {
	n.attributes.Set(name, value)
}

// RemoveAttribute removes an attribute; it fails when the name is absent
func (n *Node) RemoveAttribute(name string) error {
	return n.attributes.Remove(name)
}

// Equals compares nodes by id only
func (n *Node) Equals(other *Node) bool {
	return other != nil && n.id == other.id
}
