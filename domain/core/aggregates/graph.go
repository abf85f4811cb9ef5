package aggregates

import (
	"github.com/google/uuid"

	"graphlens/domain/core/entities"
	pkgerrors "graphlens/pkg/errors"
)

// GraphID represents a unique graph identifier
type GraphID string

// NewGraphID creates a new random GraphID
func NewGraphID() GraphID {
	return GraphID(uuid.New().String())
}

// String returns the string representation
func (id GraphID) String() string {
	return string(id)
}

// Graph is the aggregate root for one loaded document. Nodes and edges
// keep their insertion order so that derived output stays deterministic;
// an id index backs constant-time lookups.
type Graph struct {
	id    GraphID
	nodes []*entities.Node
	edges []*entities.Edge
	index map[string]*entities.Node
}

// NewGraph creates an empty graph with a fresh id
func NewGraph() *Graph {
	return &Graph{
		id:    NewGraphID(),
		index: make(map[string]*entities.Node),
	}
}

// ID returns the graph's unique identifier
func (g *Graph) ID() GraphID {
	return g.id
}

// Nodes returns the nodes in insertion order
func (g *Graph) Nodes() []*entities.Node {
	nodes := make([]*entities.Node, len(g.nodes))
	copy(nodes, g.nodes)
	return nodes
}

// Edges returns the edges in insertion order
func (g *Graph) Edges() []*entities.Edge {
	edges := make([]*entities.Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

// NodeCount returns the number of nodes
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// NodeByID looks a node up by its id
func (g *Graph) NodeByID(id string) (*entities.Node, bool) {
	node, ok := g.index[id]
	return node, ok
}

// HasNode reports whether a node with the given id exists
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]
	return ok
}

// AddNode appends a node; it fails when the id is already taken
func (g *Graph) AddNode(node *entities.Node) error {
	if node == nil {
		return pkgerrors.NewValidationError("node cannot be nil")
	}
	if _, exists := g.index[node.ID()]; exists {
		return pkgerrors.NewDuplicateIDError(node.ID())
	}
	g.nodes = append(g.nodes, node)
	g.index[node.ID()] = node
	return nil
}

// FindEdge looks an edge up by its ordered endpoint ids
func (g *Graph) FindEdge(sourceID, destinationID string) (*entities.Edge, bool) {
	for _, edge := range g.edges {
		if edge.Connects(sourceID, destinationID) {
			return edge, true
		}
	}
	return nil, false
}

// HasEdge reports whether an edge joins the given ordered pair
func (g *Graph) HasEdge(sourceID, destinationID string) bool {
	_, ok := g.FindEdge(sourceID, destinationID)
	return ok
}

// AddEdge appends an edge; it fails when the same ordered pair is
// already connected
func (g *Graph) AddEdge(edge *entities.Edge) error {
	if edge == nil || edge.Source() == nil || edge.Destination() == nil {
		return pkgerrors.NewValidationError("edge requires both endpoints")
	}
	if g.HasEdge(edge.Source().ID(), edge.Destination().ID()) {
		return pkgerrors.NewDuplicateEdgeError(edge.Source().ID(), edge.Destination().ID())
	}
	g.edges = append(g.edges, edge)
	return nil
}

// RemoveNode deletes a node by id. It fails when the node is missing or
// when any edge still references it; incident edges must be deleted
// first.
func (g *Graph) RemoveNode(id string) error {
	node, ok := g.index[id]
	if !ok {
		return pkgerrors.NewNodeNotFoundError(id)
	}
	for _, edge := range g.edges {
		if edge.Source().Equals(node) || edge.Destination().Equals(node) {
			return pkgerrors.NewNodeInUseError(id)
		}
	}
	delete(g.index, id)
	for i, n := range g.nodes {
		if n.Equals(node) {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			break
		}
	}
	return nil
}

// RemoveEdge deletes the edge joining the given ordered pair
func (g *Graph) RemoveEdge(sourceID, destinationID string) error {
	for i, edge := range g.edges {
		if edge.Connects(sourceID, destinationID) {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			return nil
		}
	}
	return pkgerrors.NewEdgeNotFoundError(sourceID, destinationID)
}

// Clear empties both node and edge sequences
func (g *Graph) Clear() {
	g.nodes = nil
	g.edges = nil
	g.index = make(map[string]*entities.Node)
}

// Validate ensures graph invariants: unique ids and no dangling edges
func (g *Graph) Validate() error {
	if len(g.index) != len(g.nodes) {
		return pkgerrors.NewValidationError("node index out of sync with node sequence")
	}
	for _, edge := range g.edges {
		if !g.HasNode(edge.Source().ID()) {
			return pkgerrors.NewValidationError("edge references missing source node '%s'", edge.Source().ID())
		}
		if !g.HasNode(edge.Destination().ID()) {
			return pkgerrors.NewValidationError("edge references missing destination node '%s'", edge.Destination().ID())
		}
	}
	return nil
}

// Induce builds a new graph holding only the nodes whose ids are in
// keep, preserving insertion order, plus the edges whose endpoints both
// survive.
func (g *Graph) Induce(keep map[string]bool) *Graph {
	induced := NewGraph()
	for _, node := range g.nodes {
		if keep[node.ID()] {
			induced.nodes = append(induced.nodes, node)
			induced.index[node.ID()] = node
		}
	}
	for _, edge := range g.edges {
		if keep[edge.Source().ID()] && keep[edge.Destination().ID()] {
			induced.edges = append(induced.edges, edge)
		}
	}
	return induced
}
