package datasource

import (
	"graphlens/domain/core/aggregates"
	"graphlens/domain/core/entities"
	"graphlens/domain/core/valueobjects"
)

// buildContext is the mutable state of a single Load call. Edges are
// deduplicated on their ordered endpoint pair, which makes both the
// structural linking and the cross-reference pass idempotent.
type buildContext struct {
	counter  *Counter
	nodes    []*entities.Node
	edges    []*entities.Edge
	edgeKeys map[string]bool
}

func newBuildContext(counter *Counter) *buildContext {
	return &buildContext{
		counter:  counter,
		edgeKeys: make(map[string]bool),
	}
}

// newNode creates a node with the next auto-incremented id
func (ctx *buildContext) newNode(name string) *entities.Node {
	return entities.NewNode(name, ctx.counter.Next())
}

// addNode registers a node in the graph under construction
func (ctx *buildContext) addNode(node *entities.Node) {
	ctx.nodes = append(ctx.nodes, node)
}

// connect appends a directed edge from src to dst, at most once per
// ordered pair
func (ctx *buildContext) connect(src, dst *entities.Node) {
	key := src.ID() + "->" + dst.ID()
	if ctx.edgeKeys[key] {
		return
	}
	ctx.edgeKeys[key] = true
	ctx.edges = append(ctx.edges, entities.NewEdge(src, dst, valueobjects.Directed))
}

// graph assembles the final aggregate from the collected nodes and edges
func (ctx *buildContext) graph() (*aggregates.Graph, error) {
	g := aggregates.NewGraph()
	for _, node := range ctx.nodes {
		if err := g.AddNode(node); err != nil {
			return nil, err
		}
	}
	for _, edge := range ctx.edges {
		if err := g.AddEdge(edge); err != nil {
			return nil, err
		}
	}
	return g, nil
}
