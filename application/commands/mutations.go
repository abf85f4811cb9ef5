package commands

import (
	"graphlens/domain/core/aggregates"
	"graphlens/domain/core/entities"
	"graphlens/domain/core/valueobjects"
	pkgerrors "graphlens/pkg/errors"
)

// createNode handles: create node --id=<id> [--property k=v]...
func (i *Interpreter) createNode(graph *aggregates.Graph, tokens []string) (*Result, error) {
	args, err := parseArgs(tokens)
	if err != nil {
		return nil, err
	}
	if !args.hasID {
		return nil, pkgerrors.NewMalformedArgumentError("create node requires --id=<id>")
	}
	if graph.HasNode(args.id) {
		return nil, pkgerrors.NewDuplicateIDError(args.id)
	}

	name, ok := args.propertyValue("name")
	if !ok {
		name, ok = args.propertyValue("Name")
	}
	if !ok {
		name = "Node_" + args.id
	}

	node := entities.NewNode(name, args.id)
	for _, p := range args.properties {
		node.AddAttribute(p.key, valueobjects.StringValue(p.value))
	}
	if err := graph.AddNode(node); err != nil {
		return nil, err
	}
	return &Result{Kind: ResultMutation}, nil
}

// createEdge handles: create edge <src> <dst> [--property k=v]... [--undirected]
func (i *Interpreter) createEdge(graph *aggregates.Graph, tokens []string) (*Result, error) {
	args, err := parseArgs(tokens)
	if err != nil {
		return nil, err
	}
	if len(args.positional) != 2 {
		return nil, pkgerrors.NewMalformedArgumentError("edge command requires exactly 2 node ids")
	}
	sourceID, destinationID := args.positional[0], args.positional[1]

	source, ok := graph.NodeByID(sourceID)
	if !ok {
		return nil, pkgerrors.NewNodeNotFoundError(sourceID)
	}
	destination, ok := graph.NodeByID(destinationID)
	if !ok {
		return nil, pkgerrors.NewNodeNotFoundError(destinationID)
	}
	if graph.HasEdge(sourceID, destinationID) {
		return nil, pkgerrors.NewDuplicateEdgeError(sourceID, destinationID)
	}

	direction := valueobjects.Directed
	if args.direction != nil {
		direction = *args.direction
	}
	edge := entities.NewEdge(source, destination, direction)
	for _, p := range args.properties {
		edge.AddAttribute(p.key, valueobjects.StringValue(p.value))
	}
	if err := graph.AddEdge(edge); err != nil {
		return nil, err
	}
	return &Result{Kind: ResultMutation}, nil
}

// editNode handles: edit node --id=<id> [--property k=v]... [--unset-property name]...
// Property sets apply before unsets; everything is validated first so a
// failing edit leaves the node untouched.
func (i *Interpreter) editNode(graph *aggregates.Graph, tokens []string) (*Result, error) {
	args, err := parseArgs(tokens)
	if err != nil {
		return nil, err
	}
	if !args.hasID {
		return nil, pkgerrors.NewMalformedArgumentError("edit node requires --id=<id>")
	}
	node, ok := graph.NodeByID(args.id)
	if !ok {
		return nil, pkgerrors.NewNodeNotFoundError(args.id)
	}
	if err := validateRemovals(node.Attributes(), args); err != nil {
		return nil, err
	}

	for _, p := range args.properties {
		node.AddAttribute(p.key, valueobjects.StringValue(p.value))
	}
	for _, name := range args.removals {
		if err := node.RemoveAttribute(name); err != nil {
			return nil, err
		}
	}
	return &Result{Kind: ResultMutation}, nil
}

// editEdge handles: edit edge <src> <dst> [--property k=v]...
// [--unset-property name]... [--directed|--undirected]
func (i *Interpreter) editEdge(graph *aggregates.Graph, tokens []string) (*Result, error) {
	args, err := parseArgs(tokens)
	if err != nil {
		return nil, err
	}
	if len(args.positional) != 2 {
		return nil, pkgerrors.NewMalformedArgumentError("edge command requires exactly 2 node ids")
	}
	edge, ok := graph.FindEdge(args.positional[0], args.positional[1])
	if !ok {
		return nil, pkgerrors.NewEdgeNotFoundError(args.positional[0], args.positional[1])
	}
	if err := validateRemovals(edge.Attributes(), args); err != nil {
		return nil, err
	}

	for _, p := range args.properties {
		edge.AddAttribute(p.key, valueobjects.StringValue(p.value))
	}
	for _, name := range args.removals {
		if err := edge.RemoveAttribute(name); err != nil {
			return nil, err
		}
	}
	if args.direction != nil {
		edge.SetDirection(*args.direction)
	}
	return &Result{Kind: ResultMutation}, nil
}

// deleteNode handles: delete node --id=<id>
func (i *Interpreter) deleteNode(graph *aggregates.Graph, tokens []string) (*Result, error) {
	args, err := parseArgs(tokens)
	if err != nil {
		return nil, err
	}
	if !args.hasID {
		return nil, pkgerrors.NewMalformedArgumentError("delete node requires --id=<id>")
	}
	// RemoveNode validates existence and incident edges before mutating
	if err := graph.RemoveNode(args.id); err != nil {
		return nil, err
	}
	return &Result{Kind: ResultMutation}, nil
}

// deleteEdge handles: delete edge <src> <dst>
func (i *Interpreter) deleteEdge(graph *aggregates.Graph, tokens []string) (*Result, error) {
	args, err := parseArgs(tokens)
	if err != nil {
		return nil, err
	}
	if len(args.positional) != 2 {
		return nil, pkgerrors.NewMalformedArgumentError("edge delete requires exactly 2 node ids")
	}
	if err := graph.RemoveEdge(args.positional[0], args.positional[1]); err != nil {
		return nil, err
	}
	return &Result{Kind: ResultMutation}, nil
}

// validateRemovals checks the removal plan against the state the
// attributes will be in once the property sets have applied. Each
// removal consumes its name, so a repeated --unset-property fails
// validation up front instead of halfway through the apply.
func validateRemovals(attrs *entities.Attributes, args *parsedArgs) error {
	if len(args.removals) == 0 {
		return nil
	}
	present := make(map[string]bool, attrs.Len()+len(args.properties))
	for _, name := range attrs.Names() {
		present[name] = true
	}
	for _, p := range args.properties {
		present[p.key] = true
	}
	for _, name := range args.removals {
		if !present[name] {
			return pkgerrors.NewAttributeNotFoundError(name)
		}
		present[name] = false
	}
	return nil
}
