package query

import (
	"fmt"
	"strings"

	"graphlens/domain/core/aggregates"
	"graphlens/domain/core/entities"
	"graphlens/domain/core/valueobjects"
)

// Evaluate narrows a graph through the accumulated search and filter
// conditions. Searches apply first, each pass intersecting the
// surviving node set; filters apply next with per-node type coercion.
// Coercion failures and operator/type mismatches are soft: each one
// appends a message to the returned slice and excludes the node from
// that pass, without aborting the evaluation.
//
// With no conditions the input graph is returned unchanged, by
// reference.
func Evaluate(graph *aggregates.Graph, searches []SearchCondition, filters []FilterCondition) (*aggregates.Graph, []string) {
	if len(searches) == 0 && len(filters) == 0 {
		return graph, nil
	}

	surviving := graph.Nodes()
	var errs []string

	for _, search := range searches {
		surviving = applySearch(surviving, search)
	}

	for _, filter := range filters {
		surviving, errs = applyFilter(surviving, filter, errs)
	}

	keep := make(map[string]bool, len(surviving))
	for _, node := range surviving {
		keep[node.ID()] = true
	}
	return graph.Induce(keep), errs
}

// applySearch keeps the nodes whose name, id, or any attribute name or
// stringified value contains the case-folded query substring
func applySearch(nodes []*entities.Node, search SearchCondition) []*entities.Node {
	matched := make([]*entities.Node, 0, len(nodes))
	for _, node := range nodes {
		if nodeMatches(node, search.Query) {
			matched = append(matched, node)
		}
	}
	return matched
}

func nodeMatches(node *entities.Node, query string) bool {
	if strings.Contains(strings.ToLower(node.Name()), query) {
		return true
	}
	if strings.Contains(strings.ToLower(node.ID()), query) {
		return true
	}
	found := false
	node.Attributes().Range(func(name string, value valueobjects.Value) bool {
		if strings.Contains(strings.ToLower(name), query) ||
			strings.Contains(strings.ToLower(value.String()), query) {
			found = true
			return false
		}
		return true
	})
	return found
}

// applyFilter keeps the nodes satisfying one filter condition. Nodes
// lacking the attribute are excluded without error.
func applyFilter(nodes []*entities.Node, filter FilterCondition, errs []string) ([]*entities.Node, []string) {
	matched := make([]*entities.Node, 0, len(nodes))
	for _, node := range nodes {
		attr, ok := node.Attributes().Get(filter.Attribute)
		if !ok {
			continue
		}

		if filter.Operator.Ordering() && !attr.Ordered() {
			errs = append(errs, fmt.Sprintf(
				"operator '%s' is not valid for %s attribute '%s'",
				filter.Operator, attr.Kind(), filter.Attribute))
			continue
		}

		literal, err := valueobjects.CoerceLiteral(filter.Value, attr.Kind())
		if err != nil {
			errs = append(errs, fmt.Sprintf(
				"cannot coerce '%s' for attribute '%s' (%s): %s",
				filter.Value, filter.Attribute, filter.Operator, err.Error()))
			continue
		}

		holds, err := compare(attr, literal, filter.Operator)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		if holds {
			matched = append(matched, node)
		}
	}
	return matched, errs
}

func compare(attr, literal valueobjects.Value, op Operator) (bool, error) {
	switch op {
	case OpEqual:
		return attr.Equal(literal), nil
	case OpNotEqual:
		return !attr.Equal(literal), nil
	}

	cmp, err := attr.Compare(literal)
	if err != nil {
		return false, err
	}
	switch op {
	case OpGreater:
		return cmp > 0, nil
	case OpLess:
		return cmp < 0, nil
	case OpGreaterOrEqual:
		return cmp >= 0, nil
	case OpLessOrEqual:
		return cmp <= 0, nil
	}
	return false, nil
}
