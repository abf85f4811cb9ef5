package datasource

import (
	"strings"

	"graphlens/domain/core/entities"
	"graphlens/domain/core/valueobjects"
)

// referenceKeywords are the attribute names, compared case- and
// trim-insensitively, whose string values name other nodes
var referenceKeywords = map[string]bool{
	"ref":        true,
	"refs":       true,
	"parent_ref": true,
	"child_ref":  true,
	"link":       true,
	"reference":  true,
}

// linkCrossReferences adds a directed edge for every resolvable
// reference token found in a recognized attribute. Values are split on
// commas into candidate tokens; empty tokens, self-references and
// unresolvable tokens are silently dropped. Edge creation is idempotent
// through the context's dedup key.
func linkCrossReferences(ctx *buildContext) {
	for _, node := range ctx.nodes {
		node.Attributes().Range(func(name string, value valueobjects.Value) bool {
			str, isString := value.AsString()
			if !isString || !referenceKeywords[strings.ToLower(strings.TrimSpace(name))] {
				return true
			}
			for _, token := range strings.Split(str, ",") {
				token = strings.TrimSpace(token)
				if token == "" {
					continue
				}
				if target := findReferenceTarget(ctx, token); target != nil && !target.Equals(node) {
					ctx.connect(node, target)
				}
			}
			return true
		})
	}
}

// findReferenceTarget resolves a reference token against node names,
// then against the "id" and "node_id" attributes. Matching is
// case-insensitive and ignores surrounding whitespace.
func findReferenceTarget(ctx *buildContext, token string) *entities.Node {
	want := strings.ToLower(strings.TrimSpace(token))
	for _, node := range ctx.nodes {
		if strings.ToLower(node.Name()) == want {
			return node
		}
		for _, attr := range []string{"id", "node_id"} {
			if value, ok := node.Attributes().Get(attr); ok {
				if strings.ToLower(strings.TrimSpace(value.String())) == want {
					return node
				}
			}
		}
	}
	return nil
}

// linkOrphansToRoot connects every non-root node without an incoming
// edge to the root, guaranteeing that every node stays reachable from
// ROOT.
func linkOrphansToRoot(ctx *buildContext, root *entities.Node) {
	incoming := make(map[string]bool, len(ctx.edges))
	for _, edge := range ctx.edges {
		if !edge.Destination().Equals(root) {
			incoming[edge.Destination().ID()] = true
		}
	}
	for _, node := range ctx.nodes {
		if node.Equals(root) || incoming[node.ID()] {
			continue
		}
		ctx.connect(root, node)
	}
}
