package commands

import (
	"regexp"
	"strings"

	"graphlens/application/query"
	pkgerrors "graphlens/pkg/errors"
)

// clausePattern separates the attribute, operator, and value of one
// filter clause; values may be double- or single-quoted
var clausePattern = regexp.MustCompile(`(\w+)\s*(==|!=|<=|>=|<|>|=)\s*("[^"]+"|'[^']+'|\S+)`)

// ParseFilterExpression parses one or more `attr op value` clauses into
// filter conditions. A bare `=` is normalized to `==`; quoted values
// are unquoted.
func ParseFilterExpression(expr string) ([]query.FilterCondition, error) {
	matches := clausePattern.FindAllStringSubmatch(expr, -1)
	if len(matches) == 0 {
		return nil, pkgerrors.NewMalformedArgumentError("invalid filter expression: %s", expr)
	}

	filters := make([]query.FilterCondition, 0, len(matches))
	for _, match := range matches {
		attr, opToken, value := match[1], match[2], match[3]

		op, err := query.ParseOperator(opToken)
		if err != nil {
			return nil, err
		}
		if len(value) >= 2 {
			if (strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`)) ||
				(strings.HasPrefix(value, `'`) && strings.HasSuffix(value, `'`)) {
				value = value[1 : len(value)-1]
			}
		}

		filters = append(filters, query.FilterCondition{
			Attribute: attr,
			Operator:  op,
			Value:     value,
		})
	}
	return filters, nil
}
