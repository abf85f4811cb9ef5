package query

import (
	"strings"

	pkgerrors "graphlens/pkg/errors"
)

// Operator is a filter comparison operator
type Operator string

const (
	OpEqual          Operator = "=="
	OpNotEqual       Operator = "!="
	OpGreater        Operator = ">"
	OpLess           Operator = "<"
	OpGreaterOrEqual Operator = ">="
	OpLessOrEqual    Operator = "<="
)

// Ordering reports whether the operator requires orderable operands
func (o Operator) Ordering() bool {
	switch o {
	case OpGreater, OpLess, OpGreaterOrEqual, OpLessOrEqual:
		return true
	}
	return false
}

// ParseOperator normalizes an operator token; a bare "=" becomes "=="
func ParseOperator(token string) (Operator, error) {
	switch token {
	case "=", "==":
		return OpEqual, nil
	case "!=":
		return OpNotEqual, nil
	case ">":
		return OpGreater, nil
	case "<":
		return OpLess, nil
	case ">=":
		return OpGreaterOrEqual, nil
	case "<=":
		return OpLessOrEqual, nil
	}
	return "", pkgerrors.NewMalformedArgumentError("unknown operator '%s'", token)
}

// SearchCondition is a lower-cased free-text query
type SearchCondition struct {
	Query string `json:"query"`
}

// NewSearchCondition lower-cases the query text
func NewSearchCondition(query string) SearchCondition {
	return SearchCondition{Query: strings.ToLower(query)}
}

// FilterCondition compares a named attribute against a literal value.
// The literal is kept as text and coerced to the attribute's runtime
// type at evaluation time.
type FilterCondition struct {
	Attribute string   `json:"attribute"`
	Operator  Operator `json:"operator"`
	Value     string   `json:"value"`
}
