package commands

import (
	"strings"

	"github.com/google/shlex"

	"graphlens/application/query"
	"graphlens/domain/core/aggregates"
	pkgerrors "graphlens/pkg/errors"
)

// ResultKind identifies what a command produced
type ResultKind string

const (
	// ResultMutation means the graph was changed in place
	ResultMutation ResultKind = "mutation"

	// ResultFilter means filter conditions were parsed for the caller to store
	ResultFilter ResultKind = "filter"

	// ResultSearch means a search condition was parsed for the caller to store
	ResultSearch ResultKind = "search"
)

// Result is the outcome of a successfully executed command. Filter and
// search commands never touch the graph; their parsed conditions are
// returned for the owning workspace to accumulate.
type Result struct {
	Kind    ResultKind
	Filters []query.FilterCondition
	Search  *query.SearchCondition
}

type handler func(i *Interpreter, graph *aggregates.Graph, tokens []string) (*Result, error)

// Interpreter parses and applies the text command language. Mutation
// commands are two-phase: all structural validation happens before any
// change is applied, so a failing command leaves the graph untouched.
type Interpreter struct {
	handlers map[string]handler
}

// NewInterpreter creates a command interpreter
func NewInterpreter() *Interpreter {
	return &Interpreter{
		handlers: map[string]handler{
			"create": (*Interpreter).execCreate,
			"edit":   (*Interpreter).execEdit,
			"delete": (*Interpreter).execDelete,
			"clear":  (*Interpreter).execClear,
			"filter": (*Interpreter).execFilter,
			"search": (*Interpreter).execSearch,
		},
	}
}

// Execute tokenizes one command line with shell-style quoting and
// dispatches it against the given graph
func (i *Interpreter) Execute(commandText string, graph *aggregates.Graph) (*Result, error) {
	if strings.TrimSpace(commandText) == "" {
		return nil, pkgerrors.NewUnknownCommandError("empty command")
	}

	tokens, err := shlex.Split(commandText)
	if err != nil {
		return nil, pkgerrors.NewMalformedArgumentError("invalid quoting: %v", err)
	}
	if len(tokens) == 0 {
		return nil, pkgerrors.NewUnknownCommandError("empty command")
	}

	verb := strings.ToLower(tokens[0])
	h, ok := i.handlers[verb]
	if !ok {
		return nil, pkgerrors.NewUnknownCommandError(verb)
	}
	return h(i, graph, tokens[1:])
}

func (i *Interpreter) execCreate(graph *aggregates.Graph, tokens []string) (*Result, error) {
	target, rest, err := splitTarget("create", tokens)
	if err != nil {
		return nil, err
	}
	switch target {
	case "node":
		return i.createNode(graph, rest)
	case "edge":
		return i.createEdge(graph, rest)
	}
	return nil, pkgerrors.NewUnknownCommandError("create " + target)
}

func (i *Interpreter) execEdit(graph *aggregates.Graph, tokens []string) (*Result, error) {
	target, rest, err := splitTarget("edit", tokens)
	if err != nil {
		return nil, err
	}
	switch target {
	case "node":
		return i.editNode(graph, rest)
	case "edge":
		return i.editEdge(graph, rest)
	}
	return nil, pkgerrors.NewUnknownCommandError("edit " + target)
}

func (i *Interpreter) execDelete(graph *aggregates.Graph, tokens []string) (*Result, error) {
	target, rest, err := splitTarget("delete", tokens)
	if err != nil {
		return nil, err
	}
	switch target {
	case "node":
		return i.deleteNode(graph, rest)
	case "edge":
		return i.deleteEdge(graph, rest)
	}
	return nil, pkgerrors.NewUnknownCommandError("delete " + target)
}

func (i *Interpreter) execClear(graph *aggregates.Graph, tokens []string) (*Result, error) {
	if len(tokens) != 1 || strings.ToLower(tokens[0]) != "graph" {
		return nil, pkgerrors.NewUnknownCommandError("clear requires 'graph' target")
	}
	graph.Clear()
	return &Result{Kind: ResultMutation}, nil
}

func (i *Interpreter) execFilter(_ *aggregates.Graph, tokens []string) (*Result, error) {
	if len(tokens) == 0 {
		return nil, pkgerrors.NewMalformedArgumentError("filter command requires conditions")
	}
	filters, err := ParseFilterExpression(strings.Join(tokens, " "))
	if err != nil {
		return nil, err
	}
	return &Result{Kind: ResultFilter, Filters: filters}, nil
}

func (i *Interpreter) execSearch(_ *aggregates.Graph, tokens []string) (*Result, error) {
	if len(tokens) == 0 {
		return nil, pkgerrors.NewMalformedArgumentError("search command requires search term")
	}
	search := query.NewSearchCondition(strings.Join(tokens, " "))
	return &Result{Kind: ResultSearch, Search: &search}, nil
}

func splitTarget(verb string, tokens []string) (string, []string, error) {
	if len(tokens) == 0 {
		return "", nil, pkgerrors.NewMalformedArgumentError("%s command requires target (node/edge)", verb)
	}
	return strings.ToLower(tokens[0]), tokens[1:], nil
}
