package datasource

import (
	"encoding/csv"
	"fmt"
	"strings"

	"graphlens/domain/core/aggregates"
	"graphlens/domain/core/entities"
	"graphlens/domain/core/valueobjects"
	pkgerrors "graphlens/pkg/errors"
)

// CSVLoader loads a CSV document into a graph. The first row is the
// header; each data row becomes a node under a synthetic ROOT, with
// column values stored as attributes under their header names plus a
// numeric row_index. Only the first data row is linked to ROOT
// structurally; remaining rows rely on cross-references or the orphan
// pass, unless linkAllRows selects the denser variant that links every
// row directly to ROOT.
type CSVLoader struct {
	counter     *Counter
	linkAllRows bool
}

// NewCSVLoader creates a CSV loader with the default row-linking policy
func NewCSVLoader() *CSVLoader {
	return &CSVLoader{counter: NewCounter()}
}

// NewCSVLoaderWithPolicy creates a CSV loader that optionally links
// every data row directly to ROOT
func NewCSVLoaderWithPolicy(linkAllRows bool) *CSVLoader {
	return &CSVLoader{counter: NewCounter(), linkAllRows: linkAllRows}
}

// Name returns the human-readable plugin name
func (l *CSVLoader) Name() string {
	return "CSV to graph loader"
}

// Identifier returns the stable plugin identifier
func (l *CSVLoader) Identifier() string {
	return "csv_to_graph_loader"
}

// Load parses the CSV content and converts it into a graph
func (l *CSVLoader) Load(content string) (*aggregates.Graph, error) {
	reader := csv.NewReader(strings.NewReader(strings.TrimSpace(content)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, pkgerrors.NewParseError("invalid CSV input").WithCause(err)
	}
	if len(rows) == 0 {
		return aggregates.NewGraph(), nil
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	ctx := newBuildContext(l.counter)
	root := ctx.newNode("ROOT")
	ctx.addNode(root)

	l.buildTreeFromRows(ctx, root, rows[1:], headers)
	linkCrossReferences(ctx)
	linkOrphansToRoot(ctx, root)

	return ctx.graph()
}

// buildTreeFromRows converts data rows into nodes attached under parent
func (l *CSVLoader) buildTreeFromRows(ctx *buildContext, parent *entities.Node, dataRows [][]string, headers []string) {
	var first *entities.Node

	for rowIndex, row := range dataRows {
		if len(row) == 0 {
			continue
		}

		name := row[0]
		if name == "" {
			name = fmt.Sprintf("row_%d", rowIndex+1)
		}
		rowNode := ctx.newNode(name)

		for colIndex, value := range row {
			if colIndex < len(headers) && value != "" {
				rowNode.AddAttribute(headers[colIndex], valueobjects.StringValue(value))
			}
		}
		rowNode.AddAttribute("row_index", valueobjects.NumberValue(float64(rowIndex+1)))

		if first == nil {
			first = rowNode
		}
		if l.linkAllRows {
			ctx.connect(parent, rowNode)
		}
		ctx.addNode(rowNode)
	}

	if !l.linkAllRows && first != nil {
		ctx.connect(parent, first)
	}
}
