package datasource

import (
	"encoding/xml"
	"strings"

	"graphlens/domain/core/aggregates"
	"graphlens/domain/core/entities"
	"graphlens/domain/core/valueobjects"
	pkgerrors "graphlens/pkg/errors"
)

// XMLLoader loads an XML document into a graph. Every element becomes a
// node named by its tag, carrying the element attributes plus any
// non-empty trimmed text content under the attribute name "value".
// Element nodes link to their structural parent, with the document
// element attached under a synthetic ROOT.
type XMLLoader struct {
	counter *Counter
}

// NewXMLLoader creates an XML loader
func NewXMLLoader() *XMLLoader {
	return &XMLLoader{counter: NewCounter()}
}

// Name returns the human-readable plugin name
func (l *XMLLoader) Name() string {
	return "XML to graph loader"
}

// Identifier returns the stable plugin identifier
func (l *XMLLoader) Identifier() string {
	return "xml_to_graph_loader"
}

// xmlElement mirrors one parsed element, preserving child order
type xmlElement struct {
	XMLName  xml.Name
	Attrs    []xml.Attr   `xml:",any,attr"`
	Content  string       `xml:",chardata"`
	Children []xmlElement `xml:",any"`
}

// Load parses the XML content and converts it into a graph
func (l *XMLLoader) Load(content string) (*aggregates.Graph, error) {
	var document xmlElement
	if err := xml.Unmarshal([]byte(content), &document); err != nil {
		return nil, pkgerrors.NewParseError("invalid XML input").WithCause(err)
	}

	ctx := newBuildContext(l.counter)
	root := ctx.newNode("ROOT")
	ctx.addNode(root)

	l.buildTreeFromElement(ctx, root, &document)
	linkCrossReferences(ctx)
	linkOrphansToRoot(ctx, root)

	return ctx.graph()
}

// buildTreeFromElement recursively converts an element subtree into
// nodes under parent
func (l *XMLLoader) buildTreeFromElement(ctx *buildContext, parent *entities.Node, element *xmlElement) {
	current := ctx.newNode(element.XMLName.Local)

	for _, attr := range element.Attrs {
		current.AddAttribute(attr.Name.Local, valueobjects.StringValue(attr.Value))
	}
	if text := strings.TrimSpace(element.Content); text != "" {
		current.AddAttribute("value", valueobjects.StringValue(text))
	}

	for i := range element.Children {
		l.buildTreeFromElement(ctx, current, &element.Children[i])
	}

	ctx.connect(parent, current)
	ctx.addNode(current)
}
