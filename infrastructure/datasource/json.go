package datasource

import (
	"encoding/json"
	"io"
	"strings"

	"graphlens/domain/core/aggregates"
	"graphlens/domain/core/entities"
	"graphlens/domain/core/valueobjects"
	pkgerrors "graphlens/pkg/errors"
)

// JSONLoader loads a JSON document into a graph. Every object becomes a
// node named by its enclosing key (default "object"); arrays repeat the
// same label for each item (default "item"); scalar members become
// attributes on the enclosing node. The document is walked through the
// decoder's token stream so that member order, and therefore node
// order, follows the document.
type JSONLoader struct {
	counter *Counter
}

// NewJSONLoader creates a JSON loader
func NewJSONLoader() *JSONLoader {
	return &JSONLoader{counter: NewCounter()}
}

// Name returns the human-readable plugin name
func (l *JSONLoader) Name() string {
	return "JSON to graph loader"
}

// Identifier returns the stable plugin identifier
func (l *JSONLoader) Identifier() string {
	return "json_to_graph_loader"
}

// Load parses the JSON content and converts it into a graph
func (l *JSONLoader) Load(content string) (*aggregates.Graph, error) {
	decoder := json.NewDecoder(strings.NewReader(content))
	decoder.UseNumber()

	parsed, err := decodeValue(decoder)
	if err != nil {
		return nil, pkgerrors.NewParseError("invalid JSON input").WithCause(err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, pkgerrors.NewParseError("trailing data after JSON document")
	}

	ctx := newBuildContext(l.counter)
	root := ctx.newNode("ROOT")
	ctx.addNode(root)

	l.buildTree(ctx, root, parsed, "", false)
	linkCrossReferences(ctx)
	linkOrphansToRoot(ctx, root)

	return ctx.graph()
}

// jsonMember is one key/value pair of an object, order-preserving
type jsonMember struct {
	key   string
	value interface{}
}

// jsonObject is an object whose member order follows the document
type jsonObject struct {
	members []jsonMember
}

// decodeValue reads one JSON value from the token stream, keeping
// object member order
func decodeValue(decoder *json.Decoder) (interface{}, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := token.(json.Delim)
	if !ok {
		// string, json.Number, bool, or nil
		return token, nil
	}

	switch delim {
	case '{':
		obj := &jsonObject{}
		for decoder.More() {
			keyToken, err := decoder.Token()
			if err != nil {
				return nil, err
			}
			key, _ := keyToken.(string)
			value, err := decodeValue(decoder)
			if err != nil {
				return nil, err
			}
			obj.members = append(obj.members, jsonMember{key: key, value: value})
		}
		if _, err := decoder.Token(); err != nil {
			return nil, err
		}
		return obj, nil

	case '[':
		var items []interface{}
		for decoder.More() {
			item, err := decodeValue(decoder)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		if _, err := decoder.Token(); err != nil {
			return nil, err
		}
		return items, nil
	}
	return nil, pkgerrors.NewParseError("unexpected token %v", delim)
}

// buildTree recursively converts decoded JSON content into nodes and
// attributes under parent
func (l *JSONLoader) buildTree(ctx *buildContext, parent *entities.Node, content interface{}, label string, hasLabel bool) {
	switch value := content.(type) {
	case *jsonObject:
		name := "object"
		if hasLabel {
			name = label
		}
		child := ctx.newNode(name)
		for _, member := range value.members {
			l.buildTree(ctx, child, member.value, member.key, true)
		}
		ctx.connect(parent, child)
		ctx.addNode(child)

	case []interface{}:
		itemLabel := "item"
		if hasLabel {
			itemLabel = label
		}
		for _, item := range value {
			l.buildTree(ctx, parent, item, itemLabel, true)
		}

	default:
		if value == nil || !hasLabel {
			return
		}
		if attr, ok := scalarValue(value); ok {
			parent.AddAttribute(label, attr)
		}
	}
}

// scalarValue maps a decoded JSON scalar onto the attribute value union
func scalarValue(raw interface{}) (valueobjects.Value, bool) {
	switch value := raw.(type) {
	case string:
		return valueobjects.StringValue(value), true
	case json.Number:
		if f, err := value.Float64(); err == nil {
			return valueobjects.NumberValue(f), true
		}
		return valueobjects.StringValue(value.String()), true
	case bool:
		return valueobjects.BoolValue(value), true
	}
	return valueobjects.Value{}, false
}
