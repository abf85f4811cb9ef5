package visualizer

import (
	"html/template"
	"strings"

	"graphlens/domain/core/aggregates"
	"graphlens/domain/core/valueobjects"
	pkgerrors "graphlens/pkg/errors"
)

const simpleTemplate = `<div class="graph">
  <ul class="nodes">
{{- range .Nodes}}
    <li class="node" data-node-id="{{.ID}}">
      <span class="node-name">{{.Name}}</span>
      <dl class="attributes">
{{- range .Attributes}}
        <dt>{{.Name}}</dt><dd>{{.Value}}</dd>
{{- end}}
      </dl>
    </li>
{{- end}}
  </ul>
  <ul class="edges">
{{- range .Edges}}
    <li class="edge" data-source="{{.Source}}" data-target="{{.Target}}" data-direction="{{.Direction}}"></li>
{{- end}}
  </ul>
</div>
`

// SimpleVisualizer renders a graph into a plain HTML fragment listing
// its nodes, attributes, and edges
type SimpleVisualizer struct {
	tmpl *template.Template
}

// NewSimpleVisualizer creates the simple HTML visualizer
func NewSimpleVisualizer() *SimpleVisualizer {
	return &SimpleVisualizer{
		tmpl: template.Must(template.New("simple").Parse(simpleTemplate)),
	}
}

// Name returns the human-readable plugin name
func (v *SimpleVisualizer) Name() string {
	return "Simple graph visualizer"
}

// Identifier returns the stable plugin identifier
func (v *SimpleVisualizer) Identifier() string {
	return "simple_graph_visualizer"
}

type attributeView struct {
	Name  string
	Value string
}

type nodeView struct {
	ID         string
	Name       string
	Attributes []attributeView
}

type edgeView struct {
	Source    string
	Target    string
	Direction string
}

// Visualize renders the graph as markup
func (v *SimpleVisualizer) Visualize(graph *aggregates.Graph) (string, error) {
	data := struct {
		Nodes []nodeView
		Edges []edgeView
	}{}

	for _, node := range graph.Nodes() {
		view := nodeView{ID: node.ID(), Name: node.Name()}
		node.Attributes().Range(func(name string, value valueobjects.Value) bool {
			view.Attributes = append(view.Attributes, attributeView{Name: name, Value: value.String()})
			return true
		})
		data.Nodes = append(data.Nodes, view)
	}
	for _, edge := range graph.Edges() {
		data.Edges = append(data.Edges, edgeView{
			Source:    edge.Source().ID(),
			Target:    edge.Destination().ID(),
			Direction: edge.Direction().String(),
		})
	}

	var out strings.Builder
	if err := v.tmpl.Execute(&out, data); err != nil {
		return "", pkgerrors.Wrap(err, "failed to render graph")
	}
	return out.String(), nil
}
