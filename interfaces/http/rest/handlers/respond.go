package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"graphlens/domain/core/aggregates"
	"graphlens/domain/core/entities"
	pkgerrors "graphlens/pkg/errors"
)

// respondJSON writes a JSON body with the given status
func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}

// respondError writes a JSON error body
func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}

// respondDomainError maps a typed domain error onto an HTTP status
func respondDomainError(w http.ResponseWriter, logger *zap.Logger, err error) {
	respondError(w, logger, pkgerrors.HTTPStatus(err), err.Error())
}

// nodeView is the wire shape of one node
type nodeView struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Attributes *entities.Attributes `json:"attributes"`
}

// edgeView is the wire shape of one edge
type edgeView struct {
	Source     string               `json:"source"`
	Target     string               `json:"target"`
	Direction  string               `json:"direction"`
	Attributes *entities.Attributes `json:"attributes"`
}

// graphView is the wire shape of a graph
type graphView struct {
	ID    string     `json:"id"`
	Nodes []nodeView `json:"nodes"`
	Edges []edgeView `json:"edges"`
}

// newGraphView converts a graph aggregate into its wire shape.
// Attributes are cloned so the view stays valid after the caller
// releases the workspace lock.
func newGraphView(graph *aggregates.Graph) graphView {
	view := graphView{
		ID:    graph.ID().String(),
		Nodes: make([]nodeView, 0, graph.NodeCount()),
		Edges: make([]edgeView, 0, graph.EdgeCount()),
	}
	for _, node := range graph.Nodes() {
		view.Nodes = append(view.Nodes, nodeView{
			ID:         node.ID(),
			Name:       node.Name(),
			Attributes: node.Attributes().Clone(),
		})
	}
	for _, edge := range graph.Edges() {
		view.Edges = append(view.Edges, edgeView{
			Source:     edge.Source().ID(),
			Target:     edge.Destination().ID(),
			Direction:  edge.Direction().String(),
			Attributes: edge.Attributes().Clone(),
		})
	}
	return view
}
