package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"graphlens/application/services"
)

// PluginHandler exposes the registered plugins
type PluginHandler struct {
	plugins *services.PluginService
	logger  *zap.Logger
}

// NewPluginHandler creates a new plugin handler
func NewPluginHandler(plugins *services.PluginService, logger *zap.Logger) *PluginHandler {
	return &PluginHandler{plugins: plugins, logger: logger}
}

type pluginView struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
}

// ListPlugins handles GET /plugins
func (h *PluginHandler) ListPlugins(w http.ResponseWriter, r *http.Request) {
	loaders := h.plugins.Loaders()
	visualizers := h.plugins.Visualizers()

	datasources := make([]pluginView, 0, len(loaders))
	for _, loader := range loaders {
		datasources = append(datasources, pluginView{Identifier: loader.Identifier(), Name: loader.Name()})
	}
	views := make([]pluginView, 0, len(visualizers))
	for _, viz := range visualizers {
		views = append(views, pluginView{Identifier: viz.Identifier(), Name: viz.Name()})
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"datasources": datasources,
		"visualizers": views,
	})
}
