package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"graphlens/application/query"
	"graphlens/application/services"
	"graphlens/domain/core/aggregates"
)

// WorkspaceHandler handles workspace-related HTTP requests
type WorkspaceHandler struct {
	workspaces *services.WorkspaceService
	plugins    *services.PluginService
	validate   *validator.Validate
	logger     *zap.Logger
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(
	workspaces *services.WorkspaceService,
	plugins *services.PluginService,
	logger *zap.Logger,
) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaces: workspaces,
		plugins:    plugins,
		validate:   validator.New(),
		logger:     logger,
	}
}

type createWorkspaceRequest struct {
	Name    string `json:"name" validate:"required"`
	Loader  string `json:"loader" validate:"omitempty"`
	Content string `json:"content" validate:"omitempty"`
}

type workspaceSummary struct {
	ID       string                  `json:"id"`
	Name     string                  `json:"name"`
	Nodes    int                     `json:"nodes"`
	Edges    int                     `json:"edges"`
	Searches []query.SearchCondition `json:"searches"`
	Filters  []query.FilterCondition `json:"filters"`
}

func summarize(workspace *services.Workspace) workspaceSummary {
	snap := workspace.Snapshot()
	return workspaceSummary{
		ID:       snap.ID,
		Name:     snap.Name,
		Nodes:    snap.Nodes,
		Edges:    snap.Edges,
		Searches: snap.Searches,
		Filters:  snap.Filters,
	}
}

// CreateWorkspace handles POST /workspaces. With a loader identifier
// and raw content the graph is loaded from the document; otherwise the
// workspace starts with an empty graph.
func (h *WorkspaceHandler) CreateWorkspace(w http.ResponseWriter, r *http.Request) {
	var req createWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	var workspaceID string
	if req.Loader != "" {
		loader, err := h.plugins.Loader(req.Loader)
		if err != nil {
			respondDomainError(w, h.logger, err)
			return
		}
		workspaceID, err = h.workspaces.CreateFromContent(req.Name, loader, req.Content)
		if err != nil {
			h.logger.Warn("Failed to load graph",
				zap.String("loader", req.Loader),
				zap.Error(err),
			)
			respondDomainError(w, h.logger, err)
			return
		}
	} else {
		workspaceID = h.workspaces.Create(aggregates.NewGraph(), req.Name)
	}

	respondJSON(w, h.logger, http.StatusCreated, map[string]string{"workspace_id": workspaceID})
}

// ListWorkspaces handles GET /workspaces
func (h *WorkspaceHandler) ListWorkspaces(w http.ResponseWriter, r *http.Request) {
	all := h.workspaces.All()
	summaries := make([]workspaceSummary, 0, len(all))
	for _, workspace := range all {
		summaries = append(summaries, summarize(workspace))
	}
	respondJSON(w, h.logger, http.StatusOK, summaries)
}

// GetWorkspace handles GET /workspaces/{workspaceID}
func (h *WorkspaceHandler) GetWorkspace(w http.ResponseWriter, r *http.Request) {
	workspace, err := h.workspaces.Get(chi.URLParam(r, "workspaceID"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	var view graphView
	workspace.ReadGraph(func(g *aggregates.Graph) {
		view = newGraphView(g)
	})
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"workspace": summarize(workspace),
		"graph":     view,
	})
}

type renameWorkspaceRequest struct {
	Name string `json:"name" validate:"required"`
}

// RenameWorkspace handles PUT /workspaces/{workspaceID}
func (h *WorkspaceHandler) RenameWorkspace(w http.ResponseWriter, r *http.Request) {
	var req renameWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.workspaces.Rename(chi.URLParam(r, "workspaceID"), req.Name); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]bool{"renamed": true})
}

// DeleteWorkspace handles DELETE /workspaces/{workspaceID}
func (h *WorkspaceHandler) DeleteWorkspace(w http.ResponseWriter, r *http.Request) {
	if err := h.workspaces.Delete(chi.URLParam(r, "workspaceID")); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type executeCommandRequest struct {
	Command string `json:"command" validate:"required"`
}

// ExecuteCommand handles POST /workspaces/{workspaceID}/commands
func (h *WorkspaceHandler) ExecuteCommand(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	workspace, err := h.workspaces.Get(workspaceID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	var req executeCommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	if !h.workspaces.ExecuteCommand(req.Command, workspaceID) {
		respondJSON(w, h.logger, http.StatusUnprocessableEntity, map[string]interface{}{
			"success": false,
			"message": workspace.LastError(),
		})
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"success": true})
}

type addSearchRequest struct {
	Query string `json:"query" validate:"required"`
}

// AddSearch handles POST /workspaces/{workspaceID}/searches
func (h *WorkspaceHandler) AddSearch(w http.ResponseWriter, r *http.Request) {
	var req addSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.workspaces.AddSearch(chi.URLParam(r, "workspaceID"), req.Query); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusCreated, map[string]bool{"added": true})
}

// RemoveSearch handles DELETE /workspaces/{workspaceID}/searches/{index}
func (h *WorkspaceHandler) RemoveSearch(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "index must be an integer")
		return
	}
	if err := h.workspaces.RemoveSearch(chi.URLParam(r, "workspaceID"), index); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type addFilterRequest struct {
	Attribute string `json:"attribute" validate:"required"`
	Operator  string `json:"operator" validate:"required"`
	Value     string `json:"value"`
}

// AddFilter handles POST /workspaces/{workspaceID}/filters
func (h *WorkspaceHandler) AddFilter(w http.ResponseWriter, r *http.Request) {
	var req addFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	op, err := query.ParseOperator(req.Operator)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	if err := h.workspaces.AddFilter(chi.URLParam(r, "workspaceID"), req.Attribute, op, req.Value); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusCreated, map[string]bool{"added": true})
}

// RemoveFilter handles DELETE /workspaces/{workspaceID}/filters/{index}
func (h *WorkspaceHandler) RemoveFilter(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "index must be an integer")
		return
	}
	if err := h.workspaces.RemoveFilter(chi.URLParam(r, "workspaceID"), index); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ApplyFilters handles POST /workspaces/{workspaceID}/apply
func (h *WorkspaceHandler) ApplyFilters(w http.ResponseWriter, r *http.Request) {
	filtered, softErrs, err := h.workspaces.ApplyFilters(chi.URLParam(r, "workspaceID"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	if softErrs == nil {
		softErrs = []string{}
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"graph":  newGraphView(filtered),
		"errors": softErrs,
	})
}

// View handles GET /workspaces/{workspaceID}/view, rendering the
// workspace's current filtered graph with the selected visualizer
func (h *WorkspaceHandler) View(w http.ResponseWriter, r *http.Request) {
	workspace, err := h.workspaces.Get(chi.URLParam(r, "workspaceID"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	identifier := r.URL.Query().Get("visualizer")
	if identifier == "" {
		identifier = "simple_graph_visualizer"
	}
	viz, err := h.plugins.Visualizer(identifier)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	markup, err := viz.Visualize(workspace.FilteredGraph())
	if err != nil {
		h.logger.Error("Failed to render graph",
			zap.String("workspaceID", workspace.ID),
			zap.String("visualizer", identifier),
			zap.Error(err),
		)
		respondError(w, h.logger, http.StatusInternalServerError, "failed to render graph")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(markup))
}
