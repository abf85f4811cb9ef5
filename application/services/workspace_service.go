package services

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"graphlens/application/commands"
	"graphlens/application/ports"
	"graphlens/application/query"
	"graphlens/domain/core/aggregates"
	pkgerrors "graphlens/pkg/errors"
)

// Workspace pairs one mutable graph with its accumulated search and
// filter conditions. The workspace is the sole owner of its graph;
// loaders and the interpreter never retain references after returning.
type Workspace struct {
	ID       string
	Name     string
	Graph    *aggregates.Graph
	Searches []query.SearchCondition
	Filters  []query.FilterCondition

	// filtered caches the last result of applying all conditions
	filtered *aggregates.Graph
	lastErr  string

	// mu serializes commands and query evaluation against this
	// workspace, since both read and mutate the same graph in place
	mu sync.Mutex
}

// Snapshot is a point-in-time copy of a workspace's descriptive state,
// safe to read after the workspace lock is released
type Snapshot struct {
	ID       string
	Name     string
	Nodes    int
	Edges    int
	Searches []query.SearchCondition
	Filters  []query.FilterCondition
}

// Snapshot copies the workspace's descriptive state under the lock.
// Handlers read through this instead of the exported fields, which are
// mutated under the same lock by commands and renames.
func (w *Workspace) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	searches := make([]query.SearchCondition, len(w.Searches))
	copy(searches, w.Searches)
	filters := make([]query.FilterCondition, len(w.Filters))
	copy(filters, w.Filters)
	return Snapshot{
		ID:       w.ID,
		Name:     w.Name,
		Nodes:    w.Graph.NodeCount(),
		Edges:    w.Graph.EdgeCount(),
		Searches: searches,
		Filters:  filters,
	}
}

// ReadGraph calls fn with the workspace's source graph while holding
// the workspace lock. fn must copy anything it needs and must not
// retain the graph.
func (w *Workspace) ReadGraph(fn func(*aggregates.Graph)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(w.Graph)
}

// LastError returns the message of the last failed command, if any
func (w *Workspace) LastError() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// FilteredGraph returns the cached result of the last ApplyFilters
// call, falling back to the source graph before the first apply
func (w *Workspace) FilteredGraph() *aggregates.Graph {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.filtered != nil {
		return w.filtered
	}
	return w.Graph
}

// WorkspaceService manages the collection of live workspaces
type WorkspaceService struct {
	mu          sync.RWMutex
	workspaces  map[string]*Workspace
	interpreter *commands.Interpreter
	logger      *zap.Logger
}

// NewWorkspaceService creates a workspace service
func NewWorkspaceService(logger *zap.Logger) *WorkspaceService {
	return &WorkspaceService{
		workspaces:  make(map[string]*Workspace),
		interpreter: commands.NewInterpreter(),
		logger:      logger,
	}
}

// Create registers a workspace owning the given graph and returns its
// id. A nil graph starts the workspace empty.
func (s *WorkspaceService) Create(graph *aggregates.Graph, name string) string {
	if graph == nil {
		graph = aggregates.NewGraph()
	}
	workspace := &Workspace{
		ID:    uuid.New().String(),
		Name:  name,
		Graph: graph,
	}

	s.mu.Lock()
	s.workspaces[workspace.ID] = workspace
	s.mu.Unlock()

	s.logger.Info("Workspace created",
		zap.String("workspaceID", workspace.ID),
		zap.String("name", name),
		zap.Int("nodes", graph.NodeCount()),
		zap.Int("edges", graph.EdgeCount()),
	)
	return workspace.ID
}

// CreateFromContent loads a graph from raw document text with the given
// loader and registers a workspace around it
func (s *WorkspaceService) CreateFromContent(name string, loader ports.Loader, content string) (string, error) {
	graph, err := loader.Load(content)
	if err != nil {
		return "", pkgerrors.Wrap(err, "failed to load graph")
	}
	return s.Create(graph, name), nil
}

// Get retrieves a workspace by id
func (s *WorkspaceService) Get(workspaceID string) (*Workspace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	workspace, ok := s.workspaces[workspaceID]
	if !ok {
		return nil, pkgerrors.NewWorkspaceNotFoundError(workspaceID)
	}
	return workspace, nil
}

// All returns every live workspace
func (s *WorkspaceService) All() []*Workspace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]*Workspace, 0, len(s.workspaces))
	for _, workspace := range s.workspaces {
		all = append(all, workspace)
	}
	return all
}

// Delete discards a workspace and its graph
func (s *WorkspaceService) Delete(workspaceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.workspaces[workspaceID]; !ok {
		return pkgerrors.NewWorkspaceNotFoundError(workspaceID)
	}
	delete(s.workspaces, workspaceID)
	return nil
}

// Rename changes a workspace's display name; blank names are rejected
func (s *WorkspaceService) Rename(workspaceID, name string) error {
	workspace, err := s.Get(workspaceID)
	if err != nil {
		return err
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return pkgerrors.NewValidationError("workspace name cannot be empty")
	}
	workspace.mu.Lock()
	workspace.Name = trimmed
	workspace.mu.Unlock()
	return nil
}

// AddSearch appends a search condition to the workspace
func (s *WorkspaceService) AddSearch(workspaceID, queryText string) error {
	workspace, err := s.Get(workspaceID)
	if err != nil {
		return err
	}
	workspace.mu.Lock()
	workspace.Searches = append(workspace.Searches, query.NewSearchCondition(queryText))
	workspace.mu.Unlock()
	return nil
}

// RemoveSearch removes the search condition at the given index
func (s *WorkspaceService) RemoveSearch(workspaceID string, index int) error {
	workspace, err := s.Get(workspaceID)
	if err != nil {
		return err
	}
	workspace.mu.Lock()
	defer workspace.mu.Unlock()
	if index < 0 || index >= len(workspace.Searches) {
		return pkgerrors.NewValidationError("search index %d out of range", index)
	}
	workspace.Searches = append(workspace.Searches[:index], workspace.Searches[index+1:]...)
	return nil
}

// AddFilter appends a filter condition to the workspace
func (s *WorkspaceService) AddFilter(workspaceID, attribute string, operator query.Operator, value string) error {
	workspace, err := s.Get(workspaceID)
	if err != nil {
		return err
	}
	workspace.mu.Lock()
	workspace.Filters = append(workspace.Filters, query.FilterCondition{
		Attribute: attribute,
		Operator:  operator,
		Value:     value,
	})
	workspace.mu.Unlock()
	return nil
}

// RemoveFilter removes the filter condition at the given index
func (s *WorkspaceService) RemoveFilter(workspaceID string, index int) error {
	workspace, err := s.Get(workspaceID)
	if err != nil {
		return err
	}
	workspace.mu.Lock()
	defer workspace.mu.Unlock()
	if index < 0 || index >= len(workspace.Filters) {
		return pkgerrors.NewValidationError("filter index %d out of range", index)
	}
	workspace.Filters = append(workspace.Filters[:index], workspace.Filters[index+1:]...)
	return nil
}

// ApplyFilters evaluates all accumulated conditions against the
// workspace's graph, caching and returning the filtered graph along
// with any collected soft errors
func (s *WorkspaceService) ApplyFilters(workspaceID string) (*aggregates.Graph, []string, error) {
	workspace, err := s.Get(workspaceID)
	if err != nil {
		return nil, nil, err
	}
	workspace.mu.Lock()
	defer workspace.mu.Unlock()

	filtered, softErrs := query.Evaluate(workspace.Graph, workspace.Searches, workspace.Filters)
	workspace.filtered = filtered

	s.logger.Debug("Applied filters",
		zap.String("workspaceID", workspaceID),
		zap.Int("searches", len(workspace.Searches)),
		zap.Int("filters", len(workspace.Filters)),
		zap.Int("surviving", filtered.NodeCount()),
		zap.Int("softErrors", len(softErrs)),
	)
	return filtered, softErrs, nil
}

// ExecuteCommand runs one command line against the workspace. Mutation
// commands change the graph in place; filter and search commands append
// to the condition lists. On failure the workspace state is unchanged
// and the error message is retrievable through LastError.
func (s *WorkspaceService) ExecuteCommand(commandText, workspaceID string) bool {
	workspace, err := s.Get(workspaceID)
	if err != nil {
		s.logger.Warn("Command against unknown workspace",
			zap.String("workspaceID", workspaceID),
		)
		return false
	}

	workspace.mu.Lock()
	defer workspace.mu.Unlock()

	result, err := s.interpreter.Execute(commandText, workspace.Graph)
	if err != nil {
		workspace.lastErr = err.Error()
		s.logger.Warn("Command failed",
			zap.String("workspaceID", workspaceID),
			zap.String("command", commandText),
			zap.Error(err),
		)
		return false
	}

	switch result.Kind {
	case commands.ResultFilter:
		workspace.Filters = append(workspace.Filters, result.Filters...)
	case commands.ResultSearch:
		workspace.Searches = append(workspace.Searches, *result.Search)
	}

	workspace.lastErr = ""
	return true
}
