package services

import (
	"sync"

	"go.uber.org/zap"

	"graphlens/application/ports"
	pkgerrors "graphlens/pkg/errors"
)

// PluginService is the registry of datasource and visualizer plugins,
// keyed by their stable identifiers
type PluginService struct {
	mu          sync.RWMutex
	loaders     map[string]ports.Loader
	loaderOrder []string
	visualizers map[string]ports.Visualizer
	vizOrder    []string
	logger      *zap.Logger
}

// NewPluginService creates an empty plugin registry
func NewPluginService(logger *zap.Logger) *PluginService {
	return &PluginService{
		loaders:     make(map[string]ports.Loader),
		visualizers: make(map[string]ports.Visualizer),
		logger:      logger,
	}
}

// RegisterLoader adds a datasource plugin; later registrations under
// the same identifier replace earlier ones
func (s *PluginService) RegisterLoader(loader ports.Loader) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.loaders[loader.Identifier()]; !exists {
		s.loaderOrder = append(s.loaderOrder, loader.Identifier())
	}
	s.loaders[loader.Identifier()] = loader
	s.logger.Info("Registered datasource plugin",
		zap.String("identifier", loader.Identifier()),
		zap.String("name", loader.Name()),
	)
}

// RegisterVisualizer adds a visualizer plugin
func (s *PluginService) RegisterVisualizer(visualizer ports.Visualizer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.visualizers[visualizer.Identifier()]; !exists {
		s.vizOrder = append(s.vizOrder, visualizer.Identifier())
	}
	s.visualizers[visualizer.Identifier()] = visualizer
	s.logger.Info("Registered visualizer plugin",
		zap.String("identifier", visualizer.Identifier()),
		zap.String("name", visualizer.Name()),
	)
}

// Loader looks a datasource plugin up by identifier
func (s *PluginService) Loader(identifier string) (ports.Loader, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	loader, ok := s.loaders[identifier]
	if !ok {
		return nil, pkgerrors.NewValidationError("unknown datasource plugin '%s'", identifier)
	}
	return loader, nil
}

// Visualizer looks a visualizer plugin up by identifier
func (s *PluginService) Visualizer(identifier string) (ports.Visualizer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	visualizer, ok := s.visualizers[identifier]
	if !ok {
		return nil, pkgerrors.NewValidationError("unknown visualizer plugin '%s'", identifier)
	}
	return visualizer, nil
}

// Loaders returns the registered datasource plugins in registration order
func (s *PluginService) Loaders() []ports.Loader {
	s.mu.RLock()
	defer s.mu.RUnlock()
	loaders := make([]ports.Loader, 0, len(s.loaderOrder))
	for _, id := range s.loaderOrder {
		loaders = append(loaders, s.loaders[id])
	}
	return loaders
}

// Visualizers returns the registered visualizer plugins in registration order
func (s *PluginService) Visualizers() []ports.Visualizer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	visualizers := make([]ports.Visualizer, 0, len(s.vizOrder))
	for _, id := range s.vizOrder {
		visualizers = append(visualizers, s.visualizers[id])
	}
	return visualizers
}
