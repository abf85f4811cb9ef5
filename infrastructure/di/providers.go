package di

import (
	"go.uber.org/zap"

	"graphlens/application/services"
	"graphlens/infrastructure/config"
	"graphlens/infrastructure/datasource"
	"graphlens/infrastructure/visualizer"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Plugins    *services.PluginService
	Workspaces *services.WorkspaceService
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvidePluginService creates the plugin registry with the built-in
// loaders and visualizers registered
func ProvidePluginService(cfg *config.Config, logger *zap.Logger) *services.PluginService {
	plugins := services.NewPluginService(logger)
	plugins.RegisterLoader(datasource.NewCSVLoaderWithPolicy(cfg.LoaderLinkAllRows))
	plugins.RegisterLoader(datasource.NewJSONLoader())
	plugins.RegisterLoader(datasource.NewXMLLoader())
	plugins.RegisterVisualizer(visualizer.NewSimpleVisualizer())
	return plugins
}

// ProvideWorkspaceService creates the workspace service
func ProvideWorkspaceService(logger *zap.Logger) *services.WorkspaceService {
	return services.NewWorkspaceService(logger)
}
