package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"graphlens/application/services"
	"graphlens/infrastructure/config"
	"graphlens/interfaces/http/rest/handlers"
	"graphlens/interfaces/http/rest/middleware"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg        *config.Config
	workspaces *services.WorkspaceService
	plugins    *services.PluginService
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	workspaces *services.WorkspaceService,
	plugins *services.PluginService,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:        cfg,
		workspaces: workspaces,
		plugins:    plugins,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	router.Route("/api/v1", func(r chi.Router) {
		workspaceHandler := handlers.NewWorkspaceHandler(rt.workspaces, rt.plugins, rt.logger)
		pluginHandler := handlers.NewPluginHandler(rt.plugins, rt.logger)

		r.Get("/plugins", pluginHandler.ListPlugins)

		r.Route("/workspaces", func(r chi.Router) {
			r.Post("/", workspaceHandler.CreateWorkspace)
			r.Get("/", workspaceHandler.ListWorkspaces)

			r.Route("/{workspaceID}", func(r chi.Router) {
				r.Get("/", workspaceHandler.GetWorkspace)
				r.Put("/", workspaceHandler.RenameWorkspace)
				r.Delete("/", workspaceHandler.DeleteWorkspace)

				r.Post("/commands", workspaceHandler.ExecuteCommand)
				r.Post("/searches", workspaceHandler.AddSearch)
				r.Delete("/searches/{index}", workspaceHandler.RemoveSearch)
				r.Post("/filters", workspaceHandler.AddFilter)
				r.Delete("/filters/{index}", workspaceHandler.RemoveFilter)
				r.Post("/apply", workspaceHandler.ApplyFilters)
				r.Get("/view", workspaceHandler.View)
			})
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
