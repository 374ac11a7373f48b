package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"veristat/app"
	"veristat/ports"
)

// App represents the HTTP application wrapping the verification service.
// The extraction step stays external: every endpoint consumes
// already-structured candidate records.
type App struct {
	router  *chi.Mux
	service *app.VerifyService
	store   ports.RunStorePort // nil when running stateless
}

// Config holds HTTP application configuration
type Config struct {
	Port string
}

// NewApp creates the HTTP application. store may be nil; run persistence
// and the report endpoints are then disabled.
func NewApp(service *app.VerifyService, store ports.RunStorePort) *App {
	a := &App{
		router:  chi.NewRouter(),
		service: service,
		store:   store,
	}
	a.setupMiddleware()
	a.setupRoutes()
	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/health", a.handleHealth)

	// API endpoints
	a.router.Post("/api/v1/statcheck", a.handleStatcheck)
	a.router.Post("/api/v1/grim", a.handleGrim)
	a.router.Get("/api/v1/runs", a.handleListRuns)
	a.router.Get("/api/v1/runs/{id}", a.handleGetRun)

	// HTML report for a stored run
	a.router.Get("/runs/{id}/report", a.handleRunReport)
}

// Router exposes the configured router
func (a *App) Router() http.Handler {
	return a.router
}

// Serve starts the HTTP server on the configured port
func (a *App) Serve(config Config) error {
	return http.ListenAndServe(":"+config.Port, a.router)
}
