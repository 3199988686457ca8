// Package server assembles the HTTP handler tree: routes, handlers and the
// global middleware chain.
package server

import (
	"net/http"

	"github.com/forgo/todos/api/internal/handler"
	"github.com/forgo/todos/api/internal/middleware"
	"github.com/forgo/todos/api/internal/service"
)

// RouterConfig holds the dependencies of the HTTP surface
type RouterConfig struct {
	TodoService    *service.TodoService
	DB             handler.Pinger
	AllowedOrigins []string
	MaxBodyBytes   int64
}

// NewRouter registers every route and wraps the mux in global middleware
func NewRouter(cfg RouterConfig) http.Handler {
	todoHandler := handler.NewTodoHandler(cfg.TodoService)
	healthHandler := handler.NewHealthHandler(cfg.DB)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Todo endpoints
	todoHandler.RegisterRoutes(mux)

	// Apply global middleware
	return middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.AllowedOrigins),
		middleware.MaxBody(cfg.MaxBodyBytes),
		middleware.Compress,
	)
}
