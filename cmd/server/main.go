package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgo/todos/api/internal/config"
	"github.com/forgo/todos/api/internal/server"
	"github.com/forgo/todos/api/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logging
	handlerOpts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var logHandler slog.Handler = slog.NewJSONHandler(os.Stdout, handlerOpts)
	if cfg.Log.Format == "text" {
		logHandler = slog.NewTextHandler(os.Stdout, handlerOpts)
	}
	slog.SetDefault(slog.New(logHandler))

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection and schema
	ctx := context.Background()
	store, err := server.OpenStore(ctx, cfg.DriverConfig())
	if err != nil {
		slog.Error("failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	slog.Info("connected to database",
		slog.String("driver", cfg.Database.Driver),
		slog.String("path", cfg.Database.Path),
		slog.String("host", cfg.Database.Host),
	)

	// Initialize services
	todoService := service.NewTodoService(service.TodoServiceConfig{
		TodoRepo: store.Todos,
	})

	if cfg.SeedFile != "" {
		seed(ctx, todoService, cfg.SeedFile)
	}

	handler := server.NewRouter(server.RouterConfig{
		TodoService:    todoService,
		DB:             store.DB,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}

// seed imports the startup seed file. Failures are logged and never stop
// the server.
func seed(ctx context.Context, svc *service.TodoService, path string) {
	results, err := svc.ImportFile(ctx, path)
	if err != nil {
		slog.Error("seed import failed", slog.String("file", path), slog.String("error", err.Error()))
		return
	}

	for i, r := range results {
		if r.Err != nil {
			slog.Warn("seed todo rejected",
				slog.Int("index", i),
				slog.String("title", r.Candidate.Title),
				slog.String("error", r.Err.Error()),
			)
		}
	}

	summary := service.Summarize(results)
	slog.Info("seed import finished",
		slog.String("file", path),
		slog.Int("inserted", summary.Inserted),
		slog.Int("failed", summary.Failed),
	)
}
