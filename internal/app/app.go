package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/dReyko-sff/herreria-backend1/internal/config"
	handler "github.com/dReyko-sff/herreria-backend1/internal/handler/http"
	"github.com/dReyko-sff/herreria-backend1/internal/repository/jsonfile"
	"github.com/dReyko-sff/herreria-backend1/internal/service"
	"github.com/dReyko-sff/herreria-backend1/pkg/health"
)

// App wires together all dependencies and runs the service.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Ensure the data directory exists before the stores touch it.
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", cfg.DataDir, err)
	}
	logger.Info("data directory ready",
		slog.String("dir", cfg.DataDir),
		slog.String("products_file", cfg.ProductsFile),
		slog.String("carts_file", cfg.CartsFile),
	)

	// Build the dependency graph.
	productStore := jsonfile.NewProductStore(cfg.ProductsPath())
	cartStore := jsonfile.NewCartStore(cfg.CartsPath())
	productService := service.NewProductService(productStore, logger)
	cartService := service.NewCartService(cartStore, logger)

	// Health checks. Readiness probes that the data directory is writable.
	healthHandler := health.NewHandler()
	healthHandler.Register("datadir", func(ctx context.Context) error {
		probe := filepath.Join(cfg.DataDir, ".ready")
		if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
			return err
		}
		return os.Remove(probe)
	})

	// HTTP router.
	router := handler.NewRouter(productService, cartService, healthHandler, logger, cfg.Environment)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		return err
	}

	a.logger.Info("application shutdown complete")
	return nil
}
