package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"cafecast/internal/config"
	apierrors "cafecast/internal/errors"
	"cafecast/internal/files"
	"cafecast/internal/infrastructure"
	customMiddleware "cafecast/internal/middleware"
	"cafecast/internal/services"
	handlers "cafecast/internal/transport/http"
	"cafecast/pkg/contracts"
)

// Application is the assembled service: configuration, observability,
// services, and the HTTP server.
type Application struct {
	Config          *config.Config
	Logger          *slog.Logger
	Router          *chi.Mux
	Server          *http.Server
	Metrics         *infrastructure.Metrics
	TracerProviders *infrastructure.TracerProviders
	ForecastService *services.ForecastService
	HealthService   *services.HealthService
	Files           *files.Manager
}

// NewApplication loads configuration and wires every component.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	logger.Info("application starting",
		slog.String("version", contracts.Version),
		slog.Int("port", cfg.Server.Port))

	providers, err := infrastructure.InitializeTracing(logger)
	if err != nil {
		return nil, fmt.Errorf("initialize tracing: %w", err)
	}

	if err := os.MkdirAll(cfg.Paths.UploadsDir, 0755); err != nil {
		return nil, fmt.Errorf("create uploads directory: %w", err)
	}

	metrics := infrastructure.NewMetrics()
	fileManager := files.NewManager(cfg.Paths)

	app := &Application{
		Config:          cfg,
		Logger:          logger,
		Metrics:         metrics,
		TracerProviders: providers,
		ForecastService: services.NewForecastService(cfg, logger, metrics, fileManager),
		HealthService:   services.NewHealthService(cfg, logger),
		Files:           fileManager,
	}
	app.setupRouter()
	app.createServer()
	return app, nil
}

func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.RealIP)
	r.Use(customMiddleware.StructuredLogger(a.Logger))
	r.Use(customMiddleware.Recoverer(a.Logger))
	r.Use(customMiddleware.SecurityHeaders)
	r.Use(customMiddleware.Compress(5))

	if a.Config.Security.EnableCORS {
		r.Use(customMiddleware.CORS(customMiddleware.CORSConfig{
			AllowedOrigins: a.Config.Security.AllowedOrigins,
		}))
	}
	if a.Config.Security.RateLimit.Enabled {
		limiter := customMiddleware.NewRateLimiter(
			a.Config.Security.RateLimit.RPS,
			a.Config.Security.RateLimit.Burst,
			a.Logger)
		r.Use(limiter.Handler)
	}

	errorHandler := apierrors.NewErrorHandler(a.Logger)
	forecastHandler := handlers.NewForecastHandler(
		a.ForecastService, a.Files, a.Logger, errorHandler,
		a.Config.Server.MaxUploadBytes)
	healthHandler := handlers.NewHealthHandler(a.HealthService, a.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/healthz", healthHandler.HealthCheck)
		r.Get("/version", healthHandler.Version)
		r.Mount("/", forecastHandler.Routes())
	})
	r.Handle("/metrics", a.Metrics.Handler())

	a.Router = r
}

func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM or a
// server failure, then shuts down gracefully.
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("http server listening", slog.String("addr", a.Server.Addr))
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	a.Logger.Info("shutdown signal received")
	return a.Stop()
}

// Stop shuts the server down within the configured timeout and flushes
// observability state.
func (a *Application) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	if err := a.TracerProviders.Shutdown(ctx); err != nil {
		a.Logger.Warn("tracer shutdown failed", slog.String("error", err.Error()))
	}
	infrastructure.CloseLogFile()
	a.Logger.Info("shutdown complete")
	return nil
}
