package services

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cafecast/internal/config"
	"cafecast/pkg/contracts"
)

// HealthStatus is the readiness report served on the health endpoint.
type HealthStatus struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Uptime    string            `json:"uptime"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// HealthService reports service readiness. It verifies the data
// directory is writable, since every pipeline run persists files there.
type HealthService struct {
	cfg     *config.Config
	logger  *slog.Logger
	started time.Time
}

// NewHealthService creates a health service.
func NewHealthService(cfg *config.Config, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{cfg: cfg, logger: logger, started: time.Now()}
}

// Check runs the readiness probes and returns the aggregate status.
func (s *HealthService) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "healthy",
		Version:   contracts.Version,
		Uptime:    time.Since(s.started).Round(time.Second).String(),
		Timestamp: time.Now().UTC(),
		Checks:    map[string]string{},
	}

	if err := s.checkDataDir(); err != nil {
		status.Status = "degraded"
		status.Checks["data_dir"] = err.Error()
		s.logger.WarnContext(ctx, "data directory not writable",
			slog.String("dir", s.cfg.Paths.DataDir),
			slog.String("error", err.Error()))
	} else {
		status.Checks["data_dir"] = "ok"
	}
	return status
}

func (s *HealthService) checkDataDir() error {
	dir := s.cfg.Paths.DataDir
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	probe := filepath.Join(dir, ".healthcheck")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return err
	}
	return os.Remove(probe)
}
