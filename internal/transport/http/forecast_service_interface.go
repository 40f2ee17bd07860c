package http

import (
	"context"

	"cafecast/internal/services"
	"cafecast/pkg/contracts/domain"
)

// ForecastServiceInterface is the service contract the forecast handler
// depends on. Defined here so handler tests can substitute a stub.
type ForecastServiceInterface interface {
	Run(ctx context.Context, path string) (*services.PipelineResult, error)
	LastResult() *services.PipelineResult
	Summary(ctx context.Context) (domain.SalesInsight, error)
}
