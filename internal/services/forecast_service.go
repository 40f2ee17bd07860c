package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"cafecast/internal/config"
	"cafecast/internal/dataprocessing"
	"cafecast/internal/files"
	"cafecast/internal/forecast"
	"cafecast/internal/infrastructure"
	"cafecast/pkg/contracts/domain"
)

// PipelineResult is the outcome of one complete forecasting run.
type PipelineResult struct {
	GeneratedAt  time.Time              `json:"generated_at"`
	SourceFile   string                 `json:"source_file"`
	RowCount     int                    `json:"row_count"`
	ItemCount    int                    `json:"item_count"`
	SkippedItems []string               `json:"skipped_items,omitempty"`
	Overall      []domain.OverallPoint  `json:"overall_future_sales"`
	ItemPoints   []domain.ForecastPoint `json:"-"`
}

// ForecastService orchestrates the sales forecasting pipeline: read,
// resolve columns, clean, summarize, aggregate daily, add features,
// segment, train per segment, roll forecasts, aggregate per date.
type ForecastService struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *infrastructure.Metrics
	files   *files.Manager
	trainer forecast.Trainer

	mu   sync.RWMutex
	last *PipelineResult
}

// NewForecastService wires the pipeline from configuration. The
// training backend comes from the forecast section of the config.
func NewForecastService(cfg *config.Config, logger *slog.Logger, metrics *infrastructure.Metrics, fileManager *files.Manager) *ForecastService {
	if logger == nil {
		logger = slog.Default()
	}
	trainer := forecast.NewLinearTrainer(logger, forecast.TrainerConfig{
		Epochs:          cfg.Forecast.Epochs,
		LearningRate:    cfg.Forecast.LearningRate,
		L2:              cfg.Forecast.L2,
		HoldoutFraction: cfg.Forecast.HoldoutFraction,
	})
	return &ForecastService{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		files:   fileManager,
		trainer: trainer,
	}
}

// Run executes the full pipeline on an uploaded file that has already
// been stored on disk, persists the summary insight, and returns the
// overall forecast. The last successful result is retained for later
// retrieval.
func (s *ForecastService) Run(ctx context.Context, path string) (*PipelineResult, error) {
	tracer := otel.Tracer(infrastructure.TracerName)
	ctx, span := tracer.Start(ctx, "pipeline.run",
		trace.WithAttributes(attribute.String("source", path)))
	defer span.End()

	start := time.Now()
	result, err := s.run(ctx, path)
	elapsed := time.Since(start)

	s.metrics.PipelineDuration.Observe(elapsed.Seconds())
	if err != nil {
		s.metrics.PipelineRuns.WithLabelValues("failure").Inc()
		s.logger.ErrorContext(ctx, "pipeline run failed",
			slog.String("source", path),
			slog.Duration("elapsed", elapsed),
			slog.String("error", err.Error()))
		return nil, err
	}
	s.metrics.PipelineRuns.WithLabelValues("success").Inc()

	s.mu.Lock()
	s.last = result
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "pipeline run complete",
		slog.String("source", path),
		slog.Int("rows", result.RowCount),
		slog.Int("items", result.ItemCount),
		slog.Int("forecast_days", len(result.Overall)),
		slog.Duration("elapsed", elapsed))
	return result, nil
}

func (s *ForecastService) run(ctx context.Context, path string) (*PipelineResult, error) {
	table, err := dataprocessing.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	columns, err := dataprocessing.ResolveColumns(table.Headers, dataprocessing.DefaultRoles())
	if err != nil {
		return nil, err
	}

	transactions, err := dataprocessing.CleanRows(table, columns)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, ErrNoData
	}
	s.metrics.RowsIngested.Add(float64(len(transactions)))

	summarizer := dataprocessing.NewSummarizer(s.logger)
	insight, err := summarizer.Generate(ctx, transactions, columns.HasHour())
	if err != nil {
		return nil, fmt.Errorf("generate summary insight: %w", err)
	}
	if err := s.files.WriteInsight(insight); err != nil {
		return nil, err
	}

	daily := dataprocessing.BuildDaily(transactions)
	features := dataprocessing.AddFeatures(daily)

	highSellers := s.cfg.Forecast.HighSellers
	if len(highSellers) == 0 {
		highSellers = dataprocessing.DefaultHighSellers()
	}
	segmenter := dataprocessing.NewSegmenter(highSellers, dataprocessing.TopRevenueItem(transactions))
	labeled := segmenter.AssignGroups(features)
	segments := dataprocessing.SplitByGroup(labeled)

	models, err := forecast.TrainSegments(ctx, s.logger, s.trainer, segments, s.cfg.Forecast.MinSegmentRows)
	if err != nil {
		return nil, err
	}
	s.metrics.SegmentsTrained.Add(float64(len(models)))
	s.metrics.SegmentsSkipped.Add(float64(len(segments) - len(models)))

	histories := make(map[string][]domain.FeatureRecord)
	var items []string
	for _, row := range labeled {
		if _, seen := histories[row.ItemName]; !seen {
			items = append(items, row.ItemName)
		}
		histories[row.ItemName] = append(histories[row.ItemName], row)
	}
	sort.Strings(items)

	result := &PipelineResult{
		GeneratedAt: time.Now().UTC(),
		SourceFile:  path,
		RowCount:    len(transactions),
		ItemCount:   len(items),
	}
	for _, item := range items {
		model, ok := models[segmenter.GroupFor(item)]
		if !ok {
			result.SkippedItems = append(result.SkippedItems, item)
			continue
		}
		result.ItemPoints = append(result.ItemPoints,
			forecast.Roll(model, item, histories[item], s.cfg.Forecast.Horizon)...)
	}
	if len(result.ItemPoints) == 0 {
		return nil, ErrNoData
	}
	result.Overall = forecast.SumByDate(result.ItemPoints)
	return result, nil
}

// LastResult returns the most recent successful pipeline run, or nil
// when no run has completed since startup.
func (s *ForecastService) LastResult() *PipelineResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// Summary returns the persisted summary insight from the most recent
// run, including runs from before a restart.
func (s *ForecastService) Summary(ctx context.Context) (domain.SalesInsight, error) {
	insight, err := s.files.ReadInsight()
	if err != nil {
		if os.IsNotExist(err) {
			return domain.SalesInsight{}, ErrNoSummary
		}
		return domain.SalesInsight{}, fmt.Errorf("read summary insight: %w", err)
	}
	return insight, nil
}
