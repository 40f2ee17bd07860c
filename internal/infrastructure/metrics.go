package infrastructure

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments for the forecasting pipeline.
type Metrics struct {
	registry *prometheus.Registry

	PipelineRuns     *prometheus.CounterVec
	PipelineDuration prometheus.Histogram
	RowsIngested     prometheus.Counter
	SegmentsTrained  prometheus.Counter
	SegmentsSkipped  prometheus.Counter
}

// NewMetrics registers the pipeline instruments on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		PipelineRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cafecast_pipeline_runs_total",
			Help: "Forecast pipeline runs by outcome.",
		}, []string{"outcome"}),
		PipelineDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cafecast_pipeline_duration_seconds",
			Help:    "Wall time of full pipeline runs.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		}),
		RowsIngested: factory.NewCounter(prometheus.CounterOpts{
			Name: "cafecast_rows_ingested_total",
			Help: "Raw transaction rows accepted by the cleaner.",
		}),
		SegmentsTrained: factory.NewCounter(prometheus.CounterOpts{
			Name: "cafecast_segments_trained_total",
			Help: "Cohort models trained.",
		}),
		SegmentsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "cafecast_segments_skipped_total",
			Help: "Cohorts skipped for having too few rows.",
		}),
	}
}

// Handler exposes the registry for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
