package exporter

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"

	"cafecast/pkg/contracts/domain"
)

// ForecastExporter writes forecast results as CSV files into an output
// directory.
type ForecastExporter struct {
	writer *CSVWriter
	logger *slog.Logger
}

// NewForecastExporter creates a forecast exporter.
func NewForecastExporter(logger *slog.Logger) *ForecastExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ForecastExporter{writer: NewCSVWriter(), logger: logger}
}

// ExportOverall writes the per-date overall forecast to
// overall_forecast.csv in outputDir.
func (e *ForecastExporter) ExportOverall(points []domain.OverallPoint, outputDir string) (string, error) {
	records := make([][]string, 0, len(points))
	for _, p := range points {
		records = append(records, []string{p.DateString, strconv.Itoa(p.PredictedTotal)})
	}

	path := filepath.Join(outputDir, "overall_forecast.csv")
	err := e.writer.WriteCSV(path, WriteOptions{
		Headers:   []string{"date", "predicted_sale"},
		Records:   records,
		BOMPrefix: true,
	})
	if err != nil {
		return "", fmt.Errorf("export overall forecast: %w", err)
	}

	e.logger.Info("overall forecast exported",
		slog.String("path", path),
		slog.Int("days", len(points)))
	return path, nil
}

// ExportItems writes the per-item forecast points to
// item_forecasts.csv in outputDir, in input order.
func (e *ForecastExporter) ExportItems(points []domain.ForecastPoint, outputDir string) (string, error) {
	records := make([][]string, 0, len(points))
	for _, p := range points {
		records = append(records, []string{
			p.Date.Format(domain.DateFormat),
			p.ItemName,
			strconv.Itoa(p.PredictedCount),
		})
	}

	path := filepath.Join(outputDir, "item_forecasts.csv")
	err := e.writer.WriteCSV(path, WriteOptions{
		Headers:   []string{"date", "item_name", "predicted_sale"},
		Records:   records,
		BOMPrefix: true,
	})
	if err != nil {
		return "", fmt.Errorf("export item forecasts: %w", err)
	}

	e.logger.Info("item forecasts exported",
		slog.String("path", path),
		slog.Int("points", len(points)))
	return path, nil
}
