package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafecast/internal/config"
	"cafecast/internal/files"
	"cafecast/internal/infrastructure"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Paths = config.PathsConfig{
		DataDir:     dir,
		UploadsDir:  filepath.Join(dir, "uploads"),
		SummaryFile: filepath.Join(dir, "summary_insight.json"),
	}
	cfg.Forecast.MinSegmentRows = 5
	cfg.Forecast.Epochs = 50
	return &cfg
}

func newTestService(t *testing.T, cfg *config.Config) *ForecastService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewForecastService(cfg, logger, infrastructure.NewMetrics(), files.NewManager(cfg.Paths))
}

// writeSalesCSV writes days of steady sales for Latte (a default high
// seller) and Tea, with an hour column.
func writeSalesCSV(t *testing.T, dir string, days int) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("Date,Money,coffee_name,hour_of_day\n")
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		fmt.Fprintf(&b, "%s,4.50,Latte,9\n", date)
		fmt.Fprintf(&b, "%s,4.50,Latte,10\n", date)
		fmt.Fprintf(&b, "%s,2.00,Tea,15\n", date)
	}

	path := filepath.Join(dir, "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))
	return path
}

func TestRunProducesForecast(t *testing.T) {
	cfg := testConfig(t)
	svc := newTestService(t, cfg)
	path := writeSalesCSV(t, cfg.Paths.DataDir, 40)

	result, err := svc.Run(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 120, result.RowCount)
	assert.Equal(t, 2, result.ItemCount)
	assert.Empty(t, result.SkippedItems)
	assert.Len(t, result.Overall, cfg.Forecast.Horizon)

	// forecast starts the day after the last observed date
	assert.Equal(t, "2024-04-10", result.Overall[0].DateString)
	for _, p := range result.Overall {
		assert.GreaterOrEqual(t, p.PredictedTotal, 0)
	}

	assert.Same(t, result, svc.LastResult())
}

func TestRunPersistsSummary(t *testing.T) {
	cfg := testConfig(t)
	svc := newTestService(t, cfg)
	path := writeSalesCSV(t, cfg.Paths.DataDir, 40)

	_, err := svc.Run(context.Background(), path)
	require.NoError(t, err)

	insight, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Latte", insight.BestMenu)
	assert.Equal(t, "Tea", insight.WorstMenu)
	assert.Equal(t, "Hourly sales generated from 'hour_of_day' column.", insight.Info)
}

func TestSummaryBeforeAnyRun(t *testing.T) {
	cfg := testConfig(t)
	svc := newTestService(t, cfg)

	_, err := svc.Summary(context.Background())
	assert.ErrorIs(t, err, ErrNoSummary)
}

func TestRunSkipsThinSegments(t *testing.T) {
	cfg := testConfig(t)
	cfg.Forecast.MinSegmentRows = 100
	svc := newTestService(t, cfg)

	// 40 days x 1 daily row per item: each segment has 40 feature rows,
	// below the 100 row floor, so nothing trains.
	var b strings.Builder
	b.WriteString("date,money,menu\n")
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 40; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		fmt.Fprintf(&b, "%s,4.50,Latte\n", date)
		fmt.Fprintf(&b, "%s,2.00,Tea\n", date)
	}
	path := filepath.Join(cfg.Paths.DataDir, "thin.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))

	_, err := svc.Run(context.Background(), path)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestRun_SchemaMismatch(t *testing.T) {
	cfg := testConfig(t)
	svc := newTestService(t, cfg)

	path := filepath.Join(cfg.Paths.DataDir, "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("foo,bar\n1,2\n"), 0644))

	_, err := svc.Run(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
}
