package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"cafecast/internal/config"
	"cafecast/internal/exporter"
	"cafecast/internal/files"
	"cafecast/internal/infrastructure"
	"cafecast/internal/services"
	"cafecast/internal/validation"
)

func main() {
	inFile := flag.String("in", "", "sales file to forecast from (.csv or .xlsx)")
	outDir := flag.String("out", "", "output directory for forecast CSVs (defaults to the data directory)")
	horizon := flag.Int("days", 0, "forecast horizon in days (defaults to configuration)")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall run timeout")
	flag.Parse()

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "usage: forecast -in <sales.csv> [-out <dir>] [-days <n>]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *horizon > 0 {
		cfg.Forecast.Horizon = *horizon
	}
	if *outDir == "" {
		*outDir = cfg.Paths.DataDir
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	validator := validation.NewFileValidator(logger)
	if err := validator.ValidateInputFile(*inFile); err != nil {
		logger.Error("Invalid input file", "error", err)
		os.Exit(1)
	}
	if err := validator.ValidateOutputDirectory(*outDir); err != nil {
		logger.Error("Invalid output directory", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	service := services.NewForecastService(cfg, logger, infrastructure.NewMetrics(), files.NewManager(cfg.Paths))
	result, err := service.Run(ctx, *inFile)
	if err != nil {
		logger.Error("Forecast run failed", "error", err)
		os.Exit(1)
	}

	csvExporter := exporter.NewForecastExporter(logger)
	overallPath, err := csvExporter.ExportOverall(result.Overall, *outDir)
	if err != nil {
		logger.Error("Export failed", "error", err)
		os.Exit(1)
	}
	if _, err := csvExporter.ExportItems(result.ItemPoints, *outDir); err != nil {
		logger.Error("Export failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Forecast for the next %d days (%d items, %d input rows):\n",
		len(result.Overall), result.ItemCount, result.RowCount)
	for _, p := range result.Overall {
		fmt.Printf("  %s  %d\n", p.DateString, p.PredictedTotal)
	}
	for _, item := range result.SkippedItems {
		fmt.Printf("skipped %s: not enough training data\n", item)
	}
	fmt.Printf("CSV written to %s\n", overallPath)

	if insight, err := service.Summary(ctx); err == nil {
		fmt.Printf("\nBest menu: %s (%.2f revenue)\n", insight.BestMenu, insight.BestMenuTotalRevenue)
		fmt.Printf("Worst menu: %s\n", insight.WorstMenu)
		fmt.Printf("Best day: %s, worst day: %s\n", insight.BestDayOfWeek, insight.WorstDayOfWeek)
		fmt.Printf("Best hour: %s, worst hour: %s\n", insight.BestHour, insight.WorstHour)
	}
}
