package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"

	"cafecast/pkg/contracts/domain"
)

var weekdayNames = map[int]string{
	1: "Mon", 2: "Tue", 3: "Wed", 4: "Thu", 5: "Fri", 6: "Sat", 7: "Sun",
}

// Summarizer derives the business insight document from the cleaned raw
// transaction table.
type Summarizer struct {
	logger *slog.Logger
}

// NewSummarizer creates a new insight summarizer.
func NewSummarizer(logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{logger: logger}
}

// Generate computes the best/worst menu, weekday and hour insight.
// hasHourColumn separates "the upload carried no hour column" from "the
// column existed but held no usable values"; the two cases produce
// different unavailability reasons.
func (s *Summarizer) Generate(ctx context.Context, transactions []domain.RawTransaction, hasHourColumn bool) (domain.SalesInsight, error) {
	if len(transactions) == 0 {
		return domain.SalesInsight{}, fmt.Errorf("no transactions to summarize")
	}

	menuTotals := make(map[string]float64)
	dayTotals := make(map[int]float64)
	hourTotals := make(map[int]float64)
	hourSamples := 0

	for _, tx := range transactions {
		menuTotals[tx.ItemName] += tx.Money
		dayTotals[tx.WeekdayIndex] += tx.Money
		if tx.HourOfDay != nil {
			hourTotals[*tx.HourOfDay] += tx.Money
			hourSamples++
		}
	}

	bestMenu, worstMenu := extremesByRevenue(menuTotals)
	bestDay, worstDay := extremesByRevenue(dayTotals)

	insight := domain.SalesInsight{
		BestMenu:             bestMenu,
		BestMenuTotalRevenue: menuTotals[bestMenu],
		WorstMenu:            worstMenu,
		BestDayOfWeek:        weekdayNames[bestDay],
		WorstDayOfWeek:       weekdayNames[worstDay],
	}

	switch {
	case !hasHourColumn:
		insight.BestHour = "Not Available (no hour_of_day column)"
		insight.WorstHour = insight.BestHour
		insight.Info = "CSV contains no hour_of_day column."
	case hourSamples == 0:
		insight.BestHour = "Not Available (empty hour data)"
		insight.WorstHour = insight.BestHour
		insight.Info = "hour_of_day column exists but no usable data."
	default:
		bestHour, worstHour := extremesByRevenue(hourTotals)
		insight.BestHour = fmt.Sprintf("%02d:00", bestHour)
		insight.WorstHour = fmt.Sprintf("%02d:00", worstHour)
		insight.Info = "Hourly sales generated from 'hour_of_day' column."
	}

	s.logger.InfoContext(ctx, "sales insight generated",
		slog.String("best_menu", insight.BestMenu),
		slog.String("worst_menu", insight.WorstMenu),
		slog.String("best_day", insight.BestDayOfWeek),
		slog.Int("hour_samples", hourSamples))

	return insight, nil
}

// extremesByRevenue returns the keys with the highest and lowest summed
// revenue. Ties break toward the smaller key for deterministic output.
func extremesByRevenue[K int | string](totals map[K]float64) (best, worst K) {
	first := true
	for key, total := range totals {
		if first {
			best, worst = key, key
			first = false
			continue
		}
		if total > totals[best] || (total == totals[best] && key < best) {
			best = key
		}
		if total < totals[worst] || (total == totals[worst] && key < worst) {
			worst = key
		}
	}
	return best, worst
}
