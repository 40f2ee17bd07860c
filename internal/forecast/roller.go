package forecast

import (
	"math"
	"sort"
	"time"

	"cafecast/pkg/contracts/domain"
)

// DefaultHorizon is the number of future days forecast per item.
const DefaultHorizon = 30

// Roll produces an autoregressive forecast for one item: horizon daily
// predictions starting the day after the last historical date, in
// ascending date order.
//
// A rolling sales sequence is seeded with the item's historical counts.
// Each step's feature vector takes its "yesterday" lag from the last
// element and its "last week" lag from seven positions back, so once the
// horizon passes seven days those lags are fed by earlier predictions
// rather than actuals. The compounding error this produces is inherent
// to autoregressive forecasting; do not splice true future values in.
//
// Future dates are never flagged as holidays, even when the calendar
// could answer. An item with no history yields no predictions and no
// error.
func Roll(model Regressor, item string, history []domain.FeatureRecord, horizon int) []domain.ForecastPoint {
	if len(history) == 0 || horizon <= 0 {
		return nil
	}

	sorted := make([]domain.FeatureRecord, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	sales := make([]int, 0, len(sorted)+horizon)
	for _, row := range sorted {
		sales = append(sales, row.SaleCount)
	}
	lastDate := sorted[len(sorted)-1].Date

	points := make([]domain.ForecastPoint, 0, horizon)
	for i := 1; i <= horizon; i++ {
		date := lastDate.AddDate(0, 0, i)

		features := domain.FeatureVector{
			WeekdayIndex:  weekdayIndex(date),
			MonthIndex:    int(date.Month()),
			ItemName:      item,
			SaleYesterday: sales[len(sales)-1],
			IsHoliday:     0,
		}
		if len(sales) >= 7 {
			features.SaleLastWeek = sales[len(sales)-7]
		}
		if features.WeekdayIndex == 6 || features.WeekdayIndex == 7 {
			features.IsWeekend = 1
		}

		predicted := int(math.Round(model.Predict(features)))
		if predicted < 0 {
			predicted = 0
		}

		sales = append(sales, predicted)
		points = append(points, domain.ForecastPoint{
			Date:           date,
			ItemName:       item,
			PredictedCount: predicted,
		})
	}

	return points
}

// SumByDate aggregates per-item forecasts into the overall future sales
// series, ascending by date.
func SumByDate(points []domain.ForecastPoint) []domain.OverallPoint {
	totals := make(map[string]int)
	dates := make(map[string]time.Time)
	for _, p := range points {
		key := p.Date.Format(domain.DateFormat)
		totals[key] += p.PredictedCount
		dates[key] = p.Date
	}

	overall := make([]domain.OverallPoint, 0, len(totals))
	for key, total := range totals {
		overall = append(overall, domain.OverallPoint{
			Date:           dates[key],
			DateString:     key,
			PredictedTotal: total,
		})
	}
	sort.Slice(overall, func(i, j int) bool {
		return overall[i].Date.Before(overall[j].Date)
	})
	return overall
}

func weekdayIndex(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}
