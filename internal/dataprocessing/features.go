package dataprocessing

import (
	"sort"

	"cafecast/internal/holidays"
	"cafecast/pkg/contracts/domain"
)

// AddFeatures derives the model features from the daily table. The input
// slice is not modified.
//
// Rows are sorted by (item, date) before lag computation: SaleYesterday
// and SaleLastWeek are 1-row and 7-row shifts within each item's own
// chronological series. Calendar gaps in an item's history therefore
// shift the lag window rather than producing zeros; that row-shift
// behavior is intentional and must not be converted to calendar lags.
func AddFeatures(daily []domain.DailyRecord) []domain.FeatureRecord {
	features := make([]domain.FeatureRecord, len(daily))
	for i, record := range daily {
		features[i] = domain.FeatureRecord{DailyRecord: record}
	}

	sort.SliceStable(features, func(i, j int) bool {
		if features[i].ItemName != features[j].ItemName {
			return features[i].ItemName < features[j].ItemName
		}
		return features[i].Date.Before(features[j].Date)
	})

	if len(features) == 0 {
		return features
	}

	minDate, maxDate := features[0].Date, features[0].Date
	for _, f := range features[1:] {
		if f.Date.Before(minDate) {
			minDate = f.Date
		}
		if f.Date.After(maxDate) {
			maxDate = f.Date
		}
	}
	calendar := holidays.ForYears(minDate.Year(), maxDate.Year())

	// Per-item running sale history for the row-shift lags.
	history := make(map[string][]int)

	for i := range features {
		f := &features[i]

		if calendar.Contains(f.Date) {
			f.IsHoliday = 1
		}
		f.DayIndex = int(f.Date.Sub(minDate).Hours() / 24)
		if f.WeekdayIndex == 6 || f.WeekdayIndex == 7 {
			f.IsWeekend = 1
		}

		prior := history[f.ItemName]
		if len(prior) >= 1 {
			f.SaleYesterday = prior[len(prior)-1]
		}
		if len(prior) >= 7 {
			f.SaleLastWeek = prior[len(prior)-7]
		}
		history[f.ItemName] = append(prior, f.SaleCount)
	}

	return features
}
