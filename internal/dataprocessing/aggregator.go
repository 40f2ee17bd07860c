package dataprocessing

import (
	"cafecast/pkg/contracts/domain"
)

type dailyKey struct {
	date string
	item string
}

// BuildDaily collapses raw transactions into one DailyRecord per
// (date, item): SaleCount is the number of transactions in the group and
// TotalRevenue the sum of their money values. Weekday and month indexes
// ride along from the raw rows so later stages never re-derive them.
// Output ordering is unspecified; the feature builder sorts.
func BuildDaily(transactions []domain.RawTransaction) []domain.DailyRecord {
	groups := make(map[dailyKey]*domain.DailyRecord)
	order := make([]dailyKey, 0)

	for _, tx := range transactions {
		key := dailyKey{date: tx.Date.Format(domain.DateFormat), item: tx.ItemName}
		record, ok := groups[key]
		if !ok {
			record = &domain.DailyRecord{
				Date:         tx.Date,
				WeekdayIndex: tx.WeekdayIndex,
				MonthIndex:   tx.MonthIndex,
				ItemName:     tx.ItemName,
			}
			groups[key] = record
			order = append(order, key)
		}
		record.SaleCount++
		record.TotalRevenue += tx.Money
	}

	daily := make([]domain.DailyRecord, 0, len(order))
	for _, key := range order {
		daily = append(daily, *groups[key])
	}
	return daily
}
