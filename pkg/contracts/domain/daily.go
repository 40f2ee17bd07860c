package domain

import (
	"time"
)

// MenuGroup partitions menu items into cohorts that are modeled
// separately.
type MenuGroup string

const (
	GroupHighSellers MenuGroup = "High_Sellers"
	GroupLowSellers  MenuGroup = "Low_Sellers"
)

// DailyRecord is one row per (date, item): how many times the item sold
// that day and the revenue it brought in. WeekdayIndex and MonthIndex are
// carried redundantly from the raw table so downstream stages never
// re-derive them from the date.
type DailyRecord struct {
	Date         time.Time `json:"date"`
	WeekdayIndex int       `json:"weekday_index"`
	MonthIndex   int       `json:"month_index"`
	ItemName     string    `json:"item_name"`
	SaleCount    int       `json:"sale_count"`
	TotalRevenue float64   `json:"total_revenue"`
}

// FeatureRecord is a DailyRecord enriched with the model features.
//
// SaleYesterday and SaleLastWeek are row shifts within the item's own
// chronological series, not calendar-day lookups: an item with gaps in
// its history has its lag window shifted accordingly.
type FeatureRecord struct {
	DailyRecord

	IsHoliday     int       `json:"is_holiday"` // 0/1
	DayIndex      int       `json:"day_index"`  // days since earliest observed date
	SaleYesterday int       `json:"sale_yesterday"`
	SaleLastWeek  int       `json:"sale_last_week"`
	IsWeekend     int       `json:"is_weekend"` // 0/1
	Group         MenuGroup `json:"menu_group"`
}

// Features returns the model input vector for this record.
func (r FeatureRecord) Features() FeatureVector {
	return FeatureVector{
		WeekdayIndex:  r.WeekdayIndex,
		MonthIndex:    r.MonthIndex,
		ItemName:      r.ItemName,
		SaleYesterday: r.SaleYesterday,
		SaleLastWeek:  r.SaleLastWeek,
		IsWeekend:     r.IsWeekend,
		IsHoliday:     r.IsHoliday,
	}
}
