package domain

import (
	"time"
)

// FeatureVector is the input a trained regressor accepts. ItemName is
// categorical; everything else is numeric.
type FeatureVector struct {
	WeekdayIndex  int    `json:"weekday_index"`
	MonthIndex    int    `json:"month_index"`
	ItemName      string `json:"item_name"`
	SaleYesterday int    `json:"sale_yesterday"`
	SaleLastWeek  int    `json:"sale_last_week"`
	IsWeekend     int    `json:"is_weekend"`
	IsHoliday     int    `json:"is_holiday"`
}

// ForecastPoint is a single predicted day for one item.
type ForecastPoint struct {
	Date           time.Time `json:"date"`
	ItemName       string    `json:"item_name"`
	PredictedCount int       `json:"predicted_sale"`
}

// OverallPoint is the predicted sale total across all items for one
// future date.
type OverallPoint struct {
	Date           time.Time `json:"-"`
	DateString     string    `json:"date"`
	PredictedTotal int       `json:"predicted_sale"`
}
