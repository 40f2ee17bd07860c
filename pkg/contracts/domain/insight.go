package domain

// SalesInsight is the flat summary document persisted after every
// pipeline run and served back on the summary endpoint.
type SalesInsight struct {
	BestMenu             string  `json:"best_menu"`
	BestMenuTotalRevenue float64 `json:"best_menu_total_revenue"`
	WorstMenu            string  `json:"worst_menu"`
	BestDayOfWeek        string  `json:"best_day_of_week"`
	WorstDayOfWeek       string  `json:"worst_day_of_week"`
	BestHour             string  `json:"best_hour"`
	WorstHour            string  `json:"worst_hour"`
	Info                 string  `json:"info"`
}
