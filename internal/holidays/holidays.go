// Package holidays provides the fixed Thai national holiday calendar used
// to flag holiday dates during feature building.
package holidays

import (
	"fmt"
	"time"

	"cafecast/pkg/contracts/domain"
)

// Set holds holiday dates keyed by their canonical date string.
type Set map[string]struct{}

// fixedDates are holidays falling on the same month/day every year.
var fixedDates = []struct {
	Month time.Month
	Day   int
	Name  string
}{
	{time.January, 1, "New Year's Day"},
	{time.April, 6, "Chakri Memorial Day"},
	{time.April, 13, "Songkran"},
	{time.April, 14, "Songkran"},
	{time.April, 15, "Songkran"},
	{time.May, 1, "National Labour Day"},
	{time.May, 4, "Coronation Day"},
	{time.June, 3, "Queen's Birthday"},
	{time.July, 28, "King's Birthday"},
	{time.August, 12, "Mother's Day"},
	{time.October, 13, "King Bhumibol Memorial Day"},
	{time.October, 23, "Chulalongkorn Day"},
	{time.December, 5, "Father's Day"},
	{time.December, 10, "Constitution Day"},
	{time.December, 31, "New Year's Eve"},
}

// lunarDates are the Buddhist holidays that move with the lunar calendar.
// Years outside this table fall back to the fixed-date set only.
var lunarDates = map[int][]string{
	2020: {"2020-02-08", "2020-05-06", "2020-07-05", "2020-07-06"},
	2021: {"2021-02-26", "2021-05-26", "2021-07-24", "2021-07-25"},
	2022: {"2022-02-16", "2022-05-15", "2022-07-13", "2022-07-14"},
	2023: {"2023-03-06", "2023-06-03", "2023-08-01", "2023-08-02"},
	2024: {"2024-02-24", "2024-05-22", "2024-07-20", "2024-07-21"},
	2025: {"2025-02-12", "2025-05-11", "2025-07-10", "2025-07-11"},
	2026: {"2026-03-03", "2026-05-31", "2026-07-29", "2026-07-30"},
	2027: {"2027-02-21", "2027-05-20", "2027-07-18", "2027-07-19"},
}

// ForYears builds the holiday set covering every calendar year from first
// through last inclusive.
func ForYears(first, last int) Set {
	set := make(Set)
	for year := first; year <= last; year++ {
		for _, fd := range fixedDates {
			set[fmt.Sprintf("%04d-%02d-%02d", year, fd.Month, fd.Day)] = struct{}{}
		}
		for _, day := range lunarDates[year] {
			set[day] = struct{}{}
		}
	}
	return set
}

// Contains reports whether the given date is a national holiday.
func (s Set) Contains(t time.Time) bool {
	_, ok := s[t.Format(domain.DateFormat)]
	return ok
}
