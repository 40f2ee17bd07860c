package dataprocessing

import (
	"math"
	"strconv"
	"strings"
	"time"

	"cafecast/pkg/contracts/domain"
)

// moneyScrubber strips thousands separators and quote characters from
// money cells before numeric parsing.
var moneyScrubber = strings.NewReplacer(",", "", `"`, "")

// CleanRows coerces the raw table into canonical RawTransaction records
// using the resolved column map. A single malformed date or money cell
// fails the whole operation; there is no row-skip recovery, since the
// aggregation downstream assumes a fully well-typed table. The optional
// hour column is the one exception: non-numeric hours become nil.
//
// Row numbers in errors are 1-based data row positions, excluding the
// header.
func CleanRows(table *Table, columns domain.ColumnMap) ([]domain.RawTransaction, error) {
	index := make(map[domain.Role]int, len(columns))
	for role, name := range columns {
		for i, header := range table.Headers {
			if header == name {
				index[role] = i
				break
			}
		}
	}

	cell := func(row []string, role domain.Role) string {
		i, ok := index[role]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	transactions := make([]domain.RawTransaction, 0, len(table.Rows))
	for n, row := range table.Rows {
		rawDate := strings.TrimSpace(cell(row, domain.RoleDate))
		date, err := time.Parse(domain.DateFormat, rawDate)
		if err != nil {
			return nil, &DateParseError{Row: n + 1, Value: rawDate}
		}

		rawMoney := cell(row, domain.RoleMoney)
		money, err := strconv.ParseFloat(strings.TrimSpace(moneyScrubber.Replace(rawMoney)), 64)
		if err != nil || math.IsNaN(money) || math.IsInf(money, 0) || money < 0 {
			return nil, &MoneyParseError{Row: n + 1, Value: rawMoney}
		}

		tx := domain.RawTransaction{
			Date:         date,
			Money:        money,
			ItemName:     strings.TrimSpace(cell(row, domain.RoleItem)),
			WeekdayIndex: weekdayIndex(date),
			MonthIndex:   int(date.Month()),
		}

		if columns.HasHour() {
			if v, err := strconv.ParseFloat(strings.TrimSpace(cell(row, domain.RoleHour)), 64); err == nil {
				hour := int(v)
				tx.HourOfDay = &hour
			}
		}

		transactions = append(transactions, tx)
	}

	return transactions, nil
}

// weekdayIndex maps time.Weekday onto the 1=Monday..7=Sunday convention
// used throughout the feature table.
func weekdayIndex(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}
