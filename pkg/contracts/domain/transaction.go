package domain

import (
	"time"
)

// Role identifies the semantic meaning of an input column.
type Role string

const (
	RoleDate  Role = "date"
	RoleMoney Role = "money"
	RoleItem  Role = "item"
	RoleHour  Role = "hour"
)

// ColumnMap maps semantic roles to the actual column names found in an
// uploaded table. It is built once per input file. The hour role is only
// present when one of its aliases matched a real column.
type ColumnMap map[Role]string

// HasHour reports whether the optional hour-of-day column was resolved.
func (m ColumnMap) HasHour() bool {
	_, ok := m[RoleHour]
	return ok
}

// RawTransaction is one point-of-sale event after cleaning. Date always
// parses under the canonical format, Money is a finite non-negative float
// and ItemName is trimmed. HourOfDay is nil when the source column was
// absent or held a non-numeric value.
type RawTransaction struct {
	Date         time.Time `json:"date"`
	Money        float64   `json:"money"`
	ItemName     string    `json:"item_name"`
	HourOfDay    *int      `json:"hour_of_day,omitempty"`
	WeekdayIndex int       `json:"weekday_index"` // 1=Monday .. 7=Sunday
	MonthIndex   int       `json:"month_index"`   // 1..12
}

// DateFormat is the single accepted layout for transaction dates.
const DateFormat = "2006-01-02"
