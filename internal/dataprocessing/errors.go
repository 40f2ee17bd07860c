package dataprocessing

import (
	"fmt"
	"strings"
)

// SchemaError reports every required semantic role that could not be
// resolved from the input header, in one failure.
type SchemaError struct {
	MissingRoles []string // display names, in registry order
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.MissingRoles, ", "))
}

// DateParseError reports a date cell that does not conform to the
// expected format. The whole run fails; rows are never skipped.
type DateParseError struct {
	Row   int
	Value string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("row %d: date %q does not match expected format YYYY-MM-DD", e.Row, e.Value)
}

// MoneyParseError reports a money cell with non-numeric residue after
// separators and quotes are stripped.
type MoneyParseError struct {
	Row   int
	Value string
}

func (e *MoneyParseError) Error() string {
	return fmt.Sprintf("row %d: money value %q is not numeric", e.Row, e.Value)
}
