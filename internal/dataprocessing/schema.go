package dataprocessing

import (
	"strings"

	"cafecast/pkg/contracts/domain"
)

// RoleSpec describes one semantic role the resolver can bind: its
// canonical role key, the human-readable name used in error messages and
// the lower-cased aliases it matches, in priority order.
type RoleSpec struct {
	Role        domain.Role
	DisplayName string
	Aliases     []string
	Required    bool
}

// DefaultRoles returns the role registry for café POS exports. Callers
// receive a fresh copy; the resolver has no process-wide state.
func DefaultRoles() []RoleSpec {
	return []RoleSpec{
		{
			Role:        domain.RoleDate,
			DisplayName: "Date",
			Aliases:     []string{"date", "timestamp", "order date", "datetime"},
			Required:    true,
		},
		{
			Role:        domain.RoleMoney,
			DisplayName: "Money",
			Aliases:     []string{"money", "price", "total", "revenue", "amount"},
			Required:    true,
		},
		{
			Role:        domain.RoleItem,
			DisplayName: "Coffee Name",
			Aliases:     []string{"coffee_name", "menu_name", "item", "menu", "product"},
			Required:    true,
		},
		{
			Role:        domain.RoleHour,
			DisplayName: "Hour of Day",
			Aliases:     []string{"hour_of_day", "hour", "time_hour"},
			Required:    false,
		},
	}
}

// ResolveColumns maps the header columns onto the given roles. Matching
// is case-insensitive and whitespace-trimmed; for each role the first
// alias in declaration order that matches any column wins. When one or
// more required roles have no match the returned error is a *SchemaError
// listing all of them at once.
func ResolveColumns(headers []string, roles []RoleSpec) (domain.ColumnMap, error) {
	byLower := make(map[string]string, len(headers))
	for _, h := range headers {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, exists := byLower[key]; !exists {
			byLower[key] = h
		}
	}

	columnMap := make(domain.ColumnMap, len(roles))
	var missing []string

	for _, spec := range roles {
		found := false
		for _, alias := range spec.Aliases {
			if original, ok := byLower[alias]; ok {
				columnMap[spec.Role] = original
				found = true
				break
			}
		}
		if !found && spec.Required {
			missing = append(missing, spec.DisplayName)
		}
	}

	if len(missing) > 0 {
		return nil, &SchemaError{MissingRoles: missing}
	}
	return columnMap, nil
}
