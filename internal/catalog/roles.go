package catalog

import (
	"strings"

	"shopassist/internal/model"
)

// RoleRule binds a role to the keyword substrings that identify its column
type RoleRule struct {
	Role     model.Role
	Keywords []string
}

// RoleRules is the column-detection heuristic table.
// For each role the first column (in column order) containing any keyword wins.
var RoleRules = []RoleRule{
	{Role: model.RoleItem, Keywords: []string{"item"}},
	{Role: model.RolePrice, Keywords: []string{"price", "amount", "cost", "usd"}},
	{Role: model.RoleColor, Keywords: []string{"color"}},
	{Role: model.RoleCategory, Keywords: []string{"category"}},
	{Role: model.RoleSize, Keywords: []string{"size"}},
	{Role: model.RoleBrand, Keywords: []string{"brand", "company"}},
	{Role: model.RoleStock, Keywords: []string{"stock", "availability"}},
	{Role: model.RoleLocation, Keywords: []string{"location", "city", "store"}},
}

// NormalizeColumn lowercases and trims a column name
func NormalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ResolveColumns assigns roles to columns using RoleRules.
// Column names are expected to be normalized already.
func ResolveColumns(columns []string) model.ColumnRoles {
	return ResolveColumnsWith(RoleRules, columns)
}

// ResolveColumnsWith assigns roles using a custom rule table
func ResolveColumnsWith(rules []RoleRule, columns []string) model.ColumnRoles {
	roles := make(model.ColumnRoles)
	for _, rule := range rules {
		for _, col := range columns {
			if col == "" {
				continue
			}
			if containsAny(col, rule.Keywords) {
				roles[rule.Role] = col
				break
			}
		}
	}
	return roles
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
