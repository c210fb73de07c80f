package model

import (
	"github.com/shopspring/decimal"
)

// Role is the semantic meaning assigned to a physical catalog column
type Role string

const (
	RoleItem     Role = "item"
	RolePrice    Role = "price"
	RoleColor    Role = "color"
	RoleCategory Role = "category"
	RoleSize     Role = "size"
	RoleBrand    Role = "brand"
	RoleStock    Role = "stock"
	RoleLocation Role = "location"
)

// ColumnRoles maps a role to the column that carries it.
// A role missing from the map is unresolved.
type ColumnRoles map[Role]string

// Column returns the column bound to role, if any
func (r ColumnRoles) Column(role Role) (string, bool) {
	col, ok := r[role]
	return col, ok && col != ""
}

// Has reports whether role resolved to a column
func (r ColumnRoles) Has(role Role) bool {
	_, ok := r.Column(role)
	return ok
}

// Table is a raw tabular dataset as delivered by a catalog source
type Table struct {
	Columns []string   `json:"columns"`
	Records [][]string `json:"records"`
}

// CatalogRow represents a single product.
// String fields are empty when the column is absent or the cell is null.
type CatalogRow struct {
	Position int                 `json:"-"`
	Item     string              `json:"item"`
	Color    string              `json:"color,omitempty"`
	Price    decimal.NullDecimal `json:"price"`
	Category string              `json:"category,omitempty"`
	Size     string              `json:"size,omitempty"`
	Brand    string              `json:"brand,omitempty"`
	Stock    string              `json:"stock,omitempty"`
	Location string              `json:"location,omitempty"`
}

// HasPrice reports whether the row has a usable price
func (r CatalogRow) HasPrice() bool {
	return r.Price.Valid
}

// MatchedRow is a catalog row returned by a search, with the reasons it matched
type MatchedRow struct {
	CatalogRow
	MatchedReasons []string `json:"matched_reasons"`
}

// MatchResult is an ordered, possibly empty, sequence of matched rows
type MatchResult []MatchedRow

// Empty reports whether nothing matched
func (m MatchResult) Empty() bool {
	return len(m) == 0
}
