package catalog

import (
	"strings"

	"shopassist/internal/model"

	"github.com/shopspring/decimal"
)

// Index is the normalized, read-only product catalog.
// It is safe for concurrent readers; nothing mutates it after NewIndex.
type Index struct {
	roles    model.ColumnRoles
	columns  []string
	rows     []model.CatalogRow
	source   string
	degraded bool
}

// NewIndex normalizes a raw table into an index.
// source names where the table came from; degraded marks the demo fallback.
func NewIndex(table *model.Table, source string, degraded bool) *Index {
	if table == nil {
		table = &model.Table{}
	}

	columns := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		columns[i] = NormalizeColumn(c)
	}
	roles := ResolveColumns(columns)

	positions := make(map[model.Role]int, len(roles))
	for role, col := range roles {
		for i, c := range columns {
			if c == col {
				positions[role] = i
				break
			}
		}
	}

	rows := make([]model.CatalogRow, 0, len(table.Records))
	for i, record := range table.Records {
		rows = append(rows, buildRow(i, record, positions))
	}

	return &Index{
		roles:    roles,
		columns:  columns,
		rows:     rows,
		source:   source,
		degraded: degraded,
	}
}

func buildRow(position int, record []string, positions map[model.Role]int) model.CatalogRow {
	cell := func(role model.Role) string {
		idx, ok := positions[role]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	return model.CatalogRow{
		Position: position,
		Item:     cell(model.RoleItem),
		Color:    cell(model.RoleColor),
		Price:    ParsePrice(cell(model.RolePrice)),
		Category: cell(model.RoleCategory),
		Size:     cell(model.RoleSize),
		Brand:    cell(model.RoleBrand),
		Stock:    cell(model.RoleStock),
		Location: cell(model.RoleLocation),
	}
}

// ParsePrice coerces a cell to a decimal; anything unparseable is null
func ParsePrice(raw string) decimal.NullDecimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// Roles returns the resolved column roles
func (x *Index) Roles() model.ColumnRoles {
	out := make(model.ColumnRoles, len(x.roles))
	for k, v := range x.roles {
		out[k] = v
	}
	return out
}

// HasRole reports whether a role resolved to a column
func (x *Index) HasRole(role model.Role) bool {
	return x.roles.Has(role)
}

// Columns returns the normalized column names
func (x *Index) Columns() []string {
	return append([]string(nil), x.columns...)
}

// Rows returns the catalog rows in catalog order.
// Callers must not modify the returned slice.
func (x *Index) Rows() []model.CatalogRow {
	return x.rows
}

// Len returns the number of rows
func (x *Index) Len() int {
	return len(x.rows)
}

// Source names where the catalog was loaded from
func (x *Index) Source() string {
	return x.source
}

// Degraded reports whether the index is serving the built-in demo table
func (x *Index) Degraded() bool {
	return x.degraded
}

// ItemNames returns distinct non-empty item names in catalog order
func (x *Index) ItemNames() []string {
	if !x.HasRole(model.RoleItem) {
		return nil
	}
	return x.unique(func(r model.CatalogRow) string { return r.Item })
}

// Colors returns distinct non-empty colors in catalog order
func (x *Index) Colors() []string {
	if !x.HasRole(model.RoleColor) {
		return nil
	}
	return x.unique(func(r model.CatalogRow) string { return r.Color })
}

// Categories returns distinct non-empty categories in catalog order
func (x *Index) Categories() []string {
	if !x.HasRole(model.RoleCategory) {
		return nil
	}
	return x.unique(func(r model.CatalogRow) string { return r.Category })
}

func (x *Index) unique(field func(model.CatalogRow) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range x.rows {
		v := field(r)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
