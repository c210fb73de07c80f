package catalog

import (
	"testing"

	"shopassist/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndex_NormalizesRows(t *testing.T) {
	table := &model.Table{
		Columns: []string{" Item Purchased ", "COLOR", "Price USD"},
		Records: [][]string{
			{"Blue Jeans", "Blue", "49.99"},
			{"Mystery Box", "", "n/a"},
			{"Short Row"},
		},
	}

	idx := NewIndex(table, "test", false)
	require.Equal(t, 3, idx.Len())

	rows := idx.Rows()
	assert.Equal(t, "Blue Jeans", rows[0].Item)
	assert.Equal(t, "Blue", rows[0].Color)
	assert.True(t, rows[0].HasPrice())
	assert.Equal(t, "49.99", rows[0].Price.Decimal.StringFixed(2))

	assert.False(t, rows[1].HasPrice(), "unparseable price becomes null")
	assert.Equal(t, "", rows[1].Color)

	assert.Equal(t, "Short Row", rows[2].Item)
	assert.False(t, rows[2].HasPrice())

	for i, r := range rows {
		assert.Equal(t, i, r.Position)
	}

	assert.Equal(t, []string{"item purchased", "color", "price usd"}, idx.Columns())
	assert.False(t, idx.Degraded())
	assert.Equal(t, "test", idx.Source())
}

func TestNewIndex_MissingRolesDegradeGracefully(t *testing.T) {
	idx := NewIndex(&model.Table{
		Columns: []string{"item"},
		Records: [][]string{{"Hat"}},
	}, "test", false)

	assert.True(t, idx.HasRole(model.RoleItem))
	assert.False(t, idx.HasRole(model.RolePrice))
	assert.Nil(t, idx.Colors())
	assert.Nil(t, idx.Categories())
	assert.Equal(t, []string{"Hat"}, idx.ItemNames())
}

func TestIndex_UniqueAccessorsKeepCatalogOrder(t *testing.T) {
	idx := NewIndex(&model.Table{
		Columns: []string{"item", "color", "category"},
		Records: [][]string{
			{"Jeans", "Blue", "Bottoms"},
			{"Sneakers", "Black", "Shoes"},
			{"Jeans", "Black", "Bottoms"},
			{"", "", ""},
		},
	}, "test", false)

	assert.Equal(t, []string{"Jeans", "Sneakers"}, idx.ItemNames())
	assert.Equal(t, []string{"Blue", "Black"}, idx.Colors())
	assert.Equal(t, []string{"Bottoms", "Shoes"}, idx.Categories())
}

func TestIndex_RolesReturnsCopy(t *testing.T) {
	idx := NewDemoIndex()
	roles := idx.Roles()
	delete(roles, model.RoleItem)
	assert.True(t, idx.HasRole(model.RoleItem))
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw   string
		valid bool
		want  string
	}{
		{raw: "49.99", valid: true, want: "49.99"},
		{raw: " 20 ", valid: true, want: "20.00"},
		{raw: "", valid: false},
		{raw: "$49.99", valid: false},
		{raw: "N/A", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParsePrice(tt.raw)
			assert.Equal(t, tt.valid, got.Valid)
			if tt.valid {
				assert.Equal(t, tt.want, got.Decimal.StringFixed(2))
			}
		})
	}
}

func TestNewDemoIndex(t *testing.T) {
	idx := NewDemoIndex()

	assert.True(t, idx.Degraded())
	assert.Equal(t, DemoSource, idx.Source())
	assert.Equal(t, 6, idx.Len())
	for _, role := range []model.Role{
		model.RoleItem, model.RolePrice, model.RoleColor,
		model.RoleCategory, model.RoleLocation, model.RoleBrand,
	} {
		assert.True(t, idx.HasRole(role), "demo catalog resolves %s", role)
	}
}
