package service

import (
	"testing"

	"shopassist/internal/catalog"
	"shopassist/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestIndex builds a catalog with named products, a gray alias, a tie on
// price and a row without a usable price
func newTestIndex() *catalog.Index {
	return catalog.NewIndex(&model.Table{
		Columns: []string{"Item Purchased", "Category", "Color", "Price (USD)", "Location"},
		Records: [][]string{
			{"Blue Jeans", "Bottoms", "Blue", "49.99", "Vancouver"},
			{"Black Jeans", "Bottoms", "Black", "59.99", "Calgary"},
			{"Red Dress", "Dresses", "Red", "89.99", "Calgary"},
			{"Black Sneakers", "Shoes", "Black", "69.99", "Toronto"},
			{"White T-Shirt", "Tops", "White", "19.99", "Kamloops"},
			{"Gray Hoodie", "Outerwear", "Gray", "50", "Vancouver"},
			{"Yellow Scarf", "Accessories", "Yellow", "14.99", "Kamloops"},
			{"Blue Cap", "Accessories", "Blue", "14.99", "Toronto"},
			{"Mystery Box", "Misc", "", "n/a", "Toronto"},
		},
	}, "test", false)
}

func newTestMatcher(idx *catalog.Index) *ProductMatcher {
	return NewProductMatcher(idx, NewIntentParser(idx, nil), NewRanker(3))
}

func names(results model.MatchResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Item)
	}
	return out
}

func strPtr(s string) *string { return &s }

func budgetPtr(v int64) *int64 { return &v }

func dirPtr(d model.Direction) *model.Direction { return &d }

func TestProductMatcher_SearchWithoutFilters(t *testing.T) {
	m := newTestMatcher(newTestIndex())

	results := m.Search(model.SearchQuery{})

	// Three cheapest priced rows, equal prices kept in catalog order
	assert.Equal(t, []string{"Yellow Scarf", "Blue Cap", "White T-Shirt"}, names(results))
	for _, r := range results {
		assert.Equal(t, []string{ReasonGeneralMatch}, r.MatchedReasons)
	}
}

func TestProductMatcher_Search(t *testing.T) {
	m := newTestMatcher(newTestIndex())

	tests := []struct {
		name     string
		query    model.SearchQuery
		expected []string
	}{
		{
			name:     "item substring",
			query:    model.SearchQuery{Item: strPtr("jeans")},
			expected: []string{"Blue Jeans", "Black Jeans"},
		},
		{
			name:     "item is case insensitive",
			query:    model.SearchQuery{Item: strPtr("RED DRESS")},
			expected: []string{"Red Dress"},
		},
		{
			name:     "color",
			query:    model.SearchQuery{Color: strPtr("black")},
			expected: []string{"Black Jeans", "Black Sneakers"},
		},
		{
			name:     "grey finds gray",
			query:    model.SearchQuery{Color: strPtr("grey")},
			expected: []string{"Gray Hoodie"},
		},
		{
			name:     "under budget",
			query:    model.SearchQuery{Item: strPtr("jeans"), Budget: budgetPtr(55), Direction: dirPtr(model.DirectionLess)},
			expected: []string{"Blue Jeans"},
		},
		{
			name:     "over budget",
			query:    model.SearchQuery{Budget: budgetPtr(60), Direction: dirPtr(model.DirectionMore)},
			expected: []string{"Black Sneakers", "Red Dress"},
		},
		{
			name:     "budget without direction is ignored",
			query:    model.SearchQuery{Item: strPtr("jeans"), Budget: budgetPtr(10)},
			expected: []string{"Blue Jeans", "Black Jeans"},
		},
		{
			name:     "nothing matches",
			query:    model.SearchQuery{Item: strPtr("umbrella")},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := m.Search(tt.query)
			if tt.expected == nil {
				assert.True(t, results.Empty())
				return
			}
			assert.Equal(t, tt.expected, names(results))
		})
	}
}

func TestProductMatcher_DirectionConsistency(t *testing.T) {
	idx := newTestIndex()
	m := NewProductMatcher(idx, NewIntentParser(idx, nil), NewRanker(100))

	for _, budget := range []int64{0, 15, 20, 50, 60, 90, 1000} {
		for _, r := range m.Search(model.SearchQuery{Budget: budgetPtr(budget), Direction: dirPtr(model.DirectionLess)}) {
			assert.True(t, r.Price.Decimal.LessThanOrEqual(decimal.NewFromInt(budget)), "%s under %d", r.Item, budget)
		}
		for _, r := range m.Search(model.SearchQuery{Budget: budgetPtr(budget), Direction: dirPtr(model.DirectionMore)}) {
			assert.True(t, r.Price.Decimal.GreaterThanOrEqual(decimal.NewFromInt(budget)), "%s over %d", r.Item, budget)
		}
	}
}

// A row priced exactly at the budget satisfies both "under" and "over".
// Known quirk of the inclusive bounds, kept deliberately.
func TestProductMatcher_BudgetBoundaryInBothDirections(t *testing.T) {
	m := newTestMatcher(newTestIndex())

	less := m.Search(model.SearchQuery{Item: strPtr("hoodie"), Budget: budgetPtr(50), Direction: dirPtr(model.DirectionLess)})
	more := m.Search(model.SearchQuery{Item: strPtr("hoodie"), Budget: budgetPtr(50), Direction: dirPtr(model.DirectionMore)})

	assert.Equal(t, []string{"Gray Hoodie"}, names(less))
	assert.Equal(t, []string{"Gray Hoodie"}, names(more))
}

func TestProductMatcher_SkipsMissingColumns(t *testing.T) {
	idx := catalog.NewIndex(&model.Table{
		Columns: []string{"item"},
		Records: [][]string{{"Blue Hat"}, {"Red Hat"}, {"Scarf"}, {"Gloves"}},
	}, "test", false)
	m := newTestMatcher(idx)

	// No color or price column: those constraints are dropped, catalog order kept
	results := m.Search(model.SearchQuery{
		Item:      strPtr("hat"),
		Color:     strPtr("green"),
		Budget:    budgetPtr(1),
		Direction: dirPtr(model.DirectionLess),
	})
	assert.Equal(t, []string{"Blue Hat", "Red Hat"}, names(results))
}

func TestProductMatcher_FindOne(t *testing.T) {
	m := newTestMatcher(newTestIndex())

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"exact item", "black jeans", "Black Jeans"},
		{"item inside sentence", "the red dress please", "Red Dress"},
		{"fuzzy item", "blak sneakrs", "Black Sneakers"},
		{"unknown", "purple unicorn", ""},
		{"color excludes item", "white jeans", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := m.FindOne(tt.text)
			if tt.expected == "" {
				assert.Nil(t, row)
				return
			}
			require.NotNil(t, row)
			assert.Equal(t, tt.expected, row.Item)
		})
	}
}
