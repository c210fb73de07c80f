package service

import (
	"sort"

	"shopassist/internal/model"

	"github.com/shopspring/decimal"
)

// Match reason constants
const (
	ReasonItemMatch    = "Item match"
	ReasonColorMatch   = "Color match"
	ReasonPriceMatch   = "Price within budget"
	ReasonGeneralMatch = "General match"
)

// Ranker orders filtered rows for presentation
type Ranker struct {
	limit int
}

// NewRanker creates a ranker returning at most limit rows
func NewRanker(limit int) *Ranker {
	if limit <= 0 {
		limit = 3
	}
	return &Ranker{limit: limit}
}

// RankResults sorts rows ascending by price and keeps the cheapest ones.
// The sort is stable, so equal prices keep catalog order. Rows without a
// price sort last when byPrice is set.
func (r *Ranker) RankResults(rows []model.CatalogRow, query model.SearchQuery, byPrice bool) model.MatchResult {
	ordered := append([]model.CatalogRow(nil), rows...)
	if byPrice {
		SortByPrice(ordered)
	}

	if len(ordered) > r.limit {
		ordered = ordered[:r.limit]
	}

	results := make(model.MatchResult, 0, len(ordered))
	for _, row := range ordered {
		results = append(results, model.MatchedRow{
			CatalogRow:     row,
			MatchedReasons: r.generateMatchedReasons(query),
		})
	}
	return results
}

// SortByPrice stable-sorts rows by ascending price, null prices last
func SortByPrice(rows []model.CatalogRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Price, rows[j].Price
		if !a.Valid || !b.Valid {
			return a.Valid && !b.Valid
		}
		return a.Decimal.LessThan(b.Decimal)
	})
}

// generateMatchedReasons explains which constraints a returned row satisfied
func (r *Ranker) generateMatchedReasons(query model.SearchQuery) []string {
	reasons := []string{}

	if query.Item != nil && *query.Item != "" {
		reasons = append(reasons, ReasonItemMatch)
	}
	if query.Color != nil && *query.Color != "" {
		reasons = append(reasons, ReasonColorMatch)
	}
	if query.Budget != nil && query.Direction != nil {
		reasons = append(reasons, ReasonPriceMatch)
	}

	if len(reasons) == 0 {
		reasons = append(reasons, ReasonGeneralMatch)
	}
	return reasons
}

// withinBudget applies the inclusive budget bound for a direction.
// A row priced exactly at the budget satisfies both directions.
func withinBudget(price decimal.NullDecimal, budget int64, direction model.Direction) bool {
	if !price.Valid {
		return false
	}
	limit := decimal.NewFromInt(budget)
	switch direction {
	case model.DirectionLess:
		return price.Decimal.LessThanOrEqual(limit)
	case model.DirectionMore:
		return price.Decimal.GreaterThanOrEqual(limit)
	}
	return true
}
