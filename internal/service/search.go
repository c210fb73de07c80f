package service

import (
	"shopassist/internal/catalog"
	"shopassist/internal/metrics"
	"shopassist/internal/model"
	"shopassist/internal/utils"
)

// ProductMatcher answers catalog queries built from extracted intent
type ProductMatcher struct {
	index  *catalog.Index
	intent *IntentParser
	ranker *Ranker
}

// NewProductMatcher creates a new product matcher
func NewProductMatcher(index *catalog.Index, intentParser *IntentParser, ranker *Ranker) *ProductMatcher {
	return &ProductMatcher{
		index:  index,
		intent: intentParser,
		ranker: ranker,
	}
}

// Search filters the catalog by the optional constraints and returns the
// cheapest matches. Filters whose column is missing are skipped.
func (m *ProductMatcher) Search(query model.SearchQuery) model.MatchResult {
	hasPrice := m.index.HasRole(model.RolePrice)
	filtered := m.filter(query, hasPrice)

	if len(filtered) == 0 {
		metrics.SearchesTotal.WithLabelValues("no_match").Inc()
		return nil
	}

	results := m.ranker.RankResults(filtered, query, hasPrice)
	metrics.SearchesTotal.WithLabelValues("match").Inc()
	metrics.SearchResults.Observe(float64(len(results)))
	return results
}

func (m *ProductMatcher) filter(query model.SearchQuery, hasPrice bool) []model.CatalogRow {
	itemSet := query.Item != nil && *query.Item != "" && m.index.HasRole(model.RoleItem)
	colorSet := query.Color != nil && *query.Color != "" && m.index.HasRole(model.RoleColor)
	budgetSet := query.Budget != nil && query.Direction != nil && hasPrice

	var out []model.CatalogRow
	for _, row := range m.index.Rows() {
		if itemSet && !utils.ContainsFold(row.Item, *query.Item) {
			continue
		}
		if colorSet && !utils.ColorMatches(row.Color, *query.Color) {
			continue
		}
		if budgetSet && !withinBudget(row.Price, *query.Budget, *query.Direction) {
			continue
		}
		if hasPrice && !row.HasPrice() {
			continue
		}
		out = append(out, row)
	}
	return out
}

// FindOne resolves a single product named in free text, such as one side of
// a comparison. It returns nil when no item resolves or no row matches.
func (m *ProductMatcher) FindOne(text string) *model.CatalogRow {
	item, color, ok := m.intent.ResolveProduct(text)
	if !ok {
		return nil
	}

	hasColor := color != "" && m.index.HasRole(model.RoleColor)
	for _, row := range m.index.Rows() {
		if !utils.ContainsFold(row.Item, item) {
			continue
		}
		if hasColor && !utils.ColorMatches(row.Color, color) {
			continue
		}
		found := row
		return &found
	}
	return nil
}
