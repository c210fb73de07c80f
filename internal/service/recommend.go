package service

import (
	"fmt"
	"strings"

	"shopassist/internal/catalog"
	"shopassist/internal/model"
	"shopassist/internal/utils"
)

// Recommendation messages
const (
	RecommendIntro    = "💫 Based on your style, here are some personalized picks for you:"
	RecommendFollowUp = "Would you like more suggestions or a different color?"
	RecommendNoMatch  = "I couldn't find matching products 😅 Try another color or category!"
)

// DefaultRecommendLimit is the number of personalized picks returned
const DefaultRecommendLimit = 5

// Recommender filters the catalog by remembered color and category preferences
type Recommender struct {
	index    *catalog.Index
	renderer *Renderer
	limit    int
}

// NewRecommender creates a recommender returning at most limit rows
func NewRecommender(index *catalog.Index, renderer *Renderer, limit int) *Recommender {
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}
	return &Recommender{index: index, renderer: renderer, limit: limit}
}

// Recommend merges any color or category named in text into prefs and
// returns the cheapest rows matching the updated preferences
func (r *Recommender) Recommend(prefs model.Preferences, text string) (model.Preferences, []model.CatalogRow, string) {
	if color := ParseColor(text); color != nil {
		prefs.Color = color
	}
	if category := r.parseCategory(text); category != nil {
		prefs.Category = category
	}

	rows := r.filter(prefs)
	if len(rows) == 0 {
		return prefs, nil, RecommendNoMatch
	}

	if r.index.HasRole(model.RolePrice) {
		SortByPrice(rows)
	}
	if len(rows) > r.limit {
		rows = rows[:r.limit]
	}
	return prefs, rows, r.render(rows)
}

// parseCategory returns the first catalog category contained in text
func (r *Recommender) parseCategory(text string) *string {
	text = normalizeText(text)
	for _, cat := range r.index.Categories() {
		if strings.Contains(text, strings.ToLower(cat)) {
			found := cat
			return &found
		}
	}
	return nil
}

func (r *Recommender) filter(prefs model.Preferences) []model.CatalogRow {
	byColor := prefs.Color != nil && r.index.HasRole(model.RoleColor)
	byCategory := prefs.Category != nil && r.index.HasRole(model.RoleCategory)

	var out []model.CatalogRow
	for _, row := range r.index.Rows() {
		if byColor && !utils.ColorMatches(row.Color, *prefs.Color) {
			continue
		}
		if byCategory && !utils.ContainsFold(row.Category, *prefs.Category) {
			continue
		}
		out = append(out, row)
	}
	return out
}

func (r *Recommender) render(rows []model.CatalogRow) string {
	var b strings.Builder
	b.WriteString(RecommendIntro)
	b.WriteString("\n\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "🛍️ **%s** - %s\n", r.renderer.name(row), r.renderer.Price(row))
		fmt.Fprintf(&b, "   Color: %s | Category: %s\n\n",
			r.renderer.field(model.RoleColor, row.Color),
			r.renderer.field(model.RoleCategory, row.Category))
	}
	b.WriteString(RecommendFollowUp)
	return b.String()
}
