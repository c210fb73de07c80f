package service

import (
	"regexp"
	"strings"

	"shopassist/internal/metrics"
	"shopassist/internal/model"
)

// Comparison messages
const (
	CompareFormatHint = "💡 Use `product1 vs product2` format."
	CompareNotFound   = "⚠️ Couldn't find both items. Please check spelling or color terms."
	CompareSuccess    = "Here's your comparison! 💕 Which one would you like to explore further?"
)

var compareSplitPattern = regexp.MustCompile(`\s+vs\s+|\s+and\s+`)

// Comparer builds side-by-side comparisons of two products named in text
type Comparer struct {
	matcher  *ProductMatcher
	renderer *Renderer
}

// NewComparer creates a new comparer
func NewComparer(matcher *ProductMatcher, renderer *Renderer) *Comparer {
	return &Comparer{matcher: matcher, renderer: renderer}
}

// Compare splits text on "vs" or "and" and resolves both sides. The
// comparison is nil when the text is malformed or a side does not resolve.
func (c *Comparer) Compare(text string) (*model.Comparison, string) {
	parts := compareSplitPattern.Split(normalizeText(text), -1)
	if len(parts) < 2 {
		metrics.ComparisonsTotal.WithLabelValues("malformed").Inc()
		return nil, CompareFormatHint
	}

	left := c.matcher.FindOne(strings.TrimSpace(parts[0]))
	right := c.matcher.FindOne(strings.TrimSpace(parts[1]))
	if left == nil || right == nil {
		metrics.ComparisonsTotal.WithLabelValues("not_found").Inc()
		return nil, CompareNotFound
	}

	metrics.ComparisonsTotal.WithLabelValues("ok").Inc()
	return &model.Comparison{
		Left:  c.entry(*left),
		Right: c.entry(*right),
	}, CompareSuccess
}

func (c *Comparer) entry(row model.CatalogRow) model.ComparisonEntry {
	price := "-"
	if c.renderer.roles.Has(model.RolePrice) {
		price = c.renderer.Price(row)
	}
	return model.ComparisonEntry{
		Item:     c.renderer.name(row),
		Color:    c.renderer.field(model.RoleColor, row.Color),
		Price:    price,
		Category: c.renderer.field(model.RoleCategory, row.Category),
	}
}
