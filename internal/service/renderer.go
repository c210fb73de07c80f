package service

import (
	"fmt"
	"strings"

	"shopassist/internal/model"
)

// Fixed assistant prompts
const (
	PromptGreeting  = "Hey there 👋! What are you shopping for today? (e.g., jeans, shoes, dresses)"
	PromptAskBudget = "Great! 💕 What's your budget range? (e.g., under 100 or more than 150)"
	PromptFarewell  = "Alright 👋 Have a wonderful shopping day!"
	PromptClarify   = "I didn't quite get that. Could you please clarify?"
	PromptFollowUp  = "Would you like me to show *similar* or *cheaper* options next?"
)

// Renderer turns match results and intent into user-facing text
type Renderer struct {
	roles model.ColumnRoles
}

// NewRenderer creates a renderer; columns missing from roles render as placeholders
func NewRenderer(roles model.ColumnRoles) *Renderer {
	return &Renderer{roles: roles}
}

// Render lists matched rows under an intro chosen by the budget direction
func (r *Renderer) Render(results model.MatchResult, item, color *string, budget *int64, direction *model.Direction) string {
	if results.Empty() {
		return r.NoMatch(item)
	}

	var b strings.Builder
	b.WriteString(r.intro(item, color, budget, direction))
	b.WriteString("\n\n")

	for _, row := range results {
		fmt.Fprintf(&b, "✨ **%s** - %s\n", r.name(row.CatalogRow), r.Price(row.CatalogRow))
		fmt.Fprintf(&b, "   Category: %s | Color: %s\n\n", r.field(model.RoleCategory, row.Category), r.field(model.RoleColor, row.Color))
	}

	b.WriteString(PromptFollowUp)
	return b.String()
}

// NoMatch is the apology for an empty result
func (r *Renderer) NoMatch(item *string) string {
	return fmt.Sprintf("I couldn't find any %s in that range 😅", describe(item, nil))
}

// AskColor asks for a color preference for the chosen item
func (r *Renderer) AskColor(item *string) string {
	what := "item"
	if item != nil && *item != "" {
		what = *item
	}
	return fmt.Sprintf("Nice choice! 🎯 Do you have a color preference for your %s?", what)
}

// Price formats a row's price with two decimals, or N/A
func (r *Renderer) Price(row model.CatalogRow) string {
	if !r.roles.Has(model.RolePrice) || !row.HasPrice() {
		return "N/A"
	}
	return "$" + row.Price.Decimal.StringFixed(2)
}

func (r *Renderer) intro(item, color *string, budget *int64, direction *model.Direction) string {
	what := describe(item, color)
	if budget != nil && *budget != 0 && direction != nil {
		switch *direction {
		case model.DirectionLess:
			return fmt.Sprintf("Here are some %s under $%d 🛍️", what, *budget)
		case model.DirectionMore:
			return fmt.Sprintf("Here are some %s over $%d 💎", what, *budget)
		}
	}
	return fmt.Sprintf("Here are some %s I think you'll love 💫", what)
}

func (r *Renderer) name(row model.CatalogRow) string {
	if !r.roles.Has(model.RoleItem) || row.Item == "" {
		return "Item"
	}
	return row.Item
}

func (r *Renderer) field(role model.Role, value string) string {
	if !r.roles.Has(role) || value == "" {
		return "-"
	}
	return value
}

// describe builds "blue jeans", "red items" or "items".
// The color is dropped when the item name already carries it.
func describe(item, color *string) string {
	what := "items"
	if item != nil && *item != "" {
		what = *item
	}
	if color != nil && *color != "" && !strings.Contains(strings.ToLower(what), strings.ToLower(*color)) {
		what = *color + " " + what
	}
	return what
}
