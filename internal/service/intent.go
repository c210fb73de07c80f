package service

import (
	"regexp"
	"strconv"
	"strings"

	"shopassist/internal/catalog"
	"shopassist/internal/model"
	"shopassist/internal/utils"
)

// ColorVocabulary is scanned in order; the first color found in the text wins
var ColorVocabulary = []string{
	"black", "blue", "white", "red", "green", "yellow",
	"pink", "purple", "grey", "gray", "brown", "maroon",
}

// StopPhrases end the guided flow when they appear as whole words
var StopPhrases = []string{"no", "stop", "thanks", "thank you", "bye", "ok", "okay", "cancel"}

// Budget patterns. The keyword must be followed directly by the amount, so
// "less than 50" carries no budget. The less pattern is tried first, so an
// utterance carrying both phrasings is read as an upper bound.
var (
	lessBudgetPattern = regexp.MustCompile(`(?:under|less|below)\s*\$?\s*(\d+)`)
	moreBudgetPattern = regexp.MustCompile(`(?:more than|above|over|greater(?: than)?)\s*\$?\s*(\d+)`)
	stopPattern       = buildStopPattern(StopPhrases)
)

func buildStopPattern(phrases []string) *regexp.Regexp {
	quoted := make([]string, len(phrases))
	for i, p := range phrases {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// IntentParser turns free text into a shopping intent using substring and
// fuzzy heuristics over the catalog vocabulary
type IntentParser struct {
	index   *catalog.Index
	matcher utils.ClosestMatcher
}

// NewIntentParser creates a new intent parser
func NewIntentParser(index *catalog.Index, matcher utils.ClosestMatcher) *IntentParser {
	if matcher == nil {
		matcher = utils.NewRatioMatcher(utils.DefaultSimilarityCutoff)
	}
	return &IntentParser{
		index:   index,
		matcher: matcher,
	}
}

// Parse extracts item, color and budget from an utterance
func (p *IntentParser) Parse(text string) model.Intent {
	text = normalizeText(text)

	budget, direction := ParseBudget(text)
	return model.Intent{
		Item:      p.ParseItem(text),
		Color:     ParseColor(text),
		Budget:    budget,
		Direction: direction,
	}
}

// ParseBudget returns the budget and its direction, or nils when the text
// carries no budget phrase
func ParseBudget(text string) (*int64, *model.Direction) {
	text = normalizeText(text)

	for _, candidate := range []struct {
		pattern   *regexp.Regexp
		direction model.Direction
	}{
		{lessBudgetPattern, model.DirectionLess},
		{moreBudgetPattern, model.DirectionMore},
	} {
		m := candidate.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			// Digits overflowing int64 are not a usable budget
			return nil, nil
		}
		direction := candidate.direction
		return &value, &direction
	}
	return nil, nil
}

// HasBudget reports whether the text contains a budget phrase
func HasBudget(text string) bool {
	budget, _ := ParseBudget(text)
	return budget != nil
}

// ParseColor returns the first vocabulary color contained in the text.
// "gray" is reported as "grey".
func ParseColor(text string) *string {
	text = normalizeText(text)
	for _, c := range ColorVocabulary {
		if strings.Contains(text, c) {
			color := utils.NormalizeColor(c)
			return &color
		}
	}
	return nil
}

// IsCancellation reports whether the text contains a stop phrase as a whole word
func IsCancellation(text string) bool {
	return stopPattern.MatchString(normalizeText(text))
}

// ParseItem resolves the lowercased catalog item named in the text.
// Exact containment in catalog order wins; otherwise the closest fuzzy match.
func (p *IntentParser) ParseItem(text string) *string {
	text = normalizeText(text)
	items := p.index.ItemNames()
	if len(items) == 0 {
		return nil
	}

	lower := make([]string, len(items))
	for i, item := range items {
		lower[i] = strings.ToLower(item)
	}

	for _, item := range lower {
		if strings.Contains(text, item) {
			found := item
			return &found
		}
	}

	if hit, ok := p.matcher.ClosestMatch(text, lower); ok {
		return &hit
	}
	return nil
}

// ResolveProduct finds the catalog item and color named in free text.
// The color is the first catalog color value contained in the text; the item
// uses the same containment-then-fuzzy policy as ParseItem but keeps the
// catalog's casing.
func (p *IntentParser) ResolveProduct(text string) (item, color string, ok bool) {
	text = normalizeText(text)

	for _, c := range p.index.Colors() {
		if strings.Contains(text, strings.ToLower(c)) {
			color = c
			break
		}
	}

	items := p.index.ItemNames()
	for _, i := range items {
		if strings.Contains(text, strings.ToLower(i)) {
			return i, color, true
		}
	}

	if len(items) == 0 {
		return "", color, false
	}
	lower := make([]string, len(items))
	for i, it := range items {
		lower[i] = strings.ToLower(it)
	}
	hit, found := p.matcher.ClosestMatch(text, lower)
	if !found {
		return "", color, false
	}
	for _, i := range items {
		if strings.ToLower(i) == hit {
			return i, color, true
		}
	}
	return "", color, false
}

func normalizeText(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
