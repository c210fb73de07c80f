package utils

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultSimilarityCutoff is the minimum ratio a candidate needs to count as a match
const DefaultSimilarityCutoff = 0.6

// ClosestMatcher finds the candidate most similar to a query
type ClosestMatcher interface {
	ClosestMatch(query string, candidates []string) (string, bool)
}

// RatioMatcher scores candidates with the Ratcliff/Obershelp ratio
// (2*M/T over matching character blocks).
type RatioMatcher struct {
	Cutoff float64
}

// NewRatioMatcher creates a ratio matcher; a non-positive cutoff selects the default
func NewRatioMatcher(cutoff float64) *RatioMatcher {
	if cutoff <= 0 || cutoff > 1 {
		cutoff = DefaultSimilarityCutoff
	}
	return &RatioMatcher{Cutoff: cutoff}
}

// ClosestMatch returns the single best candidate scoring at least the cutoff.
// Equal scores prefer the lexicographically greater candidate.
func (m *RatioMatcher) ClosestMatch(query string, candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}

	q := splitChars(query)
	best, bestScore, found := "", 0.0, false

	for _, candidate := range candidates {
		sm := difflib.NewMatcher(splitChars(candidate), q)
		// Cheap upper bounds first
		if sm.RealQuickRatio() < m.Cutoff || sm.QuickRatio() < m.Cutoff {
			continue
		}
		score := sm.Ratio()
		if score < m.Cutoff {
			continue
		}
		if !found || score > bestScore || (score == bestScore && candidate > best) {
			best, bestScore, found = candidate, score, true
		}
	}

	return best, found
}

// Similarity returns the ratio between two strings
func Similarity(a, b string) float64 {
	return difflib.NewMatcher(splitChars(a), splitChars(b)).Ratio()
}

func splitChars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// colorAliases maps alternate spellings to the canonical color token
var colorAliases = map[string]string{
	"gray": "grey",
}

// NormalizeColor lowercases a color and folds known aliases
func NormalizeColor(color string) string {
	c := strings.ToLower(strings.TrimSpace(color))
	for alias, canonical := range colorAliases {
		c = strings.ReplaceAll(c, alias, canonical)
	}
	return c
}

// ContainsFold reports whether substr is within s, ignoring case
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// ColorMatches reports whether a catalog color contains the wanted color,
// treating aliases as equal
func ColorMatches(catalogColor, wanted string) bool {
	if catalogColor == "" {
		return false
	}
	return strings.Contains(NormalizeColor(catalogColor), NormalizeColor(wanted))
}
