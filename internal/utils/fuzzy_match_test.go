package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatioMatcher_ClosestMatch(t *testing.T) {
	items := []string{"blue jeans", "black sneakers", "white t-shirt", "red dress"}
	matcher := NewRatioMatcher(0)

	tests := []struct {
		name      string
		query     string
		want      string
		wantFound bool
	}{
		{name: "Exact", query: "blue jeans", want: "blue jeans", wantFound: true},
		{name: "Typo", query: "blu jeans", want: "blue jeans", wantFound: true},
		{name: "Missing letter", query: "red dres", want: "red dress", wantFound: true},
		{name: "Unrelated text", query: "xyz", wantFound: false},
		{name: "Empty query", query: "", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := matcher.ClosestMatch(tt.query, items)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRatioMatcher_NoCandidates(t *testing.T) {
	_, found := NewRatioMatcher(0.6).ClosestMatch("jeans", nil)
	assert.False(t, found)
}

func TestRatioMatcher_CutoffIsConfigurable(t *testing.T) {
	items := []string{"blue jeans"}

	_, found := NewRatioMatcher(0.99).ClosestMatch("blu jeans", items)
	assert.False(t, found, "strict cutoff rejects near matches")

	got, found := NewRatioMatcher(0.5).ClosestMatch("blu jeans", items)
	assert.True(t, found)
	assert.Equal(t, "blue jeans", got)
}

func TestNewRatioMatcher_DefaultCutoff(t *testing.T) {
	assert.Equal(t, DefaultSimilarityCutoff, NewRatioMatcher(0).Cutoff)
	assert.Equal(t, DefaultSimilarityCutoff, NewRatioMatcher(3).Cutoff)
	assert.Equal(t, 0.8, NewRatioMatcher(0.8).Cutoff)
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("jeans", "jeans"))
	assert.Equal(t, 0.0, Similarity("abc", "xyz"))
}

func TestNormalizeColor(t *testing.T) {
	assert.Equal(t, "grey", NormalizeColor("Gray"))
	assert.Equal(t, "grey", NormalizeColor(" grey "))
	assert.Equal(t, "dark grey", NormalizeColor("Dark Gray"))
	assert.Equal(t, "blue", NormalizeColor("BLUE"))
}

func TestColorMatches(t *testing.T) {
	assert.True(t, ColorMatches("Gray", "grey"))
	assert.True(t, ColorMatches("Grey", "gray"))
	assert.True(t, ColorMatches("Navy Blue", "blue"))
	assert.False(t, ColorMatches("Black", "blue"))
	assert.False(t, ColorMatches("", "blue"))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Kamloops", TitleCase("kamloops"))
	assert.Equal(t, "Blue Jeans", TitleCase(" blue jeans "))
}
