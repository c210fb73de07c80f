package service

import (
	"testing"

	"shopassist/internal/catalog"
	"shopassist/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestAvailabilityService_ByLocation(t *testing.T) {
	s := NewAvailabilityService(newTestIndex())

	resp := s.ByLocation("  VANCOUVER ")
	assert.Equal(t, "Vancouver", resp.Location)
	assert.False(t, resp.Simulated)
	assert.Equal(t, []string{"Blue Jeans", "Gray Hoodie"}, rowNames(resp.Rows))
	assert.Equal(t, "2 products found in Vancouver ✅", resp.Message)

	resp = s.ByLocation("paris")
	assert.Empty(t, resp.Rows)
	assert.Equal(t, "⚠️ No items found in Paris. Try another city.", resp.Message)

	resp = s.ByLocation("")
	assert.Equal(t, AvailabilityPrompt, resp.Message)
}

func TestAvailabilityService_SimulatedWithoutLocationColumn(t *testing.T) {
	idx := catalog.NewIndex(&model.Table{
		Columns: []string{"item", "price"},
		Records: [][]string{{"Hat", "10"}},
	}, "test", false)
	s := NewAvailabilityService(idx)

	resp := s.ByLocation("Toronto")
	assert.True(t, resp.Simulated)
	assert.Equal(t, []string{"Black Sneakers", "Blue Jacket", "Pink Handbag"}, resp.Items)
	assert.Equal(t, "3 products found in Toronto ✅", resp.Message)

	resp = s.ByLocation("new york")
	assert.True(t, resp.Simulated)
	assert.Empty(t, resp.Items)
	assert.Equal(t, "Sorry, I couldn't find products in New York 😅", resp.Message)
}
