package service

import (
	"fmt"

	"shopassist/internal/catalog"
	"shopassist/internal/model"
	"shopassist/internal/utils"
)

// AvailabilityPrompt is returned when no location is given
const AvailabilityPrompt = "👋 Hi there! Type a **city name** to check which items are available near you."

// SimulatedAvailability answers location queries for catalogs without a
// location column
var SimulatedAvailability = map[string][]string{
	"vancouver": {"Blue Jeans", "White Sneakers", "Red Dress"},
	"toronto":   {"Black Sneakers", "Blue Jacket", "Pink Handbag"},
	"kamloops":  {"Yellow Scarf", "Green Hoodie", "White Jeans"},
	"calgary":   {"Grey T-Shirt", "Black Jeans", "Purple Dress"},
}

// AvailabilityService lists products stocked at a location
type AvailabilityService struct {
	index *catalog.Index
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(index *catalog.Index) *AvailabilityService {
	return &AvailabilityService{index: index}
}

// ByLocation returns catalog rows whose location contains the query, or the
// simulated listing when the catalog carries no location column
func (s *AvailabilityService) ByLocation(location string) *model.AvailabilityResponse {
	location = normalizeText(location)
	if location == "" {
		return &model.AvailabilityResponse{Message: AvailabilityPrompt}
	}

	title := utils.TitleCase(location)
	resp := &model.AvailabilityResponse{Location: title}

	if !s.index.HasRole(model.RoleLocation) {
		resp.Simulated = true
		resp.Items = SimulatedAvailability[location]
		if len(resp.Items) == 0 {
			resp.Message = fmt.Sprintf("Sorry, I couldn't find products in %s 😅", title)
			return resp
		}
		resp.Message = fmt.Sprintf("%d products found in %s ✅", len(resp.Items), title)
		return resp
	}

	for _, row := range s.index.Rows() {
		if utils.ContainsFold(row.Location, location) {
			resp.Rows = append(resp.Rows, row)
		}
	}
	if len(resp.Rows) == 0 {
		resp.Message = fmt.Sprintf("⚠️ No items found in %s. Try another city.", title)
		return resp
	}
	resp.Message = fmt.Sprintf("%d products found in %s ✅", len(resp.Rows), title)
	return resp
}
