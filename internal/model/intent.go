package model

// Direction tells whether a budget is an upper or a lower bound
type Direction string

const (
	DirectionLess Direction = "less"
	DirectionMore Direction = "more"
)

// Intent represents the structured shopping intent extracted from one utterance.
// A nil field means the utterance did not mention it.
type Intent struct {
	Item      *string    `json:"item,omitempty"`
	Color     *string    `json:"color,omitempty"`
	Budget    *int64     `json:"budget,omitempty"`
	Direction *Direction `json:"direction,omitempty"`
}

// Empty reports whether nothing was extracted
func (i Intent) Empty() bool {
	return i.Item == nil && i.Color == nil && i.Budget == nil
}

// HasBudget reports whether a budget constraint was extracted
func (i Intent) HasBudget() bool {
	return i.Budget != nil
}

// SearchQuery is the set of optional constraints passed to the product matcher
type SearchQuery struct {
	Item      *string    `json:"item,omitempty"`
	Color     *string    `json:"color,omitempty"`
	Budget    *int64     `json:"budget,omitempty"`
	Direction *Direction `json:"direction,omitempty"`
}
