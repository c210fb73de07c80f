package model

// ChatRequest represents one user utterance
type ChatRequest struct {
	Text string `json:"text" binding:"required"`
}

// ChatResponse represents the assistant's answer to one utterance
type ChatResponse struct {
	SessionID string      `json:"session_id"`
	Reply     string      `json:"reply"`
	Action    string      `json:"action"`
	Intent    Intent      `json:"intent"`
	Slots     Slots       `json:"slots"`
	Results   MatchResult `json:"results,omitempty"`
	Took      int64       `json:"took_ms"`
}

// SessionResponse represents a session snapshot
type SessionResponse struct {
	SessionID      string                `json:"session_id"`
	Slots          Slots                 `json:"slots"`
	Preferences    Preferences           `json:"preferences"`
	Transcript     []Message             `json:"transcript"`
	CompareHistory []Comparison          `json:"compare_history"`
	Alerts         map[string]StockAlert `json:"alerts"`
}

// SearchRequest represents a direct catalog search
type SearchRequest struct {
	Item      *string    `json:"item,omitempty"`
	Color     *string    `json:"color,omitempty"`
	Budget    *int64     `json:"budget,omitempty"`
	Direction *Direction `json:"direction,omitempty"`
}

// SearchResponse represents the result of a direct catalog search
type SearchResponse struct {
	Results MatchResult `json:"results"`
	Total   int         `json:"total"`
	Reply   string      `json:"reply"`
	Took    int64       `json:"took_ms"`
}

// CompareRequest represents a "product1 vs product2" comparison request
type CompareRequest struct {
	Text string `json:"text" binding:"required"`
}

// CompareResponse represents a comparison outcome
type CompareResponse struct {
	Comparison *Comparison `json:"comparison,omitempty"`
	Message    string      `json:"message"`
}

// RecommendRequest carries a free-text preference statement
type RecommendRequest struct {
	Text string `json:"text" binding:"required"`
}

// RecommendResponse represents personalized picks
type RecommendResponse struct {
	Preferences Preferences  `json:"preferences"`
	Results     []CatalogRow `json:"results"`
	Message     string       `json:"message"`
}

// AlertRequest carries a back-in-stock request such as
// "notify me when Blue Jeans size M is back"
type AlertRequest struct {
	Text string `json:"text" binding:"required"`
}

// AlertResponse reports a created alert, or why none was needed
type AlertResponse struct {
	Alert   *StockAlert `json:"alert,omitempty"`
	InStock bool        `json:"in_stock"`
	Message string      `json:"message"`
}

// AvailabilityResponse lists products available at a location
type AvailabilityResponse struct {
	Location  string       `json:"location"`
	Rows      []CatalogRow `json:"rows,omitempty"`
	Items     []string     `json:"items,omitempty"`
	Simulated bool         `json:"simulated"`
	Message   string       `json:"message"`
}

// FitRequest carries a size question
type FitRequest struct {
	Text string `json:"text" binding:"required"`
}

// FitResponse carries size guidance
type FitResponse struct {
	Reply string `json:"reply"`
}

// CatalogResponse describes the loaded catalog
type CatalogResponse struct {
	Roles    ColumnRoles `json:"roles"`
	Rows     int         `json:"rows"`
	Items    []string    `json:"items"`
	Degraded bool        `json:"degraded"`
	Source   string      `json:"source"`
}
