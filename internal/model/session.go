package model

import "time"

// Step is the position of a session in the guided shopping flow
type Step string

const (
	StepGreet     Step = "greet"
	StepAskItem   Step = "ask_item"
	StepAskColor  Step = "ask_color"
	StepAskBudget Step = "ask_budget"
)

// Slots is the cumulative conversational memory of a session
type Slots struct {
	Item      *string    `json:"item"`
	Color     *string    `json:"color"`
	Budget    *int64     `json:"budget"`
	Direction *Direction `json:"direction"`
	Step      Step       `json:"step"`
}

// NewSlots returns slots in their initial state
func NewSlots() Slots {
	return Slots{Step: StepGreet}
}

// Query converts the slots into matcher constraints
func (s Slots) Query() SearchQuery {
	return SearchQuery{
		Item:      s.Item,
		Color:     s.Color,
		Budget:    s.Budget,
		Direction: s.Direction,
	}
}

// Sender identifies who wrote a transcript message
type Sender string

const (
	SenderUser Sender = "You"
	SenderBot  Sender = "Bot"
)

// Message is one transcript entry
type Message struct {
	Sender Sender    `json:"sender"`
	Text   string    `json:"text"`
	At     time.Time `json:"at"`
}

// Preferences are remembered across recommendation requests
type Preferences struct {
	Color    *string `json:"color,omitempty"`
	Category *string `json:"category,omitempty"`
}

// ComparisonEntry is one side of a product comparison
type ComparisonEntry struct {
	Item     string `json:"item"`
	Color    string `json:"color"`
	Price    string `json:"price"`
	Category string `json:"category"`
}

// Comparison is a completed side-by-side comparison of two products
type Comparison struct {
	Left  ComparisonEntry `json:"left"`
	Right ComparisonEntry `json:"right"`
}

// StockAlert asks to be told when an item is back in stock
type StockAlert struct {
	Item      string    `json:"item"`
	Size      string    `json:"size,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Session holds all state owned by one conversation
type Session struct {
	ID             string                `json:"id"`
	Slots          Slots                 `json:"slots"`
	Transcript     []Message             `json:"transcript"`
	Preferences    Preferences           `json:"preferences"`
	CompareHistory []Comparison          `json:"compare_history"`
	Alerts         map[string]StockAlert `json:"alerts"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// NewSession creates an empty session in the greet step
func NewSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:             id,
		Slots:          NewSlots(),
		Transcript:     []Message{},
		CompareHistory: []Comparison{},
		Alerts:         map[string]StockAlert{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Append adds a message to the transcript
func (s *Session) Append(sender Sender, text string) {
	now := time.Now()
	s.Transcript = append(s.Transcript, Message{Sender: sender, Text: text, At: now})
	s.UpdatedAt = now
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.Slots = s.Slots.clone()
	c.Preferences = Preferences{
		Color:    cloneString(s.Preferences.Color),
		Category: cloneString(s.Preferences.Category),
	}
	c.Transcript = append([]Message(nil), s.Transcript...)
	c.CompareHistory = append([]Comparison(nil), s.CompareHistory...)
	c.Alerts = make(map[string]StockAlert, len(s.Alerts))
	for k, v := range s.Alerts {
		c.Alerts[k] = v
	}
	return &c
}

func (s Slots) clone() Slots {
	c := s
	c.Item = cloneString(s.Item)
	c.Color = cloneString(s.Color)
	if s.Budget != nil {
		b := *s.Budget
		c.Budget = &b
	}
	if s.Direction != nil {
		d := *s.Direction
		c.Direction = &d
	}
	return c
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
