package service

import (
	"context"
	"sync"
	"time"

	"shopassist/internal/metrics"
	"shopassist/internal/model"
	"shopassist/internal/session"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// EventCallback is called for streaming chat events
type EventCallback func(event string, data any) error

// TurnResult is the outcome of one utterance
type TurnResult struct {
	Reply   string
	Action  Action
	Intent  model.Intent
	Results model.MatchResult
}

// Assistant runs the guided shopping conversation for stored sessions.
// Turns of one session are processed one at a time; different sessions
// proceed independently.
type Assistant struct {
	store       session.Store
	intent      *IntentParser
	matcher     *ProductMatcher
	renderer    *Renderer
	comparer    *Comparer
	recommender *Recommender
	alerts      *AlertService
	locks       *sessionLocks
}

// sessionLocks hands out one mutex per session id. Entries are dropped once
// no caller holds or waits on them.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sessionLock)}
}

// lock blocks until the session is free and returns the matching unlock
func (l *sessionLocks) lock(id string) func() {
	l.mu.Lock()
	entry, ok := l.locks[id]
	if !ok {
		entry = &sessionLock{}
		l.locks[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

// held returns the number of sessions with a pending or running turn
func (l *sessionLocks) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

// NewAssistant creates a new assistant
func NewAssistant(
	store session.Store,
	intentParser *IntentParser,
	matcher *ProductMatcher,
	renderer *Renderer,
	comparer *Comparer,
	recommender *Recommender,
	alerts *AlertService,
) *Assistant {
	return &Assistant{
		store:       store,
		intent:      intentParser,
		matcher:     matcher,
		renderer:    renderer,
		comparer:    comparer,
		recommender: recommender,
		alerts:      alerts,
		locks:       newSessionLocks(),
	}
}

// StartSession creates and stores a fresh session
func (a *Assistant) StartSession(ctx context.Context) (*model.Session, error) {
	s := model.NewSession(uuid.NewString())
	if err := a.store.Save(ctx, s); err != nil {
		return nil, err
	}
	log.Debug().Str("session_id", s.ID).Msg("Session started")
	return s, nil
}

// Session returns a stored session
func (a *Assistant) Session(ctx context.Context, id string) (*model.Session, error) {
	return a.store.Get(ctx, id)
}

// ClearSession forgets everything about a session: slots, transcript,
// preferences and comparisons
func (a *Assistant) ClearSession(ctx context.Context, id string) error {
	defer a.locks.lock(id)()
	return a.store.Delete(ctx, id)
}

// Respond runs one turn against s. Only s.Slots changes; the transcript is
// left to the caller.
func (a *Assistant) Respond(s *model.Session, text string) TurnResult {
	intent := a.intent.Parse(text)
	next, action := Transition(s.Slots, NewTurn(text, intent))
	s.Slots = next

	result := TurnResult{Action: action, Intent: intent}
	switch action {
	case ActionFarewell:
		result.Reply = PromptFarewell
	case ActionAskItem:
		result.Reply = PromptGreeting
	case ActionAskColor:
		result.Reply = a.renderer.AskColor(next.Item)
	case ActionAskBudget:
		result.Reply = PromptAskBudget
	case ActionClarify:
		result.Reply = PromptClarify
	default:
		result.Results = a.matcher.Search(next.Query())
		result.Reply = a.renderer.Render(result.Results, next.Item, next.Color, next.Budget, next.Direction)
	}

	metrics.TurnsTotal.WithLabelValues(string(action)).Inc()
	return result
}

// GenerateReply processes one utterance for a stored session and records
// both sides of the exchange in its transcript
func (a *Assistant) GenerateReply(ctx context.Context, sessionID, text string) (*model.ChatResponse, error) {
	return a.GenerateReplyStream(ctx, sessionID, text, nil)
}

// GenerateReplyStream is GenerateReply with progress events
// (intent, action, results, reply) sent to callback as they are produced
func (a *Assistant) GenerateReplyStream(ctx context.Context, sessionID, text string, callback EventCallback) (*model.ChatResponse, error) {
	defer a.locks.lock(sessionID)()

	startTime := time.Now()
	emit := func(event string, data any) error {
		if callback == nil {
			return nil
		}
		return callback(event, data)
	}

	s, err := a.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.Append(model.SenderUser, text)
	res := a.Respond(s, text)
	s.Append(model.SenderBot, res.Reply)

	if err := a.store.Save(ctx, s); err != nil {
		return nil, err
	}

	if err := emit("intent", res.Intent); err != nil {
		return nil, err
	}
	if err := emit("action", map[string]any{"action": res.Action, "slots": s.Slots}); err != nil {
		return nil, err
	}
	if res.Action.Searches() {
		if err := emit("results", res.Results); err != nil {
			return nil, err
		}
	}
	if err := emit("reply", map[string]any{"reply": res.Reply}); err != nil {
		return nil, err
	}

	took := time.Since(startTime).Milliseconds()
	log.Debug().
		Str("session_id", sessionID).
		Str("action", string(res.Action)).
		Str("step", string(s.Slots.Step)).
		Int("results", len(res.Results)).
		Int64("took_ms", took).
		Msg("Turn processed")

	return &model.ChatResponse{
		SessionID: sessionID,
		Reply:     res.Reply,
		Action:    string(res.Action),
		Intent:    res.Intent,
		Slots:     s.Slots,
		Results:   res.Results,
		Took:      took,
	}, nil
}

// Compare resolves a "product1 vs product2" request and records a successful
// comparison in the session
func (a *Assistant) Compare(ctx context.Context, sessionID, text string) (*model.CompareResponse, error) {
	defer a.locks.lock(sessionID)()

	s, err := a.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	comparison, message := a.comparer.Compare(text)
	if comparison != nil {
		s.CompareHistory = append(s.CompareHistory, *comparison)
		s.UpdatedAt = time.Now()
		if err := a.store.Save(ctx, s); err != nil {
			return nil, err
		}
	}

	return &model.CompareResponse{Comparison: comparison, Message: message}, nil
}

// Recommend updates the session's remembered preferences from text and
// returns matching picks
func (a *Assistant) Recommend(ctx context.Context, sessionID, text string) (*model.RecommendResponse, error) {
	defer a.locks.lock(sessionID)()

	s, err := a.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	prefs, rows, message := a.recommender.Recommend(s.Preferences, text)
	s.Preferences = prefs
	s.UpdatedAt = time.Now()
	if err := a.store.Save(ctx, s); err != nil {
		return nil, err
	}

	return &model.RecommendResponse{Preferences: prefs, Results: rows, Message: message}, nil
}

// CreateAlert records a back-in-stock alert in the session, keyed by item.
// A later request for the same item replaces the earlier one.
func (a *Assistant) CreateAlert(ctx context.Context, sessionID, text string) (*model.AlertResponse, error) {
	defer a.locks.lock(sessionID)()

	s, err := a.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	alert, inStock, message := a.alerts.Request(text)
	if alert != nil {
		if s.Alerts == nil {
			s.Alerts = map[string]model.StockAlert{}
		}
		s.Alerts[alert.Item] = *alert
		s.UpdatedAt = time.Now()
		if err := a.store.Save(ctx, s); err != nil {
			return nil, err
		}
	}

	return &model.AlertResponse{Alert: alert, InStock: inStock, Message: message}, nil
}

// Search runs a direct catalog query outside any conversation
func (a *Assistant) Search(query model.SearchQuery) (model.MatchResult, string) {
	results := a.matcher.Search(query)
	return results, a.renderer.Render(results, query.Item, query.Color, query.Budget, query.Direction)
}
