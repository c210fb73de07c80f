package service

import (
	"shopassist/internal/model"
)

// Action is what the assistant does after a transition
type Action string

const (
	ActionFarewell       Action = "farewell"
	ActionBudgetSearch   Action = "budget_search"
	ActionAskItem        Action = "ask_item"
	ActionAskColor       Action = "ask_color"
	ActionAskBudget      Action = "ask_budget"
	ActionRefineSearch   Action = "refine_search"
	ActionFallbackSearch Action = "fallback_search"
	ActionClarify        Action = "clarify"
)

// Searches reports whether the action runs a catalog search
func (a Action) Searches() bool {
	switch a {
	case ActionBudgetSearch, ActionRefineSearch, ActionFallbackSearch:
		return true
	}
	return false
}

// Turn is everything the state machine needs to know about one utterance
type Turn struct {
	Cancel       bool
	BudgetPhrase bool
	Intent       model.Intent
}

// NewTurn classifies an utterance
func NewTurn(text string, intent model.Intent) Turn {
	return Turn{
		Cancel:       IsCancellation(text),
		BudgetPhrase: intent.HasBudget(),
		Intent:       intent,
	}
}

// Transition computes the next slots and the action for one turn.
// It never touches the catalog; rules apply in priority order:
// cancellation, budget short-circuit, step-driven slot filling, fallback.
func Transition(slots model.Slots, turn Turn) (model.Slots, Action) {
	next := slots
	in := turn.Intent

	if turn.Cancel {
		return model.NewSlots(), ActionFarewell
	}

	if turn.BudgetPhrase {
		next.Budget, next.Direction = in.Budget, in.Direction
		// Item and color stay as they are; empty ones take the utterance's values
		if next.Item == nil {
			next.Item = in.Item
		}
		if next.Color == nil {
			next.Color = in.Color
		}
		return next, ActionBudgetSearch
	}

	switch slots.Step {
	case model.StepGreet:
		next.Step = model.StepAskItem
		return next, ActionAskItem

	case model.StepAskItem:
		next.Item, next.Color = in.Item, in.Color
		next.Step = model.StepAskColor
		return next, ActionAskColor

	case model.StepAskColor:
		if in.Color != nil {
			next.Color = in.Color
		}
		next.Step = model.StepAskBudget
		return next, ActionAskBudget

	case model.StepAskBudget:
		if in.Budget != nil {
			next.Budget, next.Direction = in.Budget, in.Direction
		}
		return next, ActionRefineSearch
	}

	if in.Empty() {
		return slots, ActionClarify
	}

	next = mergeIntent(next, in)
	if next.Color == nil {
		next.Step = model.StepAskColor
	} else {
		next.Step = model.StepAskBudget
	}
	return next, ActionFallbackSearch
}

// mergeIntent overwrites slots with every field the intent carries
func mergeIntent(slots model.Slots, in model.Intent) model.Slots {
	if in.Item != nil {
		slots.Item = in.Item
	}
	if in.Color != nil {
		slots.Color = in.Color
	}
	if in.Budget != nil {
		slots.Budget, slots.Direction = in.Budget, in.Direction
	}
	return slots
}
