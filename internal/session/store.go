// Package session keeps per-conversation state outside the core.
package session

import (
	"context"
	"errors"

	"shopassist/internal/model"
)

// ErrNotFound is returned when a session id is unknown or expired
var ErrNotFound = errors.New("session not found")

// Store persists sessions by id. Implementations hand out copies, so a
// caller's changes are only visible to others after Save.
type Store interface {
	Get(ctx context.Context, id string) (*model.Session, error)
	Save(ctx context.Context, s *model.Session) error
	Delete(ctx context.Context, id string) error
}
