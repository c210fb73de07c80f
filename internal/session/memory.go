package session

import (
	"context"
	"fmt"

	"shopassist/internal/model"

	lru "github.com/hashicorp/golang-lru"
)

// DefaultCapacity bounds the in-memory store when no capacity is configured
const DefaultCapacity = 10000

// MemoryStore keeps sessions in a bounded LRU cache.
// The least recently used session is evicted once capacity is reached.
type MemoryStore struct {
	cache *lru.Cache
}

// NewMemoryStore creates an in-memory store holding up to capacity sessions
func NewMemoryStore(capacity int) (*MemoryStore, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	cache, err := lru.New(capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}
	return &MemoryStore{cache: cache}, nil
}

// Get implements Store
func (m *MemoryStore) Get(ctx context.Context, id string) (*model.Session, error) {
	v, ok := m.cache.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return v.(*model.Session).Clone(), nil
}

// Save implements Store
func (m *MemoryStore) Save(ctx context.Context, s *model.Session) error {
	if s == nil || s.ID == "" {
		return fmt.Errorf("cannot save session without id")
	}
	m.cache.Add(s.ID, s.Clone())
	return nil
}

// Delete implements Store
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.cache.Remove(id)
	return nil
}

// Len returns the number of cached sessions
func (m *MemoryStore) Len() int {
	return m.cache.Len()
}
