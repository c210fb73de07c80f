package session

import (
	"context"
	"testing"
	"time"

	"shopassist/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore checks the behavior every Store implementation shares
func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	s := model.NewSession("s1")
	item := "blue jeans"
	s.Slots.Item = &item
	s.Slots.Step = model.StepAskColor
	s.Append(model.SenderUser, "blue jeans")
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got.Slots.Item)
	assert.Equal(t, "blue jeans", *got.Slots.Item)
	assert.Equal(t, model.StepAskColor, got.Slots.Step)
	require.Len(t, got.Transcript, 1)
	assert.Equal(t, model.SenderUser, got.Transcript[0].Sender)

	// Changes to a fetched copy are invisible until saved
	got.Slots.Step = model.StepAskBudget
	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, model.StepAskColor, again.Slots.Step)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Error(t, store.Save(ctx, &model.Session{}))
}

func TestMemoryStore(t *testing.T) {
	store, err := NewMemoryStore(0)
	require.NoError(t, err)
	exerciseStore(t, store)
}

func TestMemoryStore_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	store, err := NewMemoryStore(2)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, model.NewSession("a")))
	require.NoError(t, store.Save(ctx, model.NewSession("b")))
	_, err = store.Get(ctx, "a")
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, model.NewSession("c")))

	assert.Equal(t, 2, store.Len())
	_, err = store.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Get(ctx, "a")
	assert.NoError(t, err)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	exerciseStore(t, NewRedisStoreFromClient(client, time.Hour))
}

func TestRedisStore_Expires(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := NewRedisStoreFromClient(client, time.Minute)
	require.NoError(t, store.Save(ctx, model.NewSession("ttl")))
	assert.True(t, mr.Exists(KeyPrefix+"ttl"))

	mr.FastForward(2 * time.Minute)
	_, err := store.Get(ctx, "ttl")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewRedisStore_RequiresURL(t *testing.T) {
	_, err := NewRedisStore("", time.Minute)
	assert.Error(t, err)
}

func TestNewRedisStore_Connects(t *testing.T) {
	mr := miniredis.RunT(t)
	store, err := NewRedisStore("redis://"+mr.Addr()+"/0", time.Minute)
	require.NoError(t, err)
	defer store.Close()
	exerciseStore(t, store)
}
