package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milkledger/server/internal/model"
)

func TestMemory_CreateAndGet(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	session := model.Session{
		Token:     "tok",
		CreatedAt: time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(model.SessionDuration),
	}
	require.NoError(t, store.Create(ctx, session))

	found, err := store.GetByToken(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, session, found)
}

func TestMemory_GetUnknownToken(t *testing.T) {
	store := NewMemory()

	_, err := store.GetByToken(context.Background(), "nope")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestMemory_Delete(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, model.Session{Token: "tok"}))
	require.NoError(t, store.Delete(ctx, "tok"))

	_, err := store.GetByToken(ctx, "tok")
	assert.ErrorIs(t, err, model.ErrNotFound)

	// deleting again is a no-op
	assert.NoError(t, store.Delete(ctx, "tok"))
}
