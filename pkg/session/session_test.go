package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	rec := Record{
		SessionID:    uuid.New(),
		UserID:       uuid.New(),
		Email:        "doc@example.com",
		Role:         "DOCTOR",
		ClinicID:     uuid.New(),
		TokenVersion: 1,
		CreatedAt:    time.Now(),
	}

	require.NoError(t, store.Create(ctx, rec, time.Hour))

	got, err := store.Get(ctx, rec.SessionID)
	require.NoError(t, err)
	assert.Equal(t, rec.UserID, got.UserID)
	assert.Equal(t, rec.TokenVersion, got.TokenVersion)

	require.NoError(t, store.Delete(ctx, rec.SessionID))

	_, err = store.Get(ctx, rec.SessionID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	now := time.Now()
	store.now = func() time.Time { return now }

	rec := Record{SessionID: uuid.New(), UserID: uuid.New()}
	require.NoError(t, store.Create(ctx, rec, time.Minute))

	now = now.Add(2 * time.Minute)
	_, err := store.Get(ctx, rec.SessionID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteAllForUserUsesIndex(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	userA := uuid.New()
	userB := uuid.New()

	for i := 0; i < 3; i++ {
		rec := Record{SessionID: uuid.New(), UserID: userA}
		require.NoError(t, store.Create(ctx, rec, time.Hour))
	}
	keepB := Record{SessionID: uuid.New(), UserID: userB}
	require.NoError(t, store.Create(ctx, keepB, time.Hour))

	n, err := store.DeleteAllForUser(ctx, userA)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// Other users' sessions are untouched.
	_, err = store.Get(ctx, keepB.SessionID)
	assert.NoError(t, err)

	// Second call is a no-op.
	n, err = store.DeleteAllForUser(ctx, userA)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
