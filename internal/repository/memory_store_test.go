package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ippt-coach/internal/domain"
)

func TestMemoryStore_RoundTripIsolatesCopies(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	s := domain.Session{}
	s.StartForward()
	require.NoError(t, store.Save(ctx, "a", s))

	// Mutating the caller's copy must not leak into the stored value.
	s.Flow.Forward.Age = 40
	s.Flow.Forward.Fail()

	got, err := store.Load(ctx, "a")
	require.NoError(t, err)
	require.Zero(t, got.Flow.Forward.Age)
	require.Empty(t, got.Flow.Forward.Retries)
}

func TestMemoryStore_ExpiryAndDelete(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a", domain.Session{Topic: domain.TopicState{Field: domain.FieldAbs}}))
	require.NoError(t, store.Save(ctx, "b", domain.Session{Topic: domain.TopicState{Field: domain.FieldHip}}))
	require.Equal(t, 2, store.Len())

	now = now.Add(time.Minute)
	got, err := store.Load(ctx, "a")
	require.NoError(t, err)
	require.True(t, got.IsZero())
	require.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete(ctx, "b"))
	require.NoError(t, store.Delete(ctx, "missing"))
	require.Equal(t, 0, store.Len())
}
