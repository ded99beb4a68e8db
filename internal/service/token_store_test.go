package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenStorePrefersSessionAndFallsBack(t *testing.T) {
	session, persistent := newFakeKV(), newFakeKV()
	store := NewTokenStore(session, persistent, nil)
	ctx := context.Background()

	assert.Empty(t, store.Get(ctx))

	persistent.data[KeyToken] = []byte("legacy")
	assert.Equal(t, "legacy", store.Get(ctx))

	store.Set(ctx, "fresh")
	assert.Equal(t, "fresh", store.Get(ctx))
	assert.Equal(t, "fresh", session.raw(KeyToken))
	_, stillThere := persistent.data[KeyToken]
	assert.False(t, stillThere, "legacy copy is removed on write")

	store.Remove(ctx)
	assert.Empty(t, store.Get(ctx))
}

func TestTokenStoreLoggedInMarker(t *testing.T) {
	session, persistent := newFakeKV(), newFakeKV()
	store := NewTokenStore(session, persistent, nil)
	ctx := context.Background()

	store.SetLoggedIn(ctx, true)
	assert.Equal(t, "true", persistent.raw(KeyIsLoggedIn))
	assert.True(t, store.State(ctx).IsLoggedIn)
	assert.False(t, store.State(ctx).Authenticated)

	store.SetLoggedIn(ctx, false)
	assert.False(t, store.LoggedIn(ctx))
}

func TestTokenStoreSwallowsStorageErrors(t *testing.T) {
	session := newFakeKV()
	session.setErr = errors.New("quota exceeded")
	session.getErr = errors.New("disabled")
	persistent := newFakeKV()
	persistent.data[KeyToken] = []byte("legacy")
	store := NewTokenStore(session, persistent, nil)
	ctx := context.Background()

	assert.NotPanics(t, func() { store.Set(ctx, "fresh") })
	assert.Empty(t, store.Get(ctx))
}
