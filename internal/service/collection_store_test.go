package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

func TestMutateReplacesOnlyMatch(t *testing.T) {
	items := []models.Message{{ID: 1}, {ID: 2, Subject: "keep"}}
	out, ok := Mutate(items, 1, func(m models.Message) models.Message {
		m.Read = true
		return m
	})
	require.True(t, ok)
	assert.True(t, out[0].Read)
	assert.Equal(t, items[1], out[1])
	assert.False(t, items[0].Read, "input must not change")

	same, ok := Mutate(items, 42, func(m models.Message) models.Message { return m })
	assert.False(t, ok)
	assert.Equal(t, items, same)
}

func TestRemoveAndRemoveWhere(t *testing.T) {
	items := []models.Message{{ID: 1, Read: true}, {ID: 2}, {ID: 3, Read: true}}

	out, ok := Remove(items, 2)
	assert.True(t, ok)
	assert.Equal(t, []int64{1, 3}, ids(out))
	assert.Len(t, items, 3)

	kept, removed := RemoveWhere(items, func(m models.Message) bool { return m.Read })
	assert.Equal(t, 2, removed)
	assert.Equal(t, []int64{2}, ids(kept))
}

func TestResetAllMapsEveryItem(t *testing.T) {
	items := []models.Grade{{ID: 1, Progress: 60}, {ID: 2, Progress: 45}}
	out := ResetAll(items, func(g models.Grade) models.Grade {
		g.Progress = 0
		return g
	})
	assert.Equal(t, 0, out[0].Progress+out[1].Progress)
	assert.Equal(t, 60, items[0].Progress)
}

func TestCollectionStoreOperations(t *testing.T) {
	ctx := context.Background()
	store := NewCollectionStore(KeyMessages, newFakeKV(), func() []models.Message {
		return []models.Message{{ID: 1}, {ID: 2, Read: true}}
	}, nil, nil)

	_, err := store.Mutate(ctx, 99, func(m models.Message) models.Message { return m })
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	inserted := store.Prepend(ctx, models.Message{ID: 2}, func(m models.Message, existing []models.Message) models.Message {
		m.ID = int64(len(existing) + 1)
		return m
	})
	assert.Equal(t, int64(3), inserted.ID)
	assert.Equal(t, []int64{3, 1, 2}, ids(store.All(ctx)))

	assert.Equal(t, 1, store.RemoveWhere(ctx, func(m models.Message) bool { return m.Read }))
	require.NoError(t, store.Remove(ctx, 3))
	assert.Error(t, store.Remove(ctx, 3))
	assert.Equal(t, []int64{1}, ids(store.All(ctx)))

	all := store.All(ctx)
	all[0].Subject = "mutated copy"
	assert.Empty(t, store.All(ctx)[0].Subject)
}
