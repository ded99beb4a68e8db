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

func TestAssignmentToggleCompletesPendingItem(t *testing.T) {
	kv := seededKV(t, KeyAssignments, []models.Assignment{{ID: 1, Title: "Essay", Status: models.AssignmentPending, Updated: "2025-01-01"}})
	svc := NewAssignmentService(kv, nil, nil, testScreen())

	got, err := svc.ToggleComplete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, models.AssignmentCompleted, got.Status)
	assert.True(t, got.Completed)
	assert.Equal(t, "2025-08-20", got.Updated)

	assert.Contains(t, kv.raw(KeyAssignments), `"status":"Completed"`)
}

func TestAssignmentToggleKeepsStatusAndCompletedInStep(t *testing.T) {
	svc := NewAssignmentService(newFakeKV(), nil, nil, testScreen())
	ctx := context.Background()
	before := svc.All(ctx)

	for _, id := range []int64{3, 3, 2} {
		_, err := svc.ToggleComplete(ctx, id)
		require.NoError(t, err)
	}

	after := svc.All(ctx)
	for i, a := range after {
		assert.Equal(t, a.Status == models.AssignmentCompleted, a.Completed, "id %d", a.ID)
		if a.ID != 2 && a.ID != 3 {
			assert.Equal(t, before[i], a)
		}
	}
	assert.Equal(t, models.AssignmentCompleted, after[1].Status)
	assert.Equal(t, models.AssignmentCompleted, after[2].Status)
}

func TestAssignmentToggleUnknownID(t *testing.T) {
	svc := NewAssignmentService(newFakeKV(), nil, nil, testScreen())
	_, err := svc.ToggleComplete(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestAssignmentResetAllNeedsConfirmation(t *testing.T) {
	kv := newFakeKV()
	svc := NewAssignmentService(kv, nil, nil, testScreen())
	ctx := context.Background()
	before := svc.All(ctx)

	declined := svc.ResetAll(ctx, false)
	assert.False(t, declined.Applied)
	assert.Equal(t, resetAssignmentsPrompt, declined.Message)
	assert.Equal(t, before, svc.All(ctx))

	applied := svc.ResetAll(ctx, true)
	assert.True(t, applied.Applied)
	assert.Equal(t, 5, applied.Affected)
	for _, a := range svc.All(ctx) {
		assert.Equal(t, models.AssignmentPending, a.Status)
		assert.False(t, a.Completed)
		assert.Equal(t, "2025-08-20", a.Updated)
	}
}

func TestAssignmentListDefaultsToDueAscending(t *testing.T) {
	svc := NewAssignmentService(newFakeKV(), nil, nil, testScreen())
	page := svc.List(context.Background(), models.QueryParameters{})
	assert.Equal(t, []int64{5, 3, 1, 2, 4}, ids(page.Items))
	assert.Equal(t, 1, page.TotalPages)

	found := svc.Filtered(context.Background(), models.QueryParameters{Search: "react"})
	require.Len(t, found, 1)
	assert.Equal(t, "React Todo App", found[0].Title)
}
