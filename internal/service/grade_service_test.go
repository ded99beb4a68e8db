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

func intPtr(v int) *int { return &v }

func TestGradeSummaryAveragesSeed(t *testing.T) {
	svc := NewGradeService(newFakeKV(), nil, nil, nil, testScreen())
	page, summary := svc.List(context.Background(), models.QueryParameters{})

	assert.Equal(t, 79, summary.Average)
	assert.Equal(t, 5, summary.Courses)
	assert.Equal(t, []int64{3, 1, 2, 5, 4}, ids(page.Items))
}

func TestGradeUpdateMovesProgressHalfway(t *testing.T) {
	svc := NewGradeService(newFakeKV(), nil, nil, nil, testScreen())
	ctx := context.Background()

	got, err := svc.UpdateGrade(ctx, 2, models.GradeUpdateRequest{Grade: intPtr(78)})
	require.NoError(t, err)
	assert.Equal(t, 78, got.Grade)
	assert.Equal(t, 62, got.Progress) // (45+78)/2 = 61.5
	assert.Equal(t, "2025-08-20", got.Updated)
}

func TestGradeUpdateRejectsOutOfRange(t *testing.T) {
	svc := NewGradeService(newFakeKV(), nil, nil, nil, testScreen())
	ctx := context.Background()
	before := svc.All(ctx)

	for _, req := range []models.GradeUpdateRequest{{Grade: intPtr(101)}, {Grade: intPtr(-1)}, {}} {
		_, err := svc.UpdateGrade(ctx, 1, req)
		require.Error(t, err)
		appErr := appErrors.FromError(err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
		assert.Contains(t, appErr.Fields, "grade")
	}
	assert.Equal(t, before, svc.All(ctx))
}

func TestGradeToggleAndResetProgress(t *testing.T) {
	svc := NewGradeService(newFakeKV(), nil, nil, nil, testScreen())
	ctx := context.Background()

	got, err := svc.ToggleComplete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.Equal(t, 60, got.Progress)

	_, err = svc.ToggleComplete(ctx, 42)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	assert.False(t, svc.ResetProgress(ctx, false).Applied)
	assert.Equal(t, 60, svc.All(ctx)[0].Progress)

	res := svc.ResetProgress(ctx, true)
	assert.True(t, res.Applied)
	for _, g := range svc.All(ctx) {
		assert.Zero(t, g.Progress)
	}
}

func TestAverageGradeEmpty(t *testing.T) {
	assert.Zero(t, AverageGrade(nil))
	assert.Equal(t, 3, AverageGrade([]models.Grade{{Grade: 2}, {Grade: 3}}))
}
