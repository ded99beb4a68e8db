package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

func TestFeedbackSubmitValidatesForm(t *testing.T) {
	svc := NewFeedbackService(newFakeKV(), nil, nil, nil, testScreen())

	_, err := svc.Submit(context.Background(), models.FeedbackRequest{Name: "  ", Email: "", Feedback: ""})
	require.Error(t, err)
	fields := appErrors.FromError(err).Fields
	assert.Equal(t, "Name is required", fields["name"])
	assert.Equal(t, "Email is required", fields["email"])
	assert.Equal(t, "feedback is required", fields["feedback"])

	_, err = svc.Submit(context.Background(), models.FeedbackRequest{Name: "Ada", Email: "ada.example.com", Feedback: "Great"})
	require.Error(t, err)
	assert.Equal(t, "Email is invalid", appErrors.FromError(err).Fields["email"])

	_, err = svc.Submit(context.Background(), models.FeedbackRequest{Name: "Ada", Email: "ada@example.com", Feedback: "Great", Rating: intPtr(6)})
	require.Error(t, err)
	assert.Contains(t, appErrors.FromError(err).Fields, "rating")
}

func TestFeedbackSubmitPrependsEntry(t *testing.T) {
	kv := newFakeKV()
	svc := NewFeedbackService(kv, nil, nil, nil, testScreen())
	ctx := context.Background()

	entry, err := svc.Submit(ctx, models.FeedbackRequest{Name: " Ada ", Email: "ada@example.com", Feedback: "Loved it"})
	require.NoError(t, err)
	assert.Equal(t, fixedNow().UnixMilli(), entry.ID)
	assert.Equal(t, "Ada", entry.Name)
	assert.Equal(t, 5, entry.Rating)
	assert.Equal(t, "20/08/2025", entry.Date)

	page := svc.List(ctx, models.QueryParameters{})
	assert.Equal(t, entry.ID, page.Items[0].ID)
	assert.Equal(t, 21, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)

	second, err := svc.Submit(ctx, models.FeedbackRequest{Name: "Bo", Email: "bo@example.com", Feedback: "Nice", Rating: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, entry.ID+1, second.ID, "ids stay unique within the same millisecond")
	assert.Equal(t, 3, second.Rating)
}

func TestFeedbackListSortsAndSearches(t *testing.T) {
	svc := NewFeedbackService(newFakeKV(), nil, nil, nil, testScreen())
	ctx := context.Background()

	page := svc.List(ctx, models.QueryParameters{Search: "mentorship"})
	assert.Equal(t, []int64{8, 10, 14, 18}, ids(page.Items))

	lowest := svc.List(ctx, models.QueryParameters{Sort: models.FeedbackSortRatingAsc})
	assert.Equal(t, 4, lowest.Items[0].Rating)
	assert.Equal(t, int64(5), lowest.Items[0].ID)

	byName := svc.List(ctx, models.QueryParameters{Sort: models.FeedbackSortNameAsc})
	assert.Equal(t, "Benjamin Mohammed", byName.Items[0].Name)
}
