package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

func TestSettingsDefaults(t *testing.T) {
	svc := NewSettingsService(newFakeKV(), nil, nil, nil)
	s := svc.Get(context.Background())

	assert.True(t, s.Notifications.Email)
	assert.False(t, s.Notifications.Push)
	assert.Equal(t, "English", s.Academic.Language)
	assert.Equal(t, "School Premium", s.Subscription.Plan)
	assert.Len(t, s.Devices, 2)
}

func TestSettingsSaveSection(t *testing.T) {
	kv := newFakeKV()
	svc := NewSettingsService(kv, nil, nil, nil)
	ctx := context.Background()

	s, msg, err := svc.Save(ctx, models.SettingsUpdate{
		Section: models.SectionProfile,
		Body:    json.RawMessage(`{"name":"Ada","email":"ada@example.com","bio":"hi"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "Profile saved successfully", msg)
	assert.Equal(t, "Ada", s.Profile.Name)
	assert.Contains(t, kv.raw(KeySettings), `"bio":"hi"`)
	assert.NotContains(t, kv.raw(KeySettings), "School Premium")

	reloaded := NewSettingsService(kv, nil, nil, nil).Get(ctx)
	assert.Equal(t, "ada@example.com", reloaded.Profile.Email)
}

func TestSettingsSaveRejectsBadInput(t *testing.T) {
	svc := NewSettingsService(newFakeKV(), nil, nil, nil)
	ctx := context.Background()

	cases := []models.SettingsUpdate{
		{Section: models.SectionSubscription, Body: json.RawMessage(`{}`)},
		{Section: "billing", Body: json.RawMessage(`{}`)},
		{Section: models.SectionProfile, Body: json.RawMessage(`{"email":"not-an-email"}`)},
		{Section: models.SectionNotifications, Body: json.RawMessage(`{"sms":true}`)},
		{Section: models.SectionAcademic, Body: json.RawMessage(`{"gradeView":"stars"}`)},
	}
	for _, tc := range cases {
		_, _, err := svc.Save(ctx, tc)
		require.Error(t, err, string(tc.Section))
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	}
	assert.Equal(t, "percentage", svc.Get(ctx).Academic.GradeView)
}
