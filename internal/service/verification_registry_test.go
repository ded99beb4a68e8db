package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

func TestRegistryLifecycle(t *testing.T) {
	metrics := NewMetricsService()
	reg := NewVerificationRegistry(func() *VerificationFlow { return manualFlow(time.Minute, VerificationDeps{}) }, time.Hour, nil, metrics)

	id, flow := reg.Create()
	require.NotEmpty(t, id)
	got, err := reg.Get(id)
	require.NoError(t, err)
	assert.Same(t, flow, got)
	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, int64(1), metrics.Snapshot().ResetSessions)

	require.NoError(t, reg.Abandon(id))
	assert.Zero(t, reg.Len())
	_, err = reg.Get(id)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	assert.True(t, errors.Is(reg.Abandon(id), appErrors.ErrNotFound))
}

func TestRegistrySweepClosesIdleSessions(t *testing.T) {
	now := fixedNow()
	clock := func() time.Time { return now }
	reg := NewVerificationRegistry(func() *VerificationFlow {
		return NewVerificationFlow(VerificationDeps{}, VerificationConfig{CodeTTL: time.Minute, Now: clock})
	}, 10*time.Minute, nil, nil)
	reg.now = clock

	staleID, stale := reg.Create()
	now = now.Add(8 * time.Minute)
	freshID, _ := reg.Create()
	now = now.Add(5 * time.Minute)

	assert.Equal(t, 1, reg.Sweep())
	_, err := reg.Get(staleID)
	assert.Error(t, err)
	_, err = reg.Get(freshID)
	assert.NoError(t, err)
	assert.False(t, stale.TimerActive())

	reg.Close()
	assert.Zero(t, reg.Len())
}
