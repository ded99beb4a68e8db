package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueRetriesUntilSuccess(t *testing.T) {
	var calls atomic.Int32
	q := NewQueue("test", func(ctx context.Context, job Job) error {
		if calls.Add(1) < 3 {
			return errors.New("transient")
		}
		return nil
	}, QueueConfig{MaxRetries: 3, RetryDelay: 5 * time.Millisecond})

	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{Type: "mail"}))
	require.Eventually(t, func() bool { return calls.Load() == 3 }, time.Second, 5*time.Millisecond)
}

func TestQueueGivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	q := NewQueue("test", func(ctx context.Context, job Job) error {
		calls.Add(1)
		return errors.New("permanent")
	}, QueueConfig{MaxRetries: 1, RetryDelay: 2 * time.Millisecond})

	q.Start(context.Background())
	require.NoError(t, q.Enqueue(Job{Type: "mail"}))
	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 2*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(2), calls.Load())
	q.Stop()
}

func TestEnqueueRequiresStart(t *testing.T) {
	q := NewQueue("idle", func(context.Context, Job) error { return nil }, QueueConfig{})
	assert.False(t, q.Running())
	assert.Error(t, q.Enqueue(Job{}))

	q.Start(context.Background())
	assert.True(t, q.Running())
	q.Stop()
	assert.False(t, q.Running())
	assert.Error(t, q.Enqueue(Job{}))
}

func TestStopDrainsBufferedJobs(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	q := NewQueue("drain", func(ctx context.Context, job Job) error {
		if job.Type == "block" {
			<-release
		}
		calls.Add(1)
		return nil
	}, QueueConfig{Workers: 1, DrainTimeout: time.Second})

	q.Start(context.Background())
	require.NoError(t, q.Enqueue(Job{Type: "block"}))
	require.NoError(t, q.Enqueue(Job{Type: "mail"}))
	require.NoError(t, q.Enqueue(Job{Type: "mail"}))

	go func() {
		time.Sleep(20 * time.Millisecond)
		close(release)
	}()
	q.Stop()

	assert.Equal(t, int32(3), calls.Load())
	assert.Error(t, q.Enqueue(Job{Type: "mail"}))
}
