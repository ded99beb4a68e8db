// Package jobs runs background work, such as outgoing mail, on a small
// in-memory worker pool.
package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Job is one unit of queued work.
type Job struct {
	ID       string
	Type     string
	Payload  interface{}
	Attempt  int
	Enqueued time.Time
}

// Handler processes a job. A returned error schedules a retry.
type Handler func(context.Context, Job) error

// QueueConfig configures the worker pool.
type QueueConfig struct {
	Workers    int
	BufferSize int
	MaxRetries int
	// RetryDelay is multiplied by the attempt number.
	RetryDelay time.Duration
	JobTimeout time.Duration
	// DrainTimeout bounds how long Stop waits for buffered jobs.
	DrainTimeout time.Duration
	Logger       *zap.Logger
}

func (c QueueConfig) withDefaults() QueueConfig {
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.BufferSize <= 0 {
		c.BufferSize = c.Workers * 16
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = time.Second
	}
	if c.JobTimeout <= 0 {
		c.JobTimeout = 30 * time.Second
	}
	if c.DrainTimeout <= 0 {
		c.DrainTimeout = 5 * time.Second
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

// Queue dispatches jobs to a fixed number of goroutines. Jobs still buffered
// when Stop is called are given DrainTimeout to finish.
type Queue struct {
	name    string
	handler Handler
	cfg     QueueConfig
	logger  *zap.SugaredLogger

	jobs chan Job

	mu       sync.Mutex
	accepted bool
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewQueue builds a stopped queue.
func NewQueue(name string, handler Handler, cfg QueueConfig) *Queue {
	cfg = cfg.withDefaults()
	return &Queue{
		name:    name,
		handler: handler,
		cfg:     cfg,
		logger:  cfg.Logger.Sugar().With("queue", name),
		jobs:    make(chan Job, cfg.BufferSize),
	}
}

// Start launches the workers. Calling it on a running queue is a no-op.
func (q *Queue) Start(ctx context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.accepted {
		return
	}
	q.ctx, q.cancel = context.WithCancel(ctx)
	for i := 1; i <= q.cfg.Workers; i++ {
		q.wg.Add(1)
		go q.worker(i)
	}
	q.accepted = true
	q.logger.Infow("queue started", "workers", q.cfg.Workers)
}

// Running reports whether Enqueue will accept jobs.
func (q *Queue) Running() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.accepted && q.ctx.Err() == nil
}

// Stop refuses new jobs, waits for the buffer to empty or DrainTimeout to
// pass, then stops the workers. In-flight jobs run to completion or to their
// JobTimeout.
func (q *Queue) Stop() {
	q.mu.Lock()
	if !q.accepted {
		q.mu.Unlock()
		return
	}
	q.accepted = false
	q.mu.Unlock()

	deadline := time.Now().Add(q.cfg.DrainTimeout)
	for len(q.jobs) > 0 && time.Now().Before(deadline) && q.ctx.Err() == nil {
		time.Sleep(10 * time.Millisecond)
	}
	q.cancel()
	q.wg.Wait()
	if dropped := len(q.jobs); dropped > 0 {
		q.logger.Warnw("queue stopped with pending jobs", "dropped", dropped)
		return
	}
	q.logger.Infow("queue stopped")
}

// Enqueue buffers a job, filling in its ID and enqueue time when missing.
func (q *Queue) Enqueue(job Job) error {
	q.mu.Lock()
	accepted, ctx := q.accepted, q.ctx
	q.mu.Unlock()
	if !accepted {
		return fmt.Errorf("queue %s not running", q.name)
	}
	return q.push(ctx, job)
}

func (q *Queue) push(ctx context.Context, job Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Enqueued.IsZero() {
		job.Enqueued = time.Now().UTC()
	}
	select {
	case <-ctx.Done():
		return fmt.Errorf("queue %s stopped: %w", q.name, ctx.Err())
	case q.jobs <- job:
		return nil
	}
}

func (q *Queue) worker(id int) {
	defer q.wg.Done()
	for {
		select {
		case <-q.ctx.Done():
			return
		case job := <-q.jobs:
			q.run(id, job)
		}
	}
}

func (q *Queue) run(worker int, job Job) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(q.ctx), q.cfg.JobTimeout)
	defer cancel()
	err := q.handler(ctx, job)
	if err == nil {
		return
	}

	job.Attempt++
	log := q.logger.With("worker", worker, "job_id", job.ID, "type", job.Type, "attempt", job.Attempt, "error", err)
	if job.Attempt > q.cfg.MaxRetries {
		log.Errorw("job exceeded retries")
		return
	}
	log.Warnw("job failed, retrying")

	// Retries bypass the accepted flag so a draining queue still gets them.
	go func(j Job, delay time.Duration) {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-q.ctx.Done():
		case <-timer.C:
			if err := q.push(q.ctx, j); err != nil {
				q.logger.Errorw("failed to requeue job", "job_id", j.ID, "error", err)
			}
		}
	}(job, q.cfg.RetryDelay*time.Duration(job.Attempt))
}
