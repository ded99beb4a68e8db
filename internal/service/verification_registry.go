package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

// VerificationRegistry tracks password reset flows by session ID.
type VerificationRegistry struct {
	newFlow func() *VerificationFlow
	idle    time.Duration
	now     func() time.Time
	logger  *zap.Logger
	metrics *MetricsService

	mu       sync.Mutex
	sessions map[string]*VerificationFlow
}

// NewVerificationRegistry builds a registry. Sessions idle for longer than
// idle are closed by Sweep.
func NewVerificationRegistry(newFlow func() *VerificationFlow, idle time.Duration, logger *zap.Logger, metrics *MetricsService) *VerificationRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}
	if idle <= 0 {
		idle = time.Hour
	}
	return &VerificationRegistry{
		newFlow:  newFlow,
		idle:     idle,
		now:      time.Now,
		logger:   logger,
		metrics:  metrics,
		sessions: make(map[string]*VerificationFlow),
	}
}

// Create starts a new flow and returns its session ID.
func (r *VerificationRegistry) Create() (string, *VerificationFlow) {
	id := uuid.NewString()
	flow := r.newFlow()

	r.mu.Lock()
	r.sessions[id] = flow
	n := len(r.sessions)
	r.mu.Unlock()

	r.metrics.SetResetSessions(n)
	return id, flow
}

// Get returns the flow for id.
func (r *VerificationRegistry) Get(id string) (*VerificationFlow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	flow, ok := r.sessions[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "reset session not found")
	}
	flow.markActive()
	return flow, nil
}

// Abandon closes the flow for id and forgets it.
func (r *VerificationRegistry) Abandon(id string) error {
	r.mu.Lock()
	flow, ok := r.sessions[id]
	delete(r.sessions, id)
	n := len(r.sessions)
	r.mu.Unlock()

	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "reset session not found")
	}
	flow.Close()
	r.metrics.SetResetSessions(n)
	return nil
}

// Sweep closes sessions idle for longer than the configured window and
// returns how many were removed.
func (r *VerificationRegistry) Sweep() int {
	cutoff := r.now().Add(-r.idle)

	r.mu.Lock()
	var stale []*VerificationFlow
	for id, flow := range r.sessions {
		if flow.LastActivity().Before(cutoff) {
			stale = append(stale, flow)
			delete(r.sessions, id)
		}
	}
	n := len(r.sessions)
	r.mu.Unlock()

	for _, flow := range stale {
		flow.Close()
	}
	if len(stale) > 0 {
		r.logger.Sugar().Infow("reset sessions swept", "removed", len(stale), "remaining", n)
	}
	r.metrics.SetResetSessions(n)
	return len(stale)
}

// StartSweeper runs Sweep every interval until ctx is done.
func (r *VerificationRegistry) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.Sweep()
			}
		}
	}()
}

// Len reports the number of live sessions.
func (r *VerificationRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Close closes every session.
func (r *VerificationRegistry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*VerificationFlow)
	r.mu.Unlock()

	for _, flow := range sessions {
		flow.Close()
	}
	r.metrics.SetResetSessions(0)
}
