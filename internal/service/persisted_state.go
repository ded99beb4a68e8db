package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

// PersistedState keeps one value in memory and mirrors it to a key of a
// KeyValueStore. The in-memory value is authoritative: storage failures are
// logged and counted, never returned.
type PersistedState[T any] struct {
	key     string
	store   KeyValueStore
	seed    func() T
	logger  *zap.Logger
	metrics *MetricsService

	mu     sync.Mutex
	loaded bool
	value  T
}

// NewPersistedState binds a value of type T to key.
func NewPersistedState[T any](key string, store KeyValueStore, seed func() T, logger *zap.Logger, metrics *MetricsService) *PersistedState[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PersistedState[T]{key: key, store: store, seed: seed, logger: logger, metrics: metrics}
}

// Key returns the storage key.
func (s *PersistedState[T]) Key() string { return s.key }

// Initialize loads the stored value on first use. Absent, unreadable or
// malformed content falls back to the seed, which is then written back.
func (s *PersistedState[T]) Initialize(ctx context.Context) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return s.value
}

// Update applies fn to the current value. When fn returns an error nothing
// changes; otherwise the result becomes current and is persisted.
func (s *PersistedState[T]) Update(ctx context.Context, fn func(T) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	next, err := fn(s.value)
	if err != nil {
		return s.value, err
	}
	s.value = next
	s.persist(ctx, next)
	return next, nil
}

// Reload discards the in-memory value so the next access reads storage
// again.
func (s *PersistedState[T]) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	s.value = zero
	s.loaded = false
}

func (s *PersistedState[T]) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true

	value, ok := s.read(ctx)
	if ok {
		s.value = value
		return
	}
	s.value = s.seed()
	s.persist(ctx, s.value)
}

func (s *PersistedState[T]) read(ctx context.Context) (T, bool) {
	var value T
	if s.store == nil {
		return value, false
	}
	raw, err := s.store.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, appErrors.ErrKeyNotFound) {
			s.logger.Warn("state read failed, using defaults", zap.String("key", s.key), zap.Error(err))
		}
		return value, false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return value, false
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		s.logger.Warn("state decode failed, using defaults", zap.String("key", s.key), zap.Error(err))
		var zero T
		return zero, false
	}
	return value, true
}

// persist writes value best effort.
func (s *PersistedState[T]) persist(ctx context.Context, value T) {
	if s.store == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err == nil {
		err = s.store.Set(ctx, s.key, payload)
	}
	if err != nil {
		s.logger.Warn("state persist failed, keeping in-memory value", zap.String("key", s.key), zap.Error(err))
		s.metrics.RecordPersist(s.key, false)
		return
	}
	s.metrics.RecordPersist(s.key, true)
}
