package service

import (
	"context"
	"errors"
	"time"

	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

// Fixed storage keys. Each collection owns exactly one key.
const (
	KeyToken       = "token"
	KeyIsLoggedIn  = "isLoggedIn"
	KeyAssignments = "dashboard_assignments_v1"
	KeyGrades      = "dashboard_grades_v1"
	KeyMessages    = "dashboard_messages_v1"
	KeyFeedback    = "feedbacks"
	KeySettings    = "dashboard_settings_v1"
	KeyAuthUsers   = "auth_users_v1"
)

// KeyValueStore is the persistence boundary. Get returns
// appErrors.ErrKeyNotFound for absent keys.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// InstrumentedStore times every operation of an underlying store.
type InstrumentedStore struct {
	next    KeyValueStore
	metrics *MetricsService
}

// NewInstrumentedStore wraps store. A nil metrics service disables timing.
func NewInstrumentedStore(store KeyValueStore, metrics *MetricsService) *InstrumentedStore {
	return &InstrumentedStore{next: store, metrics: metrics}
}

func (s *InstrumentedStore) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	v, err := s.next.Get(ctx, key)
	s.metrics.ObserveKV("get", err != nil && !errors.Is(err, appErrors.ErrKeyNotFound), time.Since(start))
	return v, err
}

func (s *InstrumentedStore) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := s.next.Set(ctx, key, value)
	s.metrics.ObserveKV("set", err != nil, time.Since(start))
	return err
}

func (s *InstrumentedStore) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.next.Delete(ctx, key)
	s.metrics.ObserveKV("delete", err != nil, time.Since(start))
	return err
}
