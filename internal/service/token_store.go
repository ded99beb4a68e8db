package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

// TokenStore keeps the auth token in a session-scoped store. The persistent
// store is only read as a legacy fallback and cleaned up on writes. Storage
// errors are logged and otherwise ignored.
type TokenStore struct {
	session    KeyValueStore
	persistent KeyValueStore
	logger     *zap.Logger
}

// NewTokenStore builds a TokenStore.
func NewTokenStore(session, persistent KeyValueStore, logger *zap.Logger) *TokenStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TokenStore{session: session, persistent: persistent, logger: logger}
}

// Set stores token for the session and drops any legacy copy.
func (s *TokenStore) Set(ctx context.Context, token string) {
	s.warn("set", KeyToken, s.session.Set(ctx, KeyToken, []byte(token)))
	s.warn("delete", KeyToken, s.persistent.Delete(ctx, KeyToken))
}

// Get returns the session token, then the legacy token, then "".
func (s *TokenStore) Get(ctx context.Context) string {
	if v := s.read(ctx, s.session, KeyToken); v != "" {
		return v
	}
	return s.read(ctx, s.persistent, KeyToken)
}

// Remove clears the token from both stores.
func (s *TokenStore) Remove(ctx context.Context) {
	s.warn("delete", KeyToken, s.session.Delete(ctx, KeyToken))
	s.warn("delete", KeyToken, s.persistent.Delete(ctx, KeyToken))
}

// SetLoggedIn records the isLoggedIn marker in the persistent store.
func (s *TokenStore) SetLoggedIn(ctx context.Context, loggedIn bool) {
	if loggedIn {
		s.warn("set", KeyIsLoggedIn, s.persistent.Set(ctx, KeyIsLoggedIn, []byte("true")))
		return
	}
	s.warn("delete", KeyIsLoggedIn, s.persistent.Delete(ctx, KeyIsLoggedIn))
}

// LoggedIn reports whether the marker reads "true".
func (s *TokenStore) LoggedIn(ctx context.Context) bool {
	return s.read(ctx, s.persistent, KeyIsLoggedIn) == "true"
}

// State reports both markers.
func (s *TokenStore) State(ctx context.Context) models.SessionState {
	return models.SessionState{Authenticated: s.Get(ctx) != "", IsLoggedIn: s.LoggedIn(ctx)}
}

func (s *TokenStore) read(ctx context.Context, store KeyValueStore, key string) string {
	v, err := store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, appErrors.ErrKeyNotFound) {
			s.logger.Warn("token store read failed", zap.String("key", key), zap.Error(err))
		}
		return ""
	}
	return string(v)
}

func (s *TokenStore) warn(op, key string, err error) {
	if err != nil && !errors.Is(err, appErrors.ErrKeyNotFound) {
		s.logger.Warn("token store "+op+" failed", zap.String("key", key), zap.Error(err))
	}
}
