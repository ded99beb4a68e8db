package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	"github.com/noah-isme/syntaxscout-api/pkg/authclient"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

func newLocalAuth(t *testing.T) (*AuthService, *LocalAuthGateway, *fakeKV) {
	t.Helper()
	persistent := newFakeKV()
	gateway := NewLocalAuthGateway(persistent, LocalAuthConfig{Secret: "test-secret", TokenTTL: time.Hour}, nil, nil)
	tokens := NewTokenStore(newFakeKV(), persistent, nil)
	return NewAuthService(gateway, tokens, nil, nil), gateway, persistent
}

func TestSignupValidationMessages(t *testing.T) {
	svc, _, _ := newLocalAuth(t)

	_, err := svc.Signup(context.Background(), models.SignupRequest{Name: " ", Email: "bad", Password: "123", ConfirmPassword: "456"})
	require.Error(t, err)
	fields := appErrors.FromError(err).Fields
	assert.Equal(t, msgNameRequired, fields["name"])
	assert.Equal(t, msgInvalidEmail, fields["email"])
	assert.Equal(t, msgPasswordTooShort, fields["password"])
	assert.Equal(t, msgPasswordMismatch, fields["confirmPassword"])

	_, err = svc.Signup(context.Background(), models.SignupRequest{Name: "Al", Email: "al@example.com", Password: "secret1", ConfirmPassword: "secret1"})
	require.Error(t, err)
	assert.Equal(t, msgNameTooShort, appErrors.FromError(err).Fields["name"])
}

func TestLocalSignupThenLogin(t *testing.T) {
	svc, gateway, persistent := newLocalAuth(t)
	ctx := context.Background()

	res, err := svc.Signup(ctx, models.SignupRequest{Name: "Ada Lovelace", Email: "Ada@Example.com", Password: "secret1", ConfirmPassword: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, signupSucceeded, res.Message)
	assert.False(t, res.IsLoggedIn)
	assert.NotContains(t, persistent.raw(KeyAuthUsers), "secret1")

	_, err = svc.Signup(ctx, models.SignupRequest{Name: "Ada Again", Email: "ada@example.com", Password: "secret1", ConfirmPassword: "secret1"})
	assert.True(t, errors.Is(err, appErrors.ErrConflict))

	_, err = svc.Login(ctx, models.LoginRequest{Email: "ada@example.com", Password: "wrong-pass"})
	assert.True(t, errors.Is(err, appErrors.ErrUnauthorized))

	login, err := svc.Login(ctx, models.LoginRequest{Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.True(t, login.IsLoggedIn)
	assert.NotEmpty(t, login.Token)

	state := svc.Session(ctx)
	assert.True(t, state.Authenticated)
	assert.True(t, state.IsLoggedIn)
	assert.Equal(t, "Ada@Example.com", state.Email)
	assert.Equal(t, "true", persistent.raw(KeyIsLoggedIn))

	require.NoError(t, gateway.ResetPassword(ctx, "ada@example.com", "newpass1"))
	_, err = svc.Login(ctx, models.LoginRequest{Email: "ada@example.com", Password: "newpass1"})
	require.NoError(t, err)
	assert.True(t, errors.Is(gateway.ResetPassword(ctx, "nobody@example.com", "x"), appErrors.ErrNotFound))

	svc.Logout(ctx)
	assert.Equal(t, models.SessionState{}, svc.Session(ctx))
}

func TestParseTokenRejectsForeignTokens(t *testing.T) {
	_, gateway, _ := newLocalAuth(t)
	other := NewLocalAuthGateway(newFakeKV(), LocalAuthConfig{Secret: "other"}, nil, nil)
	token, err := other.Signup(context.Background(), "Bob Smith", "bob@example.com", "secret1")
	require.NoError(t, err)

	_, err = gateway.ParseToken(token)
	assert.True(t, errors.Is(err, appErrors.ErrUnauthorized))
}

func TestRemoteGatewayMapsUpstreamErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/login":
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
		case "/auth/signup":
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "db down"})
		}
	}))
	defer srv.Close()

	svc := NewAuthService(NewRemoteAuthGateway(authclient.New(srv.URL, time.Second)), NewTokenStore(newFakeKV(), newFakeKV(), nil), nil, nil)
	ctx := context.Background()

	_, err := svc.Login(ctx, models.LoginRequest{Email: "ada@example.com", Password: "secret1"})
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrRemoteAuthFailed.Code, appErr.Code)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
	assert.Equal(t, "Invalid credentials", appErr.Message)

	_, err = svc.Signup(ctx, models.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1", ConfirmPassword: "secret1"})
	appErr = appErrors.FromError(err)
	assert.Equal(t, http.StatusBadGateway, appErr.Status)
	assert.Equal(t, "db down", appErr.Message)
}

func TestRemoteGatewayUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	svc := NewAuthService(NewRemoteAuthGateway(authclient.New(url, time.Second)), NewTokenStore(newFakeKV(), newFakeKV(), nil), nil, nil)
	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ada@example.com", Password: "secret1"})
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadGateway, appErr.Status)
	assert.Equal(t, remoteFailed, appErr.Message)
}

func TestRemoteGatewayStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"token":"abc"}}`))
	}))
	defer srv.Close()

	session := newFakeKV()
	svc := NewAuthService(NewRemoteAuthGateway(authclient.New(srv.URL, time.Second)), NewTokenStore(session, newFakeKV(), nil), nil, nil)
	res, err := svc.Login(context.Background(), models.LoginRequest{Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "abc", res.Token)
	assert.Equal(t, "abc", session.raw(KeyToken))
	assert.Equal(t, "abc", svc.Token(context.Background()))
}
