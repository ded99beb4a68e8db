package authclient

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
)

func TestLoginSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		var body LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ada@example.com", body.Email)
		_, _ = w.Write([]byte(`{"data":{"token":"abc"}}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL+"/", time.Second).Login(context.Background(), LoginRequest{Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "abc", res.Token)
}

func TestFailureMessages(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"error string", `{"error":"Email already exists"}`, "Email already exists"},
		{"error object", `{"error":{"code":"CONFLICT","message":"taken"}}`, "taken"},
		{"message", `{"message":"nope"}`, "nope"},
		{"not json", `<html>`, "Registration failed."},
		{"token body", `{"data":{"token":"x"}}`, "Registration failed."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL, time.Second).Signup(context.Background(), SignupRequest{Name: "Ada"})
			var authErr *Error
			require.True(t, errors.As(err, &authErr))
			assert.Equal(t, http.StatusConflict, authErr.Status)
			assert.Equal(t, tc.want, authErr.Message)
		})
	}
}

func TestSuccessWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Student registered"}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL, time.Second).Signup(context.Background(), SignupRequest{})
	require.NoError(t, err)
	assert.Empty(t, res.Token)
}

func TestTimeoutIsUnreachable(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	_, err := New(srv.URL, 20*time.Millisecond).Login(context.Background(), LoginRequest{})
	require.Error(t, err)
	assert.True(t, IsUnreachable(err))
}
