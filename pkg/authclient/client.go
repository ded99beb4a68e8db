// Package authclient talks to the remote authentication service.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxBodyBytes = 1 << 20

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Result is the decoded success payload.
type Result struct {
	Token string
	Raw   json.RawMessage
}

// Error describes a failed call. Status is zero for transport failures.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("auth service unreachable: %s", e.Message)
	}
	return fmt.Sprintf("auth service returned %d: %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Client calls the remote auth endpoints with a bounded timeout.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a Client. A non-positive timeout defaults to ten seconds.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Login posts credentials and returns the issued token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*Result, error) {
	return c.post(ctx, "/auth/login", req, "Login failed.")
}

// Signup registers a learner. The token may be empty when the service does
// not sign users in on registration.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*Result, error) {
	return c.post(ctx, "/auth/signup", req, "Registration failed.")
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
}

func (c *Client) post(ctx context.Context, path string, body interface{}, fallback string) (*Result, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", path, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", path, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &Error{Message: "Something went wrong. Try again.", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &Error{Status: resp.StatusCode, Message: fallback, Err: err}
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	// Success is decided by the status code; a 2xx with an odd body still
	// counts as success with no token.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fallback
		if decodeErr == nil {
			if m := errorMessage(env); m != "" {
				msg = m
			}
		}
		return nil, &Error{Status: resp.StatusCode, Message: msg}
	}

	result := &Result{Raw: env.Data}
	if decodeErr == nil && len(env.Data) > 0 {
		var data struct {
			Token       string `json:"token"`
			AccessToken string `json:"access_token"`
		}
		if err := json.Unmarshal(env.Data, &data); err == nil {
			result.Token = data.Token
			if result.Token == "" {
				result.Token = data.AccessToken
			}
		}
	}
	return result, nil
}

// errorMessage prefers "error" over "message"; "error" may be a string or an
// object carrying its own message.
func errorMessage(env envelope) string {
	if len(env.Error) > 0 && string(env.Error) != "null" {
		var s string
		if err := json.Unmarshal(env.Error, &s); err == nil && s != "" {
			return s
		}
		var obj struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(env.Error, &obj); err == nil && obj.Message != "" {
			return obj.Message
		}
	}
	return env.Message
}

// IsUnreachable reports whether err is a transport-level failure.
func IsUnreachable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == 0
}
