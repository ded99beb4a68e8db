package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	"github.com/noah-isme/syntaxscout-api/pkg/authclient"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

const (
	loginSucceeded  = "Login successful!"
	signupSucceeded = "Student registered successfully!"
	remoteFailed    = "Something went wrong. Try again."
)

var loginMessages = fieldMessages{
	"email":    msgInvalidEmail,
	"password": msgPasswordTooShort,
}

var signupMessages = fieldMessages{
	"name.required":   msgNameRequired,
	"name.min":        msgNameTooShort,
	"email":           msgInvalidEmail,
	"password":        msgPasswordTooShort,
	"confirmPassword": msgPasswordMismatch,
}

type tokenParser interface {
	ParseToken(token string) (string, error)
}

// AuthService validates the auth forms and talks to an AuthGateway.
type AuthService struct {
	gateway   AuthGateway
	tokens    *TokenStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(gateway AuthGateway, tokens *TokenStore, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = NewValidator()
	}
	return &AuthService{gateway: gateway, tokens: tokens, validator: validate, logger: logger}
}

// Login authenticates and stores the issued token for the session.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResult, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, loginMessages)
	}

	token, err := s.gateway.Login(ctx, req.Email, req.Password)
	if err != nil {
		s.logger.Warn("login failed", zap.String("email", req.Email), zap.Error(err))
		return nil, gatewayError(err)
	}
	if token != "" {
		s.tokens.Set(ctx, token)
	}
	s.tokens.SetLoggedIn(ctx, true)
	return &models.AuthResult{Token: token, IsLoggedIn: true, Message: loginSucceeded}, nil
}

// Signup registers a learner. The learner still logs in afterwards.
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResult, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, signupMessages)
	}

	token, err := s.gateway.Signup(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		s.logger.Warn("signup failed", zap.String("email", req.Email), zap.Error(err))
		return nil, gatewayError(err)
	}
	s.logger.Sugar().Infow("learner registered", "email", req.Email)
	return &models.AuthResult{Token: token, Message: signupSucceeded}, nil
}

// Logout clears the stored token and the logged-in marker.
func (s *AuthService) Logout(ctx context.Context) {
	s.tokens.Remove(ctx)
	s.tokens.SetLoggedIn(ctx, false)
}

// Session reports the stored auth markers. When the gateway can read its
// own tokens the subject email is included.
func (s *AuthService) Session(ctx context.Context) models.SessionState {
	state := s.tokens.State(ctx)
	if parser, ok := s.gateway.(tokenParser); ok && state.Authenticated {
		if email, err := parser.ParseToken(s.tokens.Get(ctx)); err == nil {
			state.Email = email
		}
	}
	return state
}

// Token returns the stored token, if any.
func (s *AuthService) Token(ctx context.Context) string {
	return s.tokens.Get(ctx)
}

// gatewayError keeps local gateway errors and maps remote failures. Upstream
// 4xx statuses pass through; anything else becomes a 502.
func gatewayError(err error) error {
	var remote *authclient.Error
	if errors.As(err, &remote) {
		status := http.StatusBadGateway
		if remote.Status >= 400 && remote.Status < 500 {
			status = remote.Status
		}
		msg := remote.Message
		if msg == "" {
			msg = remoteFailed
		}
		return appErrors.Wrap(err, appErrors.ErrRemoteAuthFailed.Code, status, msg)
	}
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return appErrors.Wrap(err, appErrors.ErrRemoteAuthFailed.Code, appErrors.ErrRemoteAuthFailed.Status, remoteFailed)
}
