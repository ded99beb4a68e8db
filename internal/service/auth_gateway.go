package service

import (
	"context"
	"maps"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	"github.com/noah-isme/syntaxscout-api/pkg/authclient"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

// AuthGateway issues tokens for credentials.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (string, error)
	Signup(ctx context.Context, name, email, password string) (string, error)
}

// RemoteAuthGateway forwards to the remote auth service.
type RemoteAuthGateway struct {
	client *authclient.Client
}

// NewRemoteAuthGateway wraps client.
func NewRemoteAuthGateway(client *authclient.Client) *RemoteAuthGateway {
	return &RemoteAuthGateway{client: client}
}

func (g *RemoteAuthGateway) Login(ctx context.Context, email, password string) (string, error) {
	res, err := g.client.Login(ctx, authclient.LoginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	return res.Token, nil
}

func (g *RemoteAuthGateway) Signup(ctx context.Context, name, email, password string) (string, error) {
	res, err := g.client.Signup(ctx, authclient.SignupRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return "", err
	}
	return res.Token, nil
}

// LocalAuthConfig configures token signing for the local gateway.
type LocalAuthConfig struct {
	Secret   string
	TokenTTL time.Duration
	Issuer   string
}

type localClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// LocalAuthGateway is an in-process stand-in for the auth service. Accounts
// live under a single KV key with bcrypt hashes.
type LocalAuthGateway struct {
	users  *PersistedState[map[string]models.User]
	cfg    LocalAuthConfig
	now    func() time.Time
	logger *zap.Logger
}

// NewLocalAuthGateway builds the gateway over kv.
func NewLocalAuthGateway(kv KeyValueStore, cfg LocalAuthConfig, logger *zap.Logger, metrics *MetricsService) *LocalAuthGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.Issuer == "" {
		cfg.Issuer = "syntaxscout"
	}
	seed := func() map[string]models.User { return map[string]models.User{} }
	return &LocalAuthGateway{
		users:  NewPersistedState(KeyAuthUsers, kv, seed, logger, metrics),
		cfg:    cfg,
		now:    time.Now,
		logger: logger,
	}
}

func userKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login checks the password and issues a token.
func (g *LocalAuthGateway) Login(ctx context.Context, email, password string) (string, error) {
	user, ok := g.users.Initialize(ctx)[userKey(email)]
	if !ok || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", appErrors.Clone(appErrors.ErrUnauthorized, "Invalid email or password.")
	}
	return g.issue(user)
}

// Signup registers a new account and issues a token.
func (g *LocalAuthGateway) Signup(ctx context.Context, name, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	now := g.now().UTC()
	user := models.User{Name: name, Email: strings.TrimSpace(email), PasswordHash: string(hash), CreatedAt: now, UpdatedAt: now}
	_, err = g.users.Update(ctx, func(users map[string]models.User) (map[string]models.User, error) {
		key := userKey(email)
		if _, exists := users[key]; exists {
			return nil, appErrors.Clone(appErrors.ErrConflict, "Email is already registered.")
		}
		next := maps.Clone(users)
		if next == nil {
			next = map[string]models.User{}
		}
		next[key] = user
		return next, nil
	})
	if err != nil {
		return "", err
	}
	g.logger.Sugar().Infow("account registered", "email", user.Email)
	return g.issue(user)
}

// ResetPassword replaces the stored hash for email.
func (g *LocalAuthGateway) ResetPassword(ctx context.Context, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}
	_, err = g.users.Update(ctx, func(users map[string]models.User) (map[string]models.User, error) {
		key := userKey(email)
		user, ok := users[key]
		if !ok {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "account not found")
		}
		user.PasswordHash = string(hash)
		user.UpdatedAt = g.now().UTC()
		next := maps.Clone(users)
		next[key] = user
		return next, nil
	})
	return err
}

// ParseToken validates a token issued by this gateway and returns its
// subject email.
func (g *LocalAuthGateway) ParseToken(token string) (string, error) {
	claims := &localClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(g.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(g.cfg.Issuer))
	if err != nil || !parsed.Valid {
		return "", appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
	}
	return claims.Subject, nil
}

func (g *LocalAuthGateway) issue(user models.User) (string, error) {
	now := g.now().UTC()
	claims := &localClaims{
		Name: user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    g.cfg.Issuer,
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.cfg.TokenTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(g.cfg.Secret))
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign token")
	}
	return signed, nil
}
