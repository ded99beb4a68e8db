package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Storage drivers understood by the KV bootstrap.
const (
	StorageMemory   = "memory"
	StorageDisk     = "disk"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// Auth gateway modes.
const (
	AuthModeLocal  = "local"
	AuthModeRemote = "remote"
)

// Mail drivers.
const (
	MailConsole  = "console"
	MailSendgrid = "sendgrid"
)

// Config is the process-wide settings object. It is built once at startup and
// handed to every component that needs it.
type Config struct {
	Env       string
	Port      int
	APIPrefix string
	Theme     string

	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Log      LogConfig
	Query    QueryConfig
	Reset    ResetConfig
	Auth     AuthConfig
	JWT      JWTConfig
	Mail     MailConfig
	Features FeatureConfig
}

// StorageConfig selects the key-value backend.
type StorageConfig struct {
	Driver     string
	Dir        string
	CacheBytes uint64
	SQLitePath string
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// QueryConfig tunes list projections.
type QueryConfig struct {
	PageSize int
}

// ResetConfig governs the password reset verification flow.
type ResetConfig struct {
	CodeTTL     time.Duration
	SessionIdle time.Duration
}

// AuthConfig selects the auth gateway implementation.
type AuthConfig struct {
	Mode          string
	RemoteURL     string
	RemoteTimeout time.Duration
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

// MailConfig configures outbound mail delivery.
type MailConfig struct {
	Driver         string
	SendgridAPIKey string
	FromName       string
	FromAddress    string
	ContactInbox   string
	Workers        int
	Retries        int
}

// FeatureConfig toggles auxiliary endpoints.
type FeatureConfig struct {
	Metrics bool
	Docs    bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")
	cfg.Theme = v.GetString("THEME")

	cfg.Storage = StorageConfig{
		Driver:     strings.ToLower(v.GetString("STORAGE_DRIVER")),
		Dir:        expandPath(v.GetString("STORAGE_DIR")),
		CacheBytes: v.GetUint64("STORAGE_CACHE_BYTES"),
		SQLitePath: expandPath(v.GetString("SQLITE_PATH")),
	}

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	pageSize := v.GetInt("PAGE_SIZE")
	if pageSize <= 0 {
		pageSize = 10
	}
	cfg.Query = QueryConfig{PageSize: pageSize}

	cfg.Reset = ResetConfig{
		CodeTTL:     parseDuration(v.GetString("RESET_CODE_TTL"), 30*time.Minute),
		SessionIdle: parseDuration(v.GetString("RESET_SESSION_IDLE"), time.Hour),
	}

	cfg.Auth = AuthConfig{
		Mode:          strings.ToLower(v.GetString("AUTH_MODE")),
		RemoteURL:     strings.TrimRight(v.GetString("AUTH_REMOTE_URL"), "/"),
		RemoteTimeout: parseDuration(v.GetString("AUTH_REMOTE_TIMEOUT"), 10*time.Second),
	}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Expiration: parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
	}

	cfg.Mail = MailConfig{
		Driver:         strings.ToLower(v.GetString("MAIL_DRIVER")),
		SendgridAPIKey: v.GetString("SENDGRID_API_KEY"),
		FromName:       v.GetString("MAIL_FROM_NAME"),
		FromAddress:    v.GetString("MAIL_FROM_ADDRESS"),
		ContactInbox:   v.GetString("CONTACT_INBOX"),
		Workers:        v.GetInt("MAIL_WORKERS"),
		Retries:        v.GetInt("MAIL_RETRIES"),
	}

	cfg.Features = FeatureConfig{
		Metrics: v.GetBool("ENABLE_METRICS"),
		Docs:    v.GetBool("ENABLE_DOCS"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")
	v.SetDefault("THEME", "light")

	v.SetDefault("STORAGE_DRIVER", StorageDisk)
	v.SetDefault("STORAGE_DIR", "~/.syntaxscout/kv")
	v.SetDefault("STORAGE_CACHE_BYTES", 1024*1024)
	v.SetDefault("SQLITE_PATH", "~/.syntaxscout/kv.db")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "syntaxscout")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("PAGE_SIZE", 10)
	v.SetDefault("RESET_CODE_TTL", "30m")
	v.SetDefault("RESET_SESSION_IDLE", "1h")

	v.SetDefault("AUTH_MODE", AuthModeLocal)
	v.SetDefault("AUTH_REMOTE_URL", "http://localhost:8000")
	v.SetDefault("AUTH_REMOTE_TIMEOUT", "10s")
	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")

	v.SetDefault("MAIL_DRIVER", MailConsole)
	v.SetDefault("SENDGRID_API_KEY", "")
	v.SetDefault("MAIL_FROM_NAME", "Syntax Scout")
	v.SetDefault("MAIL_FROM_ADDRESS", "no-reply@syntaxscout.dev")
	v.SetDefault("CONTACT_INBOX", "hello@syntaxscout.dev")
	v.SetDefault("MAIL_WORKERS", 1)
	v.SetDefault("MAIL_RETRIES", 3)

	v.SetDefault("ENABLE_METRICS", true)
	v.SetDefault("ENABLE_DOCS", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// expandPath resolves a leading "~" against the user's home directory.
func expandPath(raw string) string {
	if raw == "" {
		return raw
	}
	expanded, err := homedir.Expand(raw)
	if err != nil {
		return raw
	}
	return expanded
}

// viper reports a missing explicit config file as a plain *fs.PathError, not
// ConfigFileNotFoundError.
func isMissingFile(err error) bool {
	return strings.Contains(err.Error(), "no such file or directory") ||
		strings.Contains(err.Error(), "cannot find the file")
}
