package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/syntaxscout-api/pkg/config"
)

func TestPostgresDSNEscapesCredentials(t *testing.T) {
	dsn := PostgresDSN(config.DatabaseConfig{
		Host: "db", Port: 5432, User: "scout", Password: "p@ss word", Name: "syntaxscout", SSLMode: "disable",
	})
	assert.Equal(t, "postgres://scout:p%40ss%20word@db:5432/syntaxscout?sslmode=disable", dsn)
}

func TestNewSQLiteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "kv.db")
	db, err := NewSQLite(context.Background(), path)
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	var one int
	require.NoError(t, db.Get(&one, "SELECT 1"))
	assert.Equal(t, 1, one)
}
