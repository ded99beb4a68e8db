package bootstrap

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	"github.com/noah-isme/syntaxscout-api/pkg/config"
)

func testConfig(driver string, dir string) *config.Config {
	return &config.Config{
		Theme:   "light",
		Storage: config.StorageConfig{Driver: driver, Dir: dir, SQLitePath: filepath.Join(dir, "kv.db")},
		Query:   config.QueryConfig{PageSize: 10},
		Reset:   config.ResetConfig{CodeTTL: 30 * time.Minute, SessionIdle: time.Hour},
		Auth:    config.AuthConfig{Mode: config.AuthModeLocal},
		JWT:     config.JWTConfig{Secret: "test", Expiration: time.Hour},
		Mail:    config.MailConfig{Driver: config.MailConsole, ContactInbox: "hello@syntaxscout.dev", Workers: 1},
	}
}

func TestOpenStoreRejectsUnknownDriver(t *testing.T) {
	_, closeFn, err := OpenStore(context.Background(), testConfig("etcd", t.TempDir()), nil)
	require.Error(t, err)
	assert.NoError(t, closeFn())
}

func TestContainerWiresLocalAuth(t *testing.T) {
	ctx := context.Background()
	c, err := New(ctx, testConfig(config.StorageMemory, t.TempDir()), nil, nil)
	require.NoError(t, err)
	defer c.Close() //nolint:errcheck

	require.NotNil(t, c.LocalAuth)
	assert.NoError(t, c.Ping(ctx))

	flow := c.NewResetFlow(0)
	defer flow.Close()
	snap, err := flow.SubmitEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.StageAwaitingCode, snap.Stage)
	assert.Equal(t, 1800, snap.Remaining)
}

func TestContainerPersistsAcrossReopenOnSQLite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := New(ctx, testConfig(config.StorageSQLite, dir), nil, nil)
	require.NoError(t, err)
	_, err = first.Assignments.ToggleComplete(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := New(ctx, testConfig(config.StorageSQLite, dir), nil, nil)
	require.NoError(t, err)
	defer second.Close() //nolint:errcheck

	for _, a := range second.Assignments.All(ctx) {
		if a.ID == 1 {
			assert.True(t, a.Completed)
			return
		}
	}
	t.Fatal("assignment 1 missing after reopen")
}

func TestContainerRemoteModeHasNoLocalGateway(t *testing.T) {
	cfg := testConfig(config.StorageMemory, t.TempDir())
	cfg.Auth = config.AuthConfig{Mode: config.AuthModeRemote, RemoteURL: "http://127.0.0.1:1", RemoteTimeout: time.Second}

	c, err := New(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	defer c.Close() //nolint:errcheck

	assert.Nil(t, c.LocalAuth)
	assert.NotNil(t, c.Auth)
}
