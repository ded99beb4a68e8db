package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/syntaxscout-api/internal/bootstrap"
	"github.com/noah-isme/syntaxscout-api/internal/service"
	"github.com/noah-isme/syntaxscout-api/pkg/config"
)

func testOpener(t *testing.T) Opener {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		Theme:   "light",
		Storage: config.StorageConfig{Driver: config.StorageDisk, Dir: dir},
		Query:   config.QueryConfig{PageSize: 10},
		Reset:   config.ResetConfig{CodeTTL: 30 * time.Minute, SessionIdle: time.Hour},
		Auth:    config.AuthConfig{Mode: config.AuthModeLocal},
		JWT:     config.JWTConfig{Secret: "cli-secret", Expiration: time.Hour},
		Mail:    config.MailConfig{Driver: config.MailConsole, ContactInbox: "hello@syntaxscout.dev", Workers: 1},
	}
	return func(ctx context.Context, _ bool) (*bootstrap.Container, error) {
		return bootstrap.New(ctx, cfg, nil, nil)
	}
}

func run(t *testing.T, open Opener, stdin string, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	var out, errOut bytes.Buffer
	err := Execute(context.Background(), open, args, strings.NewReader(stdin), &out, &errOut)
	return out.String(), err
}

func TestAssignmentsList(t *testing.T) {
	out, err := run(t, testOpener(t), "", "assignments", "list", "--search", "no-such-assignment")
	require.NoError(t, err)
	assert.Contains(t, out, "No results found.")

	out, err = run(t, testOpener(t), "", "assignments", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "page 1/1")
}

func TestResetAbortsWithoutConfirmation(t *testing.T) {
	open := testOpener(t)
	_, err := run(t, open, "", "grades", "toggle", "1")
	require.NoError(t, err)

	out, err := run(t, open, "n\n", "grades", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "aborted")
}

func TestResetWithYesFlag(t *testing.T) {
	open := testOpener(t)
	_, err := run(t, open, "", "assignments", "toggle", "1")
	require.NoError(t, err)

	out, err := run(t, open, "", "assignments", "reset", "--yes")
	require.NoError(t, err)
	assert.NotContains(t, out, "aborted")
	assert.Contains(t, out, "affected")
}

func TestMessagesRejectUnknownFilter(t *testing.T) {
	_, err := run(t, testOpener(t), "", "messages", "list", "--filter", "starred")
	require.Error(t, err)
	assert.Contains(t, DescribeError(err), "filter")
}

func TestKVListAfterWrite(t *testing.T) {
	open := testOpener(t)
	_, err := run(t, open, "", "messages", "toggle", "2")
	require.NoError(t, err)

	out, err := run(t, open, "", "kv", "list")
	require.NoError(t, err)
	assert.Contains(t, out, service.KeyMessages)

	out, err = run(t, open, "", "kv", "get", service.KeyMessages)
	require.NoError(t, err)
	assert.Contains(t, out, `"sender"`)
}

func TestExportWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grades.csv")
	out, err := run(t, testOpener(t), "", "export", "grades", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "rows written")

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), `"`))
}

func TestInvalidID(t *testing.T) {
	_, err := run(t, testOpener(t), "", "messages", "toggle", "abc")
	require.Error(t, err)
}
