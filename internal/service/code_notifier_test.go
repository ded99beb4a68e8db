package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailCodeNotifier(t *testing.T) {
	m := &captureMailer{}
	require.NoError(t, NewMailCodeNotifier(m).NotifyCodeSent(context.Background(), "ada@example.com", 30*time.Minute))
	require.Len(t, m.sent, 1)
	assert.Equal(t, "ada@example.com", m.sent[0].To.Address)
	assert.Contains(t, m.sent[0].Text, "30 minutes")
}
