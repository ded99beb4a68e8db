package resetflow

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	"github.com/noah-isme/syntaxscout-api/internal/service"
)

func newTestModel(ttl time.Duration) (Model, *service.VerificationFlow) {
	flow := service.NewVerificationFlow(service.VerificationDeps{}, service.VerificationConfig{CodeTTL: ttl})
	return New(context.Background(), flow, time.Millisecond), flow
}

func typeText(m Model, text string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(Model)
}

func press(m Model, key tea.KeyType) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: key})
	return next.(Model), cmd
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "30:00", FormatCountdown(1800))
	assert.Equal(t, "01:05", FormatCountdown(65))
	assert.Equal(t, "00:00", FormatCountdown(-3))
}

func TestModelInvalidEmailStaysOnStage(t *testing.T) {
	m, flow := newTestModel(time.Minute)
	defer flow.Close()

	m = typeText(m, "not-an-email")
	m, cmd := press(m, tea.KeyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, models.StageAwaitingEmail, m.Snapshot().Stage)
	assert.Equal(t, "Please enter a valid email address.", m.err)
}

func TestModelCountdownTicksOnlyForCurrentGeneration(t *testing.T) {
	m, flow := newTestModel(time.Minute)
	defer flow.Close()

	m = typeText(m, "ada@example.com")
	m, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, models.StageAwaitingCode, m.Snapshot().Stage)
	assert.Contains(t, m.View(), "01:00")

	current := m.generation
	next, cmd := m.Update(tickMsg{generation: current})
	m = next.(Model)
	assert.NotNil(t, cmd)
	assert.Equal(t, 59, m.Snapshot().Remaining)
	assert.Contains(t, m.View(), "00:59")

	next, cmd = m.Update(tickMsg{generation: current - 1})
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.Equal(t, 59, m.Snapshot().Remaining)
}

func TestModelResendRestartsCountdown(t *testing.T) {
	m, flow := newTestModel(time.Minute)
	defer flow.Close()

	m = typeText(m, "ada@example.com")
	m, _ = press(m, tea.KeyEnter)
	stale := m.generation
	next, _ := m.Update(tickMsg{generation: stale})
	m = next.(Model)

	m, cmd := press(m, tea.KeyCtrlR)
	require.NotNil(t, cmd)
	assert.Equal(t, 60, m.Snapshot().Remaining)

	next, cmd = m.Update(tickMsg{generation: stale})
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.Equal(t, 60, m.Snapshot().Remaining)
}

func TestModelExpiredCodeIsRejected(t *testing.T) {
	m, flow := newTestModel(time.Second)
	defer flow.Close()

	m = typeText(m, "ada@example.com")
	m, _ = press(m, tea.KeyEnter)
	next, cmd := m.Update(tickMsg{generation: m.generation})
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Code expired")

	m = typeText(m, "123456")
	m, _ = press(m, tea.KeyEnter)
	assert.Equal(t, models.StageAwaitingCode, m.Snapshot().Stage)
	assert.Equal(t, "Code expired. Please resend.", m.err)
}

func TestModelCompletesReset(t *testing.T) {
	m, flow := newTestModel(time.Minute)

	m = typeText(m, "ada@example.com")
	m, _ = press(m, tea.KeyEnter)
	m = typeText(m, "123456")
	m, _ = press(m, tea.KeyEnter)
	require.Equal(t, models.StageAwaitingNewPassword, m.Snapshot().Stage)

	m = typeText(m, "secret1")
	m, _ = press(m, tea.KeyEnter)
	assert.Equal(t, 1, m.focusIndex)
	m = typeText(m, "different")
	m, _ = press(m, tea.KeyEnter)
	assert.Equal(t, "Passwords do not match.", m.err)

	m, _ = press(m, tea.KeyTab)
	assert.Equal(t, 0, m.focusIndex)

	m = New(context.Background(), flow, time.Millisecond)
	m.setFocus(0)
	m.input.SetValue("secret1")
	m.confirm.SetValue("secret1")
	m, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.Done())
	assert.Contains(t, m.View(), "✔")

	_, err := flow.SubmitEmail(context.Background(), "ada@example.com")
	assert.Error(t, err)
}

func TestModelQuitClosesFlow(t *testing.T) {
	m, flow := newTestModel(time.Minute)

	m, cmd := press(m, tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)

	_, err := flow.SubmitEmail(context.Background(), "ada@example.com")
	assert.Error(t, err)
}
