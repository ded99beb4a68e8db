// Package resetflow is a terminal UI for the password reset flow.
package resetflow

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

// Flow is the reset state machine driven by the model. The model calls Tick
// once per second while a code is pending, so the flow should be built
// without its own countdown goroutine.
type Flow interface {
	SubmitEmail(ctx context.Context, email string) (models.VerificationSnapshot, error)
	Resend(ctx context.Context) (models.VerificationSnapshot, error)
	SubmitCode(ctx context.Context, code string) (models.VerificationSnapshot, error)
	SubmitPassword(ctx context.Context, password, confirm string) (models.VerificationSnapshot, error)
	Tick() int
	Snapshot() models.VerificationSnapshot
	Close()
}

// tickMsg carries the generation it was scheduled for. Ticks from an older
// generation are dropped.
type tickMsg struct {
	generation uint64
}

// Model is the bubbletea model for the reset screen.
type Model struct {
	ctx      context.Context
	flow     Flow
	interval time.Duration

	snapshot   models.VerificationSnapshot
	input      textinput.Model
	confirm    textinput.Model
	focusIndex int
	err        string
	generation uint64
	done       bool
	quitting   bool
}

// New builds a model over flow. interval is the countdown step, one second
// outside tests.
func New(ctx context.Context, flow Flow, interval time.Duration) Model {
	if interval <= 0 {
		interval = time.Second
	}
	m := Model{ctx: ctx, flow: flow, interval: interval, snapshot: flow.Snapshot()}
	m.input = newInput()
	m.confirm = newInput()
	m.confirm.EchoMode = textinput.EchoPassword
	m.confirm.Placeholder = "Confirm new password"
	m.prepareStage()
	return m
}

func newInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200
	return ti
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.onTick(msg)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m.quit()
		case "ctrl+r":
			if m.snapshot.Stage == models.StageAwaitingCode {
				return m.apply(m.flow.Resend(m.ctx))
			}
			return m, nil
		case "tab", "shift+tab":
			if m.snapshot.Stage == models.StageAwaitingNewPassword {
				m.setFocus(1 - m.focusIndex)
			}
			return m, nil
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if m.focusIndex == 1 {
		m.confirm, cmd = m.confirm.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	switch m.snapshot.Stage {
	case models.StageAwaitingEmail:
		return m.apply(m.flow.SubmitEmail(m.ctx, m.input.Value()))
	case models.StageAwaitingCode:
		return m.apply(m.flow.SubmitCode(m.ctx, m.input.Value()))
	case models.StageAwaitingNewPassword:
		if m.focusIndex == 0 && m.confirm.Value() == "" && m.input.Value() != "" {
			m.setFocus(1)
			return m, nil
		}
		return m.apply(m.flow.SubmitPassword(m.ctx, m.input.Value(), m.confirm.Value()))
	}
	return m, nil
}

// apply records the result of a submission. A stage change or a restarted
// countdown bumps the generation so stale ticks are ignored.
func (m Model) apply(snapshot models.VerificationSnapshot, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.snapshot = snapshot
		m.err = errorText(err)
		return m, nil
	}

	previous := m.snapshot.Stage
	m.snapshot = snapshot
	m.err = ""
	m.generation++

	if snapshot.Completed {
		m.done = true
		return m.quit()
	}
	if snapshot.Stage != previous {
		m.prepareStage()
	}
	if snapshot.Stage == models.StageAwaitingCode {
		return m, m.scheduleTick()
	}
	return m, nil
}

func (m Model) onTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.generation != m.generation || m.snapshot.Stage != models.StageAwaitingCode {
		return m, nil
	}
	remaining := m.flow.Tick()
	m.snapshot = m.flow.Snapshot()
	if remaining <= 0 {
		return m, nil
	}
	return m, m.scheduleTick()
}

func (m Model) scheduleTick() tea.Cmd {
	generation := m.generation
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{generation: generation}
	})
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.flow.Close()
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) prepareStage() {
	m.input.SetValue("")
	m.confirm.SetValue("")
	m.input.EchoMode = textinput.EchoNormal
	switch m.snapshot.Stage {
	case models.StageAwaitingEmail:
		m.input.Placeholder = "you@example.com"
	case models.StageAwaitingCode:
		m.input.Placeholder = "Verification code"
	case models.StageAwaitingNewPassword:
		m.input.Placeholder = "New password"
		m.input.EchoMode = textinput.EchoPassword
	}
	m.setFocus(0)
}

func (m *Model) setFocus(i int) {
	m.focusIndex = i
	if i == 1 {
		m.input.Blur()
		m.confirm.Focus()
		return
	}
	m.confirm.Blur()
	m.input.Focus()
}

// Done reports whether the password was reset.
func (m Model) Done() bool { return m.done }

// Snapshot returns the last known flow state.
func (m Model) Snapshot() models.VerificationSnapshot { return m.snapshot }

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		if m.done {
			return noticeStyle.Render("✔ "+m.snapshot.Notice) + "\n"
		}
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Reset your password"))
	b.WriteString("\n\n")

	switch m.snapshot.Stage {
	case models.StageAwaitingEmail:
		b.WriteString(labelStyle.Render("Email address"))
		b.WriteString("\n" + m.input.View() + "\n")
	case models.StageAwaitingCode:
		if m.snapshot.Notice != "" {
			b.WriteString(noticeStyle.Render(m.snapshot.Notice) + "\n")
		}
		b.WriteString(labelStyle.Render("Code sent to "+m.snapshot.Email))
		b.WriteString("\n" + m.input.View() + "\n")
		if m.snapshot.Remaining > 0 {
			b.WriteString(timerStyle.Render("Code expires in " + FormatCountdown(m.snapshot.Remaining)))
		} else {
			b.WriteString(expiredStyle.Render("Code expired. Press ctrl+r to resend."))
		}
		b.WriteString("\n")
	case models.StageAwaitingNewPassword:
		b.WriteString(labelStyle.Render("New password"))
		b.WriteString("\n" + m.input.View() + "\n" + m.confirm.View() + "\n")
	}

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err) + "\n")
	}

	help := "enter submit • esc quit"
	switch m.snapshot.Stage {
	case models.StageAwaitingCode:
		help = "enter verify • ctrl+r resend • esc quit"
	case models.StageAwaitingNewPassword:
		help = "tab switch field • enter save • esc quit"
	}
	return panelStyle.Render(b.String()) + "\n" + helpStyle.Render(help) + "\n"
}

// FormatCountdown renders seconds as mm:ss.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func errorText(err error) string {
	appErr := appErrors.FromError(err)
	if len(appErr.Fields) == 0 {
		return appErr.Message
	}
	keys := make([]string, 0, len(appErr.Fields))
	for k := range appErr.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return appErr.Fields[keys[0]]
}

// Run starts the program on the terminal and reports whether the reset
// completed.
func Run(ctx context.Context, flow Flow) (bool, error) {
	final, err := tea.NewProgram(New(ctx, flow, time.Second)).Run()
	if err != nil {
		flow.Close()
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.Done(), nil
}
