package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

const (
	codeSentNotice      = "Verification Code sent to your email!"
	resetCompleteNotice = "Your password has been reset. You can now log in."

	defaultCodeTTL = 30 * time.Minute
)

// CodeVerifier decides whether a submitted code is acceptable.
type CodeVerifier interface {
	Verify(ctx context.Context, email, code string) bool
}

// CodeNotifier tells the user that a code was issued.
type CodeNotifier interface {
	NotifyCodeSent(ctx context.Context, email string, ttl time.Duration) error
}

// PasswordResetter stores the new password for email.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, email, password string) error
}

// MockCodeVerifier accepts any non-empty code. No code is ever issued, so
// there is nothing to compare against.
type MockCodeVerifier struct{}

// Verify implements CodeVerifier.
func (MockCodeVerifier) Verify(_ context.Context, _ string, code string) bool {
	return strings.TrimSpace(code) != ""
}

// VerificationConfig tunes the countdown. A zero TickInterval disables the
// background countdown so callers drive it with Tick.
type VerificationConfig struct {
	CodeTTL      time.Duration
	TickInterval time.Duration
	Now          func() time.Time
}

// VerificationDeps are the collaborators of a flow. Notifier and Resetter
// are optional.
type VerificationDeps struct {
	Verifier CodeVerifier
	Notifier CodeNotifier
	Resetter PasswordResetter
	Logger   *zap.Logger
	Metrics  *MetricsService
}

// VerificationFlow is the three step password reset state machine:
// AwaitingEmail, AwaitingCode, AwaitingNewPassword, then back to
// AwaitingEmail. While in AwaitingCode a countdown goroutine decrements the
// remaining seconds; it is stopped on every exit from that stage.
type VerificationFlow struct {
	cfg  VerificationConfig
	deps VerificationDeps

	mu         sync.Mutex
	stage      models.VerificationStage
	email      string
	remaining  int
	expiresAt  time.Time
	notice     string
	completed  bool
	closed     bool
	generation uint64
	stopTimer  chan struct{}
	touched    time.Time
}

// NewVerificationFlow returns a flow in AwaitingEmail.
func NewVerificationFlow(deps VerificationDeps, cfg VerificationConfig) *VerificationFlow {
	if cfg.CodeTTL <= 0 {
		cfg.CodeTTL = defaultCodeTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if deps.Verifier == nil {
		deps.Verifier = MockCodeVerifier{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &VerificationFlow{
		cfg:     cfg,
		deps:    deps,
		stage:   models.StageAwaitingEmail,
		touched: cfg.Now(),
	}
}

// SubmitEmail moves to AwaitingCode and starts the countdown.
func (f *VerificationFlow) SubmitEmail(ctx context.Context, email string) (models.VerificationSnapshot, error) {
	email = strings.TrimSpace(email)

	f.mu.Lock()
	if err := f.expectLocked(models.StageAwaitingEmail); err != nil {
		f.mu.Unlock()
		return f.Snapshot(), err
	}
	if email == "" || !ValidEmail(email) {
		f.mu.Unlock()
		f.deps.Metrics.RecordResetTransition("email", "invalid")
		return f.Snapshot(), appErrors.Validation(map[string]string{"email": msgInvalidEmail})
	}
	f.email = email
	f.completed = false
	f.stage = models.StageAwaitingCode
	f.restartCountdownLocked()
	f.notice = codeSentNotice
	f.mu.Unlock()

	f.deps.Metrics.RecordResetTransition("email", "ok")
	f.notify(ctx, email)
	return f.Snapshot(), nil
}

// Resend restarts the countdown from the full duration.
func (f *VerificationFlow) Resend(ctx context.Context) (models.VerificationSnapshot, error) {
	f.mu.Lock()
	if err := f.expectLocked(models.StageAwaitingCode); err != nil {
		f.mu.Unlock()
		return f.Snapshot(), err
	}
	f.restartCountdownLocked()
	f.notice = codeSentNotice
	email := f.email
	f.mu.Unlock()

	f.deps.Metrics.RecordResetTransition("resend", "ok")
	f.notify(ctx, email)
	return f.Snapshot(), nil
}

// SubmitCode moves to AwaitingNewPassword. An expired countdown rejects
// every code, including valid ones.
func (f *VerificationFlow) SubmitCode(ctx context.Context, code string) (models.VerificationSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.expectLocked(models.StageAwaitingCode); err != nil {
		return f.snapshotLocked(), err
	}
	if f.remaining <= 0 {
		f.deps.Metrics.RecordResetTransition("code", "expired")
		return f.snapshotLocked(), appErrors.Clone(appErrors.ErrCodeExpired, "")
	}
	if strings.TrimSpace(code) == "" {
		f.deps.Metrics.RecordResetTransition("code", "missing")
		return f.snapshotLocked(), appErrors.WithFields(appErrors.ErrCodeRequired, map[string]string{"code": appErrors.ErrCodeRequired.Message})
	}
	if !f.deps.Verifier.Verify(ctx, f.email, code) {
		f.deps.Metrics.RecordResetTransition("code", "rejected")
		return f.snapshotLocked(), appErrors.Validation(map[string]string{"code": "Invalid verification code."})
	}

	f.stopCountdownLocked()
	f.stage = models.StageAwaitingNewPassword
	f.notice = ""
	f.deps.Metrics.RecordResetTransition("code", "ok")
	return f.snapshotLocked(), nil
}

// SubmitPassword completes the flow when both fields are present and equal,
// then returns to AwaitingEmail with every field cleared.
func (f *VerificationFlow) SubmitPassword(ctx context.Context, password, confirm string) (models.VerificationSnapshot, error) {
	f.mu.Lock()
	if err := f.expectLocked(models.StageAwaitingNewPassword); err != nil {
		f.mu.Unlock()
		return f.Snapshot(), err
	}
	if password == "" || confirm == "" {
		f.mu.Unlock()
		f.deps.Metrics.RecordResetTransition("password", "missing")
		return f.Snapshot(), appErrors.Validation(map[string]string{"password": msgPasswordRequired})
	}
	if password != confirm {
		f.mu.Unlock()
		f.deps.Metrics.RecordResetTransition("password", "mismatch")
		return f.Snapshot(), appErrors.Validation(map[string]string{"confirmPassword": msgPasswordMismatch})
	}
	email := f.email
	f.email = ""
	f.remaining = 0
	f.expiresAt = time.Time{}
	f.stage = models.StageAwaitingEmail
	f.completed = true
	f.notice = resetCompleteNotice
	f.mu.Unlock()

	f.deps.Metrics.RecordResetTransition("password", "ok")
	if f.deps.Resetter != nil {
		if err := f.deps.Resetter.ResetPassword(ctx, email, password); err != nil {
			f.deps.Logger.Warn("password reset not stored", zap.String("email", email), zap.Error(err))
		}
	}
	return f.Snapshot(), nil
}

// Tick performs one countdown step and returns the remaining seconds.
func (f *VerificationFlow) Tick() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stage == models.StageAwaitingCode && f.remaining > 0 {
		f.decrementLocked()
	}
	return f.remaining
}

// TimerActive reports whether a countdown goroutine is running.
func (f *VerificationFlow) TimerActive() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopTimer != nil
}

// Snapshot returns the current state.
func (f *VerificationFlow) Snapshot() models.VerificationSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// LastActivity is the time of the last state change or read.
func (f *VerificationFlow) LastActivity() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.touched
}

func (f *VerificationFlow) markActive() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched = f.cfg.Now()
}

// Close stops the countdown. A closed flow rejects every submission.
func (f *VerificationFlow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopCountdownLocked()
	f.closed = true
}

func (f *VerificationFlow) expectLocked(stage models.VerificationStage) error {
	f.touched = f.cfg.Now()
	if f.closed {
		return appErrors.Clone(appErrors.ErrNotFound, "reset session closed")
	}
	if f.stage != stage {
		return appErrors.Clone(appErrors.ErrInvalidStage, "expected stage "+string(stage)+", at "+string(f.stage))
	}
	return nil
}

func (f *VerificationFlow) snapshotLocked() models.VerificationSnapshot {
	snap := models.VerificationSnapshot{
		Stage:     f.stage,
		Email:     f.email,
		Remaining: f.remaining,
		Notice:    f.notice,
		Completed: f.completed,
	}
	if !f.expiresAt.IsZero() {
		at := f.expiresAt
		snap.ExpiresAt = &at
	}
	return snap
}

func (f *VerificationFlow) restartCountdownLocked() {
	f.stopCountdownLocked()
	f.remaining = int(f.cfg.CodeTTL / time.Second)
	f.expiresAt = f.cfg.Now().Add(f.cfg.CodeTTL)
	if f.cfg.TickInterval <= 0 {
		return
	}
	stop := make(chan struct{})
	f.stopTimer = stop
	go f.countdown(f.generation, stop, f.cfg.TickInterval)
}

// stopCountdownLocked releases the running countdown, if any. Bumping the
// generation also invalidates a tick that is already waiting on the lock.
func (f *VerificationFlow) stopCountdownLocked() {
	if f.stopTimer != nil {
		close(f.stopTimer)
		f.stopTimer = nil
	}
	f.generation++
}

func (f *VerificationFlow) decrementLocked() {
	f.remaining--
	if f.remaining <= 0 {
		f.remaining = 0
		f.stopCountdownLocked()
	}
}

func (f *VerificationFlow) countdown(generation uint64, stop <-chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !f.tickGeneration(generation) {
				return
			}
		}
	}
}

func (f *VerificationFlow) tickGeneration(generation uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if generation != f.generation || f.stage != models.StageAwaitingCode {
		return false
	}
	f.decrementLocked()
	return generation == f.generation
}

func (f *VerificationFlow) notify(ctx context.Context, email string) {
	if f.deps.Notifier == nil {
		return
	}
	if err := f.deps.Notifier.NotifyCodeSent(ctx, email, f.cfg.CodeTTL); err != nil {
		f.deps.Logger.Warn("code notice not delivered", zap.String("email", email), zap.Error(err))
	}
}
