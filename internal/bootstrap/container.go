// Package bootstrap builds the object graph shared by the API server and
// scoutctl.
package bootstrap

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/syntaxscout-api/internal/repository"
	"github.com/noah-isme/syntaxscout-api/internal/service"
	"github.com/noah-isme/syntaxscout-api/pkg/authclient"
	"github.com/noah-isme/syntaxscout-api/pkg/config"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
	"github.com/noah-isme/syntaxscout-api/pkg/jobs"
	"github.com/noah-isme/syntaxscout-api/pkg/mailer"
)

const sweepInterval = time.Minute

// Container holds every service wired against one storage backend.
type Container struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *service.MetricsService
	Store   Store

	Mail        *mailer.Dispatcher
	Assignments *service.AssignmentService
	Grades      *service.GradeService
	Messages    *service.MessageService
	Feedback    *service.FeedbackService
	Courses     *service.CourseService
	Settings    *service.SettingsService
	Dashboard   *service.DashboardService
	Export      *service.ExportService
	Contact     *service.ContactService
	Site        *service.SiteService
	Tokens      *service.TokenStore
	Auth        *service.AuthService
	Registry    *service.VerificationRegistry

	// LocalAuth is nil when auth is delegated to a remote service.
	LocalAuth *service.LocalAuthGateway

	closeStore func() error
}

// New opens the configured store and wires the services on top of it.
// Metrics may be nil.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger, metrics *service.MetricsService) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	store, closeStore, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	c := &Container{Config: cfg, Logger: logger, Metrics: metrics, Store: store, closeStore: closeStore}
	kv := service.NewInstrumentedStore(store, metrics)
	validate := service.NewValidator()
	screen := service.ScreenConfig{PageSize: cfg.Query.PageSize}

	c.Mail = mailer.NewDispatcher(newMailer(cfg, logger), jobs.QueueConfig{
		Workers:    cfg.Mail.Workers,
		MaxRetries: cfg.Mail.Retries,
		RetryDelay: 2 * time.Second,
		JobTimeout: 15 * time.Second,
		Logger:     logger.Named("mail"),
	})

	c.Assignments = service.NewAssignmentService(kv, logger, metrics, screen)
	c.Grades = service.NewGradeService(kv, validate, logger, metrics, screen)
	c.Messages = service.NewMessageService(kv, logger, metrics, screen)
	c.Feedback = service.NewFeedbackService(kv, validate, logger, metrics, screen)
	c.Courses = service.NewCourseService(c.Grades)
	c.Settings = service.NewSettingsService(kv, validate, logger, metrics)
	c.Dashboard = service.NewDashboardService(c.Assignments, c.Grades, c.Messages, c.Courses, logger)
	c.Export = service.NewExportService(c.Assignments, c.Grades, c.Messages, logger, nil, nil)
	c.Contact = service.NewContactService(c.Mail, cfg.Mail.ContactInbox, logger)
	c.Site = service.NewSiteService(cfg.Theme)

	// The session store lives as long as the process; the persistent store
	// only ever holds the legacy token copy and the logged-in marker.
	c.Tokens = service.NewTokenStore(repository.NewMemoryKVRepository(), kv, logger)

	var gateway service.AuthGateway
	switch cfg.Auth.Mode {
	case config.AuthModeRemote:
		gateway = service.NewRemoteAuthGateway(authclient.New(cfg.Auth.RemoteURL, cfg.Auth.RemoteTimeout))
		logger.Sugar().Infow("auth gateway ready", "mode", config.AuthModeRemote, "url", cfg.Auth.RemoteURL)
	default:
		c.LocalAuth = service.NewLocalAuthGateway(kv, service.LocalAuthConfig{
			Secret:   cfg.JWT.Secret,
			TokenTTL: cfg.JWT.Expiration,
		}, logger, metrics)
		gateway = c.LocalAuth
	}
	c.Auth = service.NewAuthService(gateway, c.Tokens, validate, logger)

	c.Registry = service.NewVerificationRegistry(func() *service.VerificationFlow {
		return c.NewResetFlow(time.Second)
	}, cfg.Reset.SessionIdle, logger, metrics)

	return c, nil
}

// NewResetFlow builds a password reset flow. A zero tick leaves the
// countdown to the caller.
func (c *Container) NewResetFlow(tick time.Duration) *service.VerificationFlow {
	deps := service.VerificationDeps{
		Verifier: service.MockCodeVerifier{},
		Notifier: service.NewMailCodeNotifier(c.Mail),
		Logger:   c.Logger,
		Metrics:  c.Metrics,
	}
	if c.LocalAuth != nil {
		deps.Resetter = c.LocalAuth
	}
	return service.NewVerificationFlow(deps, service.VerificationConfig{
		CodeTTL:      c.Config.Reset.CodeTTL,
		TickInterval: tick,
	})
}

// Start launches the mail workers and the reset session sweeper. Both stop
// when ctx is cancelled or Close is called.
func (c *Container) Start(ctx context.Context) {
	c.Mail.Start(ctx)
	c.Registry.StartSweeper(ctx, sweepInterval)
}

// Ping checks that the store answers. A missing key counts as healthy.
func (c *Container) Ping(ctx context.Context) error {
	_, err := c.Store.Get(ctx, service.KeyIsLoggedIn)
	if err == nil || errors.Is(err, appErrors.ErrKeyNotFound) {
		return nil
	}
	return err
}

// Close stops background work and releases the store.
func (c *Container) Close() error {
	c.Registry.Close()
	c.Mail.Stop()
	return c.closeStore()
}

func newMailer(cfg *config.Config, logger *zap.Logger) mailer.Mailer {
	if cfg.Mail.Driver == config.MailSendgrid && cfg.Mail.SendgridAPIKey != "" {
		return mailer.NewSendgridMailer(cfg.Mail.SendgridAPIKey, cfg.Mail.FromName, cfg.Mail.FromAddress)
	}
	if cfg.Mail.Driver == config.MailSendgrid {
		logger.Warn("SENDGRID_API_KEY is empty, falling back to console mail")
	}
	return mailer.NewConsoleMailer(logger.Named("mail"))
}
