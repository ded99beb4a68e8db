package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/syntaxscout-api/api/swagger"
	"github.com/noah-isme/syntaxscout-api/internal/bootstrap"
	"github.com/noah-isme/syntaxscout-api/internal/handler"
	"github.com/noah-isme/syntaxscout-api/internal/middleware"
	"github.com/noah-isme/syntaxscout-api/internal/service"
	"github.com/noah-isme/syntaxscout-api/pkg/config"
	"github.com/noah-isme/syntaxscout-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/syntaxscout-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/syntaxscout-api/pkg/middleware/requestid"
)

// @title Syntax Scout API
// @version 1.0.0
// @description Learner platform: public catalog, testimonials, auth, password reset and the learner dashboard
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var metrics *service.MetricsService
	if cfg.Features.Metrics {
		metrics = service.NewMetricsService()
	}

	app, err := bootstrap.New(ctx, cfg, logr, metrics)
	if err != nil {
		logr.Sugar().Fatalw("bootstrap failed", "error", err)
	}
	defer app.Close() //nolint:errcheck
	app.Start(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if metrics != nil {
		r.Use(middleware.Metrics(metrics))
	}

	if cfg.Features.Docs && cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	handler.Register(api, handler.Handlers{
		Metrics:       handler.NewMetricsHandler(metrics, app.Ping),
		Site:          handler.NewSiteHandler(app.Site),
		Courses:       handler.NewCourseHandler(app.Courses),
		Contact:       handler.NewContactHandler(app.Contact),
		Feedback:      handler.NewFeedbackHandler(app.Feedback),
		Auth:          handler.NewAuthHandler(app.Auth),
		PasswordReset: handler.NewPasswordResetHandler(app.Registry),
		Dashboard:     handler.NewDashboardHandler(app.Dashboard, app.Courses, app.Export),
		Assignments:   handler.NewAssignmentHandler(app.Assignments),
		Grades:        handler.NewGradeHandler(app.Grades),
		Messages:      handler.NewMessageHandler(app.Messages),
		Settings:      handler.NewSettingsHandler(app.Settings),
	}, middleware.Gate(app.Auth))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "storage", cfg.Storage.Driver, "auth", cfg.Auth.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Errorw("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Warnw("graceful shutdown failed", "error", err)
	}
}
