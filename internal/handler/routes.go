package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/syntaxscout-api/internal/models"
)

// Handlers bundles every HTTP handler mounted by Register.
type Handlers struct {
	Metrics       *MetricsHandler
	Site          *SiteHandler
	Courses       *CourseHandler
	Contact       *ContactHandler
	Feedback      *FeedbackHandler
	Auth          *AuthHandler
	PasswordReset *PasswordResetHandler
	Dashboard     *DashboardHandler
	Assignments   *AssignmentHandler
	Grades        *GradeHandler
	Messages      *MessageHandler
	Settings      *SettingsHandler
}

// Register mounts the public routes and the gated dashboard tree on r.
func Register(r gin.IRouter, h Handlers, gate gin.HandlerFunc) {
	if h.Metrics != nil {
		r.GET("/health", h.Metrics.Health)
		r.GET("/ready", h.Metrics.Ready)
		r.GET("/metrics", h.Metrics.Prometheus)
		r.GET("/metrics/summary", h.Metrics.Snapshot)
	}

	r.GET("/site", h.Site.Settings)
	r.GET("/courses", h.Courses.List)
	r.POST("/contact", h.Contact.Submit)
	r.GET("/feedback", h.Feedback.List)
	r.POST("/feedback", h.Feedback.Submit)

	auth := r.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/signup", h.Auth.Signup)
	auth.POST("/logout", h.Auth.Logout)
	auth.GET("/session", h.Auth.Session)

	reset := r.Group("/password-reset")
	reset.POST("", h.PasswordReset.Create)
	reset.GET("/:id", h.PasswordReset.Get)
	reset.DELETE("/:id", h.PasswordReset.Abandon)
	reset.POST("/:id/email", h.PasswordReset.SubmitEmail)
	reset.POST("/:id/code", h.PasswordReset.SubmitCode)
	reset.POST("/:id/resend", h.PasswordReset.Resend)
	reset.POST("/:id/password", h.PasswordReset.SubmitPassword)

	dash := r.Group("/dashboard")
	if gate != nil {
		dash.Use(gate)
	}
	dash.GET("", h.Dashboard.Overview)
	dash.GET("/courses", h.Dashboard.Courses)

	assignments := dash.Group("/assignments")
	assignments.GET("", h.Assignments.List)
	assignments.GET("/export", h.Dashboard.Export(models.ExportAssignments))
	assignments.POST("/reset", h.Assignments.Reset)
	assignments.POST("/:id/toggle", h.Assignments.Toggle)

	grades := dash.Group("/grades")
	grades.GET("", h.Grades.List)
	grades.GET("/export", h.Dashboard.Export(models.ExportGrades))
	grades.POST("/reset", h.Grades.Reset)
	grades.POST("/:id/toggle", h.Grades.Toggle)
	grades.PUT("/:id", h.Grades.Update)

	messages := dash.Group("/messages")
	messages.GET("", h.Messages.List)
	messages.GET("/export", h.Dashboard.Export(models.ExportMessages))
	messages.POST("/purge-read", h.Messages.PurgeRead)
	messages.POST("/:id/toggle", h.Messages.Toggle)
	messages.DELETE("/:id", h.Messages.Delete)

	settings := dash.Group("/settings")
	settings.GET("", h.Settings.Get)
	settings.PUT("/:section", h.Settings.Save)
}
