package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	"github.com/noah-isme/syntaxscout-api/internal/service"
	"github.com/noah-isme/syntaxscout-api/pkg/response"
)

type dashboardService interface {
	Overview(ctx context.Context) models.DashboardOverview
}

type enrolledCourses interface {
	Enrolled(ctx context.Context) []models.EnrolledCourse
}

type exporter interface {
	Export(ctx context.Context, screen models.ExportScreen, format models.ExportFormat, params models.QueryParameters) (*service.ExportFile, error)
}

// DashboardHandler serves the overview, enrolled courses and exports.
type DashboardHandler struct {
	service dashboardService
	courses enrolledCourses
	export  exporter
}

// NewDashboardHandler constructs a dashboard handler.
func NewDashboardHandler(svc dashboardService, courses enrolledCourses, export exporter) *DashboardHandler {
	return &DashboardHandler{service: svc, courses: courses, export: export}
}

// Overview godoc
// @Summary Dashboard overview
// @Description Counts across assignments, grades, messages and courses
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Overview(c.Request.Context()), nil)
}

// Courses godoc
// @Summary Enrolled courses
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /dashboard/courses [get]
func (h *DashboardHandler) Courses(c *gin.Context) {
	courses := h.courses.Enrolled(c.Request.Context())
	if courses == nil {
		courses = []models.EnrolledCourse{}
	}
	response.JSON(c, http.StatusOK, courses, nil, map[string]interface{}{"count": len(courses)})
}

// Export godoc
// @Summary Export a screen
// @Description Renders the filtered and sorted view without pagination
// @Tags Dashboard
// @Produce octet-stream
// @Security BearerAuth
// @Param format query string false "csv (default) or pdf"
// @Param search query string false "Search text"
// @Param sort query string false "Sort key"
// @Param filter query string false "Message read filter"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /dashboard/assignments/export [get]
// @Router /dashboard/grades/export [get]
// @Router /dashboard/messages/export [get]
func (h *DashboardHandler) Export(screen models.ExportScreen) gin.HandlerFunc {
	return func(c *gin.Context) {
		format, err := service.ParseExportFormat(c.Query("format"))
		if err != nil {
			response.Error(c, err)
			return
		}
		params, ok := bindListQuery(c)
		if !ok {
			return
		}
		file, err := h.export.Export(c.Request.Context(), screen, format, params)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Attachment(c, file.Filename, file.ContentType, file.Body)
	}
}
