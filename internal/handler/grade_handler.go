package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	"github.com/noah-isme/syntaxscout-api/internal/service"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
	"github.com/noah-isme/syntaxscout-api/pkg/response"
)

// GradeHandler exposes grade endpoints.
type GradeHandler struct {
	grades *service.GradeService
}

// NewGradeHandler constructs handler.
func NewGradeHandler(grades *service.GradeService) *GradeHandler {
	return &GradeHandler{grades: grades}
}

// List godoc
// @Summary List grades
// @Description Includes the average grade across every course
// @Tags Grades
// @Produce json
// @Security BearerAuth
// @Param search query string false "Matches course"
// @Param sort query string false "grade-desc, grade-asc, course-asc, course-desc or progress-desc"
// @Param page query int false "Page number"
// @Success 200 {object} response.Envelope
// @Router /dashboard/grades [get]
func (h *GradeHandler) List(c *gin.Context) {
	params, ok := bindListQuery(c)
	if !ok {
		return
	}
	page, summary := h.grades.List(c.Request.Context(), params)
	respondPage(c, page, map[string]interface{}{
		"average_grade": summary.Average,
		"courses":       summary.Courses,
	})
}

// Toggle godoc
// @Summary Toggle course completion
// @Tags Grades
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grade ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /dashboard/grades/{id}/toggle [post]
func (h *GradeHandler) Toggle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	grade, err := h.grades.ToggleComplete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grade, nil)
}

// Update godoc
// @Summary Edit a grade
// @Description Progress moves halfway towards the new grade
// @Tags Grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grade ID"
// @Param payload body models.GradeUpdateRequest true "Grade payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /dashboard/grades/{id} [put]
func (h *GradeHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req models.GradeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	grade, err := h.grades.UpdateGrade(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grade, nil)
}

// Reset godoc
// @Summary Reset progress on every course
// @Tags Grades
// @Produce json
// @Security BearerAuth
// @Param confirm query bool false "Must be true to apply"
// @Success 200 {object} response.Envelope
// @Router /dashboard/grades/reset [post]
func (h *GradeHandler) Reset(c *gin.Context) {
	respondDestructive(c, h.grades.ResetProgress(c.Request.Context(), confirmed(c)))
}
