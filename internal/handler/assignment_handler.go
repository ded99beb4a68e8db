package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/syntaxscout-api/internal/service"
	"github.com/noah-isme/syntaxscout-api/pkg/response"
)

// AssignmentHandler exposes the assignments screen.
type AssignmentHandler struct {
	assignments *service.AssignmentService
}

// NewAssignmentHandler constructs handler.
func NewAssignmentHandler(assignments *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

// List godoc
// @Summary List assignments
// @Tags Assignments
// @Produce json
// @Security BearerAuth
// @Param search query string false "Matches title or course"
// @Param sort query string false "due-asc, due-desc, course-asc, course-desc or status"
// @Param page query int false "Page number"
// @Success 200 {object} response.Envelope
// @Router /dashboard/assignments [get]
func (h *AssignmentHandler) List(c *gin.Context) {
	params, ok := bindListQuery(c)
	if !ok {
		return
	}
	respondPage(c, h.assignments.List(c.Request.Context(), params), nil)
}

// Toggle godoc
// @Summary Toggle completion
// @Tags Assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /dashboard/assignments/{id}/toggle [post]
func (h *AssignmentHandler) Toggle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	assignment, err := h.assignments.ToggleComplete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignment, nil)
}

// Reset godoc
// @Summary Mark every assignment pending
// @Tags Assignments
// @Produce json
// @Security BearerAuth
// @Param confirm query bool false "Must be true to apply"
// @Success 200 {object} response.Envelope
// @Router /dashboard/assignments/reset [post]
func (h *AssignmentHandler) Reset(c *gin.Context) {
	respondDestructive(c, h.assignments.ResetAll(c.Request.Context(), confirmed(c)))
}
