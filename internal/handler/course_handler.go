package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	"github.com/noah-isme/syntaxscout-api/internal/service"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
	"github.com/noah-isme/syntaxscout-api/pkg/response"
)

const noCoursesFound = "No courses found matching your criteria."

// CourseHandler exposes the public course catalog.
type CourseHandler struct {
	courses *service.CourseService
}

// NewCourseHandler constructs the handler.
func NewCourseHandler(courses *service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// List godoc
// @Summary Browse the course catalog
// @Tags Courses
// @Produce json
// @Param category query string false "Category, All disables the filter"
// @Param search query string false "Matches title or description"
// @Param sort query string false "priceAsc, priceDesc, durationAsc or durationDesc"
// @Param limit query int false "Maximum number of courses"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	var q models.CourseQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query parameters"))
		return
	}

	courses := h.courses.List(q)
	meta := map[string]interface{}{
		"categories": h.courses.Categories(),
		"count":      len(courses),
	}
	if len(courses) == 0 {
		meta["message"] = noCoursesFound
	}
	response.JSON(c, http.StatusOK, courses, nil, meta)
}
