package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	"github.com/noah-isme/syntaxscout-api/internal/service"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
	"github.com/noah-isme/syntaxscout-api/pkg/response"
)

const feedbackSaved = "Thank you for your feedback!"

// FeedbackHandler serves the testimonials wall.
type FeedbackHandler struct {
	feedback *service.FeedbackService
}

// NewFeedbackHandler constructs the handler.
func NewFeedbackHandler(feedback *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// List godoc
// @Summary List testimonials
// @Tags Feedback
// @Produce json
// @Param search query string false "Matches name or feedback text"
// @Param sort query string false "newest, rating-desc, rating-asc or name-asc"
// @Param page query int false "Page number"
// @Success 200 {object} response.Envelope
// @Router /feedback [get]
func (h *FeedbackHandler) List(c *gin.Context) {
	params, ok := bindListQuery(c)
	if !ok {
		return
	}
	page := h.feedback.List(c.Request.Context(), params)
	respondPage(c, page, nil)
}

// Submit godoc
// @Summary Leave a testimonial
// @Tags Feedback
// @Accept json
// @Produce json
// @Param payload body models.FeedbackRequest true "Feedback form"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /feedback [post]
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid feedback payload"))
		return
	}

	entry, err := h.feedback.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, entry, nil, map[string]interface{}{"message": feedbackSaved})
}
