package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	"github.com/noah-isme/syntaxscout-api/internal/service"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
	"github.com/noah-isme/syntaxscout-api/pkg/response"
)

// ContactHandler accepts the public contact form.
type ContactHandler struct {
	contact *service.ContactService
}

// NewContactHandler constructs the handler.
func NewContactHandler(contact *service.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Submit godoc
// @Summary Send a contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param payload body models.ContactRequest true "Contact form"
// @Success 202 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid contact payload"))
		return
	}

	msg, err := h.contact.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, gin.H{"message": msg}, nil)
}
