package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	"github.com/noah-isme/syntaxscout-api/internal/service"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
	"github.com/noah-isme/syntaxscout-api/pkg/response"
)

// PasswordResetHandler drives reset flows held in a registry. Each session
// is one open reset screen.
type PasswordResetHandler struct {
	registry *service.VerificationRegistry
}

// NewPasswordResetHandler constructs the handler.
func NewPasswordResetHandler(registry *service.VerificationRegistry) *PasswordResetHandler {
	return &PasswordResetHandler{registry: registry}
}

// Create godoc
// @Summary Open a password reset session
// @Tags Password Reset
// @Produce json
// @Success 201 {object} response.Envelope
// @Router /password-reset [post]
func (h *PasswordResetHandler) Create(c *gin.Context) {
	id, flow := h.registry.Create()
	response.Created(c, withSession(id, flow.Snapshot()))
}

// Get godoc
// @Summary Current stage and countdown
// @Tags Password Reset
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /password-reset/{id} [get]
func (h *PasswordResetHandler) Get(c *gin.Context) {
	flow, ok := h.flow(c)
	if !ok {
		return
	}
	response.JSON(c, http.StatusOK, withSession(c.Param("id"), flow.Snapshot()), nil)
}

// SubmitEmail godoc
// @Summary Request a verification code
// @Tags Password Reset
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body models.ResetEmailRequest true "Email"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /password-reset/{id}/email [post]
func (h *PasswordResetHandler) SubmitEmail(c *gin.Context) {
	flow, ok := h.flow(c)
	if !ok {
		return
	}
	var req models.ResetEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	snapshot, err := flow.SubmitEmail(c.Request.Context(), req.Email)
	h.respond(c, snapshot, err)
}

// Resend godoc
// @Summary Resend the code and restart the countdown
// @Tags Password Reset
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /password-reset/{id}/resend [post]
func (h *PasswordResetHandler) Resend(c *gin.Context) {
	flow, ok := h.flow(c)
	if !ok {
		return
	}
	snapshot, err := flow.Resend(c.Request.Context())
	h.respond(c, snapshot, err)
}

// SubmitCode godoc
// @Summary Submit the verification code
// @Tags Password Reset
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body models.ResetCodeRequest true "Code"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Failure 410 {object} response.Envelope
// @Router /password-reset/{id}/code [post]
func (h *PasswordResetHandler) SubmitCode(c *gin.Context) {
	flow, ok := h.flow(c)
	if !ok {
		return
	}
	var req models.ResetCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	snapshot, err := flow.SubmitCode(c.Request.Context(), req.Code)
	h.respond(c, snapshot, err)
}

// SubmitPassword godoc
// @Summary Set the new password
// @Tags Password Reset
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body models.ResetPasswordRequest true "New password"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /password-reset/{id}/password [post]
func (h *PasswordResetHandler) SubmitPassword(c *gin.Context) {
	flow, ok := h.flow(c)
	if !ok {
		return
	}
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	snapshot, err := flow.SubmitPassword(c.Request.Context(), req.Password, req.ConfirmPassword)
	h.respond(c, snapshot, err)
}

// Abandon godoc
// @Summary Leave the reset screen
// @Description Closes the session and stops its countdown
// @Tags Password Reset
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /password-reset/{id} [delete]
func (h *PasswordResetHandler) Abandon(c *gin.Context) {
	if err := h.registry.Abandon(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func (h *PasswordResetHandler) flow(c *gin.Context) (*service.VerificationFlow, bool) {
	flow, err := h.registry.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	return flow, true
}

func (h *PasswordResetHandler) respond(c *gin.Context, snapshot models.VerificationSnapshot, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, withSession(c.Param("id"), snapshot), nil)
}

func withSession(id string, snapshot models.VerificationSnapshot) models.VerificationSnapshot {
	snapshot.SessionID = id
	return snapshot
}
