package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/syntaxscout-api/internal/service"
	"github.com/noah-isme/syntaxscout-api/pkg/response"
)

// MessageHandler exposes the inbox.
type MessageHandler struct {
	messages *service.MessageService
}

// NewMessageHandler constructs handler.
func NewMessageHandler(messages *service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// List godoc
// @Summary List messages
// @Tags Messages
// @Produce json
// @Security BearerAuth
// @Param filter query string false "all, read or unread"
// @Param search query string false "Matches sender, subject or body"
// @Param sort query string false "date-desc, date-asc, sender-asc or sender-desc"
// @Param page query int false "Page number"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /dashboard/messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	params, ok := bindListQuery(c)
	if !ok {
		return
	}
	page, unread, err := h.messages.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondPage(c, page, map[string]interface{}{"unread": unread})
}

// Toggle godoc
// @Summary Toggle read state
// @Tags Messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /dashboard/messages/{id}/toggle [post]
func (h *MessageHandler) Toggle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	msg, err := h.messages.ToggleRead(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, msg, nil)
}

// Delete godoc
// @Summary Delete a message
// @Tags Messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Param confirm query bool false "Must be true to apply"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /dashboard/messages/{id} [delete]
func (h *MessageHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := h.messages.Delete(c.Request.Context(), id, confirmed(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	respondDestructive(c, result)
}

// PurgeRead godoc
// @Summary Delete every read message
// @Tags Messages
// @Produce json
// @Security BearerAuth
// @Param confirm query bool false "Must be true to apply"
// @Success 200 {object} response.Envelope
// @Router /dashboard/messages/purge-read [post]
func (h *MessageHandler) PurgeRead(c *gin.Context) {
	respondDestructive(c, h.messages.PurgeRead(c.Request.Context(), confirmed(c)))
}
