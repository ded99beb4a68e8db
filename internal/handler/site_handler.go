package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/syntaxscout-api/internal/service"
	"github.com/noah-isme/syntaxscout-api/pkg/response"
)

// SiteHandler serves the public shell configuration.
type SiteHandler struct {
	site *service.SiteService
}

// NewSiteHandler constructs the handler.
func NewSiteHandler(site *service.SiteService) *SiteHandler {
	return &SiteHandler{site: site}
}

// Settings godoc
// @Summary Site shell settings
// @Description Theme and the public and dashboard route lists
// @Tags Site
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /site [get]
func (h *SiteHandler) Settings(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.site.Settings(), nil)
}
