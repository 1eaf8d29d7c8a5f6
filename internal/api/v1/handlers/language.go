package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"voicebridge/internal/api/v1/services"
)

// LanguageHandler handles language catalog API endpoints
type LanguageHandler struct {
	service services.LanguageService
}

// NewLanguageHandler creates a new language handler
func NewLanguageHandler(service services.LanguageService) *LanguageHandler {
	return &LanguageHandler{
		service: service,
	}
}

// List handles GET /api/v1/languages
func (h *LanguageHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c.Request.Context()))
}
