package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"voicebridge/internal/api/v1/services"
)

// MessageHandler handles message history API endpoints
type MessageHandler struct {
	service services.MessageService
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(service services.MessageService) *MessageHandler {
	return &MessageHandler{
		service: service,
	}
}

// List handles GET /api/v1/messages
//
// Returns the most recent transcription results, oldest first, capped at 20.
func (h *MessageHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c.Request.Context()))
}
