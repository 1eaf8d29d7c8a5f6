package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"voicebridge/internal/api/middleware"
	"voicebridge/internal/api/v1/dto"
	"voicebridge/internal/api/v1/services"
)

// SpeechHandler handles speech-synthesis API endpoints
type SpeechHandler struct {
	service services.SpeechService
}

// NewSpeechHandler creates a new speech handler
func NewSpeechHandler(service services.SpeechService) *SpeechHandler {
	return &SpeechHandler{
		service: service,
	}
}

// Create handles POST /api/v1/speech
//
// Accepts JSON {text, voice?, format?} and responds with the raw audio
// bytes. The artifact is never cached: playback URLs are one-shot.
func (h *SpeechHandler) Create(c *gin.Context) {
	var req dto.SpeechRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	result, err := h.service.Synthesize(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", "tts."+result.Format))
	c.Data(http.StatusOK, result.MIMEType, result.Audio)
}
