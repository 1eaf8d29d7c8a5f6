package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"voicebridge/internal/api/errors"
	"voicebridge/internal/api/middleware"
	"voicebridge/internal/api/v1/dto"
	"voicebridge/internal/api/v1/services"
)

// TranscriptionHandler handles transcription-related API endpoints
type TranscriptionHandler struct {
	service  services.TranscriptionService
	messages services.MessageService
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.TranscriptionService, messages services.MessageService) *TranscriptionHandler {
	return &TranscriptionHandler{
		service:  service,
		messages: messages,
	}
}

// Create handles POST /api/v1/transcriptions
//
// Accepts a multipart form with fields `audio` (binary), `sourceLang`
// (default "auto") and `targetLang` (default "en"), and returns the combined
// transcript and translation.
func (h *TranscriptionHandler) Create(c *gin.Context) {
	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("No audio file provided"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("Failed to read audio file"))
		return
	}

	sourceLang := c.DefaultPostForm("sourceLang", "auto")
	targetLang := c.DefaultPostForm("targetLang", "en")

	req := &dto.TranscribeRequest{
		Audio:      data,
		FileName:   header.Filename,
		MIMEType:   header.Header.Get("Content-Type"),
		Size:       header.Size,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	}

	response, err := h.service.Transcribe(c.Request.Context(), req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	h.messages.Append(*response)

	c.JSON(http.StatusOK, response)
}
