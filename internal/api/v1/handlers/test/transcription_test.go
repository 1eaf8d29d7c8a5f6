package test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"voicebridge/internal/api/errors"
	"voicebridge/internal/api/v1/dto"
	"voicebridge/internal/api/v1/handlers"
	"voicebridge/internal/app/testutil"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *testutil.MockServices) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mockServices := testutil.NewMockServices(t)
	return router, mockServices
}

// multipartAudio builds a multipart body with an audio file part and the
// given form fields.
func multipartAudio(t *testing.T, fileName, mimeType string, data []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="audio"; filename="` + fileName + `"`}
	header["Content-Type"] = []string{mimeType}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestTranscriptionHandler_Create(t *testing.T) {
	t.Run("successful transcription", func(t *testing.T) {
		router, ms := setupTestRouter(t)

		ms.TranscriptionService.On("Transcribe", mock.Anything, mock.MatchedBy(func(req *dto.TranscribeRequest) bool {
			return req.FileName == "clip.wav" &&
				req.MIMEType == "audio/wav" &&
				req.SourceLang == "auto" &&
				req.TargetLang == "es"
		})).Return(&dto.TranscriptionResponse{
			Transcript:  "Hello, world",
			Translation: "Hola, mundo",
			SourceLang:  "auto",
			TargetLang:  "es",
		}, nil)

		ms.MessageService.On("Append", mock.Anything).Return(dto.MessagePair{ID: "m-1"})

		handler := handlers.NewTranscriptionHandler(ms.TranscriptionService, ms.MessageService)
		router.POST("/api/v1/transcriptions", handler.Create)

		body, contentType := multipartAudio(t, "clip.wav", "audio/wav",
			bytes.Repeat([]byte{0x42}, 1024),
			map[string]string{"sourceLang": "auto", "targetLang": "es"})

		req := httptest.NewRequest("POST", "/api/v1/transcriptions", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Hello, world", resp["transcript"])
		assert.Equal(t, "Hola, mundo", resp["translation"])
		assert.Equal(t, "auto", resp["sourceLang"])
		assert.Equal(t, "es", resp["targetLang"])
		assert.NotContains(t, resp, "durationSec")
	})

	t.Run("missing audio part", func(t *testing.T) {
		router, ms := setupTestRouter(t)

		handler := handlers.NewTranscriptionHandler(ms.TranscriptionService, ms.MessageService)
		router.POST("/api/v1/transcriptions", handler.Create)

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField("targetLang", "es"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest("POST", "/api/v1/transcriptions", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "No audio file provided", resp["error"])
	})

	t.Run("provider failure surfaces 502", func(t *testing.T) {
		router, ms := setupTestRouter(t)

		ms.TranscriptionService.On("Transcribe", mock.Anything, mock.Anything).
			Return(nil, errors.NewProviderError("Failed to transcribe audio. Please try again."))

		handler := handlers.NewTranscriptionHandler(ms.TranscriptionService, ms.MessageService)
		router.POST("/api/v1/transcriptions", handler.Create)

		body, contentType := multipartAudio(t, "clip.mp3", "audio/mpeg", []byte("data"), nil)

		req := httptest.NewRequest("POST", "/api/v1/transcriptions", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadGateway, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "provider", resp["kind"])
		assert.NotEmpty(t, resp["error"])
	})

	t.Run("validation failure surfaces 400", func(t *testing.T) {
		router, ms := setupTestRouter(t)

		ms.TranscriptionService.On("Transcribe", mock.Anything, mock.Anything).
			Return(nil, errors.NewBadRequestError("File too large. Maximum size is 25MB."))

		handler := handlers.NewTranscriptionHandler(ms.TranscriptionService, ms.MessageService)
		router.POST("/api/v1/transcriptions", handler.Create)

		body, contentType := multipartAudio(t, "clip.wav", "audio/wav", []byte("data"), nil)

		req := httptest.NewRequest("POST", "/api/v1/transcriptions", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
