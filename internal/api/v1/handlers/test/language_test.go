package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"voicebridge/internal/api/v1/dto"
	"voicebridge/internal/api/v1/handlers"
	"voicebridge/internal/app/language"
)

func TestLanguageHandler_List(t *testing.T) {
	router, ms := setupTestRouter(t)

	ms.LanguageService.On("List", mock.Anything).Return(language.Catalog)

	handler := handlers.NewLanguageHandler(ms.LanguageService)
	router.GET("/api/v1/languages", handler.List)

	req := httptest.NewRequest("GET", "/api/v1/languages", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 10)
	assert.Equal(t, "en", resp[0]["code"])
	assert.Equal(t, "English", resp[0]["label"])
	assert.Equal(t, "ur", resp[9]["code"])
}

func TestMessageHandler_List(t *testing.T) {
	router, ms := setupTestRouter(t)

	ms.MessageService.On("List", mock.Anything).Return([]dto.MessagePair{
		{
			ID:        "m-1",
			CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			Result: dto.TranscriptionResponse{
				Transcript:  "hello",
				Translation: "hola",
				SourceLang:  "auto",
				TargetLang:  "es",
			},
		},
	})

	handler := handlers.NewMessageHandler(ms.MessageService)
	router.GET("/api/v1/messages", handler.List)

	req := httptest.NewRequest("GET", "/api/v1/messages", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "m-1", resp[0]["id"])

	result := resp[0]["result"].(map[string]interface{})
	assert.Equal(t, "hola", result["translation"])
}
