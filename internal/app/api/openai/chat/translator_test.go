package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
)

func TestTranslator_Translate(t *testing.T) {
	var captured openai.ChatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "Hola, mundo"}}]}`))
	}))
	defer server.Close()

	config := openai.DefaultConfig("test-api-key")
	config.BaseURL = server.URL + "/v1"
	translator := NewTranslator(openai.NewClientWithConfig(config))

	result, err := translator.Translate(context.Background(), "Hello, world", "Spanish")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result != "Hola, mundo" {
		t.Errorf("Expected 'Hola, mundo', got %q", result)
	}

	if captured.Model != translationModel {
		t.Errorf("Expected model %q, got %q", translationModel, captured.Model)
	}
	if captured.Temperature != translationTemperature {
		t.Errorf("Expected temperature %v, got %v", translationTemperature, captured.Temperature)
	}
	if len(captured.Messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(captured.Messages))
	}
	if captured.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("Expected system message first, got role %q", captured.Messages[0].Role)
	}
	if !strings.Contains(captured.Messages[0].Content, "Spanish") {
		t.Errorf("System prompt should name the target language, got %q", captured.Messages[0].Content)
	}
	if captured.Messages[1].Content != "Hello, world" {
		t.Errorf("Expected user message with source text, got %q", captured.Messages[1].Content)
	}
}

func TestTranslator_Translate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "Rate limit exceeded", "type": "rate_limit_error"}}`))
	}))
	defer server.Close()

	config := openai.DefaultConfig("test-api-key")
	config.BaseURL = server.URL + "/v1"
	translator := NewTranslator(openai.NewClientWithConfig(config))

	_, err := translator.Translate(context.Background(), "Hello", "French")
	if err == nil {
		t.Error("Expected error for rate-limited request, got none")
	}
}

func TestTranslator_Translate_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	config := openai.DefaultConfig("test-api-key")
	config.BaseURL = server.URL + "/v1"
	translator := NewTranslator(openai.NewClientWithConfig(config))

	result, err := translator.Translate(context.Background(), "Hello", "German")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result != "" {
		t.Errorf("Expected empty translation, got %q", result)
	}
}
