package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"

	"voicebridge/internal/app/api"
)

func TestSynthesizer_Synthesize(t *testing.T) {
	audioBytes := []byte{0x49, 0x44, 0x33, 0x04, 0x00} // ID3 header prefix

	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write(audioBytes)
	}))
	defer server.Close()

	config := openai.DefaultConfig("test-api-key")
	config.BaseURL = server.URL + "/v1"
	synth := NewSynthesizer(openai.NewClientWithConfig(config))

	got, err := synth.Synthesize(context.Background(), &api.SynthesizeRequest{
		Text:   "Hello, world",
		Voice:  "alloy",
		Format: "mp3",
		Model:  "gpt-4o-mini-tts",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !bytes.Equal(got, audioBytes) {
		t.Errorf("Expected raw audio bytes to round-trip, got %v", got)
	}

	if captured["model"] != "gpt-4o-mini-tts" {
		t.Errorf("Expected model gpt-4o-mini-tts, got %v", captured["model"])
	}
	if captured["voice"] != "alloy" {
		t.Errorf("Expected voice alloy, got %v", captured["voice"])
	}
	if captured["input"] != "Hello, world" {
		t.Errorf("Expected input text, got %v", captured["input"])
	}
	if captured["response_format"] != "mp3" {
		t.Errorf("Expected response_format mp3, got %v", captured["response_format"])
	}
}

func TestSynthesizer_Synthesize_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": {"message": "The model does not exist", "type": "invalid_request_error"}}`))
	}))
	defer server.Close()

	config := openai.DefaultConfig("test-api-key")
	config.BaseURL = server.URL + "/v1"
	synth := NewSynthesizer(openai.NewClientWithConfig(config))

	_, err := synth.Synthesize(context.Background(), &api.SynthesizeRequest{
		Text:   "Hello",
		Voice:  "alloy",
		Format: "mp3",
		Model:  "no-such-model",
	})
	if err == nil {
		t.Error("Expected error for unknown model, got none")
	}
}
