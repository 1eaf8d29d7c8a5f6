package speech

import (
	"context"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"

	"voicebridge/internal/app/api"
)

// Synthesizer implements api.Synthesizer against the OpenAI speech API.
type Synthesizer struct {
	client *openai.Client
}

// NewSynthesizer creates a new Synthesizer instance.
func NewSynthesizer(client *openai.Client) *Synthesizer {
	return &Synthesizer{client: client}
}

// Synthesize generates audio for the given text and returns the raw bytes.
// Voice, format and model are passed through as-is; the caller coerces them
// to valid values before this point.
func (s *Synthesizer) Synthesize(ctx context.Context, req *api.SynthesizeRequest) ([]byte, error) {
	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(req.Model),
		Input:          req.Text,
		Voice:          openai.SpeechVoice(req.Voice),
		ResponseFormat: openai.SpeechResponseFormat(req.Format),
	})
	if err != nil {
		return nil, fmt.Errorf("createSpeech failed: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("reading speech response failed: %w", err)
	}

	return audio, nil
}
