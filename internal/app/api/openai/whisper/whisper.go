package whisper

import (
	"bytes"
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"voicebridge/internal/app/api"
)

// RemoteTranscriber implements api.Transcriber against the OpenAI Whisper API.
type RemoteTranscriber struct {
	client *openai.Client
	model  string
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client) *RemoteTranscriber {
	return &RemoteTranscriber{
		client: client,
		model:  openai.Whisper1,
	}
}

// Transcribe submits the payload for remote transcription. The bytes are
// wrapped in an in-memory reader and the file name rides along so the
// provider's upload path can sniff the container format; no temp files.
func (rt *RemoteTranscriber) Transcribe(ctx context.Context, req *api.TranscribeRequest) (string, error) {
	if len(req.Data) == 0 {
		return "", fmt.Errorf("transcribe: empty audio payload")
	}

	audioRequest := openai.AudioRequest{
		Model:    rt.model,
		Reader:   bytes.NewReader(req.Data),
		FilePath: req.FileName,
		Language: req.Language,
	}

	resp, err := rt.client.CreateTranscription(ctx, audioRequest)
	if err != nil {
		return "", fmt.Errorf("createTranscription failed: %w", err)
	}

	return resp.Text, nil
}
