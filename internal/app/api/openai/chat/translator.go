package chat

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// translationModel balances quality and latency for short transcripts.
const translationModel = "gpt-4o-mini"

// translationTemperature keeps the output close to a literal rendering.
const translationTemperature = 0.3

// Translator implements api.Translator as a chat completion with a fixed
// translator instruction.
type Translator struct {
	client *openai.Client
}

// NewTranslator creates a new Translator instance.
func NewTranslator(client *openai.Client) *Translator {
	return &Translator{client: client}
}

// Translate renders text into the target language, named in human-readable
// form (e.g. "Spanish", not "es").
func (t *Translator) Translate(ctx context.Context, text, targetName string) (string, error) {
	request := openai.ChatCompletionRequest{
		Model:       translationModel,
		Temperature: translationTemperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(
					"You are a precise translator. Translate the user's text into %s "+
						"while preserving meaning, tone, and punctuation. Do not add commentary.",
					targetName,
				),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
	}

	resp, err := t.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", fmt.Errorf("createChatCompletion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
