package dto

import (
	"strings"
	"unicode/utf8"

	"voicebridge/internal/api/errors"
)

// MaxSpeechTextLength caps synthesis input size, counted in characters so
// multibyte scripts get the same budget as Latin text.
const MaxSpeechTextLength = 10000

// SpeechRequest is the JSON body of a synthesis call. Voice and format are
// optional; invalid values are coerced to defaults downstream rather than
// rejected.
type SpeechRequest struct {
	Text   string `json:"text"`
	Voice  string `json:"voice,omitempty"`
	Format string `json:"format,omitempty"`
}

// Validate rejects missing or oversized text before any remote call.
func (r *SpeechRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errors.NewBadRequestError("Text is required")
	}
	if utf8.RuneCountInString(r.Text) > MaxSpeechTextLength {
		return errors.NewBadRequestError("Text too long (max 10k chars)")
	}
	return nil
}

// SpeechResult is the synthesized artifact: raw bytes plus the delivery
// metadata derived from the resolved format. Ephemeral; discarded after the
// response is written.
type SpeechResult struct {
	Audio    []byte
	Format   string
	MIMEType string
}
