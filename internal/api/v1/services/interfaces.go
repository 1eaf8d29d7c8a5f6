package services

import (
	"context"

	"voicebridge/internal/api/v1/dto"
	"voicebridge/internal/app/language"
)

// TranscriptionService defines the transcription-translation pipeline.
type TranscriptionService interface {
	Transcribe(ctx context.Context, req *dto.TranscribeRequest) (*dto.TranscriptionResponse, error)
}

// SpeechService defines the speech-synthesis pipeline.
type SpeechService interface {
	Synthesize(ctx context.Context, req *dto.SpeechRequest) (*dto.SpeechResult, error)
}

// LanguageService exposes the static language catalog.
type LanguageService interface {
	List(ctx context.Context) []language.Language
}

// MessageService keeps the recent transcription history for the session.
type MessageService interface {
	Append(result dto.TranscriptionResponse) dto.MessagePair
	List(ctx context.Context) []dto.MessagePair
}
