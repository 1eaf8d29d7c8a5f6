package services

import (
	"context"
	"log/slog"
	"strings"

	"voicebridge/internal/api/errors"
	"voicebridge/internal/api/v1/dto"
	"voicebridge/internal/app/api"
	"voicebridge/internal/app/audio"
	"voicebridge/internal/app/language"
	"voicebridge/internal/app/metrics"
)

// fallbackMIMEType is the generic encoding used for the single retry when the
// provider rejects the payload as first submitted.
const fallbackMIMEType = "audio/mpeg"

// TranscriptionServiceImpl implements TranscriptionService. It owns the
// validate -> normalize -> transcribe -> fallback -> translate pipeline;
// the provider adapters it calls never retry on their own.
type TranscriptionServiceImpl struct {
	transcriber api.Transcriber
	translator  api.Translator
	logger      *slog.Logger
}

// NewTranscriptionService creates a new transcription service
func NewTranscriptionService(
	transcriber api.Transcriber,
	translator api.Translator,
	logger *slog.Logger,
) TranscriptionService {
	return &TranscriptionServiceImpl{
		transcriber: transcriber,
		translator:  translator,
		logger:      logger,
	}
}

// Transcribe runs the full pipeline for one audio payload. Either both
// transcript and translation succeed, or the whole call fails; no partial
// results are returned.
func (s *TranscriptionServiceImpl) Transcribe(ctx context.Context, req *dto.TranscribeRequest) (*dto.TranscriptionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sourceLang := audio.NormalizeLanguage(req.SourceLang)
	if sourceLang == "" {
		sourceLang = "auto"
	}
	targetLang := audio.NormalizeLanguage(req.TargetLang)
	if targetLang == "" {
		targetLang = "en"
	}

	// The provider sniffs the container format from the name, so it must
	// carry an extension even when the browser did not supply one.
	fileName := audio.EnsureExtension(req.FileName, req.MIMEType)

	// Empty hint means the provider auto-detects the source language.
	hint := ""
	if sourceLang != "auto" {
		hint = sourceLang
	}

	transcript, err := s.transcribe(ctx, req.Audio, fileName, req.MIMEType, hint)
	if err != nil {
		return nil, err
	}

	translation, err := s.translate(ctx, transcript, targetLang)
	if err != nil {
		return nil, err
	}

	return &dto.TranscriptionResponse{
		Transcript:  transcript,
		Translation: translation,
		SourceLang:  sourceLang,
		TargetLang:  targetLang,
	}, nil
}

// transcribe makes the primary provider call and, on failure, exactly one
// fallback attempt with the payload re-wrapped as generic MP3. Bounding the
// retry to one keeps a persistent provider outage visible instead of masked.
func (s *TranscriptionServiceImpl) transcribe(ctx context.Context, data []byte, fileName, mimeType, hint string) (string, error) {
	transcript, err := s.transcriber.Transcribe(ctx, &api.TranscribeRequest{
		Data:     data,
		FileName: fileName,
		MIMEType: mimeType,
		Language: hint,
	})
	if err == nil {
		metrics.ProviderAttempts.WithLabelValues("transcribe", "ok").Inc()
		return transcript, nil
	}

	metrics.ProviderAttempts.WithLabelValues("transcribe", "error").Inc()
	metrics.ProviderFallbacks.WithLabelValues("transcribe").Inc()
	s.logger.Warn("Transcription attempt failed, retrying with MP3 re-wrapping",
		"error", err.Error(),
		"file_name", fileName,
		"mime_type", mimeType,
	)

	transcript, err = s.transcriber.Transcribe(ctx, &api.TranscribeRequest{
		Data:     data,
		FileName: mp3Name(fileName),
		MIMEType: fallbackMIMEType,
		Language: hint,
	})
	if err != nil {
		metrics.ProviderAttempts.WithLabelValues("transcribe", "error").Inc()
		s.logger.Error("Transcription failed after fallback", "error", err.Error())
		return "", errors.NewProviderError("Failed to transcribe audio. Please try again.")
	}

	metrics.ProviderAttempts.WithLabelValues("transcribe", "ok").Inc()
	return transcript, nil
}

// translate resolves the target token to its display name and calls the
// translation capability. Translation failures are terminal; the single
// bounded retry belongs to the transcription step only.
func (s *TranscriptionServiceImpl) translate(ctx context.Context, transcript, targetLang string) (string, error) {
	targetName := language.DisplayName(targetLang)

	translation, err := s.translator.Translate(ctx, transcript, targetName)
	if err != nil {
		metrics.ProviderAttempts.WithLabelValues("translate", "error").Inc()
		s.logger.Error("Translation failed", "error", err.Error(), "target", targetLang)
		return "", errors.NewProviderError("Failed to translate transcript. Please try again.")
	}

	metrics.ProviderAttempts.WithLabelValues("translate", "ok").Inc()
	return translation, nil
}

// mp3Name swaps the extension for .mp3 so the fallback name always matches
// the fallback encoding.
func mp3Name(fileName string) string {
	if idx := strings.LastIndex(fileName, "."); idx > 0 {
		return fileName[:idx] + ".mp3"
	}
	return "audio.mp3"
}
