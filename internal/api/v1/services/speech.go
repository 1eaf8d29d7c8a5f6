package services

import (
	"context"
	"log/slog"

	"voicebridge/internal/api/errors"
	"voicebridge/internal/api/v1/dto"
	"voicebridge/internal/app/api"
	"voicebridge/internal/app/language"
	"voicebridge/internal/app/metrics"
)

// SpeechServiceImpl implements SpeechService with a two-model attempt list:
// the configured preferred model first, then the fixed fallback.
type SpeechServiceImpl struct {
	synthesizer    api.Synthesizer
	preferredModel string
	fallbackModel  string
	logger         *slog.Logger
}

// NewSpeechService creates a new speech synthesis service
func NewSpeechService(
	synthesizer api.Synthesizer,
	preferredModel string,
	fallbackModel string,
	logger *slog.Logger,
) SpeechService {
	return &SpeechServiceImpl{
		synthesizer:    synthesizer,
		preferredModel: preferredModel,
		fallbackModel:  fallbackModel,
		logger:         logger,
	}
}

// Synthesize validates the request, coerces voice and format to known
// values, and calls the provider with at most two model attempts.
func (s *SpeechServiceImpl) Synthesize(ctx context.Context, req *dto.SpeechRequest) (*dto.SpeechResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Unknown voices and formats are corrected silently, not rejected.
	voice := language.CoerceVoice(req.Voice)
	format := language.CoerceFormat(req.Format)

	attempt := &api.SynthesizeRequest{
		Text:   req.Text,
		Voice:  voice,
		Format: format,
		Model:  s.preferredModel,
	}

	audioBytes, err := s.synthesizer.Synthesize(ctx, attempt)
	if err != nil {
		metrics.ProviderAttempts.WithLabelValues("synthesize", "error").Inc()
		metrics.ProviderFallbacks.WithLabelValues("synthesize").Inc()
		s.logger.Warn("Primary TTS model failed, trying fallback",
			"error", err.Error(),
			"model", s.preferredModel,
			"fallback_model", s.fallbackModel,
		)

		attempt.Model = s.fallbackModel
		audioBytes, err = s.synthesizer.Synthesize(ctx, attempt)
		if err != nil {
			metrics.ProviderAttempts.WithLabelValues("synthesize", "error").Inc()
			s.logger.Error("Speech synthesis failed after fallback", "error", err.Error())
			return nil, errors.NewProviderError("TTS failed. Please try again.")
		}
	}

	metrics.ProviderAttempts.WithLabelValues("synthesize", "ok").Inc()

	return &dto.SpeechResult{
		Audio:    audioBytes,
		Format:   format,
		MIMEType: language.MIMEForFormat(format),
	}, nil
}
