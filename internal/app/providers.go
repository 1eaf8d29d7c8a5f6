// Package app wires the service together: configuration in, a ready-to-run
// HTTP server out. All construction happens here so a bad credential fails
// the process at startup, not on the first request.
package app

import (
	"log/slog"

	goopenai "github.com/sashabaranov/go-openai"

	"voicebridge/internal/api/server"
	v1routes "voicebridge/internal/api/v1/routes"
	"voicebridge/internal/api/v1/services"
	"voicebridge/internal/app/api"
	"voicebridge/internal/app/api/openai"
	"voicebridge/internal/config"
)

func provideClient(cfg *config.Config) (*goopenai.Client, error) {
	return openai.NewClient(openai.ClientConfig{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
	})
}

func provideSpeechService(synthesizer api.Synthesizer, cfg *config.Config, logger *slog.Logger) services.SpeechService {
	return services.NewSpeechService(
		synthesizer,
		cfg.OpenAI.PreferredTTSModel,
		config.FallbackTTSModel,
		logger,
	)
}

func provideContainer(
	transcriptionService services.TranscriptionService,
	speechService services.SpeechService,
) *v1routes.ServiceContainer {
	return &v1routes.ServiceContainer{
		TranscriptionService: transcriptionService,
		SpeechService:        speechService,
		LanguageService:      services.NewLanguageService(),
		MessageService:       services.NewMessageService(),
	}
}

func provideServer(cfg *config.Config, container *v1routes.ServiceContainer, logger *slog.Logger) *server.Server {
	return server.NewServer(cfg.Server, container, logger)
}
