//go:build wireinject
// +build wireinject

package app

import (
	"log/slog"

	"github.com/google/wire"

	"voicebridge/internal/api/server"
	"voicebridge/internal/api/v1/services"
	"voicebridge/internal/app/api"
	"voicebridge/internal/app/api/openai/chat"
	"voicebridge/internal/app/api/openai/speech"
	"voicebridge/internal/app/api/openai/whisper"
	"voicebridge/internal/config"
)

// InitializeServer builds the fully wired API server from configuration.
func InitializeServer(cfg *config.Config, logger *slog.Logger) (*server.Server, error) {
	wire.Build(
		provideClient,
		whisper.NewRemoteTranscriber,
		wire.Bind(new(api.Transcriber), new(*whisper.RemoteTranscriber)),
		chat.NewTranslator,
		wire.Bind(new(api.Translator), new(*chat.Translator)),
		speech.NewSynthesizer,
		wire.Bind(new(api.Synthesizer), new(*speech.Synthesizer)),
		services.NewTranscriptionService,
		provideSpeechService,
		provideContainer,
		provideServer,
	)
	return nil, nil
}
