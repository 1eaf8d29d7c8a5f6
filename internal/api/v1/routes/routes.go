package routes

import (
	"github.com/gin-gonic/gin"
	"voicebridge/internal/api/v1/handlers"
	"voicebridge/internal/api/v1/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TranscriptionService services.TranscriptionService
	SpeechService        services.SpeechService
	LanguageService      services.LanguageService
	MessageService       services.MessageService
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	transcriptionHandler := handlers.NewTranscriptionHandler(
		container.TranscriptionService,
		container.MessageService,
	)
	router.POST("/transcriptions", transcriptionHandler.Create)

	speechHandler := handlers.NewSpeechHandler(container.SpeechService)
	router.POST("/speech", speechHandler.Create)

	languageHandler := handlers.NewLanguageHandler(container.LanguageService)
	router.GET("/languages", languageHandler.List)

	messageHandler := handlers.NewMessageHandler(container.MessageService)
	router.GET("/messages", messageHandler.List)
}
