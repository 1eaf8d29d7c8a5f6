package services

import (
	"context"

	"voicebridge/internal/app/language"
)

// LanguageServiceImpl implements LanguageService over the static catalog.
type LanguageServiceImpl struct{}

// NewLanguageService creates a new language service
func NewLanguageService() LanguageService {
	return &LanguageServiceImpl{}
}

// List returns the fixed, ordered language catalog.
func (s *LanguageServiceImpl) List(_ context.Context) []language.Language {
	return language.Catalog
}
