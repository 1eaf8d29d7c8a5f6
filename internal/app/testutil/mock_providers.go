package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"voicebridge/internal/app/api"
)

// MockTranscriber is a testify mock for api.Transcriber.
type MockTranscriber struct {
	mock.Mock
}

func (m *MockTranscriber) Transcribe(ctx context.Context, req *api.TranscribeRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// MockTranslator is a testify mock for api.Translator.
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text, targetName string) (string, error) {
	args := m.Called(ctx, text, targetName)
	return args.String(0), args.Error(1)
}

// MockSynthesizer is a testify mock for api.Synthesizer.
type MockSynthesizer struct {
	mock.Mock
}

func (m *MockSynthesizer) Synthesize(ctx context.Context, req *api.SynthesizeRequest) ([]byte, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
