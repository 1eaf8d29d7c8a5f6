package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"voicebridge/internal/api/v1/dto"
	"voicebridge/internal/app/language"
)

// MockServices bundles service mocks for handler tests.
type MockServices struct {
	TranscriptionService *MockTranscriptionService
	SpeechService        *MockSpeechService
	LanguageService      *MockLanguageService
	MessageService       *MockMessageService
}

// NewMockServices creates a fresh set of service mocks and registers
// expectation assertions with the test's cleanup.
func NewMockServices(t *testing.T) *MockServices {
	t.Helper()

	ms := &MockServices{
		TranscriptionService: &MockTranscriptionService{},
		SpeechService:        &MockSpeechService{},
		LanguageService:      &MockLanguageService{},
		MessageService:       &MockMessageService{},
	}

	t.Cleanup(func() {
		ms.TranscriptionService.AssertExpectations(t)
		ms.SpeechService.AssertExpectations(t)
		ms.LanguageService.AssertExpectations(t)
		ms.MessageService.AssertExpectations(t)
	})

	return ms
}

// MockTranscriptionService is a testify mock for services.TranscriptionService.
type MockTranscriptionService struct {
	mock.Mock
}

func (m *MockTranscriptionService) Transcribe(ctx context.Context, req *dto.TranscribeRequest) (*dto.TranscriptionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranscriptionResponse), args.Error(1)
}

// MockSpeechService is a testify mock for services.SpeechService.
type MockSpeechService struct {
	mock.Mock
}

func (m *MockSpeechService) Synthesize(ctx context.Context, req *dto.SpeechRequest) (*dto.SpeechResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SpeechResult), args.Error(1)
}

// MockLanguageService is a testify mock for services.LanguageService.
type MockLanguageService struct {
	mock.Mock
}

func (m *MockLanguageService) List(ctx context.Context) []language.Language {
	args := m.Called(ctx)
	return args.Get(0).([]language.Language)
}

// MockMessageService is a testify mock for services.MessageService.
type MockMessageService struct {
	mock.Mock
}

func (m *MockMessageService) Append(result dto.TranscriptionResponse) dto.MessagePair {
	args := m.Called(result)
	return args.Get(0).(dto.MessagePair)
}

func (m *MockMessageService) List(ctx context.Context) []dto.MessagePair {
	args := m.Called(ctx)
	return args.Get(0).([]dto.MessagePair)
}
