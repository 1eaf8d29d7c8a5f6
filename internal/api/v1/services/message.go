package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"voicebridge/internal/api/v1/dto"
)

// maxMessages caps the in-memory history; the oldest entry is evicted first.
const maxMessages = 20

// MessageServiceImpl implements MessageService as a mutex-guarded FIFO list.
// This is the only mutable state shared between requests besides the
// provider client, which is read-only after construction.
type MessageServiceImpl struct {
	mu       sync.Mutex
	messages []dto.MessagePair
	now      func() time.Time
}

// NewMessageService creates a new message history service
func NewMessageService() MessageService {
	return &MessageServiceImpl{now: time.Now}
}

// Append records a completed transcription, evicting the oldest pair when
// the cap is reached.
func (s *MessageServiceImpl) Append(result dto.TranscriptionResponse) dto.MessagePair {
	pair := dto.MessagePair{
		ID:        uuid.New().String(),
		CreatedAt: s.now(),
		Result:    result,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, pair)
	if len(s.messages) > maxMessages {
		s.messages = s.messages[len(s.messages)-maxMessages:]
	}

	return pair
}

// List returns a copy of the history, oldest first.
func (s *MessageServiceImpl) List(_ context.Context) []dto.MessagePair {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]dto.MessagePair, len(s.messages))
	copy(out, s.messages)
	return out
}
