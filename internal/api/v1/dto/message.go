package dto

import "time"

// MessagePair is one completed transcription kept in the in-memory session
// history so the front end can re-fetch recent results.
type MessagePair struct {
	ID        string                `json:"id"`
	CreatedAt time.Time             `json:"createdAt"`
	Result    TranscriptionResponse `json:"result"`
}
