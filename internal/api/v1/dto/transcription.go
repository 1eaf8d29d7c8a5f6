package dto

import (
	"fmt"

	"voicebridge/internal/api/errors"
	"voicebridge/internal/app/audio"
)

// TranscribeRequest carries one uploaded audio payload plus its language
// hints. The handler builds it from the multipart form; the payload is
// consumed once and discarded when the call returns.
type TranscribeRequest struct {
	Audio      []byte
	FileName   string
	MIMEType   string
	Size       int64
	SourceLang string
	TargetLang string
}

// Validate performs domain-specific validation before any remote call.
func (r *TranscribeRequest) Validate() error {
	if len(r.Audio) == 0 {
		return errors.NewBadRequestError("No audio file provided")
	}
	if r.Size > audio.MaxFileSize {
		return errors.NewBadRequestError("File too large. Maximum size is 25MB.")
	}
	if !audio.IsValidFile(r.Size, r.MIMEType, r.FileName) {
		return errors.NewBadRequestError(
			"Invalid file type. Please use WAV, MP3, M4A, WebM, OGG, FLAC, or MP4 files.")
	}
	return nil
}

// TranscriptionResponse is the combined transcription + translation result.
// Immutable once returned. DurationSec is not computed in this design and is
// always omitted; callers must treat it as optional.
type TranscriptionResponse struct {
	Transcript  string   `json:"transcript"`
	Translation string   `json:"translation"`
	SourceLang  string   `json:"sourceLang"`
	TargetLang  string   `json:"targetLang"`
	DurationSec *float64 `json:"durationSec,omitempty"`
}

// String implements fmt.Stringer for log lines without dumping transcripts.
func (r *TranscriptionResponse) String() string {
	return fmt.Sprintf("TranscriptionResponse{%s->%s, %d chars}",
		r.SourceLang, r.TargetLang, len(r.Transcript))
}
