// Package api defines the provider-facing capability interfaces. Adapters in
// subpackages wrap the remote AI provider; retry and fallback policy belongs
// to the services that call them, never to an adapter.
package api

import "context"

// TranscribeRequest is one audio payload submitted for transcription.
type TranscribeRequest struct {
	// Data is the raw audio. It is consumed once per attempt.
	Data []byte
	// FileName must carry an extension; the provider sniffs the container
	// format from it.
	FileName string
	// MIMEType is the declared type of Data.
	MIMEType string
	// Language is an ISO-639-1 hint. Empty means let the provider detect.
	Language string
}

// Transcriber converts spoken audio to text in its original language.
type Transcriber interface {
	Transcribe(ctx context.Context, req *TranscribeRequest) (string, error)
}

// Translator converts text into the named target language, preserving
// meaning, tone and punctuation.
type Translator interface {
	Translate(ctx context.Context, text, targetName string) (string, error)
}

// SynthesizeRequest is one text-to-speech call.
type SynthesizeRequest struct {
	Text   string
	Voice  string
	Format string
	// Model selects the synthesis model for this attempt.
	Model string
}

// Synthesizer converts text into spoken audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, req *SynthesizeRequest) ([]byte, error)
}
