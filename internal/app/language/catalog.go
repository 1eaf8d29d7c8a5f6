// Package language holds the static language and voice catalogs. All tables
// are immutable after process start and safe for concurrent reads.
package language

import "github.com/samber/lo"

// Language is one selectable entry in the catalog.
type Language struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Catalog is the fixed, ordered list of languages offered by the front end.
var Catalog = []Language{
	{Code: "en", Label: "English"},
	{Code: "zh", Label: "Mandarin Chinese"},
	{Code: "hi", Label: "Hindi"},
	{Code: "es", Label: "Spanish"},
	{Code: "fr", Label: "French"},
	{Code: "ar", Label: "Arabic"},
	{Code: "bn", Label: "Bengali"},
	{Code: "pt", Label: "Portuguese"},
	{Code: "ru", Label: "Russian"},
	{Code: "ur", Label: "Urdu"},
}

// Voices are the synthesis voice identifiers the provider supports.
var Voices = []string{
	"alloy", "echo", "fable", "onyx", "nova", "shimmer",
	"coral", "verse", "ballad", "ash", "sage",
}

// Formats are the accepted synthesis output formats.
var Formats = []string{"mp3", "wav", "opus"}

const (
	// DefaultVoice is substituted when a request names an unknown voice.
	DefaultVoice = "alloy"
	// DefaultFormat is substituted when a request names an unknown format.
	DefaultFormat = "mp3"
)

// formatMIME maps an output format to the Content-Type served with it.
var formatMIME = map[string]string{
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"opus": "audio/ogg",
}

// DisplayName resolves a language code to its human-readable label for the
// translation prompt. Codes outside the catalog pass through as-is, so the
// provider sees whatever token the caller chose.
func DisplayName(code string) string {
	for _, l := range Catalog {
		if l.Code == code {
			return l.Label
		}
	}
	return code
}

// CoerceVoice returns the voice if it is a known identifier, otherwise the
// default. Invalid voices are corrected silently rather than rejected.
func CoerceVoice(voice string) string {
	if lo.Contains(Voices, voice) {
		return voice
	}
	return DefaultVoice
}

// CoerceFormat returns the format if supported, otherwise the default.
func CoerceFormat(format string) string {
	if lo.Contains(Formats, format) {
		return format
	}
	return DefaultFormat
}

// MIMEForFormat returns the Content-Type for a coerced output format.
func MIMEForFormat(format string) string {
	if mime, ok := formatMIME[format]; ok {
		return mime
	}
	return formatMIME[DefaultFormat]
}
