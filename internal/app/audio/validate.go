package audio

import (
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// MaxFileSize is the largest payload the transcription provider accepts.
const MaxFileSize = 25 * 1024 * 1024

// AllowedMIMETypes are the exact MIME types accepted without further checks,
// including the codec-suffixed variants browsers emit for MediaRecorder blobs.
var AllowedMIMETypes = []string{
	"audio/wav",
	"audio/mp3",
	"audio/mpeg",
	"audio/m4a",
	"audio/webm",
	"audio/ogg",
	"audio/webm;codecs=opus",
	"audio/webm;codecs=vorbis",
	"audio/ogg;codecs=opus",
	"audio/ogg;codecs=vorbis",
	"audio/mp4",
	"audio/aac",
	"audio/flac",
}

// AllowedExtensions are consulted when the declared MIME type carries no
// information (empty or the generic octet-stream placeholder).
var AllowedExtensions = []string{".wav", ".mp3", ".m4a", ".webm", ".ogg"}

// mimeToExtension maps base MIME types to a file extension for uploads whose
// original name has none. Unknown types fall back to .mp3.
var mimeToExtension = map[string]string{
	"audio/wav":  ".wav",
	"audio/mp3":  ".mp3",
	"audio/mpeg": ".mp3",
	"audio/m4a":  ".m4a",
	"audio/webm": ".webm",
	"audio/ogg":  ".ogg",
}

// IsValidFile reports whether an uploaded audio payload is acceptable.
//
// The check is layered because browser and OS MIME detection is unreliable:
// exact allow-list first, then extension fallback for blank/generic types,
// then a permissive pass for anything declaring an audio/ prefix. Size is
// checked first and fails closed.
func IsValidFile(size int64, mimeType, fileName string) bool {
	if size > MaxFileSize {
		return false
	}

	if lo.Contains(AllowedMIMETypes, mimeType) {
		return true
	}

	if mimeType == "" || mimeType == "application/octet-stream" {
		name := strings.ToLower(fileName)
		return lo.SomeBy(AllowedExtensions, func(ext string) bool {
			return strings.HasSuffix(name, ext)
		})
	}

	if strings.HasPrefix(mimeType, "audio/") {
		return true
	}

	return false
}

// NormalizeLanguage lowercases and trims a language token. Every string is
// accepted; whether the token names a real language is the provider's call.
func NormalizeLanguage(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// BaseMIME strips any codec parameter from a MIME type,
// e.g. "audio/webm;codecs=opus" -> "audio/webm".
func BaseMIME(mimeType string) string {
	base, _, _ := strings.Cut(mimeType, ";")
	return strings.TrimSpace(base)
}

// ExtensionFor returns the file extension matching a MIME type, defaulting to
// .mp3 for anything unrecognized.
func ExtensionFor(mimeType string) string {
	if ext, ok := mimeToExtension[BaseMIME(mimeType)]; ok {
		return ext
	}
	return ".mp3"
}

// EnsureExtension returns fileName unchanged when it already has an
// extension, otherwise derives one from the MIME type. Nameless uploads
// become "audio<ext>".
func EnsureExtension(fileName, mimeType string) string {
	if filepath.Ext(fileName) != "" {
		return fileName
	}
	ext := ExtensionFor(mimeType)
	if fileName == "" {
		return "audio" + ext
	}
	return fileName + ext
}
