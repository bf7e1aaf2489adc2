package engine

import "errors"

// Provider error kinds. The youtube client maps raw playability failures
// onto these so handlers can match with errors.Is instead of inspecting
// message strings.
var (
	ErrVideoUnavailable    = errors.New("video unavailable")
	ErrTranscriptsDisabled = errors.New("transcripts disabled")
	ErrNoTranscriptFound   = errors.New("no transcript found")
)

// InvalidReferenceError reports an input that contains no 11-character
// YouTube video ID. It carries the original input for the user-facing
// message.
type InvalidReferenceError struct {
	Input string
}

func (e *InvalidReferenceError) Error() string {
	return "Could not extract video ID from: " + e.Input
}
