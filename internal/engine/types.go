package engine

import "context"

// CaptionTrack is one available transcript for a video, as reported by the
// caption provider. BaseURL is the provider's fetch handle for the track's
// timedtext payload and is never exposed to tool output.
type CaptionTrack struct {
	Language     string // display name, e.g. "English"
	LanguageCode string // code, e.g. "en"
	Generated    bool   // true = auto-generated (ASR), false = manual
	BaseURL      string
}

// CaptionSegment is one timed chunk of a caption track.
type CaptionSegment struct {
	Start float64 // seconds from video start, non-negative
	Text  string
}

// CaptionProvider abstracts transcript retrieval so handlers can be tested
// without network access.
type CaptionProvider interface {
	// ListTracks returns the caption tracks for a video in the provider's
	// enumeration order. Fails with ErrVideoUnavailable or
	// ErrTranscriptsDisabled; an empty slice with nil error means the video
	// is playable but lists no tracks.
	ListTracks(ctx context.Context, videoID string) ([]CaptionTrack, error)

	// FetchSegments fetches the chronological segment sequence of a track.
	FetchSegments(ctx context.Context, track CaptionTrack) ([]CaptionSegment, error)
}

// TranscriptInput is the input for get_transcript and get_timed_transcript.
type TranscriptInput struct {
	VideoURL string `json:"video_url" jsonschema:"YouTube video URL or video ID"`
	Language string `json:"language,omitempty" jsonschema:"Language code (e.g. 'en', 'es'). Auto-detects if not specified"`
}

// VideoInfoInput is the input for get_video_info.
type VideoInfoInput struct {
	VideoURL string `json:"video_url" jsonschema:"YouTube video URL or video ID"`
}
