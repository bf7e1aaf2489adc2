package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Tool orchestration. Every function here is total: all failures — bad
// input, provider errors, anything unexpected — come back as a formatted
// message string, never as an error crossing the tool boundary.

// GetTranscript returns the plain-text transcript of a video, prefixed
// with the Video ID / Language header.
func GetTranscript(ctx context.Context, videoURL, language string) string {
	return getTranscript(ctx, videoURL, language, FormatPlainText)
}

// GetTimedTranscript returns the transcript with one [MM:SS]-stamped line
// per segment.
func GetTimedTranscript(ctx context.Context, videoURL, language string) string {
	return getTranscript(ctx, videoURL, language, FormatTimed)
}

func getTranscript(ctx context.Context, videoURL, language string, render func([]CaptionSegment) string) string {
	videoID, err := ExtractVideoID(videoURL)
	if err != nil {
		return transcriptError(videoURL, err)
	}
	tracks, err := Cfg.Captions.ListTracks(ctx, videoID)
	if err != nil {
		return transcriptError(videoURL, err)
	}
	if len(tracks) == 0 {
		// Zero tracks before selection is the no-transcript condition.
		return transcriptError(videoURL, ErrNoTranscriptFound)
	}
	track := SelectTrack(tracks, language)
	segments, err := Cfg.Captions.FetchSegments(ctx, track)
	if err != nil {
		return transcriptError(videoURL, err)
	}
	return transcriptEnvelope(videoID, track.LanguageCode, TruncateTranscript(render(segments)))
}

// GetVideoInfo lists the available caption languages for a video, split
// into manual and auto-generated sections in provider enumeration order.
// Never truncated.
func GetVideoInfo(ctx context.Context, videoURL string) string {
	videoID, err := ExtractVideoID(videoURL)
	if err != nil {
		return videoInfoError(videoURL, err)
	}
	tracks, err := Cfg.Captions.ListTracks(ctx, videoID)
	if err != nil {
		return videoInfoError(videoURL, err)
	}

	var manual, generated []string
	for _, t := range tracks {
		entry := fmt.Sprintf("  - %s (%s)", t.Language, t.LanguageCode)
		if t.Generated {
			generated = append(generated, entry)
		} else {
			manual = append(manual, entry)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Video ID: %s\n\n", videoID)
	if len(manual) > 0 {
		sb.WriteString("Manual transcripts:\n")
		sb.WriteString(strings.Join(manual, "\n"))
		sb.WriteString("\n\n")
	}
	if len(generated) > 0 {
		sb.WriteString("Auto-generated transcripts:\n")
		sb.WriteString(strings.Join(generated, "\n"))
	}
	if len(manual) == 0 && len(generated) == 0 {
		sb.WriteString("No transcripts available for this video.")
	}
	return sb.String()
}

// transcriptError maps a failure onto the fixed user-facing message for
// the transcript tools. The original input (URL or ID) appears in the
// message, not the extracted ID.
func transcriptError(input string, err error) string {
	var invalid *InvalidReferenceError
	switch {
	case errors.As(err, &invalid):
		return "Error: " + invalid.Error()
	case errors.Is(err, ErrVideoUnavailable):
		return fmt.Sprintf("Error: Video '%s' is unavailable or does not exist.", input)
	case errors.Is(err, ErrTranscriptsDisabled):
		return fmt.Sprintf("Error: Transcripts are disabled for video '%s'.", input)
	case errors.Is(err, ErrNoTranscriptFound):
		return fmt.Sprintf("Error: No transcript found for video '%s'.", input)
	default:
		slog.Warn("transcript retrieval failed", slog.String("input", input), slog.Any("error", err))
		return "Error retrieving transcript: " + err.Error()
	}
}

// videoInfoError is transcriptError for get_video_info, which lists rather
// than selects and so has no no-transcript case.
func videoInfoError(input string, err error) string {
	var invalid *InvalidReferenceError
	switch {
	case errors.As(err, &invalid):
		return "Error: " + invalid.Error()
	case errors.Is(err, ErrVideoUnavailable):
		return fmt.Sprintf("Error: Video '%s' is unavailable or does not exist.", input)
	case errors.Is(err, ErrTranscriptsDisabled):
		return fmt.Sprintf("Error: Transcripts are disabled for video '%s'.", input)
	default:
		slog.Warn("video info retrieval failed", slog.String("input", input), slog.Any("error", err))
		return "Error retrieving video info: " + err.Error()
	}
}
