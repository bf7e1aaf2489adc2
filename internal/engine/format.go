package engine

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultMaxTranscriptChars caps rendered transcript bodies before the
// truncation notice is appended.
const DefaultMaxTranscriptChars = 50000

// truncationNotice is appended verbatim after a cut body.
const truncationNotice = "\n\n[Transcript truncated due to length]"

var whitespaceRe = regexp.MustCompile(`\s+`)

// FormatPlainText joins segment texts with single spaces, collapsing any
// run of whitespace and trimming the result.
func FormatPlainText(segments []CaptionSegment) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		parts = append(parts, s.Text)
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(strings.Join(parts, " "), " "))
}

// FormatTimed renders one "[MM:SS] text" line per segment. Minutes are not
// rolled into hours: the 90-minute mark renders as [90:00].
func FormatTimed(segments []CaptionSegment) string {
	lines := make([]string, 0, len(segments))
	for _, s := range segments {
		start := int(s.Start)
		lines = append(lines, fmt.Sprintf("[%02d:%02d] %s", start/60, start%60, strings.TrimSpace(s.Text)))
	}
	return strings.Join(lines, "\n")
}

// TruncateTranscript cuts s to the configured cap and appends the
// truncation notice. The cut is a plain byte cut and may land mid-word.
func TruncateTranscript(s string) string {
	limit := Cfg.MaxTranscriptChars
	if limit <= 0 {
		limit = DefaultMaxTranscriptChars
	}
	if len(s) <= limit {
		return s
	}
	return s[:limit] + truncationNotice
}

// transcriptEnvelope prefixes a formatted body with the ID/language header.
func transcriptEnvelope(videoID, languageCode, body string) string {
	return fmt.Sprintf("Video ID: %s\nLanguage: %s\n\n%s", videoID, languageCode, body)
}
