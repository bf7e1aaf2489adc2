package engine

// SelectTrack picks one caption track per the fallback policy:
// requested language code → "en" → first track in provider order.
// A requested language with no matching track silently falls back to
// English rather than failing. Deterministic; callers guarantee tracks
// is non-empty.
func SelectTrack(tracks []CaptionTrack, language string) CaptionTrack {
	if language != "" {
		if t, ok := findTrack(tracks, language); ok {
			return t
		}
	}
	if t, ok := findTrack(tracks, "en"); ok {
		return t
	}
	return tracks[0]
}

// findTrack returns the first track with the exact language code.
func findTrack(tracks []CaptionTrack, code string) (CaptionTrack, bool) {
	for _, t := range tracks {
		if t.LanguageCode == code {
			return t, true
		}
	}
	return CaptionTrack{}, false
}
