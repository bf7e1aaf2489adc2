package engine

import "regexp"

// YouTube URL patterns, tried in order. First match wins.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`^([a-zA-Z0-9_-]{11})$`),
}

// ExtractVideoID parses a YouTube watch/short/embed URL into its
// 11-character video ID, or returns a bare ID unchanged. Fails with
// *InvalidReferenceError when neither pattern matches.
func ExtractVideoID(input string) (string, error) {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(input); m != nil {
			return m[1], nil
		}
	}
	return "", &InvalidReferenceError{Input: input}
}
