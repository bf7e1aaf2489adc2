package engine

import (
	"html"
	"regexp"
	"strings"
)

// UserAgentBot identifies plain (non-impersonating) HTTP requests.
const UserAgentBot = "GoTranscript/1.0"

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// CleanHTML strips inline tags, decodes entities, and trims whitespace.
// Timedtext lines arrive with double-encoded entities ("&amp;#39;") and
// occasional <b>/<i> markup.
func CleanHTML(s string) string {
	return strings.TrimSpace(html.UnescapeString(htmlTagRe.ReplaceAllString(s, "")))
}
