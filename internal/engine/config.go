package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	FetchTimeout       time.Duration
	MaxTranscriptChars int             // rendered transcript cap; <=0 = DefaultMaxTranscriptChars
	HTTPClient         *http.Client
	BrowserClient      *BrowserClient  // nil = stealth watch-page fallback disabled
	Captions           CaptionProvider // caption track listing + segment fetch
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (youtube).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.MaxTranscriptChars <= 0 {
		c.MaxTranscriptChars = DefaultMaxTranscriptChars
	}
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	cfg = c
	Cfg = &cfg
}
