// Package youtube implements engine.CaptionProvider against YouTube's
// Innertube endpoints. No API key required.
//
// Track listing: scrape ytInitialPlayerResponse from the watch page
// (primary, works from any IP; stealth browser fallback for blocked
// datacenter IPs), then the ANDROID /player endpoint.
// Segment fetching: the track's timedtext XML baseUrl.
package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// Client fetches caption tracks and segments from YouTube.
type Client struct{}

// NewClient creates a YouTube caption provider. HTTP clients come from
// engine.Cfg so the provider shares timeouts and the optional proxy pool.
func NewClient() *Client {
	return &Client{}
}

var _ engine.CaptionProvider = (*Client)(nil)

// ytInitialPlayerResponseMarker marks the start of the player response
// JSON in watch page HTML.
const ytInitialPlayerResponseMarker = "ytInitialPlayerResponse = "

// ListTracks returns the video's caption tracks in YouTube's enumeration
// order. Maps playability failures onto the engine error kinds.
func (c *Client) ListTracks(ctx context.Context, videoID string) ([]engine.CaptionTrack, error) {
	engine.IncrTrackListRequests()

	player, err := playerFromWatchPage(ctx, videoID)
	if err != nil {
		slog.Warn("youtube: watch page scrape failed, trying player",
			slog.String("id", videoID), slog.Any("err", err))
		engine.IncrPlayerFallbacks()
		player, err = fetchPlayer(ctx, videoID)
		if err != nil {
			engine.IncrProviderErrors()
			return nil, err
		}
	}

	tracks, err := tracksFromPlayer(player)
	if err != nil {
		engine.IncrProviderErrors()
		return nil, err
	}
	return tracks, nil
}

// FetchSegments fetches and parses a track's timedtext XML.
func (c *Client) FetchSegments(ctx context.Context, track engine.CaptionTrack) ([]engine.CaptionSegment, error) {
	engine.IncrSegmentFetchRequests()

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, track.BaseURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", engine.UserAgentBot)
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		engine.IncrProviderErrors()
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return nil, err
	}
	return parseTimedText(body)
}

// parseTimedText converts timedtext XML into chronological segments.
// Empty lines (music cues stripped to nothing) are dropped.
func parseTimedText(body []byte) ([]engine.CaptionSegment, error) {
	var tt ytTimedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}
	segments := make([]engine.CaptionSegment, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		text := engine.CleanHTML(line.Text)
		if text == "" {
			continue
		}
		segments = append(segments, engine.CaptionSegment{Start: line.Start, Text: text})
	}
	return segments, nil
}

// tracksFromPlayer maps a player response onto provider error kinds and
// engine tracks. Tracks that require a PoToken (&exp=xpe in the baseUrl)
// only work in a browser and are skipped.
func tracksFromPlayer(player *innertubePlayerResp) ([]engine.CaptionTrack, error) {
	if player.PlayabilityStatus != nil && player.PlayabilityStatus.Status == "ERROR" {
		if reason := player.PlayabilityStatus.Reason; reason != "" {
			return nil, fmt.Errorf("%w: %s", engine.ErrVideoUnavailable, reason)
		}
		return nil, engine.ErrVideoUnavailable
	}
	if player.Captions == nil {
		return nil, engine.ErrTranscriptsDisabled
	}

	raw := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	tracks := make([]engine.CaptionTrack, 0, len(raw))
	for _, t := range raw {
		if needsPoToken(t.BaseURL) {
			continue
		}
		tracks = append(tracks, engine.CaptionTrack{
			Language:     t.Name.String(),
			LanguageCode: t.LanguageCode,
			Generated:    t.Kind == "asr",
			BaseURL:      t.BaseURL,
		})
	}
	if len(tracks) == 0 && len(raw) > 0 {
		return nil, errors.New("all caption tracks require a PoToken")
	}
	return tracks, nil
}

// needsPoToken reports whether a caption track URL requires a PoToken.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// playerFromWatchPage scrapes the watch page HTML and extracts the
// ytInitialPlayerResponse JSON.
func playerFromWatchPage(ctx context.Context, videoID string) (*innertubePlayerResp, error) {
	body, err := fetchWatchPage(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return parseWatchPage(body)
}

func parseWatchPage(body []byte) (*innertubePlayerResp, error) {
	idx := bytes.Index(body, []byte(ytInitialPlayerResponseMarker))
	if idx < 0 {
		return nil, errors.New("ytInitialPlayerResponse not found in watch page")
	}
	jsonData := extractJSON(body[idx+len(ytInitialPlayerResponseMarker):])
	if jsonData == nil {
		return nil, errors.New("failed to extract ytInitialPlayerResponse JSON")
	}
	var player innertubePlayerResp
	if err := json.Unmarshal(jsonData, &player); err != nil {
		return nil, fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	return &player, nil
}

func fetchWatchPage(ctx context.Context, videoID string) ([]byte, error) {
	watchURL := ytWatchURL + videoID

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, watchURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", engine.RandomUserAgent())
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		// Datacenter IPs often get blocked on the plain client; retry with
		// the Chrome-fingerprint browser client when one is configured.
		if bc := engine.Cfg.BrowserClient; bc != nil {
			engine.IncrStealthFallbacks()
			data, _, status, berr := bc.Do(http.MethodGet, watchURL, engine.ChromeHeaders(), nil)
			if berr != nil {
				return nil, fmt.Errorf("watch page (stealth): %w", berr)
			}
			if status != http.StatusOK {
				return nil, fmt.Errorf("watch page (stealth): HTTP %d", status)
			}
			return data, nil
		}
		return nil, fmt.Errorf("watch page: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 6*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read watch page: %w", err)
	}
	return body, nil
}
