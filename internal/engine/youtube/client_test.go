package youtube

import (
	"errors"
	"testing"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

const samplePlayerJSON = `{
	"playabilityStatus": {"status": "OK"},
	"captions": {
		"playerCaptionsTracklistRenderer": {
			"captionTracks": [
				{
					"baseUrl": "https://www.youtube.com/api/timedtext?v=dQw4w9WgXcQ&lang=en",
					"name": {"simpleText": "English"},
					"languageCode": "en"
				},
				{
					"baseUrl": "https://www.youtube.com/api/timedtext?v=dQw4w9WgXcQ&lang=es&kind=asr",
					"name": {"runs": [{"text": "Spanish"}, {"text": " (auto-generated)"}]},
					"languageCode": "es",
					"kind": "asr"
				},
				{
					"baseUrl": "https://www.youtube.com/api/timedtext?v=dQw4w9WgXcQ&lang=fr&exp=xpe",
					"name": {"simpleText": "French"},
					"languageCode": "fr"
				}
			]
		}
	}
}`

func TestParseWatchPage(t *testing.T) {
	html := []byte(`<html><script>var ytInitialPlayerResponse = ` + samplePlayerJSON + `;var other = {};</script></html>`)

	player, err := parseWatchPage(html)
	if err != nil {
		t.Fatalf("parseWatchPage error: %v", err)
	}
	tracks, err := tracksFromPlayer(player)
	if err != nil {
		t.Fatalf("tracksFromPlayer error: %v", err)
	}

	// PoToken track (fr) is skipped.
	if len(tracks) != 2 {
		t.Fatalf("expected 2 usable tracks, got %d", len(tracks))
	}
	if tracks[0].LanguageCode != "en" || tracks[0].Language != "English" || tracks[0].Generated {
		t.Errorf("unexpected first track: %+v", tracks[0])
	}
	if tracks[1].LanguageCode != "es" || !tracks[1].Generated {
		t.Errorf("unexpected second track: %+v", tracks[1])
	}
	if tracks[1].Language != "Spanish (auto-generated)" {
		t.Errorf("runs-based name = %q", tracks[1].Language)
	}
}

func TestParseWatchPageNoMarker(t *testing.T) {
	_, err := parseWatchPage([]byte(`<html><body>nothing here</body></html>`))
	if err == nil {
		t.Fatal("expected error for page without ytInitialPlayerResponse")
	}
}

func TestTracksFromPlayerErrors(t *testing.T) {
	t.Run("playability error maps to video unavailable", func(t *testing.T) {
		var player innertubePlayerResp
		mustUnmarshalJSON(t, `{"playabilityStatus": {"status": "ERROR", "reason": "Video unavailable"}}`, &player)
		_, err := tracksFromPlayer(&player)
		if !errors.Is(err, engine.ErrVideoUnavailable) {
			t.Errorf("err = %v, want ErrVideoUnavailable", err)
		}
	})

	t.Run("missing captions maps to transcripts disabled", func(t *testing.T) {
		var player innertubePlayerResp
		mustUnmarshalJSON(t, `{"playabilityStatus": {"status": "OK"}}`, &player)
		_, err := tracksFromPlayer(&player)
		if !errors.Is(err, engine.ErrTranscriptsDisabled) {
			t.Errorf("err = %v, want ErrTranscriptsDisabled", err)
		}
	})

	t.Run("empty track list is not an error", func(t *testing.T) {
		var player innertubePlayerResp
		mustUnmarshalJSON(t, `{"captions": {"playerCaptionsTracklistRenderer": {"captionTracks": []}}}`, &player)
		tracks, err := tracksFromPlayer(&player)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tracks) != 0 {
			t.Errorf("expected empty track list, got %d", len(tracks))
		}
	})

	t.Run("all tracks PoToken-gated", func(t *testing.T) {
		var player innertubePlayerResp
		mustUnmarshalJSON(t, `{"captions": {"playerCaptionsTracklistRenderer": {"captionTracks": [
			{"baseUrl": "https://example/timedtext?lang=en&exp=xpe", "languageCode": "en"}
		]}}}`, &player)
		_, err := tracksFromPlayer(&player)
		if err == nil {
			t.Fatal("expected error when every track requires a PoToken")
		}
	})
}

const sampleTimedTextXML = `<?xml version="1.0" encoding="utf-8"?>
<transcript>
	<text start="0.08" dur="2.2">so &amp;#39;hello&amp;#39; there</text>
	<text start="2.28" dur="1.9">&lt;b&gt;bold&lt;/b&gt; words</text>
	<text start="4.2" dur="1.0">   </text>
	<text start="125.7" dur="3.1">later on</text>
</transcript>`

func TestParseTimedText(t *testing.T) {
	segments, err := parseTimedText([]byte(sampleTimedTextXML))
	if err != nil {
		t.Fatalf("parseTimedText error: %v", err)
	}

	// Whitespace-only line is dropped.
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segments))
	}
	if segments[0].Text != "so 'hello' there" {
		t.Errorf("entities not decoded: %q", segments[0].Text)
	}
	if segments[1].Text != "bold words" {
		t.Errorf("tags not stripped: %q", segments[1].Text)
	}
	if segments[0].Start != 0.08 || segments[2].Start != 125.7 {
		t.Errorf("start offsets wrong: %+v", segments)
	}
}

func TestParseTimedTextInvalid(t *testing.T) {
	if _, err := parseTimedText([]byte("not xml at all <<<")); err == nil {
		t.Fatal("expected parse error")
	}
}
