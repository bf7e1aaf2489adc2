package youtube

import (
	"encoding/json"
	"testing"
)

func mustUnmarshalJSON(t *testing.T, data string, v any) {
	t.Helper()
	if err := json.Unmarshal([]byte(data), v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple object", `{"a": 1};rest`, `{"a": 1}`},
		{"nested objects", `{"a": {"b": {}}} trailing`, `{"a": {"b": {}}}`},
		{"braces inside strings", `{"a": "}{"}...`, `{"a": "}{"}`},
		{"escaped quote in string", `{"a": "x\"}"}tail`, `{"a": "x\"}"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractJSON([]byte(tt.input))
			if string(got) != tt.want {
				t.Errorf("extractJSON = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("not an object", func(t *testing.T) {
		if got := extractJSON([]byte(`[1,2,3]`)); got != nil {
			t.Errorf("expected nil, got %q", got)
		}
	})

	t.Run("unbalanced", func(t *testing.T) {
		if got := extractJSON([]byte(`{"a": {`)); got != nil {
			t.Errorf("expected nil, got %q", got)
		}
	})
}

func TestTrackNameString(t *testing.T) {
	var simple trackName
	mustUnmarshalJSON(t, `{"simpleText": "English"}`, &simple)
	if simple.String() != "English" {
		t.Errorf("simpleText name = %q", simple.String())
	}

	var runs trackName
	mustUnmarshalJSON(t, `{"runs": [{"text": "Spanish"}, {"text": " (auto-generated)"}]}`, &runs)
	if runs.String() != "Spanish (auto-generated)" {
		t.Errorf("runs name = %q", runs.String())
	}

	var empty trackName
	if empty.String() != "" {
		t.Errorf("empty name = %q", empty.String())
	}
}

func TestNeedsPoToken(t *testing.T) {
	if !needsPoToken("https://www.youtube.com/api/timedtext?v=x&exp=xpe") {
		t.Error("expected PoToken track to be detected")
	}
	if needsPoToken("https://www.youtube.com/api/timedtext?v=x&lang=en") {
		t.Error("plain track flagged as PoToken-gated")
	}
}
