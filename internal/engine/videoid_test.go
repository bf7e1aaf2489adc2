package engine

import (
	"errors"
	"testing"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"http://youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"_-abcABC123", "_-abcABC123"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ExtractVideoID(tt.input)
			if err != nil {
				t.Fatalf("ExtractVideoID(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractVideoIDInvalid(t *testing.T) {
	inputs := []string{
		"abc",
		"",
		"dQw4w9WgXcQQ", // 12 chars, bare pattern is anchored
		"https://example.com/watch?v=short",
		"not a url at all",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ExtractVideoID(input)
			var invalid *InvalidReferenceError
			if !errors.As(err, &invalid) {
				t.Fatalf("ExtractVideoID(%q) error = %v, want *InvalidReferenceError", input, err)
			}
			if invalid.Input != input {
				t.Errorf("InvalidReferenceError.Input = %q, want %q", invalid.Input, input)
			}
		})
	}
}
