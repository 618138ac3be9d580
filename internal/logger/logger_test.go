package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New("info", &buf)
	l.Debug("hidden")
	l.Info("rendered", "scene", "organelles", "links", 10)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if rec["scene"] != "organelles" {
		t.Errorf("expected scene attr, got %v", rec["scene"])
	}
}

func TestSetDefault(t *testing.T) {
	prev := Default
	defer SetDefault(prev)

	var buf bytes.Buffer
	SetDefault(NewText("debug", &buf))
	Debug("trace-marker", "k", "v")
	if !strings.Contains(buf.String(), "trace-marker") {
		t.Errorf("expected trace-marker in output, got %q", buf.String())
	}
}
