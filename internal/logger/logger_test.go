// ABOUTME: Tests for structured logging configuration
// ABOUTME: Verifies level parsing and handler format selection

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
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "json")

	log.Info("ROI calculated", "roi_pct", 305)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "ROI calculated" {
		t.Errorf("expected msg 'ROI calculated', got %v", entry["msg"])
	}
}

func TestNew_TextFormatFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn", "")

	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("expected info message to be filtered at warn level")
	}
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "msg=shown") {
		t.Errorf("expected text warn entry, got %q", out)
	}
}
