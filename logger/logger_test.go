package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	Setup(Config{Level: slog.LevelInfo, Format: "json", Output: &buf})

	L().Debug("hidden")
	L().Info("request", "status", 201)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("Failed to parse log line: %v", err)
	}
	if entry["msg"] != "request" || entry["status"] != float64(201) {
		t.Errorf("Unexpected entry: %v", entry)
	}
	if ts, ok := entry["time"].(string); !ok || !strings.HasSuffix(ts, "Z") {
		t.Errorf("Expected UTC timestamp, got %v", entry["time"])
	}
}

func TestSetupText(t *testing.T) {
	var buf bytes.Buffer
	Setup(Config{Level: slog.LevelDebug, Format: "text", Output: &buf})

	L().Debug("visible", "key", "value")

	if !strings.Contains(buf.String(), "msg=visible") || !strings.Contains(buf.String(), "key=value") {
		t.Errorf("Unexpected output: %q", buf.String())
	}
}
