package structured

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLogger_Defaults(t *testing.T) {
	logger := NewLogger(Options{})

	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}
	if got := logger.entry.Logger.GetLevel().String(); got != "info" {
		t.Errorf("level = %s, want info", got)
	}
}

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Level: "debug", Format: "json", Output: &buf})

	logger.Info("Toggling reading mode", map[string]interface{}{
		"tab_id": 7,
		"url":    "https://example.com/a",
	})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "Toggling reading mode" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
	if entry["url"] != "https://example.com/a" {
		t.Errorf("url field = %v", entry["url"])
	}
	if entry["tab_id"] != float64(7) {
		t.Errorf("tab_id field = %v", entry["tab_id"])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Level: "warn", Output: &buf})

	logger.Debug("hidden debug", nil)
	logger.Info("hidden info", nil)
	logger.Warn("shown warn", nil)
	logger.Error("shown error", map[string]interface{}{"error": "boom"})

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below warn were logged: %s", out)
	}
	if !strings.Contains(out, "shown warn") || !strings.Contains(out, "shown error") {
		t.Errorf("expected warn and error output, got: %s", out)
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Format: "json", Output: &buf}).With(map[string]interface{}{
		"component": "toggle",
	})

	logger.Info("hello", nil)

	if !strings.Contains(buf.String(), `"component":"toggle"`) {
		t.Errorf("expected component field, got: %s", buf.String())
	}
}

func TestNewQuietLogger(t *testing.T) {
	logger := NewQuietLogger()

	// must not panic or write anywhere
	logger.Debug("quiet", nil)
	logger.Info("quiet", map[string]interface{}{"k": "v"})
	logger.Warn("quiet", nil)
	logger.Error("quiet", nil)
}
