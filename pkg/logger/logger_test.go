package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo, "customerstore", func(context.Context) string { return "abc123" })

	log.Debug(context.Background(), "hidden")
	log.Info(context.Background(), "listening", "addr", ":8080")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for k, want := range map[string]string{
		"msg":      "listening",
		"level":    "info",
		"service":  "customerstore",
		"trace_id": "abc123",
		"addr":     ":8080",
	} {
		if entry[k] != want {
			t.Fatalf("field %s: expected %q, got %v", k, want, entry[k])
		}
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("warn")
	if err != nil || lvl != LevelWarn {
		t.Fatalf("expected warn, got %v (%v)", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
