package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(data)
}

func TestConsoleFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fridgescan.log")
	logger, err := New(Options{Level: "info", Format: "console", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	scoped := NewComponentLogger(logger, "session")
	scoped.Info("session started", Int("items", 5), String("image", "shelf 1.jpg"))

	line := readLog(t, path)
	if !strings.Contains(line, " INFO session: session started") {
		t.Fatalf("unexpected console line: %q", line)
	}
	if !strings.Contains(line, "items=5") {
		t.Fatalf("missing int attr: %q", line)
	}
	// Values with spaces are quoted.
	if !strings.Contains(line, `image="shelf 1.jpg"`) {
		t.Fatalf("missing quoted attr: %q", line)
	}
}

func TestConsoleLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fridgescan.log")
	logger, err := New(Options{Level: "warn", Format: "console", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("visible")

	out := readLog(t, path)
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "WARN visible") {
		t.Fatalf("missing warn line: %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fridgescan.log")
	logger, err := New(Options{Level: "debug", Format: "json", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	logger.Error("persist failed", Error(errors.New("disk full")))

	var entry map[string]any
	if err := json.Unmarshal([]byte(readLog(t, path)), &entry); err != nil {
		t.Fatalf("parse json line: %v", err)
	}
	if entry["level"] != "error" || entry["msg"] != "persist failed" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["error"] != "disk full" {
		t.Fatalf("missing error attr: %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("missing ts key: %v", entry)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	// Must not panic and must report disabled at every level.
	logger.Debug("x")
	logger.Error("x")
}

func TestMaybeQuote(t *testing.T) {
	cases := []struct{ in, want string }{
		{"plain", "plain"},
		{"", `""`},
		{"two words", `"two words"`},
		{"a=b", `"a=b"`},
	}
	for _, tc := range cases {
		if got := maybeQuote(tc.in); got != tc.want {
			t.Fatalf("maybeQuote(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
