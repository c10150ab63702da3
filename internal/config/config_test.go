package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if cfg.Detection.RevealIntervalMS != 600 {
		t.Fatalf("expected 600ms reveal interval, got %d", cfg.Detection.RevealIntervalMS)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.toml")

	cfg, resolved, exists, err := Load(missing)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatal("expected missing config to report not found")
	}
	if resolved != missing {
		t.Fatalf("expected resolved path %q, got %q", missing, resolved)
	}
	if cfg.Detection.RevealIntervalMS != 600 {
		t.Fatalf("expected default reveal interval, got %d", cfg.Detection.RevealIntervalMS)
	}
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
data_dir = "` + filepath.Join(dir, "data") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"

[detection]
reveal_interval_ms = 50

[history]
enabled = true

[logging]
format = "JSON"
level = "Debug"

[suggestions.extra]
jar = ["Honey"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if cfg.Detection.RevealIntervalMS != 50 {
		t.Fatalf("expected 50ms reveal interval, got %d", cfg.Detection.RevealIntervalMS)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected lowercased logging settings, got %+v", cfg.Logging)
	}
	// History path defaults under the data dir when unset.
	if want := filepath.Join(dir, "data", "history.db"); cfg.History.Path != want {
		t.Fatalf("expected history path %q, got %q", want, cfg.History.Path)
	}
	if got := cfg.Suggestions.Extra["jar"]; len(got) != 1 || got[0] != "Honey" {
		t.Fatalf("expected jar extras, got %v", got)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "non-positive reveal interval",
			content: "[detection]\nreveal_interval_ms = 0\n",
			wantErr: "reveal_interval_ms",
		},
		{
			name:    "bad log format",
			content: "[logging]\nformat = \"xml\"\n",
			wantErr: "logging.format",
		},
		{
			name:    "bad log level",
			content: "[logging]\nlevel = \"trace\"\n",
			wantErr: "logging.level",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("home dir: %v", err)
	}

	got, err := expandPath("~/.local/share/fridgescan")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if want := filepath.Join(home, ".local", "share", "fridgescan"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	if got, err := expandPath(""); err != nil || got != "" {
		t.Fatalf("empty path must pass through, got %q err=%v", got, err)
	}
}

func TestSessionPathsUnderDataDir(t *testing.T) {
	cfg := Default()
	cfg.Paths.DataDir = "/tmp/fridgescan-test"
	if got := cfg.SessionPath(); got != "/tmp/fridgescan-test/session.json" {
		t.Fatalf("unexpected session path %q", got)
	}
	if got := cfg.SessionLockPath(); got != "/tmp/fridgescan-test/session.lock" {
		t.Fatalf("unexpected lock path %q", got)
	}
}

func TestCreateSampleParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("create sample: %v", err)
	}

	if _, _, exists, err := Load(path); err != nil {
		t.Fatalf("sample config must load cleanly: %v", err)
	} else if !exists {
		t.Fatal("expected sample config to be found")
	}
}
