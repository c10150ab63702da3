// Package testsupport provides constructors shared by package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"fridgescan/internal/config"
	"fridgescan/internal/history"
	"fridgescan/internal/logging"
	"fridgescan/internal/session"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.History.Path = filepath.Join(base, "data", "history.db")
	cfg.Detection.RevealIntervalMS = 1

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithRevealInterval overrides the detection reveal cadence.
func WithRevealInterval(ms int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Detection.RevealIntervalMS = ms
	}
}

// MustOpenSession opens a session store against the test config and closes
// it when the test finishes.
func MustOpenSession(t testing.TB, cfg *config.Config) *session.Store {
	t.Helper()

	store, err := session.Open(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("open session store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close session store: %v", err)
		}
	})
	return store
}

// MustOpenHistory opens a history store against the test config and closes
// it when the test finishes.
func MustOpenHistory(t testing.TB, cfg *config.Config) *history.Store {
	t.Helper()

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		t.Fatalf("open history store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close history store: %v", err)
		}
	})
	return store
}
