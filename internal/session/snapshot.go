package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"fridgescan/internal/scan"
)

// State is the persisted session record: one JSON document, fully
// overwritten on every mutation and deleted on reset.
type State struct {
	IsActive       bool        `json:"isActive"`
	StartedAt      *time.Time  `json:"startedAt"`
	SourceImageRef string      `json:"sourceImageRef,omitempty"`
	Items          []scan.Item `json:"items"`
}

func defaultState() State {
	return State{Items: []scan.Item{}}
}

// loadState reads a snapshot from disk. A missing file is a fresh start, not
// an error.
func loadState(path string) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaultState(), nil
		}
		return defaultState(), fmt.Errorf("read session file: %w", err)
	}
	if len(data) == 0 {
		return defaultState(), nil
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return defaultState(), fmt.Errorf("parse session file: %w", err)
	}
	if state.Items == nil {
		state.Items = []scan.Item{}
	}
	return state, nil
}

// saveState writes the snapshot atomically via a temp file.
func saveState(path string, state State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // cleanup on failure
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// removeState deletes the snapshot file. A missing file is fine.
func removeState(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
