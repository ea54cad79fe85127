package game

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// SessionLog records what happened to the storage box during one run.
// Slot contents are never written; only counts.
type SessionLog struct {
	Timestamp       time.Time `json:"timestamp"`
	Player          string    `json:"player"`
	DefaultCapacity int       `json:"default_capacity"`
	Capacity        int       `json:"capacity"`
	Opens           int       `json:"opens"`
	StacksPut       int       `json:"stacks_put"`
	StacksTaken     int       `json:"stacks_taken"`
	StacksHeld      int       `json:"stacks_held"`
}

// saveSessionLog appends the session as a single JSON line to sessions.jsonl.
// Errors are logged but never returned.
func saveSessionLog(sl SessionLog, logger *slog.Logger) {
	dir, err := sessionLogDir()
	if err != nil {
		logger.Warn("session log: cannot determine data dir", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("session log: cannot create data dir", "error", err)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "sessions.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("session log: cannot open file", "error", err)
		return
	}
	defer f.Close()
	data, err := json.Marshal(sl)
	if err != nil {
		logger.Warn("session log: cannot marshal JSON", "error", err)
		return
	}
	f.Write(append(data, '\n')) //nolint:errcheck
}

// sessionLogDir follows the XDG Base Directory spec: $XDG_DATA_HOME/storagebox,
// defaulting to ~/.local/share/storagebox.
func sessionLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "storagebox"), nil
}
