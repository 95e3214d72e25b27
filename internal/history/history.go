// Package history keeps a bounded, append-only log of completed
// operations. The file is a JSON array; entries beyond the configured
// cap are silently dropped, oldest first, on every save.
package history

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/raphi011/gw/internal/storage"
)

// Entry records one completed operation.
type Entry struct {
	Command     string `json:"command"`
	Description string `json:"description"`
	Timestamp   int64  `json:"timestamp"` // unix seconds
}

// Path returns the path to the history file.
func Path() (string, error) {
	dir, err := storage.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.json"), nil
}

// Load reads the history from path.
// A missing or corrupted file is treated as empty history.
func Load(path string) ([]Entry, error) {
	var entries []Entry
	if err := storage.LoadJSON(path, &entries); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		// Corrupted - start fresh
		return nil, nil
	}
	return entries, nil
}

// Save atomically writes the history to path, trimmed to the most
// recent max entries.
func Save(path string, entries []Entry, max int) error {
	if max > 0 && len(entries) > max {
		entries = entries[len(entries)-max:]
	}
	return storage.SaveJSON(path, entries)
}

// Append loads the history, appends a new entry stamped with the
// current time, and saves it back trimmed to max entries.
func Append(path, command, description string, max int) error {
	entries, err := Load(path)
	if err != nil {
		return err
	}
	entries = append(entries, Entry{
		Command:     command,
		Description: description,
		Timestamp:   time.Now().Unix(),
	})
	return Save(path, entries, max)
}
