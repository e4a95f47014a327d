package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Entry represents a single journal entry.
type Entry struct {
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	Operation string `json:"op"`   // e.g. "push".
	Kind      string `json:"kind"` // text, file or url.
	Instance  string `json:"instance"`
	User      string `json:"user,omitempty"`

	// Fields lists the request fields that were sent, in wire order.
	Fields []string `json:"fields,omitempty"`
	Status int      `json:"status,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// DefaultPath returns the journal location under the user's data directory.
func DefaultPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("error getting home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataDir, "ppc", "history.jsonl"), nil
}

// Record appends an entry to the journal at path and reports whether it
// was written. An empty path disables recording.
func Record(path string, entry Entry) bool {
	if path == "" {
		return false
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return false
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return false
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return false
	}

	_, err = f.Write(append(data, '\n'))
	return err == nil
}

// ReadEntries reads all entries from the journal at path.
// Returns an empty slice if the journal doesn't exist.
func ReadEntries(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data), nil
}

// ParseEntries parses JSON Lines data into entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) []Entry {
	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries
}
