// Package memory provides minimal transcript persistence.
//
// Persistence model:
//   - Each completed query appends the user query and the final transcript.
//   - The log is write-only history for the user; it is never replayed into
//     prompts. Every query is an independent exchange.
package memory

import (
	"encoding/json"
	"errors"
	"os"
)

// Entry is one persisted transcript line.
type Entry struct {
	Role string `json:"role"`
	Text string `json:"text,omitempty"`
}

func LoadTranscript(path string) ([]Entry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func SaveTranscript(path string, entries []Entry) error {
	b, err := json.MarshalIndent(entries, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
