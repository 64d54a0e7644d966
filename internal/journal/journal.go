// Package journal keeps an append-only JSONL activity log of service
// mutations. The journal is best-effort: callers discard its errors so a
// failed journal write never fails the underlying operation, and a nil
// *Journal is a valid no-op.
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FileName is the journal file created inside the data dir.
const FileName = "journal.jsonl"

// Entry is one recorded mutation.
type Entry struct {
	EventID  string    `json:"event_id"` // UUID v7, generated on record.
	Entity   string    `json:"entity"`   // "client", "listing", "offer".
	Action   string    `json:"action"`   // "add", "update", "delete", ...
	EntityID int       `json:"entity_id"`
	At       time.Time `json:"at"`
}

// Journal appends entries to a single JSONL file.
type Journal struct {
	mu   sync.Mutex
	path string
}

// Open returns a Journal writing to journal.jsonl inside dataDir. The file
// is created on first Record.
func Open(dataDir string) *Journal {
	return &Journal{path: filepath.Join(dataDir, FileName)}
}

// newEventID generates a UUID v7 string.
func newEventID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Record appends one entry. Safe on a nil Journal.
func (j *Journal) Record(entity, action string, entityID int) error {
	if j == nil {
		return nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	entry := Entry{
		EventID:  newEventID(),
		Entity:   entity,
		Action:   action,
		EntityID: entityID,
		At:       time.Now().UTC(),
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode journal entry: %w", err)
	}
	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", j.path, err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append to %s: %w", j.path, err)
	}
	return nil
}

// Entries reads the journal back in recorded order. Malformed lines are
// skipped; a missing file yields an empty history. Safe on a nil Journal.
func (j *Journal) Entries() ([]Entry, error) {
	if j == nil {
		return nil, nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	f, err := os.Open(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", j.path, err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", j.path, err)
	}
	return entries, nil
}
