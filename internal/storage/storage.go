package storage

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/weekender-events/internal/event"
)

// Storage handles persistence of record snapshots
type Storage struct {
	dataDir string
}

// New creates a new Storage instance
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// SnapshotName turns a source URL or file path into a file-name-safe key
func SnapshotName(source string) string {
	if u, err := url.Parse(source); err == nil && u.Host != "" {
		source = u.Host + u.Path
	} else {
		source = filepath.Base(source)
	}

	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			return '_'
		}
	}, strings.ToLower(source))
	return strings.Trim(name, "_.-")
}

// getSnapshotPath returns the path to the snapshot file
func (s *Storage) getSnapshotPath(source string) string {
	name := SnapshotName(source)
	if name == "" {
		return filepath.Join(s.dataDir, "snapshot.json")
	}
	return filepath.Join(s.dataDir, fmt.Sprintf("snapshot_%s.json", name))
}

// LoadSnapshot loads the snapshot for source; a missing file yields an empty snapshot
func (s *Storage) LoadSnapshot(source string) (*event.Snapshot, error) {
	path := s.getSnapshotPath(source)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return event.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot event.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	if snapshot.Records == nil {
		snapshot.Records = make(map[string]*event.Record)
	}
	if snapshot.FirstSeen == nil {
		snapshot.FirstSeen = make(map[string]string)
	}

	return &snapshot, nil
}

// SaveSnapshot saves a snapshot to disk
func (s *Storage) SaveSnapshot(snapshot *event.Snapshot, source string) error {
	path := s.getSnapshotPath(source)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	return nil
}

// CreateSnapshotFromRecords creates and saves a snapshot of records for source,
// keeping first-seen times known to previous
func (s *Storage) CreateSnapshotFromRecords(previous *event.Snapshot, records []*event.Record, source string) error {
	snapshot := event.CreateSnapshot(previous, records, source, event.Now())
	return s.SaveSnapshot(snapshot, source)
}

// GetRecordByID retrieves a record by ID from the snapshot of source
func (s *Storage) GetRecordByID(source, id string) (*event.Record, error) {
	snapshot, err := s.LoadSnapshot(source)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	if rec, exists := snapshot.Records[id]; exists {
		return rec, nil
	}

	return nil, fmt.Errorf("record not found: %s", id)
}
