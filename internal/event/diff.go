package event

import "time"

// Snapshot represents the records seen for one source at a point in time
type Snapshot struct {
	Records   map[string]*Record `json:"records"`    // keyed by Record.ID()
	FirstSeen map[string]string  `json:"first_seen"` // ID → RFC3339 timestamp
	SourceURL string             `json:"source_url"`
	UpdatedAt string             `json:"updated_at"` // RFC3339 timestamp
}

// NewSnapshot creates an empty snapshot
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Records:   make(map[string]*Record),
		FirstSeen: make(map[string]string),
	}
}

// CreateSnapshot builds a snapshot from the current records, carrying over
// first-seen timestamps from previous when it knows the record.
func CreateSnapshot(previous *Snapshot, records []*Record, sourceURL, updatedAt string) *Snapshot {
	snap := NewSnapshot()
	snap.SourceURL = sourceURL
	snap.UpdatedAt = updatedAt

	for _, rec := range records {
		id := rec.ID()
		snap.Records[id] = rec
		if previous != nil {
			if seen, ok := previous.FirstSeen[id]; ok {
				snap.FirstSeen[id] = seen
				continue
			}
		}
		snap.FirstSeen[id] = updatedAt
	}

	return snap
}

// Diff returns the records of current that are not in the previous snapshot,
// in their original order.
func Diff(previous *Snapshot, current []*Record) []*Record {
	if previous == nil {
		previous = NewSnapshot()
	}

	fresh := make([]*Record, 0)
	for _, rec := range current {
		if _, exists := previous.Records[rec.ID()]; !exists {
			fresh = append(fresh, rec)
		}
	}
	return fresh
}

// Now returns the timestamp format used in snapshots.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
