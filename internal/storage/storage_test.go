package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pfrederiksen/weekender-events/internal/event"
)

const source = "https://www.smartshanghai.com/articles/activities/sh-weekender"

func newTestStorage(t *testing.T) (*Storage, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return s, dir
}

func TestSnapshotName(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{source, "www.smartshanghai.com_articles_activities_sh-weekender"},
		{"https://Example.com/", "example.com"},
		{"/tmp/pages/weekender.txt", "weekender.txt"},
		{"-", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			if got := SnapshotName(tt.source); got != tt.want {
				t.Errorf("SnapshotName(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestLoadSnapshot_Missing(t *testing.T) {
	s, _ := newTestStorage(t)

	snapshot, err := s.LoadSnapshot(source)
	if err != nil {
		t.Fatalf("LoadSnapshot() error: %v", err)
	}
	if snapshot == nil || len(snapshot.Records) != 0 {
		t.Errorf("LoadSnapshot() = %+v, want empty snapshot", snapshot)
	}
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	s, dir := newTestStorage(t)

	rec := &event.Record{Name: "Jazz Night by The Blue Notes", VenueAddress: "1 Fumin Road", Price: "150 RMB"}
	if err := s.CreateSnapshotFromRecords(nil, []*event.Record{rec}, source); err != nil {
		t.Fatalf("CreateSnapshotFromRecords() error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "snapshot_www.smartshanghai.com_articles_activities_sh-weekender.json")); err != nil {
		t.Errorf("snapshot file not written: %v", err)
	}

	snapshot, err := s.LoadSnapshot(source)
	if err != nil {
		t.Fatalf("LoadSnapshot() error: %v", err)
	}
	got, ok := snapshot.Records[rec.ID()]
	if !ok {
		t.Fatal("saved record missing from snapshot")
	}
	if *got != *rec {
		t.Errorf("loaded record = %+v, want %+v", got, rec)
	}
	if snapshot.SourceURL != source {
		t.Errorf("SourceURL = %q, want %q", snapshot.SourceURL, source)
	}
	if snapshot.FirstSeen[rec.ID()] == "" {
		t.Error("FirstSeen not recorded")
	}
}

func TestLoadSnapshot_Corrupt(t *testing.T) {
	s, dir := newTestStorage(t)

	if err := os.WriteFile(filepath.Join(dir, "snapshot_example.com.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.LoadSnapshot("https://example.com/"); err == nil {
		t.Error("LoadSnapshot() expected error for corrupt file, got nil")
	}
}

func TestGetRecordByID(t *testing.T) {
	s, _ := newTestStorage(t)

	rec := &event.Record{Name: "Open Studio Weekend at M50", VenueAddress: "50 Moganshan Road"}
	if err := s.CreateSnapshotFromRecords(nil, []*event.Record{rec}, source); err != nil {
		t.Fatalf("CreateSnapshotFromRecords() error: %v", err)
	}

	got, err := s.GetRecordByID(source, rec.ID())
	if err != nil {
		t.Fatalf("GetRecordByID() error: %v", err)
	}
	if got.Name != rec.Name {
		t.Errorf("GetRecordByID() name = %q, want %q", got.Name, rec.Name)
	}

	_, err = s.GetRecordByID(source, "nonexistent-id")
	if err == nil || err.Error() != "record not found: nonexistent-id" {
		t.Errorf("GetRecordByID() error = %v, want record not found", err)
	}
}
