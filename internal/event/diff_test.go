package event

import "testing"

func TestDiff(t *testing.T) {
	rec1 := &Record{Name: "Event 1", VenueAddress: "1 Road"}
	rec2 := &Record{Name: "Event 2", VenueAddress: "2 Road"}
	rec3 := &Record{Name: "Event 3", VenueAddress: "3 Road"}

	previous := CreateSnapshot(nil, []*Record{rec1}, "https://example.com", "2026-01-01T00:00:00Z")

	t.Run("finds new records in order", func(t *testing.T) {
		fresh := Diff(previous, []*Record{rec3, rec1, rec2})

		if len(fresh) != 2 {
			t.Fatalf("expected 2 new records, got %d", len(fresh))
		}
		if fresh[0] != rec3 || fresh[1] != rec2 {
			t.Errorf("expected [rec3 rec2], got [%s %s]", fresh[0].Name, fresh[1].Name)
		}
	})

	t.Run("nil previous treats all as new", func(t *testing.T) {
		fresh := Diff(nil, []*Record{rec1, rec2})
		if len(fresh) != 2 {
			t.Errorf("expected 2 new records, got %d", len(fresh))
		}
	})

	t.Run("no new records", func(t *testing.T) {
		fresh := Diff(previous, []*Record{rec1})
		if len(fresh) != 0 {
			t.Errorf("expected 0 new records, got %d", len(fresh))
		}
	})
}

func TestCreateSnapshot(t *testing.T) {
	rec1 := &Record{Name: "Event 1", VenueAddress: "1 Road"}
	rec2 := &Record{Name: "Event 2", VenueAddress: "2 Road"}

	first := CreateSnapshot(nil, []*Record{rec1}, "https://example.com", "2026-01-01T00:00:00Z")
	second := CreateSnapshot(first, []*Record{rec1, rec2}, "https://example.com", "2026-02-01T00:00:00Z")

	if len(second.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(second.Records))
	}
	if got := second.FirstSeen[rec1.ID()]; got != "2026-01-01T00:00:00Z" {
		t.Errorf("rec1 first seen = %q, want carried over timestamp", got)
	}
	if got := second.FirstSeen[rec2.ID()]; got != "2026-02-01T00:00:00Z" {
		t.Errorf("rec2 first seen = %q, want current timestamp", got)
	}
	if second.UpdatedAt != "2026-02-01T00:00:00Z" {
		t.Errorf("UpdatedAt = %q", second.UpdatedAt)
	}
}
