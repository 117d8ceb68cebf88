// Package filter narrows extracted event records down to the ones a user cares about.
//
// Criteria:
//   - Days (matched against the record's opening hours, e.g. "Saturday")
//   - Venues (substring matching on venue name or address, case-insensitive)
//   - Keywords (substring matching on name or description, case-insensitive)
//   - Free only (price mentions "free")
//
// Example usage:
//
//	f := filter.NewFilter()
//	f.Days, _ = filter.ParseDays("fri-sun")
//	f.Venues = []string{"JZ Club"}
//
//	filtered := f.Apply(records)
package filter

import (
	"fmt"
	"strings"

	"github.com/pfrederiksen/weekender-events/internal/event"
)

// Filter represents record filtering criteria
type Filter struct {
	// Day names, matched against OpeningHours. "Various" always passes a day filter.
	Days []string `json:"days,omitempty"`

	// Venue name or address filtering (case-insensitive substring match)
	Venues []string `json:"venues,omitempty"`

	// Name or description filtering (case-insensitive substring match)
	Keywords []string `json:"keywords,omitempty"`

	FreeOnly bool `json:"free_only,omitempty"`
}

// NewFilter creates a new empty filter with no active criteria.
func NewFilter() *Filter {
	return &Filter{
		Days:     []string{},
		Venues:   []string{},
		Keywords: []string{},
	}
}

// IsEmpty checks if the filter has any active criteria.
func (f *Filter) IsEmpty() bool {
	return len(f.Days) == 0 &&
		len(f.Venues) == 0 &&
		len(f.Keywords) == 0 &&
		!f.FreeOnly
}

// Matches checks if a record matches all active filter criteria.
// An empty filter matches all records.
func (f *Filter) Matches(rec *event.Record) bool {
	if f.IsEmpty() {
		return true
	}

	if len(f.Days) > 0 {
		hours := strings.ToLower(rec.OpeningHours)
		if !strings.Contains(hours, "various") && !containsAny(hours, f.Days) {
			return false
		}
	}

	if len(f.Venues) > 0 {
		venue := strings.ToLower(rec.VenueName + "\n" + rec.VenueAddress)
		if !containsAny(venue, f.Venues) {
			return false
		}
	}

	if len(f.Keywords) > 0 {
		text := strings.ToLower(rec.Name + "\n" + rec.Description)
		if !containsAny(text, f.Keywords) {
			return false
		}
	}

	if f.FreeOnly && !strings.Contains(strings.ToLower(rec.Price), "free") {
		return false
	}

	return true
}

// Apply returns the records matching the filter, in their original order.
// If the filter is empty, returns the original list unchanged.
func (f *Filter) Apply(records []*event.Record) []*event.Record {
	if f.IsEmpty() {
		return records
	}

	filtered := []*event.Record{}
	for _, rec := range records {
		if f.Matches(rec) {
			filtered = append(filtered, rec)
		}
	}

	return filtered
}

// String returns a human-readable description of the active filter criteria.
// Format: "Days: Saturday, Sunday | Venues: JZ Club | Free only"
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string

	if len(f.Days) > 0 {
		parts = append(parts, fmt.Sprintf("Days: %s", strings.Join(f.Days, ", ")))
	}

	if len(f.Venues) > 0 {
		parts = append(parts, fmt.Sprintf("Venues: %s", strings.Join(f.Venues, ", ")))
	}

	if len(f.Keywords) > 0 {
		parts = append(parts, fmt.Sprintf("Keywords: %s", strings.Join(f.Keywords, ", ")))
	}

	if f.FreeOnly {
		parts = append(parts, "Free only")
	}

	return strings.Join(parts, " | ")
}

// Clone creates a deep copy of the filter.
func (f *Filter) Clone() *Filter {
	return &Filter{
		Days:     append([]string{}, f.Days...),
		Venues:   append([]string{}, f.Venues...),
		Keywords: append([]string{}, f.Keywords...),
		FreeOnly: f.FreeOnly,
	}
}

// containsAny reports whether lowered text contains any of needles, case-insensitively
func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" && strings.Contains(text, n) {
			return true
		}
	}
	return false
}
