package filter

import (
	"testing"

	"github.com/pfrederiksen/weekender-events/internal/event"
)

var (
	ballet = &event.Record{
		Name:         "Swan Lake by the Paris Opera Ballet",
		VenueName:    "Shanghai Grand Theatre",
		VenueAddress: "300 Renmin Dadao, near Huangpi Bei Lu",
		OpeningHours: "Friday",
		Price:        "180-1280 RMB",
		Description:  "Danced to Tchaikovsky's score with a full live orchestra.",
	}
	jazz = &event.Record{
		Name:         "Late Night Sessions at JZ Club",
		VenueName:    "JZ Club",
		VenueAddress: "158 Julu Lu, near Ruijin Yi Lu",
		OpeningHours: "Saturday",
		Price:        "100 RMB",
		Description:  "The house band takes the stage.",
	}
	studios = &event.Record{
		Name:         "Open Studios Weekend at M50",
		VenueName:    "M50 Art District",
		VenueAddress: "50 Moganshan Lu, near Changhua Lu",
		OpeningHours: "Various",
		Price:        "Free",
		Description:  "More than forty artists open their studios.",
	}
)

func TestFilter_IsEmpty(t *testing.T) {
	tests := []struct {
		name   string
		filter *Filter
		want   bool
	}{
		{"empty filter", NewFilter(), true},
		{"zero value", &Filter{}, true},
		{"with days", &Filter{Days: []string{"Saturday"}}, false},
		{"with venue", &Filter{Venues: []string{"JZ"}}, false},
		{"with keyword", &Filter{Keywords: []string{"jazz"}}, false},
		{"free only", &Filter{FreeOnly: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.IsEmpty(); got != tt.want {
				t.Errorf("Filter.IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_Matches(t *testing.T) {
	tests := []struct {
		name   string
		filter *Filter
		rec    *event.Record
		want   bool
	}{
		{"empty filter matches", NewFilter(), ballet, true},
		{"day matches", &Filter{Days: []string{"Saturday"}}, jazz, true},
		{"day does not match", &Filter{Days: []string{"Saturday", "Sunday"}}, ballet, false},
		{"various passes day filter", &Filter{Days: []string{"Sunday"}}, studios, true},
		{"venue name matches", &Filter{Venues: []string{"jz club"}}, jazz, true},
		{"venue address matches", &Filter{Venues: []string{"Moganshan"}}, studios, true},
		{"venue does not match", &Filter{Venues: []string{"Yuz"}}, ballet, false},
		{"keyword in name", &Filter{Keywords: []string{"ballet"}}, ballet, true},
		{"keyword in description", &Filter{Keywords: []string{"house band"}}, jazz, true},
		{"keyword does not match", &Filter{Keywords: []string{"opera"}}, studios, false},
		{"free only matches", &Filter{FreeOnly: true}, studios, true},
		{"free only rejects paid", &Filter{FreeOnly: true}, jazz, false},
		{"blank needle ignored", &Filter{Venues: []string{"  "}}, jazz, false},
		{
			name:   "all criteria must match",
			filter: &Filter{Days: []string{"Saturday"}, Keywords: []string{"studios"}},
			rec:    jazz,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(tt.rec); got != tt.want {
				t.Errorf("Filter.Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_Apply(t *testing.T) {
	records := []*event.Record{ballet, jazz, studios}

	got := (&Filter{Days: []string{"Saturday", "Sunday"}}).Apply(records)
	if len(got) != 2 || got[0] != jazz || got[1] != studios {
		t.Errorf("Apply() = %v, want [jazz studios]", got)
	}

	if got := NewFilter().Apply(records); len(got) != 3 {
		t.Errorf("empty filter Apply() returned %d records, want 3", len(got))
	}

	got = (&Filter{Venues: []string{"Yuz"}}).Apply(records)
	if got == nil || len(got) != 0 {
		t.Errorf("Apply() = %v, want empty non-nil slice", got)
	}
}

func TestFilter_String(t *testing.T) {
	tests := []struct {
		name   string
		filter *Filter
		want   string
	}{
		{"empty", NewFilter(), "No active filters"},
		{"days", &Filter{Days: []string{"Saturday", "Sunday"}}, "Days: Saturday, Sunday"},
		{
			name:   "combined",
			filter: &Filter{Venues: []string{"JZ Club"}, Keywords: []string{"jazz"}, FreeOnly: true},
			want:   "Venues: JZ Club | Keywords: jazz | Free only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.String(); got != tt.want {
				t.Errorf("Filter.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilter_Clone(t *testing.T) {
	original := &Filter{Days: []string{"Friday"}, Venues: []string{"M50"}, FreeOnly: true}
	clone := original.Clone()

	clone.Days[0] = "Monday"
	clone.Venues = append(clone.Venues, "JZ")

	if original.Days[0] != "Friday" {
		t.Errorf("original days modified: %v", original.Days)
	}
	if len(original.Venues) != 1 {
		t.Errorf("original venues modified: %v", original.Venues)
	}
	if !clone.FreeOnly {
		t.Error("clone lost FreeOnly")
	}
}
