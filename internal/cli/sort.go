package cli

import (
	"sort"
	"strings"

	"github.com/pfrederiksen/weekender-events/internal/event"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByDocument SortOrder = "document"
	SortByName     SortOrder = "name"
	SortByVenue    SortOrder = "venue"
)

func validSortOrder(s SortOrder) bool {
	return s == SortByDocument || s == SortByName || s == SortByVenue
}

// sortRecords sorts records for display. Document order is left untouched.
func sortRecords(records []*event.Record, sortOrder SortOrder) {
	switch sortOrder {
	case SortByName:
		sort.SliceStable(records, func(i, j int) bool {
			return strings.ToLower(records[i].Name) < strings.ToLower(records[j].Name)
		})
	case SortByVenue:
		sort.SliceStable(records, func(i, j int) bool {
			vi, vj := strings.ToLower(records[i].VenueName), strings.ToLower(records[j].VenueName)
			if vi != vj {
				return vi < vj
			}
			// If venues are equal, sort by name
			return strings.ToLower(records[i].Name) < strings.ToLower(records[j].Name)
		})
	}
}
