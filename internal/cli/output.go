package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/weekender-events/internal/calendar"
	"github.com/pfrederiksen/weekender-events/internal/event"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatICS  OutputFormat = "ics"
)

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt  time.Time       `json:"checked_at"`
	Source     string          `json:"source"`
	Events     []*event.Record `json:"events"`
	EventCount int             `json:"event_count"`
	Filter     string          `json:"filter,omitempty"`
	NewEvents  []*event.Record `json:"new_events,omitempty"`
	Tracked    bool            `json:"tracked"`
}

// WriteOutput writes the result in the specified format. Notes about the
// output go to errW.
func WriteOutput(w, errW io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	case FormatICS:
		return writeICS(w, errW, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

// writeICS outputs results as an iCalendar feed
func writeICS(w, errW io.Writer, result *OutputResult) error {
	ics, skipped := calendar.GenerateICS(result.Events, result.CheckedAt)
	if _, err := io.WriteString(w, ics); err != nil {
		return err
	}
	if skipped > 0 {
		fmt.Fprintf(errW, "Note: %d of %d events have no weekday and were left out of the calendar\n", skipped, len(result.Events))
	}
	return nil
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.Filter != "" {
		fmt.Fprintf(w, "Filter: %s\n\n", result.Filter)
	}

	if result.EventCount == 0 {
		fmt.Fprintln(w, "No events found.")
		return nil
	}

	fresh := make(map[string]bool, len(result.NewEvents))
	for _, rec := range result.NewEvents {
		fresh[rec.ID()] = true
	}

	for i, rec := range result.Events {
		header := fmt.Sprintf("Event %d", i+1)
		if result.Tracked && fresh[rec.ID()] {
			header += " (NEW)"
		}
		fmt.Fprintln(w, header)
		writeRecord(w, rec, verbose)
		fmt.Fprintln(w)
	}

	if result.Tracked {
		fmt.Fprintf(w, "Total: %d events, %d new\n", result.EventCount, len(result.NewEvents))
	} else {
		fmt.Fprintf(w, "Total: %d events\n", result.EventCount)
	}
	return nil
}

// writeRecord prints every field of rec, labeled, empty or not
func writeRecord(w io.Writer, rec *event.Record, verbose bool) {
	fmt.Fprintf(w, "  Name:        %s\n", rec.Name)
	fmt.Fprintf(w, "  Venue:       %s\n", rec.VenueName)
	fmt.Fprintf(w, "  Address:     %s\n", rec.VenueAddress)
	fmt.Fprintf(w, "  Hours:       %s\n", rec.OpeningHours)
	fmt.Fprintf(w, "  Price:       %s\n", rec.Price)
	fmt.Fprintf(w, "  Description: %s\n", rec.Description)
	if verbose {
		fmt.Fprintf(w, "  ID:          %s\n", rec.ID())
	}
}

// writeShortfall warns when fewer events than wanted were found
func writeShortfall(w io.Writer, found, want int) {
	if found >= want {
		return
	}
	fmt.Fprintf(w, "Warning: found %d of %d expected events\n", found, want)
}
