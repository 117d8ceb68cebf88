// Package calendar exports extracted event records as an iCalendar (.ics) feed.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/weekender-events/internal/event"
)

var weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// EventDate resolves the record's opening day to the next matching date on or after ref.
// Records without a weekday in their opening hours ("Various") have no date.
func EventDate(rec *event.Record, ref time.Time) (time.Time, bool) {
	hours := strings.ToLower(rec.OpeningHours)

	pos, day := -1, time.Sunday
	for _, d := range weekdays {
		i := strings.Index(hours, strings.ToLower(d.String()))
		if i >= 0 && (pos < 0 || i < pos) {
			pos, day = i, d
		}
	}
	if pos < 0 {
		return time.Time{}, false
	}

	offset := (int(day) - int(ref.Weekday()) + 7) % 7
	date := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	return date.AddDate(0, 0, offset), true
}

// GenerateICS generates an iCalendar feed with one all-day event per dated record.
// It returns the feed and the number of records skipped for lack of a date.
func GenerateICS(records []*event.Record, ref time.Time) (string, int) {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//Weekender Events//weekender-events//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	skipped := 0
	for _, rec := range records {
		date, ok := EventDate(rec, ref)
		if !ok {
			skipped++
			continue
		}
		writeEvent(&ics, rec, date, ref)
	}

	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String(), skipped
}

func writeEvent(ics *strings.Builder, rec *event.Record, date, stamp time.Time) {
	ics.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(ics, "UID:%s@weekender-events\r\n", rec.ID())
	fmt.Fprintf(ics, "DTSTAMP:%s\r\n", formatICSTime(stamp))

	// All-day event; DTEND is exclusive
	fmt.Fprintf(ics, "DTSTART;VALUE=DATE:%s\r\n", date.Format("20060102"))
	fmt.Fprintf(ics, "DTEND;VALUE=DATE:%s\r\n", date.AddDate(0, 0, 1).Format("20060102"))

	fmt.Fprintf(ics, "SUMMARY:%s\r\n", escapeICS(rec.Name))

	var desc []string
	if rec.Price != "" {
		desc = append(desc, "Price: "+rec.Price)
	}
	if rec.Description != "" {
		desc = append(desc, rec.Description)
	}
	if len(desc) > 0 {
		fmt.Fprintf(ics, "DESCRIPTION:%s\r\n", escapeICS(strings.Join(desc, "\n\n")))
	}

	location := rec.VenueAddress
	if rec.VenueName != "" {
		location = fmt.Sprintf("%s, %s", rec.VenueName, rec.VenueAddress)
	}
	fmt.Fprintf(ics, "LOCATION:%s\r\n", escapeICS(location))

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("TRANSP:TRANSPARENT\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
