package filter

import (
	"fmt"
	"strings"
	"time"
)

// ParseDays parses a day list into full weekday names.
//
// Supported formats:
//   - "sat" or "Saturday" - Single day
//   - "fri,sat,sun" - Comma-separated list
//   - "fri-sun" - Range, wrapping past Sunday ("sat-mon")
//   - "weekend" - Saturday and Sunday
//
// Days are returned in the order given, without duplicates.
func ParseDays(input string) ([]string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("day list cannot be empty")
	}

	var days []string
	seen := make(map[time.Weekday]bool)
	add := func(d time.Weekday) {
		if !seen[d] {
			seen[d] = true
			days = append(days, d.String())
		}
	}

	for _, part := range strings.Split(input, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}

		if part == "weekend" {
			add(time.Saturday)
			add(time.Sunday)
			continue
		}

		if from, to, ok := strings.Cut(part, "-"); ok {
			start, err := parseWeekday(from)
			if err != nil {
				return nil, err
			}
			end, err := parseWeekday(to)
			if err != nil {
				return nil, err
			}
			for d := start; ; d = (d + 1) % 7 {
				add(d)
				if d == end {
					break
				}
			}
			continue
		}

		d, err := parseWeekday(part)
		if err != nil {
			return nil, err
		}
		add(d)
	}

	if len(days) == 0 {
		return nil, fmt.Errorf("day list cannot be empty")
	}
	return days, nil
}

// parseWeekday converts a day name or three-letter abbreviation to time.Weekday
func parseWeekday(name string) (time.Weekday, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	weekdays := map[string]time.Weekday{
		"sun": time.Sunday, "sunday": time.Sunday,
		"mon": time.Monday, "monday": time.Monday,
		"tue": time.Tuesday, "tuesday": time.Tuesday,
		"wed": time.Wednesday, "wednesday": time.Wednesday,
		"thu": time.Thursday, "thursday": time.Thursday,
		"fri": time.Friday, "friday": time.Friday,
		"sat": time.Saturday, "saturday": time.Saturday,
	}

	d, ok := weekdays[name]
	if !ok {
		return 0, fmt.Errorf("invalid day: %s", name)
	}
	return d, nil
}
