// Package cli implements the command-line interface for weekender-events.
//
// The root command loads a listings page (fetched from a URL, or read from a file of
// HTML or pre-rendered text lines), runs the extract engine over its visible lines
// and prints the resulting event records as labeled text, JSON or an iCalendar feed.
// Records can be narrowed by day, venue, keyword or price. With --track it keeps a
// snapshot per source and flags the records that are new since the last run, which
// --notify can post to Telegram or Twitter. The show subcommand prints a record from a stored snapshot by ID.
package cli
