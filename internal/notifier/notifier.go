package notifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/pfrederiksen/weekender-events/internal/event"
)

// DefaultInterval is the pause between two posts to the same channel.
const DefaultInterval = 2 * time.Second

// Notifier defines the interface for posting event notifications
type Notifier interface {
	// Notify posts one notification per record
	Notify(ctx context.Context, records []*event.Record) error
}

// newLimiter spaces posts by interval; zero or negative means no spacing.
func newLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// FormatMessage formats a record as a plain-text notification
func FormatMessage(rec *event.Record) string {
	var msg strings.Builder

	msg.WriteString("New weekend event!\n\n")
	msg.WriteString(rec.Name + "\n")

	if rec.VenueName != "" {
		fmt.Fprintf(&msg, "Venue: %s\n", rec.VenueName)
	}
	fmt.Fprintf(&msg, "Address: %s\n", rec.VenueAddress)
	if rec.OpeningHours != "" {
		fmt.Fprintf(&msg, "When: %s\n", rec.OpeningHours)
	}
	if rec.Price != "" {
		fmt.Fprintf(&msg, "Price: %s\n", rec.Price)
	}

	return msg.String()
}

// truncateRunes shortens s to at most n characters, ending with "..." when cut
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
