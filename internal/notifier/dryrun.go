package notifier

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/pfrederiksen/weekender-events/internal/event"
)

// DryRunNotifier prints what would be posted without actually posting
type DryRunNotifier struct {
	w io.Writer
}

// NewDryRunNotifier creates a new dry-run notifier writing to w
func NewDryRunNotifier(w io.Writer) *DryRunNotifier {
	return &DryRunNotifier{w: w}
}

// Notify prints the messages that would be posted
func (n *DryRunNotifier) Notify(ctx context.Context, records []*event.Record) error {
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		msg := FormatMessage(rec)
		fmt.Fprintf(n.w, "--- Notification %d/%d ---\n", i+1, len(records))
		fmt.Fprintln(n.w, msg)
		fmt.Fprintf(n.w, "(Length: %d characters)\n\n", utf8.RuneCountInString(msg))
	}
	return nil
}
