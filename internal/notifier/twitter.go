package notifier

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"
	"golang.org/x/time/rate"

	"github.com/pfrederiksen/weekender-events/internal/event"
)

const tweetLimit = 280

// TwitterCredentials holds the OAuth1 keys of the posting account
type TwitterCredentials struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	AccessSecret string
}

// TwitterNotifier posts events to Twitter
type TwitterNotifier struct {
	client  *twitter.Client
	limiter *rate.Limiter
}

// NewTwitterNotifier creates a new Twitter notifier
func NewTwitterNotifier(ctx context.Context, creds TwitterCredentials, interval time.Duration) (*TwitterNotifier, error) {
	if creds.APIKey == "" || creds.APISecret == "" || creds.AccessToken == "" || creds.AccessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials")
	}

	config := oauth1.NewConfig(creds.APIKey, creds.APISecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)

	return newTwitterNotifier(config.Client(ctx, token), interval), nil
}

func newTwitterNotifier(httpClient *http.Client, interval time.Duration) *TwitterNotifier {
	return &TwitterNotifier{
		client:  twitter.NewClient(httpClient),
		limiter: newLimiter(interval),
	}
}

// Notify posts one tweet per record
func (n *TwitterNotifier) Notify(ctx context.Context, records []*event.Record) error {
	for _, rec := range records {
		if err := n.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("waiting for rate limiter: %w", err)
		}

		_, _, err := n.client.Statuses.Update(formatTweet(rec), nil)
		if err != nil {
			return fmt.Errorf("failed to post tweet for %q: %w", rec.Summary(), err)
		}
	}

	return nil
}

// formatTweet formats a record as a tweet
func formatTweet(rec *event.Record) string {
	return truncateRunes(FormatMessage(rec)+"\n#Shanghai #Weekend", tweetLimit)
}
