package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/pfrederiksen/weekender-events/internal/event"
)

const (
	telegramAPIBaseURL = "https://api.telegram.org/bot"
	telegramTimeout    = 10 * time.Second

	// Telegram rejects messages longer than this
	telegramMaxMessage = 4096
)

// TelegramNotifier sends events to a Telegram chat through the Bot API
type TelegramNotifier struct {
	baseURL  string
	botToken string
	chatID   string
	client   *retryablehttp.Client
	limiter  *rate.Limiter
}

// NewTelegramNotifier creates a new Telegram notifier
func NewTelegramNotifier(botToken, chatID string, interval time.Duration) (*TelegramNotifier, error) {
	if botToken == "" {
		return nil, fmt.Errorf("bot token is required")
	}
	if chatID == "" {
		return nil, fmt.Errorf("chat ID is required")
	}

	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 5 * time.Second
	client.HTTPClient.Timeout = telegramTimeout
	client.Logger = nil

	return &TelegramNotifier{
		baseURL:  telegramAPIBaseURL,
		botToken: botToken,
		chatID:   chatID,
		client:   client,
		limiter:  newLimiter(interval),
	}, nil
}

// Notify sends one message per record
func (n *TelegramNotifier) Notify(ctx context.Context, records []*event.Record) error {
	for _, rec := range records {
		if err := n.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("waiting for rate limiter: %w", err)
		}
		if err := n.SendMessage(ctx, formatTelegram(rec)); err != nil {
			return fmt.Errorf("failed to send message for %q: %w", rec.Summary(), err)
		}
	}
	return nil
}

// SendMessage sends an HTML-formatted text message to the configured chat
func (n *TelegramNotifier) SendMessage(ctx context.Context, text string) error {
	if text == "" {
		return fmt.Errorf("message text is required")
	}

	url := fmt.Sprintf("%s%s/sendMessage", n.baseURL, n.botToken)

	payload := map[string]interface{}{
		"chat_id":                  n.chatID,
		"text":                     text,
		"parse_mode":               "HTML",
		"disable_web_page_preview": true,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, jsonData)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("telegram API error: %s", result.Description)
	}

	return nil
}

// formatTelegram formats a record as a Telegram HTML message
func formatTelegram(rec *event.Record) string {
	var msg strings.Builder

	fmt.Fprintf(&msg, "<b>%s</b>\n\n", html.EscapeString(rec.Name))

	venue := rec.VenueAddress
	if rec.VenueName != "" {
		venue = rec.VenueName + ", " + rec.VenueAddress
	}
	fmt.Fprintf(&msg, "📍 %s\n", html.EscapeString(venue))

	if rec.OpeningHours != "" {
		fmt.Fprintf(&msg, "📅 %s\n", html.EscapeString(rec.OpeningHours))
	}
	if rec.Price != "" {
		fmt.Fprintf(&msg, "💰 %s\n", html.EscapeString(rec.Price))
	}
	if rec.Description != "" {
		fmt.Fprintf(&msg, "\n%s\n", html.EscapeString(rec.Description))
	}

	return truncateRunes(msg.String(), telegramMaxMessage)
}
