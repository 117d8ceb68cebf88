// Package notifier posts newly seen weekend events to chat and social channels.
//
// Telegram messages go through the Bot API over a retrying HTTP client, tweets
// through the Twitter v1.1 API with OAuth1 credentials. A dry-run notifier prints
// the messages instead. Every notifier spaces its posts with a rate limiter.
package notifier
