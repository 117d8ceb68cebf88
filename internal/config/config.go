package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/pfrederiksen/weekender-events/internal/extract"
	"github.com/pfrederiksen/weekender-events/internal/logger"
	"github.com/pfrederiksen/weekender-events/internal/notifier"
	"github.com/pfrederiksen/weekender-events/internal/scraper"
)

// Config holds all application configuration.
type Config struct {
	Extract ExtractConfig
	Fetch   FetchConfig
	Logging LogConfig
	Storage StorageConfig
	Notify  NotifyConfig
}

// ExtractConfig holds the extraction tuning parameters.
type ExtractConfig struct {
	LinesBefore        int `envconfig:"WEEKENDER_LINES_BEFORE" default:"8"`
	LinesAfter         int `envconfig:"WEEKENDER_LINES_AFTER" default:"15"`
	MaxEvents          int `envconfig:"WEEKENDER_MAX_EVENTS" default:"3"`
	MaxDescription     int `envconfig:"WEEKENDER_MAX_DESCRIPTION" default:"500"`
	LongDescription    int `envconfig:"WEEKENDER_LONG_DESCRIPTION" default:"100"`
	MinDescriptionLine int `envconfig:"WEEKENDER_MIN_DESCRIPTION_LINE" default:"30"`
	MaxJoinedLines     int `envconfig:"WEEKENDER_MAX_JOINED_LINES" default:"3"`
}

// FetchConfig holds page fetching configuration.
type FetchConfig struct {
	URL               string        `envconfig:"WEEKENDER_URL"`
	Timeout           time.Duration `envconfig:"WEEKENDER_TIMEOUT" default:"30s"`
	Retries           int           `envconfig:"WEEKENDER_RETRIES" default:"3"`
	UserAgent         string        `envconfig:"WEEKENDER_USER_AGENT"`
	RequestsPerSecond float64       `envconfig:"WEEKENDER_RPS" default:"1"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// StorageConfig holds snapshot storage configuration.
type StorageConfig struct {
	DataDir string `envconfig:"WEEKENDER_DATA_DIR" default:"~/.local/share/weekender-events"`
}

// NotifyConfig holds notification channel settings.
type NotifyConfig struct {
	Interval            time.Duration `envconfig:"WEEKENDER_NOTIFY_INTERVAL" default:"2s"`
	TelegramBotToken    string        `envconfig:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID      string        `envconfig:"TELEGRAM_CHAT_ID"`
	TwitterAPIKey       string        `envconfig:"TWITTER_API_KEY"`
	TwitterAPISecret    string        `envconfig:"TWITTER_API_SECRET"`
	TwitterAccessToken  string        `envconfig:"TWITTER_ACCESS_TOKEN"`
	TwitterAccessSecret string        `envconfig:"TWITTER_ACCESS_SECRET"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	opts := extract.DefaultOptions()
	return &Config{
		Extract: ExtractConfig{
			LinesBefore:        opts.LinesBefore,
			LinesAfter:         opts.LinesAfter,
			MaxEvents:          opts.MaxEvents,
			MaxDescription:     opts.MaxDescription,
			LongDescription:    opts.LongDescription,
			MinDescriptionLine: opts.MinDescriptionLine,
			MaxJoinedLines:     opts.MaxJoinedLines,
		},
		Fetch: FetchConfig{
			Timeout:           scraper.Timeout,
			Retries:           scraper.DefaultRetries,
			RequestsPerSecond: 1,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Storage: StorageConfig{
			DataDir: "~/.local/share/weekender-events",
		},
		Notify: NotifyConfig{
			Interval: notifier.DefaultInterval,
		},
	}
}

// Validate rejects settings the extractor cannot work with.
func (c *Config) Validate() error {
	e := c.Extract
	for name, v := range map[string]int{
		"lines before":         e.LinesBefore,
		"lines after":          e.LinesAfter,
		"max events":           e.MaxEvents,
		"max description":      e.MaxDescription,
		"long description":     e.LongDescription,
		"min description line": e.MinDescriptionLine,
		"max joined lines":     e.MaxJoinedLines,
	} {
		if v <= 0 {
			return fmt.Errorf("invalid %s: %d (must be positive)", name, v)
		}
	}
	if c.Fetch.Retries < 0 {
		return fmt.Errorf("invalid retries: %d (must not be negative)", c.Fetch.Retries)
	}
	return nil
}

// Options maps the tuning parameters onto extract.Options.
func (c ExtractConfig) Options() extract.Options {
	return extract.Options{
		LinesBefore:        c.LinesBefore,
		LinesAfter:         c.LinesAfter,
		MaxEvents:          c.MaxEvents,
		MaxDescription:     c.MaxDescription,
		LongDescription:    c.LongDescription,
		MinDescriptionLine: c.MinDescriptionLine,
		MaxJoinedLines:     c.MaxJoinedLines,
	}
}

// ScraperConfig maps the fetch settings onto scraper.Config.
func (c FetchConfig) ScraperConfig() scraper.Config {
	return scraper.Config{
		UserAgent:         c.UserAgent,
		Timeout:           c.Timeout,
		Retries:           c.Retries,
		RequestsPerSecond: c.RequestsPerSecond,
	}
}

// LoggerConfig maps the logging settings onto logger.Config.
func (c LogConfig) LoggerConfig() logger.Config {
	return logger.Config{
		Level:       c.Level,
		Development: c.Development,
	}
}

// TwitterCredentials maps the Twitter keys onto notifier.TwitterCredentials.
func (c NotifyConfig) TwitterCredentials() notifier.TwitterCredentials {
	return notifier.TwitterCredentials{
		APIKey:       c.TwitterAPIKey,
		APISecret:    c.TwitterAPISecret,
		AccessToken:  c.TwitterAccessToken,
		AccessSecret: c.TwitterAccessSecret,
	}
}
