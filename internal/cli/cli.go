package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/weekender-events/internal/config"
	"github.com/pfrederiksen/weekender-events/internal/event"
	"github.com/pfrederiksen/weekender-events/internal/extract"
	"github.com/pfrederiksen/weekender-events/internal/filter"
	"github.com/pfrederiksen/weekender-events/internal/logger"
	"github.com/pfrederiksen/weekender-events/internal/notifier"
	"github.com/pfrederiksen/weekender-events/internal/scraper"
	"github.com/pfrederiksen/weekender-events/internal/storage"
)

const (
	ExitSuccess   = 0
	ExitError     = 1
	ExitNewEvents = 2
)

const (
	InputText = "text"
	InputHTML = "html"
)

const (
	NotifyDryRun   = "dry-run"
	NotifyTelegram = "telegram"
	NotifyTwitter  = "twitter"
)

// errNewEvents signals that tracking found records not seen before.
var errNewEvents = errors.New("new events found")

// flags holds the parsed command-line options
type flags struct {
	url         string
	input       string
	inputFormat string
	format      string
	sortOrder   string
	track       bool
	notify      string
	dataDir     string
	metricsFile string
	verbose     bool
	source      string

	days     string
	venues   []string
	keywords []string
	freeOnly bool

	linesBefore int
	linesAfter  int
	maxEvents   int
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := config.LoadOrDefault()
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "weekender-events",
		Short: "Extract event listings from a weekend guide page",
		Long: `A CLI tool to extract event listings from a weekend guide page.
Reads the page's visible text, finds the dated event blocks and prints
name, venue, address, hours, price and description for each event.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, cfg, f)
		},
	}

	cmd.Flags().StringVar(&f.url, "url", cfg.Fetch.URL, "Page URL to fetch")
	cmd.Flags().StringVar(&f.input, "input", "", "Read the page from a file instead ('-' for stdin)")
	cmd.Flags().StringVar(&f.inputFormat, "input-format", InputText, "Input file format: text (one line per row) or html")
	cmd.Flags().StringVar(&f.format, "format", string(FormatText), "Output format: text, json or ics")
	cmd.Flags().StringVar(&f.sortOrder, "sort", string(SortByDocument), "Sort order: document, name or venue")
	cmd.Flags().BoolVar(&f.track, "track", false, "Compare with the previous run and flag new events")
	cmd.Flags().StringVar(&f.notify, "notify", "", "Post new events (requires --track): dry-run, telegram or twitter")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "Write prometheus metrics to this file")
	cmd.Flags().StringVar(&f.days, "days", "", "Only show events on these days (e.g. 'sat', 'fri-sun', 'weekend')")
	cmd.Flags().StringSliceVar(&f.venues, "venue", nil, "Only show events whose venue name or address contains this text (repeatable)")
	cmd.Flags().StringSliceVar(&f.keywords, "keyword", nil, "Only show events whose name or description contains this text (repeatable)")
	cmd.Flags().BoolVar(&f.freeOnly, "free", false, "Only show free events")
	cmd.Flags().IntVar(&f.linesBefore, "lines-before", cfg.Extract.LinesBefore, "Lines above a date line that belong to its event")
	cmd.Flags().IntVar(&f.linesAfter, "lines-after", cfg.Extract.LinesAfter, "Lines below a date line that belong to its event")
	cmd.Flags().IntVar(&f.maxEvents, "max-events", cfg.Extract.MaxEvents, "Maximum number of events to extract")
	cmd.PersistentFlags().StringVar(&f.dataDir, "data-dir", cfg.Storage.DataDir, "Data directory for snapshots")
	cmd.PersistentFlags().BoolVar(&f.verbose, "verbose", false, "Enable verbose logging")

	cmd.MarkFlagsMutuallyExclusive("url", "input")

	cmd.AddCommand(newShowCmd(f))

	return cmd
}

// newShowCmd creates the command printing a stored record
func newShowCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a tracked event by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.New(f.dataDir)
			if err != nil {
				return fmt.Errorf("initializing storage: %w", err)
			}

			rec, err := store.GetRecordByID(f.source, args[0])
			if err != nil {
				return err
			}

			if OutputFormat(strings.ToLower(f.format)) == FormatJSON {
				return writeJSON(cmd.OutOrStdout(), rec)
			}
			writeRecord(cmd.OutOrStdout(), rec, true)
			return nil
		},
	}

	cmd.Flags().StringVar(&f.source, "source", "", "Source URL or file the event was tracked from (required)")
	cmd.Flags().StringVar(&f.format, "format", string(FormatText), "Output format: text or json")
	cmd.MarkFlagRequired("source")

	return cmd
}

// runExtract is the main command logic
func runExtract(cmd *cobra.Command, cfg *config.Config, f *flags) error {
	format := OutputFormat(strings.ToLower(f.format))
	if format != FormatText && format != FormatJSON && format != FormatICS {
		return fmt.Errorf("invalid format: %s (must be 'text', 'json' or 'ics')", f.format)
	}

	sortOrder := SortOrder(strings.ToLower(f.sortOrder))
	if !validSortOrder(sortOrder) {
		return fmt.Errorf("invalid sort order: %s (must be 'document', 'name' or 'venue')", f.sortOrder)
	}

	for _, opt := range []struct {
		name  string
		value int
	}{
		{"--lines-before", f.linesBefore},
		{"--lines-after", f.linesAfter},
		{"--max-events", f.maxEvents},
	} {
		if opt.value <= 0 {
			return fmt.Errorf("invalid %s: %d (must be positive)", opt.name, opt.value)
		}
	}

	switch f.notify {
	case "", NotifyDryRun, NotifyTelegram, NotifyTwitter:
	default:
		return fmt.Errorf("invalid notify channel: %s (must be 'dry-run', 'telegram' or 'twitter')", f.notify)
	}
	if f.notify != "" && !f.track {
		return fmt.Errorf("--notify requires --track")
	}

	recFilter, err := buildFilter(f)
	if err != nil {
		return err
	}

	source := f.url
	if f.input != "" {
		source = f.input
	}
	if source == "" {
		return fmt.Errorf("one of --url or --input is required")
	}

	logCfg := cfg.Logging.LoggerConfig()
	if f.verbose {
		logCfg.Level = logger.LevelDebug
	}
	log, err := logger.New(logCfg)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer log.Sync()
	logger.SetDefault(log)

	lines, err := loadLines(cmd.Context(), cmd.InOrStdin(), cfg, f)
	if err != nil {
		return err
	}
	logger.SetGauge("page.lines", float64(len(lines)))
	log.Debug("Loaded page", logger.Fields{"source": source, "lines": len(lines)})

	opts := cfg.Extract.Options()
	opts.LinesBefore = f.linesBefore
	opts.LinesAfter = f.linesAfter
	opts.MaxEvents = f.maxEvents
	extractor := extract.New(opts)

	records, stats := extractor.ExtractWithStats(lines)
	logger.AddCounter("markers.found", stats.Markers)
	logger.AddCounter("records.extracted", len(records))
	logger.AddCounter("records.rejected", stats.Rejected)
	logger.AddCounter("records.duplicate", stats.Duplicates)
	log.Debug("Extracted events", logger.Fields{
		"markers":    stats.Markers,
		"blocks":     stats.Blocks,
		"rejected":   stats.Rejected,
		"duplicates": stats.Duplicates,
		"records":    len(records),
	})

	result := &OutputResult{
		CheckedAt:  time.Now().UTC(),
		Source:     source,
		Events:     records,
		EventCount: len(records),
	}

	if f.track {
		fresh, err := track(f.dataDir, source, records)
		if err != nil {
			return err
		}
		result.Tracked = true
		result.NewEvents = fresh
		log.Debug("Saved snapshot", logger.Fields{"source": source, "new": len(fresh)})
		for _, rec := range fresh {
			log.Info("New event", logger.Fields{"event": rec.Summary(), "id": rec.ID()})
		}
	}

	if !recFilter.IsEmpty() {
		result.Filter = recFilter.String()
		result.Events = recFilter.Apply(result.Events)
		result.EventCount = len(result.Events)
		if result.Tracked {
			result.NewEvents = recFilter.Apply(result.NewEvents)
		}
		log.Debug("Applied filter", logger.Fields{"filter": result.Filter, "records": result.EventCount})
	}

	if f.notify != "" && len(result.NewEvents) > 0 {
		if err := notify(cmd, cfg, f.notify, result.NewEvents); err != nil {
			return err
		}
		logger.AddCounter("notifications.sent", len(result.NewEvents))
		log.Info("Sent notifications", logger.Fields{"channel": f.notify, "count": len(result.NewEvents)})
	}

	sortRecords(result.Events, sortOrder)

	if err := WriteOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), result, format, f.verbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	want := extractor.Options().MaxEvents
	if len(records) < want {
		writeShortfall(cmd.ErrOrStderr(), len(records), want)
		log.Warn("Fewer events than expected", logger.Fields{"found": len(records), "want": want, "source": source})
	}

	snapshot := logger.GetMetricsSnapshot()
	log.Debug("Run metrics", logger.Fields{"counters": snapshot["counters"], "timings": snapshot["timings"]})

	if f.metricsFile != "" {
		if err := logger.WriteMetrics(f.metricsFile); err != nil {
			return err
		}
	}

	if f.track && len(result.NewEvents) > 0 {
		return errNewEvents
	}
	return nil
}

// notify posts records to the chosen channel. Dry runs print to stderr so stdout stays parseable.
func notify(cmd *cobra.Command, cfg *config.Config, channel string, records []*event.Record) error {
	var n notifier.Notifier
	switch channel {
	case NotifyDryRun:
		n = notifier.NewDryRunNotifier(cmd.ErrOrStderr())
	case NotifyTelegram:
		tg, err := notifier.NewTelegramNotifier(cfg.Notify.TelegramBotToken, cfg.Notify.TelegramChatID, cfg.Notify.Interval)
		if err != nil {
			return fmt.Errorf("initializing telegram notifier: %w", err)
		}
		n = tg
	case NotifyTwitter:
		tw, err := notifier.NewTwitterNotifier(cmd.Context(), cfg.Notify.TwitterCredentials(), cfg.Notify.Interval)
		if err != nil {
			return fmt.Errorf("initializing twitter notifier: %w", err)
		}
		n = tw
	}

	if err := n.Notify(cmd.Context(), records); err != nil {
		return fmt.Errorf("sending notifications: %w", err)
	}
	return nil
}

// buildFilter assembles the record filter from the filter flags
func buildFilter(f *flags) (*filter.Filter, error) {
	recFilter := filter.NewFilter()
	if f.days != "" {
		days, err := filter.ParseDays(f.days)
		if err != nil {
			return nil, fmt.Errorf("invalid --days: %w", err)
		}
		recFilter.Days = days
	}
	recFilter.Venues = nonBlank(f.venues)
	recFilter.Keywords = nonBlank(f.keywords)
	recFilter.FreeOnly = f.freeOnly
	return recFilter, nil
}

// nonBlank trims values and drops the empty ones
func nonBlank(values []string) []string {
	out := []string{}
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// loadLines reads the page's visible text lines from the configured source
func loadLines(ctx context.Context, stdin io.Reader, cfg *config.Config, f *flags) ([]string, error) {
	if f.input == "" {
		sc := scraper.NewWithConfig(cfg.Fetch.ScraperConfig())

		start := time.Now()
		lines, err := sc.FetchLines(ctx, f.url)
		logger.RecordTiming("fetch", time.Since(start))
		if err != nil {
			logger.Error("Fetch failed", logger.Fields{"url": f.url}, err)
			return nil, fmt.Errorf("fetching page: %w", err)
		}
		logger.IncrCounter("pages.fetched")
		return lines, nil
	}

	r := stdin
	if f.input != "-" {
		file, err := os.Open(f.input)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer file.Close()
		r = file
	}

	switch strings.ToLower(f.inputFormat) {
	case InputText:
		return scraper.ReadLines(r)
	case InputHTML:
		return scraper.ParseLines(r)
	default:
		return nil, fmt.Errorf("invalid input format: %s (must be 'text' or 'html')", f.inputFormat)
	}
}

// track diffs records against the stored snapshot for source and saves the new one
func track(dataDir, source string, records []*event.Record) ([]*event.Record, error) {
	store, err := storage.New(dataDir)
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}

	previous, err := store.LoadSnapshot(source)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	fresh := event.Diff(previous, records)

	if err := store.CreateSnapshotFromRecords(previous, records, source); err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}
	return fresh, nil
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := NewRootCmd().ExecuteContext(ctx)
	switch {
	case err == nil:
		os.Exit(ExitSuccess)
	case errors.Is(err, errNewEvents):
		os.Exit(ExitNewEvents)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
