package extract

import "github.com/pfrederiksen/weekender-events/internal/event"

// Stats counts what happened during one extraction.
type Stats struct {
	Markers    int // anchor lines found in the document
	Blocks     int // blocks examined before the cap was reached
	Rejected   int // blocks without a name or an address
	Duplicates int // complete records dropped by the dedup key
}

// Extractor runs the extraction heuristics with a fixed set of Options.
type Extractor struct {
	opts Options
}

// New creates an Extractor. Unset option fields take their defaults.
func New(opts Options) *Extractor {
	return &Extractor{opts: opts.normalize()}
}

// Options returns the effective options.
func (e *Extractor) Options() Options {
	return e.opts
}

// Extract returns the event records found in lines using the default options.
func Extract(lines []string) []*event.Record {
	return New(DefaultOptions()).Extract(lines)
}

// Extract returns up to MaxEvents complete, distinct records in document order.
func (e *Extractor) Extract(lines []string) []*event.Record {
	records, _ := e.ExtractWithStats(lines)
	return records
}

// ExtractWithStats is Extract, also reporting counts for logging and metrics.
func (e *Extractor) ExtractWithStats(lines []string) ([]*event.Record, Stats) {
	markers := FindMarkers(lines)
	stats := Stats{Markers: len(markers)}

	records := make([]*event.Record, 0, e.opts.MaxEvents)
	seen := make(map[string]bool)

	for k := range markers {
		if len(records) >= e.opts.MaxEvents {
			break
		}
		stats.Blocks++

		rec := e.recordFor(e.opts.Segment(lines, markers, k))
		if !rec.Complete() {
			stats.Rejected++
			continue
		}

		key := rec.Key()
		if seen[key] {
			stats.Duplicates++
			continue
		}
		seen[key] = true
		records = append(records, rec)
	}

	return records, stats
}

// recordFor assembles the candidate record of one block.
func (e *Extractor) recordFor(b Block) *event.Record {
	name := Name(b.Lines, b.DateIdx)
	return &event.Record{
		Name:         name,
		VenueName:    VenueName(b.Lines, b.DateIdx, name),
		VenueAddress: LabeledValue(b.Lines, b.AddressIdx, "Address"),
		OpeningHours: LabeledValue(b.Lines, b.DateIdx, "Date"),
		Price:        LabeledValue(b.Lines, b.PriceIdx, "Price"),
		Description:  e.opts.Description(b.Lines, b.PriceIdx),
	}
}
