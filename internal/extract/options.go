package extract

// Default tuning values.
const (
	DefaultLinesBefore        = 8
	DefaultLinesAfter         = 15
	DefaultMaxEvents          = 3
	DefaultMaxDescription     = 500
	DefaultLongDescription    = 100
	DefaultMinDescriptionLine = 30
	DefaultMaxJoinedLines     = 3
)

// Options holds the tuning parameters of the extraction heuristics.
// Zero or negative fields fall back to the defaults.
type Options struct {
	// LinesBefore is how many lines above an anchor a block may start.
	LinesBefore int
	// LinesAfter is how many lines below an anchor a block may extend.
	LinesAfter int
	// MaxEvents caps the number of records returned.
	MaxEvents int
	// MaxDescription is the description length cap, in characters.
	MaxDescription int
	// LongDescription is the length above which a single line is used as the whole description.
	LongDescription int
	// MinDescriptionLine is the length a line must exceed to count as description prose.
	MinDescriptionLine int
	// MaxJoinedLines is how many short prose lines are joined when no long line exists.
	MaxJoinedLines int
}

// DefaultOptions returns the documented tuning values.
func DefaultOptions() Options {
	return Options{
		LinesBefore:        DefaultLinesBefore,
		LinesAfter:         DefaultLinesAfter,
		MaxEvents:          DefaultMaxEvents,
		MaxDescription:     DefaultMaxDescription,
		LongDescription:    DefaultLongDescription,
		MinDescriptionLine: DefaultMinDescriptionLine,
		MaxJoinedLines:     DefaultMaxJoinedLines,
	}
}

func (o Options) normalize() Options {
	d := DefaultOptions()
	if o.LinesBefore <= 0 {
		o.LinesBefore = d.LinesBefore
	}
	if o.LinesAfter <= 0 {
		o.LinesAfter = d.LinesAfter
	}
	if o.MaxEvents <= 0 {
		o.MaxEvents = d.MaxEvents
	}
	if o.MaxDescription <= 0 {
		o.MaxDescription = d.MaxDescription
	}
	if o.LongDescription <= 0 {
		o.LongDescription = d.LongDescription
	}
	if o.MinDescriptionLine <= 0 {
		o.MinDescriptionLine = d.MinDescriptionLine
	}
	if o.MaxJoinedLines <= 0 {
		o.MaxJoinedLines = d.MaxJoinedLines
	}
	return o
}
