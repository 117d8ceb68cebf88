package extract

import "strings"

// Block is the window of lines around one anchor.
// The *Idx fields are offsets into Lines, or -1 when no such line exists.
type Block struct {
	Start int // inclusive, in document coordinates
	End   int // exclusive, in document coordinates
	Lines []string

	DateIdx    int
	AddressIdx int
	PriceIdx   int
}

// Segment carves the block for the k-th marker. markers must be ascending
// indices into lines, as returned by FindMarkers.
func (o Options) Segment(lines []string, markers []int, k int) Block {
	o = o.normalize()
	d := markers[k]

	start := max(0, d-o.LinesBefore)
	var end int
	if k+1 < len(markers) {
		end = min(markers[k+1]-1, d+o.LinesAfter)
	} else {
		end = min(d+o.LinesAfter, len(lines))
	}
	end = min(max(end, start), len(lines))

	window := lines[start:end]
	return Block{
		Start:      start,
		End:        end,
		Lines:      window,
		DateIdx:    findLabel(window, "date:"),
		AddressIdx: findLabel(window, "address:"),
		PriceIdx:   findLabel(window, "price:"),
	}
}

// findLabel returns the offset of the first line containing label, ignoring case.
func findLabel(lines []string, label string) int {
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), label) {
			return i
		}
	}
	return -1
}
