package extract

import "sort"

const venueLookback = 3

// VenueName picks the venue from the last few lines above the date line,
// skipping the line already chosen as the event name. Lines naming a kind of
// venue rank first; among equals the line closest to the date line wins.
func VenueName(block []string, dateIdx int, name string) string {
	if dateIdx <= 0 || dateIdx > len(block) {
		return ""
	}

	from := max(0, dateIdx-venueLookback)
	candidates := make([]candidate, 0, venueLookback)
	for i, line := range block[from:dateIdx] {
		if !between(length(line), 3, 100) || containsAny(line, fieldLabels) || line == name {
			continue
		}
		candidates = append(candidates, candidate{line: line, pos: i, cue: IsVenueKeyword(line)})
	}
	if len(candidates) == 0 {
		return ""
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].cue != candidates[j].cue {
			return candidates[i].cue
		}
		return candidates[i].pos > candidates[j].pos
	})
	return candidates[0].line
}
