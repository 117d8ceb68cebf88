package extract

import "sort"

type candidate struct {
	line     string
	pos      int
	cue      bool
	runeSize int
}

// Name picks the event title from the lines above the date line.
// Lines reading "... by ..." or "... at ..." rank first, then longer lines;
// document order breaks remaining ties.
func Name(block []string, dateIdx int) string {
	if dateIdx <= 0 || dateIdx > len(block) {
		return ""
	}

	candidates := make([]candidate, 0, dateIdx)
	for i, line := range block[:dateIdx] {
		n := length(line)
		if !between(n, 15, 200) || isNameNoise(line) {
			continue
		}
		candidates = append(candidates, candidate{line: line, pos: i, cue: HasByOrAt(line), runeSize: n})
	}
	if len(candidates) == 0 {
		return ""
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].cue != candidates[j].cue {
			return candidates[i].cue
		}
		return candidates[i].runeSize > candidates[j].runeSize
	})
	return candidates[0].line
}
