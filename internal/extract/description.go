package extract

import "strings"

// Description gathers the prose below the price line of a block.
//
// Scanning stops at the next anchor line, or at a line from the second one onward
// that looks like the title of the following event. Within that range, lines that
// are short, labeled, branded or heading-shaped are skipped. A single long line
// wins outright; otherwise the first few remaining lines are joined.
func (o Options) Description(block []string, priceIdx int) string {
	if priceIdx < 0 || priceIdx >= len(block) {
		return ""
	}
	o = o.normalize()

	end := descriptionEnd(block, priceIdx)
	candidates := make([]string, 0, end-priceIdx)
	for _, line := range block[priceIdx+1 : end] {
		if o.isDescriptionLine(line) {
			candidates = append(candidates, line)
		}
	}

	for _, line := range candidates {
		if length(line) > o.LongDescription {
			return truncate(line, o.MaxDescription)
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	if len(candidates) > o.MaxJoinedLines {
		candidates = candidates[:o.MaxJoinedLines]
	}
	return truncate(strings.Join(candidates, " "), o.MaxDescription)
}

func descriptionEnd(block []string, priceIdx int) int {
	for idx := priceIdx + 1; idx < len(block); idx++ {
		line := block[idx]
		if IsAnchorLine(line) {
			return idx
		}
		if idx > priceIdx+1 && LooksLikeNextTitle(line) {
			return idx
		}
	}
	return len(block)
}

func (o Options) isDescriptionLine(line string) bool {
	if length(line) <= o.MinDescriptionLine {
		return false
	}
	if IsBoilerplate(line) {
		return false
	}
	return !IsTitleLike(line)
}
