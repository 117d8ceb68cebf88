package extract

// FindMarkers returns the indices of the anchor lines, in ascending order.
func FindMarkers(lines []string) []int {
	markers := make([]int, 0)
	for i, line := range lines {
		if IsAnchorLine(line) {
			markers = append(markers, i)
		}
	}
	return markers
}
