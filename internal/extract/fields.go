package extract

import (
	"regexp"
	"strings"
)

var labelPatterns = map[string]*regexp.Regexp{
	"Date":    labeledValuePattern("Date"),
	"Address": labeledValuePattern("Address"),
	"Price":   labeledValuePattern("Price"),
}

// \p{Zs} covers the no-break space that "&nbsp;" renders to.
func labeledValuePattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `:[\s\p{Zs}]*([^|]+?)(?:[\s\p{Zs}]*\||$)`)
}

// LabeledValue returns the value following "label:" on block line idx, up to the
// first "|" or the end of the line. It returns "" when idx is negative or the
// line carries no value.
func LabeledValue(block []string, idx int, label string) string {
	if idx < 0 || idx >= len(block) {
		return ""
	}
	re, ok := labelPatterns[label]
	if !ok {
		re = labeledValuePattern(label)
	}
	m := re.FindStringSubmatch(block[idx])
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
