package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	anchorPattern       = regexp.MustCompile(`(?i)Date:[\s\p{Zs}]*(Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday|Various)`)
	capitalizedSentence = regexp.MustCompile(`^[A-Z][^.]{15,80}$`)
	titleShape          = regexp.MustCompile(`^[A-Z][^.]{0,80}$`)
	weekenderPrefix     = regexp.MustCompile(`^\[SH Weekender\]`)
	yearPrefix          = regexp.MustCompile(`^\d{4}年`)
	venueKeywordPattern = regexp.MustCompile(`(?i)Theatre|Theater|Hall|Base|Gallery|Museum|Space|Club|Venue|Academy|School|Pizza Bar|Residence|Cultural|Palace|Concert Hall`)
	fieldLabels         = []string{"Date:", "Address:", "Price:"}
	boilerplateLabels   = []string{"Date:", "Address:", "Price:", "All Details"}
)

// length counts characters, not bytes.
func length(s string) int {
	return utf8.RuneCountInString(s)
}

func between(n, lo, hi int) bool {
	return n > lo && n < hi
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// IsAnchorLine reports whether line announces an event date.
func IsAnchorLine(line string) bool {
	return anchorPattern.MatchString(line)
}

// HasByOrAt reports whether line reads like "<title> by <artist>" or "<title> at <venue>".
func HasByOrAt(line string) bool {
	return strings.Contains(line, " by ") || strings.Contains(line, " at ")
}

// IsCapitalizedSentence reports whether line starts with a capital letter and
// runs 16 to 81 characters without a period.
func IsCapitalizedSentence(line string) bool {
	return capitalizedSentence.MatchString(line)
}

// IsTitleLike reports whether line is a short heading rather than prose.
func IsTitleLike(line string) bool {
	return length(line) < 100 && titleShape.MatchString(line) && !strings.Contains(line, ",")
}

// LooksLikeNextTitle reports whether line is probably the title of the following event.
// It can fire on ordinary prose; description scanning stops there regardless.
func LooksLikeNextTitle(line string) bool {
	if !between(length(line), 15, 100) {
		return false
	}
	return HasByOrAt(line) || IsCapitalizedSentence(line)
}

// IsBoilerplate reports whether line is a field label, navigation text or site branding.
func IsBoilerplate(line string) bool {
	if containsAny(line, boilerplateLabels) {
		return true
	}
	if strings.HasPrefix(line, "[SH") {
		return true
	}
	return strings.Contains(strings.ToLower(line), "smartshanghai")
}

// IsVenueKeyword reports whether line names a kind of venue.
func IsVenueKeyword(line string) bool {
	return venueKeywordPattern.MatchString(line)
}

func isNameNoise(line string) bool {
	if containsAny(line, boilerplateLabels) {
		return true
	}
	if weekenderPrefix.MatchString(line) || yearPrefix.MatchString(line) {
		return true
	}
	return strings.Contains(strings.ToLower(line), "smartshanghai 2026")
}

// truncate cuts s to at most max characters.
func truncate(s string, max int) string {
	if length(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
