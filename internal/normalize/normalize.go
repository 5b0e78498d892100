// Package normalize holds the value-cleanup primitives shared by the field
// extractors and the schema mapper: date reordering, whitespace collapsing,
// and the sentinel-aware sanitizer that keeps missing-data markers out of the
// business schema.
package normalize

import (
	"regexp"
	"strings"

	"claimtab/internal/domain"
)

// DateOrder declares the part order of a slash-delimited input date.
type DateOrder string

const (
	// DayMonthYear covers OVH dates (31/12/24).
	DayMonthYear DateOrder = "dmy"
	// MonthDayYear covers BPH dates (12/31/24).
	MonthDayYear DateOrder = "mdy"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// CollapseWhitespace replaces every run of whitespace (newlines included)
// with a single space and trims the ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// ConvertDate reorders a slash-delimited three-part date to M/D/YY. A
// 2-digit year passes through (reordered for dmy input); longer years keep
// their last two digits. Sentinels, empty strings, and anything not made of
// exactly three parts are returned unchanged.
func ConvertDate(dateStr string, order DateOrder) string {
	if dateStr == "" || dateStr == domain.NotExtracted {
		return dateStr
	}

	s := strings.TrimSpace(dateStr)
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return s
	}

	switch order {
	case DayMonthYear:
		day, month, year := parts[0], parts[1], parts[2]
		if len(year) == 2 {
			return month + "/" + day + "/" + year
		}
		return month + "/" + day + "/" + lastTwo(year)
	case MonthDayYear:
		month, day, year := parts[0], parts[1], parts[2]
		if len(year) == 2 {
			return s
		}
		return month + "/" + day + "/" + lastTwo(year)
	}

	return s
}

func lastTwo(year string) string {
	if len(year) <= 2 {
		return year
	}
	return year[len(year)-2:]
}

// SafeValue is the single chokepoint between extracted values and the
// business schema. It returns "" for values carrying a missing-data sentinel
// (substring match, as the shipped system did) and for empty/whitespace-only
// values; otherwise the trimmed value. Sentinels never leak into the target
// schema as literal text.
func SafeValue(raw string) string {
	if strings.Contains(raw, domain.NotExtracted) || strings.Contains(raw, domain.ExtractionFailed) {
		return ""
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return trimmed
}
