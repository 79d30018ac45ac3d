package parser

import (
	"strings"
	"time"
)

// Timestamps are stored as UTC wall-clock with a fixed "+00:00" suffix.
// No timezone conversion happens anywhere in the parser.
const (
	timestampLayout = "2006-01-02 15:04:05"
	timestampSuffix = "+00:00"
)

// calendarLayouts is tried in order against a date fragment once the
// relative keywords have been ruled out. Month names match
// case-insensitively under time.Parse.
var calendarLayouts = []string{
	"January 2, 2006 3:04PM",
	"January 2, 2006 3:04pm",
	"January 2 2006 3:04PM",
	"January 2 3:04PM",
	"January 2 3:04pm",
	"January 2 3PM",
	"January 2 3pm",
	"January 2, 2006",
	"January 2 2006",
	"January 2",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-1-2",
	"1/2/2006",
	"1-2-2006",
	"1/2/06",
	"1-2-06",
	"1/2",
	"1-2",
	// day-first fallbacks for values like 15/8 where month-first fails
	"2/1/2006",
	"2-1-2006",
	"2/1",
	"2-1",
}

// FormatTimestamp renders t in the store's timestamp form.
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout) + timestampSuffix
}

// ResolveDate turns a natural-language date fragment into an absolute
// timestamp string. Relative keywords win over calendar parsing; a
// date-only fragment defaults to 09:00; anything unparseable falls back
// to now + 1 day.
func ResolveDate(text string, now time.Time) string {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "today"):
		return FormatTimestamp(now)
	case strings.Contains(lower, "tomorrow"):
		return FormatTimestamp(now.AddDate(0, 0, 1))
	case strings.Contains(lower, "next week"):
		return FormatTimestamp(now.AddDate(0, 0, 7))
	case strings.Contains(lower, "next month"):
		return FormatTimestamp(now.AddDate(0, 0, 30))
	}

	fragment := strings.TrimSpace(text)
	for _, layout := range calendarLayouts {
		parsed, err := time.Parse(layout, fragment)
		if err != nil {
			continue
		}

		year := parsed.Year()
		if year == 0 {
			year = now.Year()
		}

		hour, min, sec := parsed.Clock()
		if hour == 0 && min == 0 && sec == 0 {
			hour = 9
		}

		resolved := time.Date(year, parsed.Month(), parsed.Day(), hour, min, sec, 0, time.UTC)
		return FormatTimestamp(resolved)
	}

	return FormatTimestamp(now.AddDate(0, 0, 1))
}
