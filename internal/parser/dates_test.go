package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, time.August, 31, 14, 30, 5, 0, time.UTC)

func TestResolveDateRelativeKeywords(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"today", "2026-08-31 14:30:05+00:00"},
		{"tomorrow", "2026-09-01 14:30:05+00:00"},
		{"next week", "2026-09-07 14:30:05+00:00"},
		{"next month", "2026-09-30 14:30:05+00:00"},
		{"sometime TODAY please", "2026-08-31 14:30:05+00:00"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, ResolveDate(tc.input, testNow), "input %q", tc.input)
	}
}

func TestResolveDateTodayTomorrowDiffer(t *testing.T) {
	today := ResolveDate("today", testNow)
	tomorrow := ResolveDate("tomorrow", testNow)

	assert.NotEqual(t, today, tomorrow)
	assert.Equal(t, "2026-08-31", today[:10])
	assert.Equal(t, "2026-09-01", tomorrow[:10])
}

func TestResolveDateCalendarStrings(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		// date-only values default to 09:00
		{"August 15", "2026-08-15 09:00:00+00:00"},
		{"august 15, 2027", "2027-08-15 09:00:00+00:00"},
		{"2026-09-03", "2026-09-03 09:00:00+00:00"},
		{"9/3/2026", "2026-09-03 09:00:00+00:00"},
		// day-first fallback when the first number cannot be a month
		{"15/8", "2026-08-15 09:00:00+00:00"},
		// explicit time is preserved
		{"August 15 3pm", "2026-08-15 15:00:00+00:00"},
		{"August 15 3:30PM", "2026-08-15 15:30:00+00:00"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, ResolveDate(tc.input, testNow), "input %q", tc.input)
	}
}

func TestResolveDateFallbackToTomorrow(t *testing.T) {
	got := ResolveDate("whenever you feel like it", testNow)
	assert.Equal(t, "2026-09-01 14:30:05+00:00", got)
}

func TestFormatTimestampSuffixIsLiteral(t *testing.T) {
	bangkok := time.FixedZone("ICT", 7*3600)
	got := FormatTimestamp(time.Date(2026, time.August, 31, 9, 0, 0, 0, bangkok))

	// wall-clock time is kept as-is, the offset suffix is never computed
	assert.Equal(t, "2026-08-31 09:00:00+00:00", got)
}
