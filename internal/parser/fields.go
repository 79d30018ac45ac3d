package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"payminder/internal/models"
)

// ExtractedFields is the structured result of parsing a reminder phrase.
// Title and DueDate are always populated; the rest default to their zero
// values when no pattern matches.
type ExtractedFields struct {
	Title                string
	Amount               float64
	DueDate              string
	Category             models.Category
	Recurrence           models.Recurrence
	CustomRecurrenceDays int
}

const monthNames = `january|february|march|april|may|june|july|august|september|october|november|december`

// Each cascade below is an ordered pattern list evaluated first-match-wins.

var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$(\d+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)amount\s+(?:of\s+)?\$?(\d+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)(\d+(?:\.\d{2})?)\s*dollars?`),
	regexp.MustCompile(`(?i)pay\s+\$?(\d+(?:\.\d{2})?)`),
}

// datePattern pairs a matcher with the function that turns its captured
// fragment into a timestamp.
type datePattern struct {
	re      *regexp.Regexp
	resolve func(fragment string, now time.Time) string
}

var datePatterns = []datePattern{
	{regexp.MustCompile(`(?i)(?:on|by|due)\s+((?:` + monthNames + `)\s+\d{1,2}(?:,?\s+\d{4})?)`), ResolveDate},
	{regexp.MustCompile(`(?i)(?:on|by|due)\s+(\d{1,2}[-/]\d{1,2}(?:[-/]\d{2,4})?)`), ResolveDate},
	{regexp.MustCompile(`(?i)(?:on|by|due)\s+(\d{4}-\d{1,2}-\d{1,2})`), ResolveDate},
	{regexp.MustCompile(`(?i)(tomorrow|today|next\s+week|next\s+month)`), ResolveDate},
	{regexp.MustCompile(`(?i)(?:in\s+)?(\d+)\s+days?`), resolveDayOffset},
}

func resolveDayOffset(fragment string, now time.Time) string {
	days, err := strconv.Atoi(fragment)
	if err != nil {
		return ResolveDate("tomorrow", now)
	}
	return FormatTimestamp(now.AddDate(0, 0, days))
}

const categoryVocabulary = `rent|electricity|water|gas|credit\s+card|loan|mortgage|insurance|subscription|phone|internet`

var categoryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:for|category)\s+(` + categoryVocabulary + `)`),
	regexp.MustCompile(`(?i)(` + categoryVocabulary + `)\s+(?:payment|bill)`),
}

var (
	fixedRecurrenceRe  = regexp.MustCompile(`(?i)(daily|weekly|monthly|yearly)\s+(?:reminder|payment)`)
	customRecurrenceRe = regexp.MustCompile(`(?i)(?:every|repeat)\s+(\d+)\s+(days?|weeks?|months?|years?)`)
)

var titleStripRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:create|add|set|new|reminder|for|to|pay|payment|bill)\b`),
	regexp.MustCompile(`(?i)\$?\d+(?:\.\d{2})?\s*(?:dollars?)?`),
	regexp.MustCompile(`(?i)\b(?:on|by|due|tomorrow|today|next\s+week|next\s+month)\b.*`),
	regexp.MustCompile(`\d{1,2}[-/]\d{1,2}(?:[-/]\d{2,4})?`),
	regexp.MustCompile(`(?i)(?:` + monthNames + `)\s+\d{1,2}(?:,?\s+\d{4})?`),
	regexp.MustCompile(`(?i)in\s+\d+\s+days?`),
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// ExtractFields pulls amount, due date, category, recurrence and a cleaned
// title out of a reminder-describing phrase. Pure function of the phrase
// and now; failed sub-extractions fall back to defaults instead of erroring.
func ExtractFields(phrase string, now time.Time) ExtractedFields {
	fields := ExtractedFields{
		Amount:  extractAmount(phrase),
		DueDate: extractDueDate(phrase, now),
	}
	fields.Category = extractCategory(phrase)
	fields.Recurrence, fields.CustomRecurrenceDays = extractRecurrence(phrase)
	fields.Title = extractTitle(phrase, fields.Category)
	return fields
}

func extractAmount(phrase string) float64 {
	for _, re := range amountPatterns {
		match := re.FindStringSubmatch(phrase)
		if match == nil {
			continue
		}
		amount, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		return amount
	}
	return 0
}

func extractDueDate(phrase string, now time.Time) string {
	for _, p := range datePatterns {
		if match := p.re.FindStringSubmatch(phrase); match != nil {
			return p.resolve(match[1], now)
		}
	}
	return ResolveDate("tomorrow", now)
}

func extractCategory(phrase string) models.Category {
	for _, re := range categoryPatterns {
		if match := re.FindStringSubmatch(phrase); match != nil {
			if category, ok := models.ParseCategory(whitespaceRe.ReplaceAllString(match[1], " ")); ok {
				return category
			}
		}
	}
	return ""
}

func extractRecurrence(phrase string) (models.Recurrence, int) {
	if match := fixedRecurrenceRe.FindStringSubmatch(phrase); match != nil {
		recurrence, _ := models.ParseRecurrence(match[1])
		return recurrence, 0
	}

	match := customRecurrenceRe.FindStringSubmatch(phrase)
	if match == nil {
		return "", 0
	}

	count, err := strconv.Atoi(match[1])
	if err != nil {
		return "", 0
	}

	unit := strings.ToLower(match[2])
	switch {
	case strings.HasPrefix(unit, "week"):
		count *= 7
	case strings.HasPrefix(unit, "month"):
		count *= 30
	case strings.HasPrefix(unit, "year"):
		count *= 365
	}
	return models.RecurrenceCustom, count
}

func extractTitle(phrase string, category models.Category) string {
	title := phrase
	for _, re := range titleStripRes {
		title = re.ReplaceAllString(title, "")
	}

	if category != "" {
		categoryRe, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(category.Spaced()))
		if err == nil {
			title = categoryRe.ReplaceAllString(title, "")
		}
	}

	title = whitespaceRe.ReplaceAllString(title, " ")
	title = strings.TrimSpace(title)
	title = strings.Trim(title, ".,!?")

	if title != "" {
		return title
	}
	if category != "" {
		return category.Display() + " Payment"
	}
	return "Payment Reminder"
}
