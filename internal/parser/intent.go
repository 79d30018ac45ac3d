package parser

import (
	"regexp"
	"strings"
	"time"
)

// Action is the classified user command.
type Action string

const (
	ActionCreate   Action = "create"
	ActionList     Action = "list"
	ActionDelete   Action = "delete"
	ActionMarkDone Action = "mark_done"
	ActionNone     Action = "none"
)

// Intent is the result of classifying one utterance. Fields is only set
// for ActionCreate; Title only for create/delete/mark_done.
type Intent struct {
	Action Action
	Title  string
	Fields *ExtractedFields
}

var deletePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:delete|remove|cancel)\s+reminder(?:\s*:\s*|\s+)(.+)`),
	regexp.MustCompile(`(?:delete|remove|cancel)\s+(.+?)(?:\s+reminder)?$`),
	regexp.MustCompile(`remove\s+(.+)`),
	regexp.MustCompile(`cancel\s+(.+)`),
}

var createPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:create|add|set|new)\s+reminder\s+(.+)`),
	regexp.MustCompile(`(?i)remind\s+me\s+(?:to\s+)?(.+)`),
	regexp.MustCompile(`(?i)set\s+(?:a\s+)?reminder\s+(.+)`),
	regexp.MustCompile(`(?i)add\s+reminder\s+(.+)`),
}

var (
	listKeywords     = []string{"list reminders", "show reminders", "my reminders", "view reminders"}
	markDoneKeywords = []string{"mark as done", "complete reminder", "payment done"}
	markDoneRe       = regexp.MustCompile(`(?:mark|complete)\s+(.+?)(?:\s+as\s+done)?$`)
	strayWordsRe     = regexp.MustCompile(`\b(?:reminder|the|my)\b`)
)

// Classify decides which reminder action an utterance requests. Decision
// order: delete, list, mark done, create, none. Panics inside the cascade
// are downgraded to ActionNone rather than propagated.
func Classify(utterance string, now time.Time) (intent Intent) {
	defer func() {
		if recover() != nil {
			intent = Intent{Action: ActionNone}
		}
	}()

	lower := strings.ToLower(utterance)

	for _, re := range deletePatterns {
		match := re.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		if title := stripStrayWords(match[1]); title != "" {
			return Intent{Action: ActionDelete, Title: title}
		}
		break
	}

	if containsAny(lower, listKeywords) {
		return Intent{Action: ActionList}
	}

	if containsAny(lower, markDoneKeywords) {
		if match := markDoneRe.FindStringSubmatch(lower); match != nil {
			if title := stripStrayWords(match[1]); title != "" {
				return Intent{Action: ActionMarkDone, Title: title}
			}
		}
	}

	for _, re := range createPatterns {
		if match := re.FindStringSubmatch(utterance); match != nil {
			fields := ExtractFields(match[1], now)
			return Intent{Action: ActionCreate, Title: fields.Title, Fields: &fields}
		}
	}

	return Intent{Action: ActionNone}
}

func stripStrayWords(title string) string {
	return strings.TrimSpace(strayWordsRe.ReplaceAllString(strings.TrimSpace(title), ""))
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
