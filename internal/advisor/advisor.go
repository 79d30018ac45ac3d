package advisor

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"payminder/internal/llm"
	"payminder/internal/models"
	"payminder/internal/parser"
)

const maxTitleSuggestions = 3

// ReminderStore is the slice of the repository the dispatcher needs.
type ReminderStore interface {
	Create(ctx context.Context, reminder *models.Reminder) (*models.Reminder, error)
	List(ctx context.Context, includeDone bool) ([]models.Reminder, error)
	DeleteByTitle(ctx context.Context, title string) ([]string, error)
	MarkDoneByTitle(ctx context.Context, title string) ([]string, error)
	SuggestTitles(ctx context.Context, query string, limit int) ([]string, error)
}

// Conversationalist is the free-form chat collaborator.
type Conversationalist interface {
	Chat(ctx context.Context, session *llm.Session, input string) (string, error)
}

// Advisor routes each utterance to a reminder command or the chat
// collaborator and formats the reply. Collaborator failures never escape;
// every branch degrades to a user-facing message.
type Advisor struct {
	store   ReminderStore
	chat    Conversationalist
	session *llm.Session
	log     *logrus.Logger
	now     func() time.Time
}

func New(store ReminderStore, chat Conversationalist, session *llm.Session, log *logrus.Logger) *Advisor {
	return &Advisor{
		store:   store,
		chat:    chat,
		session: session,
		log:     log,
		now:     time.Now,
	}
}

// Handle fully processes one utterance and returns the reply text.
func (a *Advisor) Handle(ctx context.Context, utterance string) string {
	intent := parser.Classify(utterance, a.now())

	switch intent.Action {
	case parser.ActionCreate:
		return a.handleCreate(ctx, intent.Fields)
	case parser.ActionDelete:
		return a.handleDelete(ctx, intent.Title)
	case parser.ActionMarkDone:
		return a.handleMarkDone(ctx, intent.Title)
	case parser.ActionList:
		return a.handleList(ctx, utterance)
	default:
		return a.handleConversation(ctx, utterance)
	}
}

func (a *Advisor) handleCreate(ctx context.Context, fields *parser.ExtractedFields) string {
	reminder := &models.Reminder{
		Title:   strings.TrimSpace(fields.Title),
		Amount:  fields.Amount,
		DueDate: fields.DueDate,
	}
	if fields.Category != "" {
		reminder.Category = sql.NullString{String: string(fields.Category), Valid: true}
	}
	if fields.Recurrence != "" {
		reminder.Recurrence = sql.NullString{String: string(fields.Recurrence), Valid: true}
	}
	if fields.CustomRecurrenceDays > 0 {
		reminder.CustomRecurrenceDays = sql.NullInt64{Int64: int64(fields.CustomRecurrenceDays), Valid: true}
	}

	created, err := a.store.Create(ctx, reminder)
	if err != nil {
		a.log.WithError(err).Error("failed to create reminder")
		return fmt.Sprintf("❌ Database error: %v Please try again with a different format.", err)
	}

	lines := []string{
		"✅ Reminder created successfully!",
		"📝 Title: " + created.Title,
		"📅 Due: " + formatDueDisplay(created.DueDate),
		fmt.Sprintf("💰 Amount: $%.2f", created.Amount),
	}
	if created.Category.Valid {
		category := models.Category(created.Category.String)
		lines = append(lines, "🏷️ Category: "+category.Display())
	}
	if created.Recurrence.Valid {
		lines = append(lines, formatRecurrence(created))
	}
	lines = append(lines, "\nIs there anything else I can help you with?")
	return strings.Join(lines, "\n")
}

func (a *Advisor) handleDelete(ctx context.Context, title string) string {
	deleted, err := a.store.DeleteByTitle(ctx, title)
	if err != nil {
		a.log.WithError(err).Error("failed to delete reminder")
		return fmt.Sprintf("❌ Database error: %v\n\nWould you like me to show you your current reminders?", err)
	}

	switch len(deleted) {
	case 0:
		if suggestions, err := a.store.SuggestTitles(ctx, title, maxTitleSuggestions); err == nil && len(suggestions) > 0 {
			return fmt.Sprintf("❌ No reminder found matching '%s'. Did you mean: %s?\n\nWould you like me to show you your current reminders?",
				title, strings.Join(suggestions, ", "))
		}
		return fmt.Sprintf("❌ No reminder found matching '%s'\n\nWould you like me to show you your current reminders?", title)
	case 1:
		return fmt.Sprintf("✅ Reminder '%s' deleted successfully!\n\nIs there anything else I can help you with?", deleted[0])
	default:
		return fmt.Sprintf("✅ %d reminders matching '%s' deleted successfully!\n\nIs there anything else I can help you with?", len(deleted), title)
	}
}

func (a *Advisor) handleMarkDone(ctx context.Context, title string) string {
	updated, err := a.store.MarkDoneByTitle(ctx, title)
	if err != nil {
		a.log.WithError(err).Error("failed to mark reminder done")
		return fmt.Sprintf("❌ Database error: %v\n\nWould you like me to show you your pending reminders?", err)
	}

	switch len(updated) {
	case 0:
		return fmt.Sprintf("❌ No reminder found matching '%s'\n\nWould you like me to show you your pending reminders?", title)
	case 1:
		return fmt.Sprintf("✅ Reminder '%s' marked as done!\n\nIs there anything else I can help you with?", updated[0])
	default:
		return fmt.Sprintf("✅ %d reminders marked as done!\n\nIs there anything else I can help you with?", len(updated))
	}
}

func (a *Advisor) handleList(ctx context.Context, utterance string) string {
	lower := strings.ToLower(utterance)
	includeDone := strings.Contains(lower, "all") || strings.Contains(lower, "completed")

	reminders, err := a.store.List(ctx, includeDone)
	if err != nil {
		a.log.WithError(err).Error("failed to list reminders")
		return fmt.Sprintf("❌ Database error: %v", err)
	}

	if len(reminders) == 0 {
		return "📋 You don't have any reminders set up yet. Would you like to create one?"
	}

	header := "📋 Your Reminders (pending only)"
	if includeDone {
		header = "📋 Your Reminders (including completed)"
	}

	entries := make([]string, 0, len(reminders))
	for i, r := range reminders {
		status := "🟡 Pending"
		if r.IsDone {
			status = "✅ Done"
		}
		lines := []string{
			fmt.Sprintf("%d. %s - 📝 %s", i+1, status, r.Title),
			"   📅 Due: " + formatDueDisplay(r.DueDate),
			fmt.Sprintf("   💰 Amount: $%.2f", r.Amount),
		}
		if r.Category.Valid {
			category := models.Category(r.Category.String)
			lines = append(lines, "   🏷️ Category: "+category.Display())
		}
		if r.Recurrence.Valid {
			lines = append(lines, "   "+formatRecurrence(&r))
		}
		entries = append(entries, strings.Join(lines, "\n"))
	}

	return header + "\n\n" + strings.Join(entries, "\n\n")
}

func (a *Advisor) handleConversation(ctx context.Context, utterance string) string {
	reply, err := a.chat.Chat(ctx, a.session, utterance)
	if err != nil {
		a.log.WithError(err).Error("chat collaborator failed")
		return fmt.Sprintf("⚠️ I encountered an error: %v\nPlease try again or rephrase your request.", err)
	}
	return reply
}

func formatRecurrence(r *models.Reminder) string {
	if r.Recurrence.String == string(models.RecurrenceCustom) && r.CustomRecurrenceDays.Valid {
		return fmt.Sprintf("🔄 Repeats every %d days", r.CustomRecurrenceDays.Int64)
	}
	return "🔄 Repeats " + r.Recurrence.String
}

// formatDueDisplay renders a stored timestamp for humans; unparseable
// values are shown verbatim.
func formatDueDisplay(dueDate string) string {
	trimmed := strings.TrimSuffix(dueDate, "+00:00")
	parsed, err := time.Parse("2006-01-02 15:04:05", trimmed)
	if err != nil {
		return dueDate
	}
	return parsed.Format("Jan 02, 2006 03:04 PM")
}
