package database

import (
	"context"
	"database/sql"
	"strings"

	"payminder/internal/models"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const reminderColumns = `id, title, amount, due_date, category, recurrence, custom_recurrence_days, is_done, created_at`

// Create inserts a reminder. Absent optional fields stay NULL in the row.
func (r *Repository) Create(ctx context.Context, reminder *models.Reminder) (*models.Reminder, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO payment_reminders (title, amount, due_date, category, recurrence, custom_recurrence_days, is_done)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE)
		RETURNING id, created_at
	`, reminder.Title, reminder.Amount, reminder.DueDate,
		reminder.Category, reminder.Recurrence, reminder.CustomRecurrenceDays,
	).Scan(&reminder.ID, &reminder.CreatedAt)
	if err != nil {
		return nil, err
	}
	return reminder, nil
}

// List returns reminders ordered by due date, pending-only unless
// includeDone is set.
func (r *Repository) List(ctx context.Context, includeDone bool) ([]models.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM payment_reminders`
	if !includeDone {
		query += ` WHERE is_done = FALSE`
	}
	query += ` ORDER BY due_date ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		var rem models.Reminder
		if err := scanReminder(rows, &rem); err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*models.Reminder, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+reminderColumns+` FROM payment_reminders WHERE id = $1`, id)

	var rem models.Reminder
	if err := scanReminder(row, &rem); err != nil {
		return nil, err
	}
	return &rem, nil
}

// DeleteByTitle removes reminders whose title contains the query
// (case-insensitive); when nothing matches it retries with an exact
// case-insensitive equality match. Returns the deleted titles.
func (r *Repository) DeleteByTitle(ctx context.Context, title string) ([]string, error) {
	deleted, err := r.collectTitles(ctx,
		`DELETE FROM payment_reminders WHERE title ILIKE '%' || $1 || '%' RETURNING title`, title)
	if err != nil {
		return nil, err
	}
	if len(deleted) > 0 {
		return deleted, nil
	}
	return r.collectTitles(ctx,
		`DELETE FROM payment_reminders WHERE LOWER(title) = LOWER($1) RETURNING title`, title)
}

// MarkDoneByTitle flags matching reminders as done, with the same
// partial-then-exact matching as DeleteByTitle.
func (r *Repository) MarkDoneByTitle(ctx context.Context, title string) ([]string, error) {
	updated, err := r.collectTitles(ctx,
		`UPDATE payment_reminders SET is_done = TRUE WHERE title ILIKE '%' || $1 || '%' RETURNING title`, title)
	if err != nil {
		return nil, err
	}
	if len(updated) > 0 {
		return updated, nil
	}
	return r.collectTitles(ctx,
		`UPDATE payment_reminders SET is_done = TRUE WHERE LOWER(title) = LOWER($1) RETURNING title`, title)
}

func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payment_reminders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *Repository) MarkDoneByID(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `UPDATE payment_reminders SET is_done = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SuggestTitles returns up to limit stored titles sharing at least one
// word with the failed query, as a correction hint.
func (r *Repository) SuggestTitles(ctx context.Context, query string, limit int) ([]string, error) {
	titles, err := r.collectTitles(ctx, `SELECT title FROM payment_reminders`)
	if err != nil {
		return nil, err
	}

	words := strings.Fields(strings.ToLower(query))
	var suggestions []string
	for _, title := range titles {
		lower := strings.ToLower(title)
		for _, word := range words {
			if strings.Contains(lower, word) {
				suggestions = append(suggestions, title)
				break
			}
		}
		if len(suggestions) >= limit {
			break
		}
	}
	return suggestions, nil
}

func (r *Repository) collectTitles(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		titles = append(titles, title)
	}
	return titles, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReminder(row rowScanner, rem *models.Reminder) error {
	return row.Scan(
		&rem.ID, &rem.Title, &rem.Amount, &rem.DueDate,
		&rem.Category, &rem.Recurrence, &rem.CustomRecurrenceDays,
		&rem.IsDone, &rem.CreatedAt,
	)
}
