package database

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payminder/internal/models"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestCreateReminder(t *testing.T) {
	repo, mock := newMockRepo(t)

	reminder := &models.Reminder{
		Title:   "Netflix",
		Amount:  15.99,
		DueDate: "2026-09-01 09:00:00+00:00",
		Category: sql.NullString{
			String: "subscription",
			Valid:  true,
		},
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payment_reminders")).
		WithArgs("Netflix", 15.99, "2026-09-01 09:00:00+00:00", "subscription", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
			AddRow(int64(7), "2026-08-31 14:30:05"))

	created, err := repo.Create(context.Background(), reminder)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "2026-08-31 14:30:05", created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPendingOnly(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{
		"id", "title", "amount", "due_date", "category", "recurrence",
		"custom_recurrence_days", "is_done", "created_at",
	}).
		AddRow(int64(1), "Rent", 1200.0, "2026-09-01 09:00:00+00:00", "rent", nil, nil, false, "2026-08-30 10:00:00").
		AddRow(int64(2), "Gym", 40.0, "2026-09-05 09:00:00+00:00", nil, "monthly", nil, false, "2026-08-30 11:00:00")

	mock.ExpectQuery(regexp.QuoteMeta("WHERE is_done = FALSE ORDER BY due_date ASC")).
		WillReturnRows(rows)

	reminders, err := repo.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, reminders, 2)
	assert.Equal(t, "Rent", reminders[0].Title)
	assert.Equal(t, "rent", reminders[0].Category.String)
	assert.False(t, reminders[0].Recurrence.Valid)
	assert.Equal(t, "monthly", reminders[1].Recurrence.String)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByTitleFallsBackToExactMatch(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM payment_reminders WHERE title ILIKE")).
		WithArgs("netflix").
		WillReturnRows(sqlmock.NewRows([]string{"title"}))
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM payment_reminders WHERE LOWER(title) = LOWER($1)")).
		WithArgs("netflix").
		WillReturnRows(sqlmock.NewRows([]string{"title"}).AddRow("netflix"))

	deleted, err := repo.DeleteByTitle(context.Background(), "netflix")
	require.NoError(t, err)
	assert.Equal(t, []string{"netflix"}, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkDoneByTitlePartialMatch(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE payment_reminders SET is_done = TRUE WHERE title ILIKE")).
		WithArgs("rent").
		WillReturnRows(sqlmock.NewRows([]string{"title"}).AddRow("Rent").AddRow("Rent insurance"))

	updated, err := repo.MarkDoneByTitle(context.Background(), "rent")
	require.NoError(t, err)
	assert.Equal(t, []string{"Rent", "Rent insurance"}, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSuggestTitlesByWordOverlap(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT title FROM payment_reminders")).
		WillReturnRows(sqlmock.NewRows([]string{"title"}).
			AddRow("Netflix subscription").
			AddRow("Rent").
			AddRow("Water bill"))

	suggestions, err := repo.SuggestTitles(context.Background(), "netflix sub", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Netflix subscription"}, suggestions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM payment_reminders WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteByID(context.Background(), 42)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
