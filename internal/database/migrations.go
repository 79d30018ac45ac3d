package database

import "database/sql"

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS payment_reminders (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		due_date TEXT NOT NULL,
		category TEXT,
		recurrence TEXT,
		custom_recurrence_days INTEGER,
		is_done BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TEXT NOT NULL DEFAULT TO_CHAR(NOW(), 'YYYY-MM-DD HH24:MI:SS')
	);

	CREATE INDEX IF NOT EXISTS idx_payment_reminders_due_date ON payment_reminders(due_date);
	CREATE INDEX IF NOT EXISTS idx_payment_reminders_is_done ON payment_reminders(is_done);
	`

	_, err := db.Exec(schema)
	return err
}
