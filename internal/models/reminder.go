package models

import (
	"database/sql"
	"strings"
)

// Category is the fixed vocabulary of payment categories the parser
// recognizes. Multi-word categories are stored with underscores.
type Category string

const (
	CategoryRent         Category = "rent"
	CategoryElectricity  Category = "electricity"
	CategoryWater        Category = "water"
	CategoryGas          Category = "gas"
	CategoryCreditCard   Category = "credit_card"
	CategoryLoan         Category = "loan"
	CategoryMortgage     Category = "mortgage"
	CategoryInsurance    Category = "insurance"
	CategorySubscription Category = "subscription"
	CategoryPhone        Category = "phone"
	CategoryInternet     Category = "internet"
)

var categories = []Category{
	CategoryRent, CategoryElectricity, CategoryWater, CategoryGas,
	CategoryCreditCard, CategoryLoan, CategoryMortgage, CategoryInsurance,
	CategorySubscription, CategoryPhone, CategoryInternet,
}

// ParseCategory maps a raw string ("credit card" or "credit_card") to a
// known category. ok is false for anything outside the vocabulary, which
// keeps "unrecognized" distinct from "absent" (empty input).
func ParseCategory(s string) (Category, bool) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	for _, c := range categories {
		if string(c) == normalized {
			return c, true
		}
	}
	return "", false
}

// Spaced returns the human form of the category ("credit card").
func (c Category) Spaced() string {
	return strings.ReplaceAll(string(c), "_", " ")
}

// Display returns the title-cased human form ("Credit Card").
func (c Category) Display() string {
	words := strings.Fields(c.Spaced())
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Recurrence is a reminder's repetition schedule. RecurrenceCustom is
// always paired with a positive day count.
type Recurrence string

const (
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
	RecurrenceCustom  Recurrence = "custom"
)

// ParseRecurrence maps a raw string to a known recurrence keyword.
func ParseRecurrence(s string) (Recurrence, bool) {
	switch Recurrence(strings.ToLower(strings.TrimSpace(s))) {
	case RecurrenceDaily:
		return RecurrenceDaily, true
	case RecurrenceWeekly:
		return RecurrenceWeekly, true
	case RecurrenceMonthly:
		return RecurrenceMonthly, true
	case RecurrenceYearly:
		return RecurrenceYearly, true
	case RecurrenceCustom:
		return RecurrenceCustom, true
	}
	return "", false
}

// Reminder is a row in the payment_reminders table. Optional columns use
// sql.Null types so absent values stay NULL in the store.
type Reminder struct {
	ID                   int64          `json:"id"`
	Title                string         `json:"title"`
	Amount               float64        `json:"amount"`
	DueDate              string         `json:"due_date"`
	Category             sql.NullString `json:"category"`
	Recurrence           sql.NullString `json:"recurrence"`
	CustomRecurrenceDays sql.NullInt64  `json:"custom_recurrence_days"`
	IsDone               bool           `json:"is_done"`
	CreatedAt            string         `json:"created_at"`
}

// ReminderView is the JSON shape returned by the HTTP API.
type ReminderView struct {
	ID                   int64   `json:"id"`
	Title                string  `json:"title"`
	Amount               float64 `json:"amount"`
	DueDate              string  `json:"due_date"`
	Category             string  `json:"category,omitempty"`
	Recurrence           string  `json:"recurrence,omitempty"`
	CustomRecurrenceDays int64   `json:"custom_recurrence_days,omitempty"`
	IsDone               bool    `json:"is_done"`
	CreatedAt            string  `json:"created_at"`
}

func (r *Reminder) ToView() ReminderView {
	view := ReminderView{
		ID:        r.ID,
		Title:     r.Title,
		Amount:    r.Amount,
		DueDate:   r.DueDate,
		IsDone:    r.IsDone,
		CreatedAt: r.CreatedAt,
	}

	if r.Category.Valid {
		view.Category = r.Category.String
	}
	if r.Recurrence.Valid {
		view.Recurrence = r.Recurrence.String
	}
	if r.CustomRecurrenceDays.Valid {
		view.CustomRecurrenceDays = r.CustomRecurrenceDays.Int64
	}

	return view
}
