package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payminder/internal/models"
)

func TestExtractAmountVariants(t *testing.T) {
	cases := []struct {
		input    string
		expected float64
	}{
		{"pay the bill $12.50 please", 12.50},
		{"an amount of $12.50 is due", 12.50},
		{"send 12.50 dollars to the landlord", 12.50},
		{"pay $12.50 before friday", 12.50},
		{"electricity bill $150 by August 15", 150},
		{"no money mentioned here", 0},
	}

	for _, tc := range cases {
		fields := ExtractFields(tc.input, testNow)
		assert.Equal(t, tc.expected, fields.Amount, "input %q", tc.input)
	}
}

func TestExtractDueDate(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"pay rent by August 15", "2026-08-15 09:00:00+00:00"},
		{"pay rent on 9/3/2026", "2026-09-03 09:00:00+00:00"},
		{"pay rent due 2026-09-03", "2026-09-03 09:00:00+00:00"},
		{"pay rent tomorrow", "2026-09-01 14:30:05+00:00"},
		{"pay rent in 3 days", "2026-09-03 14:30:05+00:00"},
		// no date at all falls back to tomorrow
		{"pay rent", "2026-09-01 14:30:05+00:00"},
	}

	for _, tc := range cases {
		fields := ExtractFields(tc.input, testNow)
		assert.Equal(t, tc.expected, fields.DueDate, "input %q", tc.input)
	}
}

func TestExtractCategory(t *testing.T) {
	cases := []struct {
		input    string
		expected models.Category
	}{
		{"reminder for rent next week", models.CategoryRent},
		{"electricity bill $150", models.CategoryElectricity},
		{"pay the credit card bill", models.CategoryCreditCard},
		{"category insurance, due tomorrow", models.CategoryInsurance},
		{"pay the gardener tomorrow", ""},
	}

	for _, tc := range cases {
		fields := ExtractFields(tc.input, testNow)
		assert.Equal(t, tc.expected, fields.Category, "input %q", tc.input)
	}
}

func TestExtractRecurrence(t *testing.T) {
	cases := []struct {
		input      string
		recurrence models.Recurrence
		customDays int
	}{
		{"monthly payment for rent", models.RecurrenceMonthly, 0},
		{"weekly reminder for groceries", models.RecurrenceWeekly, 0},
		{"every 2 weeks", models.RecurrenceCustom, 14},
		{"repeat 3 months", models.RecurrenceCustom, 90},
		{"every 1 year", models.RecurrenceCustom, 365},
		{"every 10 days", models.RecurrenceCustom, 10},
		{"one-off payment", "", 0},
		// fixed keyword form wins over the numeric form
		{"monthly payment every 45 days", models.RecurrenceMonthly, 0},
	}

	for _, tc := range cases {
		fields := ExtractFields(tc.input, testNow)
		assert.Equal(t, tc.recurrence, fields.Recurrence, "input %q", tc.input)
		assert.Equal(t, tc.customDays, fields.CustomRecurrenceDays, "input %q", tc.input)
	}
}

func TestExtractTitleCleaning(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"pay netflix $15.99 monthly payment on september 1", "netflix monthly"},
		{"pay the gym membership tomorrow", "the gym membership"},
		// everything stripped away falls back to the category default
		{"pay electricity bill $150 by August 15", "Electricity Payment"},
		// nothing left and no category falls back to the literal default
		{"pay $20 tomorrow", "Payment Reminder"},
	}

	for _, tc := range cases {
		fields := ExtractFields(tc.input, testNow)
		assert.Equal(t, tc.expected, fields.Title, "input %q", tc.input)
	}
}

func TestExtractFieldsEndToEnd(t *testing.T) {
	fields := ExtractFields("to pay electricity bill $150 by August 15", testNow)

	assert.Equal(t, 150.0, fields.Amount)
	assert.Equal(t, "2026-08-15 09:00:00+00:00", fields.DueDate)
	assert.Equal(t, models.CategoryElectricity, fields.Category)
	assert.Empty(t, fields.Recurrence)
	assert.Zero(t, fields.CustomRecurrenceDays)
	// "electricity" and "bill" are both stripped from the title, so the
	// category-derived default kicks in
	assert.Equal(t, "Electricity Payment", fields.Title)
}

func TestExtractFieldsIsIdempotent(t *testing.T) {
	phrase := "pay credit card bill $320.50 by September 10 monthly payment"

	first := ExtractFields(phrase, testNow)
	second := ExtractFields(phrase, testNow)

	require.Equal(t, first, second)
}
