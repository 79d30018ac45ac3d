package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"payminder/internal/models"
	"payminder/internal/parser"
)

// CreateReminderRequest is the POST /api/reminders payload. DueDate
// accepts the same natural-language forms as the chat parser.
type CreateReminderRequest struct {
	Title                string  `json:"title"`
	Amount               float64 `json:"amount"`
	DueDate              string  `json:"due_date"`
	Category             string  `json:"category"`
	Recurrence           string  `json:"recurrence"`
	CustomRecurrenceDays int64   `json:"custom_recurrence_days"`
}

// ListReminders handles GET /api/reminders. ?all=true includes completed
// reminders.
func (h *Handler) ListReminders(w http.ResponseWriter, r *http.Request) {
	includeDone := r.URL.Query().Get("all") == "true"

	reminders, err := h.repo.List(r.Context(), includeDone)
	if err != nil {
		h.log.WithError(err).Error("failed to list reminders")
		respondError(w, http.StatusInternalServerError, "failed to list reminders")
		return
	}

	views := make([]models.ReminderView, 0, len(reminders))
	for i := range reminders {
		views = append(views, reminders[i].ToView())
	}
	respondJSON(w, http.StatusOK, views)
}

// CreateReminder handles POST /api/reminders.
func (h *Handler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	var req CreateReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Amount < 0 {
		respondError(w, http.StatusBadRequest, "amount must not be negative")
		return
	}

	reminder := &models.Reminder{
		Title:   req.Title,
		Amount:  req.Amount,
		DueDate: parser.ResolveDate(req.DueDate, time.Now()),
	}

	if req.Category != "" {
		category, ok := models.ParseCategory(req.Category)
		if !ok {
			respondError(w, http.StatusBadRequest, "unrecognized category")
			return
		}
		reminder.Category = sql.NullString{String: string(category), Valid: true}
	}

	if req.Recurrence != "" {
		recurrence, ok := models.ParseRecurrence(req.Recurrence)
		if !ok {
			respondError(w, http.StatusBadRequest, "unrecognized recurrence")
			return
		}
		if recurrence == models.RecurrenceCustom && req.CustomRecurrenceDays <= 0 {
			respondError(w, http.StatusBadRequest, "custom recurrence requires a positive day count")
			return
		}
		reminder.Recurrence = sql.NullString{String: string(recurrence), Valid: true}
		if recurrence == models.RecurrenceCustom {
			reminder.CustomRecurrenceDays = sql.NullInt64{Int64: req.CustomRecurrenceDays, Valid: true}
		}
	}

	created, err := h.repo.Create(r.Context(), reminder)
	if err != nil {
		h.log.WithError(err).Error("failed to create reminder")
		respondError(w, http.StatusInternalServerError, "failed to create reminder")
		return
	}

	respondJSON(w, http.StatusCreated, created.ToView())
}

// GetReminder handles GET /api/reminders/{id}.
func (h *Handler) GetReminder(w http.ResponseWriter, r *http.Request) {
	id, ok := reminderID(w, r)
	if !ok {
		return
	}

	reminder, err := h.repo.GetByID(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		respondError(w, http.StatusNotFound, "reminder not found")
		return
	}
	if err != nil {
		h.log.WithError(err).Error("failed to load reminder")
		respondError(w, http.StatusInternalServerError, "failed to load reminder")
		return
	}

	respondJSON(w, http.StatusOK, reminder.ToView())
}

// DeleteReminder handles DELETE /api/reminders/{id}.
func (h *Handler) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	id, ok := reminderID(w, r)
	if !ok {
		return
	}

	err := h.repo.DeleteByID(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		respondError(w, http.StatusNotFound, "reminder not found")
		return
	}
	if err != nil {
		h.log.WithError(err).Error("failed to delete reminder")
		respondError(w, http.StatusInternalServerError, "failed to delete reminder")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkReminderDone handles PATCH /api/reminders/{id}/done.
func (h *Handler) MarkReminderDone(w http.ResponseWriter, r *http.Request) {
	id, ok := reminderID(w, r)
	if !ok {
		return
	}

	err := h.repo.MarkDoneByID(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		respondError(w, http.StatusNotFound, "reminder not found")
		return
	}
	if err != nil {
		h.log.WithError(err).Error("failed to mark reminder done")
		respondError(w, http.StatusInternalServerError, "failed to mark reminder done")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func reminderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid reminder id")
		return 0, false
	}
	return id, true
}
