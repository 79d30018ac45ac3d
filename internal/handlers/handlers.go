package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"payminder/internal/models"
)

// Dispatcher processes one utterance end to end.
type Dispatcher interface {
	Handle(ctx context.Context, utterance string) string
}

// ReminderRepository is the slice of the store the REST endpoints need.
type ReminderRepository interface {
	Create(ctx context.Context, reminder *models.Reminder) (*models.Reminder, error)
	List(ctx context.Context, includeDone bool) ([]models.Reminder, error)
	GetByID(ctx context.Context, id int64) (*models.Reminder, error)
	DeleteByID(ctx context.Context, id int64) error
	MarkDoneByID(ctx context.Context, id int64) error
}

type Handler struct {
	dispatcher Dispatcher
	repo       ReminderRepository
	log        *logrus.Logger
}

func New(dispatcher Dispatcher, repo ReminderRepository, log *logrus.Logger) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		repo:       repo,
		log:        log,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
