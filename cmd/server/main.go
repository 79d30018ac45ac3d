package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"payminder/internal/advisor"
	"payminder/internal/config"
	"payminder/internal/database"
	"payminder/internal/handlers"
	"payminder/internal/llm"
	"payminder/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logg := logger.New(cfg)

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logg.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	repo := database.NewRepository(db)
	llmClient := llm.NewClient(cfg.GroqBaseURL, cfg.GroqModel, cfg.GroqAPIKey)
	session := llm.NewSession(llm.FinancePersona)
	adv := advisor.New(repo, llmClient, session, logg)

	h := handlers.New(adv, repo, logg)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/api/chat", h.Chat)

	r.Get("/api/reminders", h.ListReminders)
	r.Post("/api/reminders", h.CreateReminder)
	r.Get("/api/reminders/{id}", h.GetReminder)
	r.Delete("/api/reminders/{id}", h.DeleteReminder)
	r.Patch("/api/reminders/{id}/done", h.MarkReminderDone)

	logg.Infof("Server starting on http://localhost:%s", cfg.ServerPort)
	if err := http.ListenAndServe(":"+cfg.ServerPort, r); err != nil {
		logg.Fatalf("Server failed: %v", err)
	}
}
