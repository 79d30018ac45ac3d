package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"payminder/internal/advisor"
	"payminder/internal/config"
	"payminder/internal/database"
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

	logg.WithField("session_id", session.ID).Debug("advisor session started")

	printBanner()

	if err := runLoop(adv); err != nil {
		logg.Fatalf("Console loop failed: %v", err)
	}
}

func printBanner() {
	fmt.Println("\n💰 Financial Advisor with Smart Reminder Management")
	fmt.Println(strings.Repeat("=", 55))
	fmt.Println("Hi! I'm your financial advisor. I can help with:")
	fmt.Println("• Financial advice and planning")
	fmt.Println("• Creating and managing payment reminders")
	fmt.Println("\n💡 Example commands:")
	fmt.Println("- 'Create reminder to pay electricity bill $150 by August 15'")
	fmt.Println("- 'Complete reminder rent'")
	fmt.Println("- 'List reminders'")
	fmt.Println("- 'Delete my Netflix subscription reminder'")
	fmt.Println("\nType 'exit' to quit")
	fmt.Println()
}

// runLoop reads one utterance at a time and fully processes it before the
// next read. Ctrl-C on an empty line and Ctrl-D both end the session.
func runLoop(adv *advisor.Advisor) error {
	homeDir, _ := os.UserHomeDir()
	historyFile := filepath.Join(homeDir, ".payminder-history")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "You: ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           readline.NewCancelableStdin(os.Stdin),
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	ctx := context.Background()

	for {
		input, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(input) == 0 {
				fmt.Println("\nSession ended. Your reminders are saved in the database.")
				return nil
			}
			continue
		}
		if err == io.EOF {
			fmt.Println("\nSession ended. Your reminders are saved in the database.")
			return nil
		}
		if err != nil {
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		lowered := strings.ToLower(input)
		if lowered == "exit" || lowered == "quit" {
			fmt.Println("\nThank you for using our financial services. Have a great day!")
			return nil
		}

		response := adv.Handle(ctx, input)
		fmt.Printf("\nAdvisor: %s\n\n", response)
	}
}
