package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/peakform/coachdesk/internal/dashboard/app"
)

func main() {
	// Local development reads config from a .env file; in containers the
	// environment is injected directly and the file is absent.
	_ = godotenv.Load()

	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
