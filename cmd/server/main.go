package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/JIYUNNNNNN/schedule/internal/assistant"
	"github.com/JIYUNNNNNN/schedule/internal/calendar"
	"github.com/JIYUNNNNNN/schedule/internal/config"
	"github.com/JIYUNNNNNN/schedule/internal/llm"
	"github.com/JIYUNNNNNN/schedule/internal/server"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	llmClient, err := llm.NewFactory(cfg).CreateClient(string(cfg.LLMProvider))
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	ctx := context.Background()
	store, err := calendar.NewGoogleStore(ctx, calendar.Credentials{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURI:  cfg.GoogleRedirectURI,
		RefreshToken: cfg.GoogleRefreshToken,
	}, cfg.CalendarID)
	if err != nil {
		log.Fatalf("failed to create calendar store: %v", err)
	}

	asst, err := assistant.New(llmClient, store, assistant.Options{
		TimeZone:        cfg.TimeZone,
		LookAheadMonths: cfg.LookAheadMonths,
		MaxListResults:  cfg.MaxListResults,
	})
	if err != nil {
		log.Fatalf("failed to create assistant: %v", err)
	}

	srv := server.New(asst, cfg.Port, cfg.UpstreamTimeout)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		log.Printf("shutting down")
		if err := srv.Stop(); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}
