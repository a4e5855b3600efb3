package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/iamasit07/4-in-a-row/console/internal/config"
	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
	"github.com/iamasit07/4-in-a-row/console/internal/transport/console"
	"github.com/iamasit07/4-in-a-row/console/internal/transport/websocket"
	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()
	setupLogging(config.GetEnvAsBool("DEBUG", false), os.Stderr)

	cfg := config.LoadConfig()
	if envErr != nil {
		log.Println("No .env file found")
	}

	ui := console.New(os.Stdin, os.Stdout, cfg)
	listeners := []game.Listener{ui}

	var watch *websocket.Server
	if cfg.WatchAddr != "" {
		watch = websocket.NewServer(cfg.WatchAddr, websocket.NewConnectionManager())
		watch.Start()
		listeners = append(listeners, websocket.NewFeed(watch.ConnManager))
	}

	setup, err := ui.ReadSetup()
	if err != nil {
		fatalf("Failed to read game setup: %v", err)
	}

	session, err := game.NewSession(game.Settings{
		Rows:        setup.Rows,
		Cols:        setup.Cols,
		TotalRounds: setup.TotalRounds,
		QuitCommand: cfg.QuitCommand,
	}, [2]*domain.Player{setup.Player1, setup.Player2}, ui, listeners...)
	if err != nil {
		fatalf("Failed to start session: %v", err)
	}

	_, runErr := session.Run()

	if watch != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := watch.Shutdown(ctx); err != nil {
			log.Printf("[WATCH] Shutdown error: %v", err)
		}
		cancel()
	}

	if runErr != nil {
		fatalf("Session aborted: %v", runErr)
	}
}

// setupLogging sends logs to w in debug mode and drops them otherwise,
// since the board is drawn on stdout.
func setupLogging(debug bool, w io.Writer) {
	if !debug {
		w = io.Discard
	}
	log.SetOutput(w)
}

// fatalf always reaches stderr, even when logging is discarded.
func fatalf(format string, args ...any) {
	log.SetOutput(os.Stderr)
	log.Fatalf(format, args...)
}
