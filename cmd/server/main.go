// Command server runs the diary HTTP API.
//
// Configuration comes from environment variables, optionally seeded from a
// .env file, plus an optional YAML file pointed at by CONFIG_PATH.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/tjwls11/diary111/internal/app"
)

func main() {
	// Missing .env is fine; real env vars win either way.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
