// Package main is the entry point for blockfall.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/samdwyer/blockfall/internal/game"
	"github.com/samdwyer/blockfall/internal/logging"
	"github.com/samdwyer/blockfall/internal/telemetry"
)

func main() {
	// Load .env file for local development
	envErr := godotenv.Load()

	closeLog, err := logging.Setup(os.Getenv("BLOCKFALL_LOG_FILE"), os.Getenv("BLOCKFALL_LOG_LEVEL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if envErr != nil {
		// Not fatal - env vars might be set directly
		log.WithError(envErr).Debug(".env file not loaded")
	}

	ctx := context.Background()

	if setupOTelEnv() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.WithError(err).Warn("telemetry setup failed, running without tracing")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.WithError(err).Error("telemetry shutdown")
				}
			}()
		}
	}

	cfg, opts, err := game.LoadConfig()
	if err != nil {
		log.WithError(err).Error("invalid configuration")
		fmt.Fprintf(os.Stderr, "blockfall: %v\n", err)
		os.Exit(2)
	}

	g, err := game.New(ctx, cfg, opts)
	if err != nil {
		log.WithError(err).Error("failed to initialize game")
		fmt.Fprintf(os.Stderr, "blockfall: %v\n", err)
		os.Exit(1)
	}

	if err := g.Run(ctx); err != nil {
		log.WithError(err).Error("game error")
		os.Exit(1)
	}
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is
// configured. It reports whether tracing should be enabled.
func setupOTelEnv() bool {
	apiKey := os.Getenv("HONEYCOMB_BLOCKFALL_API_KEY")
	if apiKey == "" {
		return false
	}

	dataset := os.Getenv("HONEYCOMB_BLOCKFALL_DATASET")
	if dataset == "" {
		dataset = "blockfall"
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
