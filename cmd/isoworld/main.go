// Package main is the entry point for the isoworld explorer.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/isoworld/internal/game"
	"github.com/samdwyer/isoworld/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_ISOWORLD_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Explorer will run without observability")
		// Continue without telemetry - the explorer still works
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg := game.FromEnv()

	// ISOWORLD_DUMP prints the fog-of-war debug view and exits, instead of
	// starting the interactive explorer.
	if os.Getenv("ISOWORLD_DUMP") != "" {
		if err := dump(ctx, cfg); err != nil {
			log.Fatalf("Dump failed: %v", err)
		}
		return
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize explorer: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Explorer error: %v", err)
	}
}

// dump builds a level headlessly and prints its ascii fog-of-war view.
func dump(ctx context.Context, cfg game.Config) error {
	def, err := game.ResolvePreset(cfg)
	if err != nil {
		return err
	}

	level := game.BuildLevel(ctx, def, cfg.ResolveSeed())

	radius := def.ViewRadius
	if cfg.Radius > 0 {
		radius = cfg.Radius
	}
	pos := game.StartPosition(level)
	fmt.Print(level.AsciiVisible(level.VisibleFrom(pos, radius)))
	return nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_ISOWORLD_API_KEY")
	dataset := os.Getenv("HONEYCOMB_ISOWORLD_DATASET")
	if dataset == "" {
		dataset = "isoworld" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
