// Package main provides the EDH Companion REST API server: Commander deck
// validation, bracket inference, and salt score analysis.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ramonehamilton/EDH-Companion/internal/api"
	"github.com/ramonehamilton/EDH-Companion/internal/api/handlers"
	"github.com/ramonehamilton/EDH-Companion/internal/config"
	"github.com/ramonehamilton/EDH-Companion/internal/deckhost"
	"github.com/ramonehamilton/EDH-Companion/internal/edh/brackets"
	"github.com/ramonehamilton/EDH-Companion/internal/edh/salt"
	"github.com/ramonehamilton/EDH-Companion/internal/edh/validator"
	"github.com/ramonehamilton/EDH-Companion/internal/edhrec"
	"github.com/ramonehamilton/EDH-Companion/internal/scryfall"
)

var port = flag.Int("port", 0, "API server port (overrides config)")

func main() {
	flag.Parse()

	fmt.Println("EDH Companion - Deck Validation API")
	fmt.Println("===================================")
	fmt.Println()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	requestTimeout, err := time.ParseDuration(cfg.Server.RequestTimeout)
	if err != nil {
		log.Printf("Invalid request timeout %q, using 30s", cfg.Server.RequestTimeout)
		requestTimeout = 30 * time.Second
	}

	// Wire the collaborating services.
	scryfallClient := scryfall.NewClient()
	edhrecClient := edhrec.NewClient()

	saltService := salt.NewService(edhrecClient, cfg.Salt.CacheFile)
	loader := brackets.NewLoader(scryfallClient)
	extractor := deckhost.NewExtractor()

	deckValidator := validator.New(saltService, loader, extractor)

	h := &api.Handlers{
		Validation: handlers.NewValidationHandler(deckValidator),
		Salt:       handlers.NewSaltHandler(saltService),
		Brackets:   handlers.NewBracketsHandler(),
		System:     handlers.NewSystemHandler(),
	}

	server := api.NewServer(&api.Config{
		Port:           cfg.Server.Port,
		APIKey:         cfg.Server.APIKey,
		RequestTimeout: requestTimeout,
	}, h)

	if err := server.Start(); err != nil {
		log.Fatalf("Failed to start API server: %v", err)
	}

	fmt.Printf("API server running at http://localhost:%d\n", server.Port())
	fmt.Println("Press Ctrl+C to stop")
	fmt.Println()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	fmt.Println()
	fmt.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	fmt.Println("API server stopped.")
}
