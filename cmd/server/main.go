package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/light-bringer/equiv-service/internal/config"
	"github.com/light-bringer/equiv-service/internal/services"
)

var cfgFile = flag.String("config", "", "config file (default: ./equivcat.yaml)")

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		return err
	}

	log.Printf("Starting Equivalence Catalog Service...")
	log.Printf("Spanner Database: %s", cfg.Spanner.DatabasePath())
	log.Printf("HTTP Port: %s", cfg.HTTP.Port)

	serviceOpts, err := services.NewServiceOptions(ctx, cfg.Spanner.DatabasePath())
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	mux := http.NewServeMux()
	serviceOpts.APIHandler.RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: mux,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.HTTP.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down gracefully...")

	if err := httpServer.Shutdown(context.Background()); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	return nil
}
