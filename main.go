package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tasklist/internal/config"
	"tasklist/internal/handlers"
	"tasklist/internal/store"
	"tasklist/internal/tasks"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize storage backend
	backend, err := openBackend(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer backend.Close()

	svc, err := tasks.New(backend,
		tasks.WithKey(cfg.StorageKey),
		tasks.WithDelay(cfg.Latency),
		tasks.WithLogger(log.Default()),
	)
	if err != nil {
		log.Fatalf("Failed to initialize task service: %v", err)
	}

	h := handlers.New(svc)

	// Create router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	h.Routes(r)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	go func() {
		log.Printf("Starting server on http://localhost%s (backend=%s, latency=%s)", server.Addr, cfg.StorageBackend, cfg.Latency)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	<-stop
	log.Printf("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown failed: %v", err)
	}
}

func openBackend(cfg config.Config) (store.Backend, error) {
	if cfg.StorageBackend == config.BackendMemory {
		return store.NewMemoryStore(), nil
	}

	// Ensure data directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return store.NewSQLiteStore(cfg.DBPath)
}
