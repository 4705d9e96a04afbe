package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dev-devfero/talaash/api"
	dbfs "github.com/dev-devfero/talaash/db"
	"github.com/dev-devfero/talaash/internal/cache"
	"github.com/dev-devfero/talaash/internal/config"
	"github.com/dev-devfero/talaash/internal/db"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Starting talaash server version %s (built at %s)", version, buildTime)

	ctx := context.Background()

	// Open database connection and apply migrations
	db, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := dbMigrate(ctx, db); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	// Redis listing cache is optional; run without it when not configured
	var listingCache *cache.Cache
	if cfg.RedisURL != "" {
		listingCache, err = cache.New(cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			log.Printf("Listing cache disabled: %v", err)
			listingCache = nil
		}
	}

	handler := api.SetupRoutes(cfg, version, buildTime, db, listingCache)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if listingCache != nil {
		if err := listingCache.Close(); err != nil {
			log.Printf("Error closing cache: %v", err)
		}
	}

	// Close database connection
	if err := db.Close(); err != nil {
		log.Printf("Error closing DB: %v", err)
	}

	log.Println("Server exited")
}

func dbMigrate(ctx context.Context, d *db.DB) error {
	return db.Migrate(ctx, d, dbfs.Migrations)
}
