package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Darlene250/amazon-explorer/config"
	httpDelivery "github.com/Darlene250/amazon-explorer/internal/delivery/http"
	"github.com/Darlene250/amazon-explorer/internal/infrastructure/amazon"
	"github.com/Darlene250/amazon-explorer/internal/infrastructure/cache"
	"github.com/Darlene250/amazon-explorer/internal/infrastructure/session"
	"github.com/Darlene250/amazon-explorer/internal/infrastructure/storage"
	"github.com/Darlene250/amazon-explorer/internal/usecase"
)

func main() {
	// Load .env if present, then configuration
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Amazon Explorer v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// Open the persistent key-value store backing cache and session
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("Failed to open storage at %s: %v", cfg.Storage.Path, err)
	}
	defer store.Close()
	log.Printf("Storage: %s", cfg.Storage.Path)

	cacheStore := cache.NewStore(store, cfg.Cache.TTL)
	sessionStore := session.NewStore(store)

	amazonClient := amazon.NewClient(cfg.Amazon.SearchURL, cfg.Amazon.DetailsURL, cfg.Amazon.APIHost)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		amazonClient.SetDebug(true)
		log.Printf("Amazon client debug mode enabled")
	}
	log.Printf("Amazon API configured: %s", cfg.Amazon.APIHost)

	// Initialize usecase layer
	explorerService := usecase.NewExplorerService(cacheStore, amazonClient)
	sessionService := usecase.NewSessionService(sessionStore, explorerService, cfg.Amazon.DefaultKey)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(explorerService, sessionService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
