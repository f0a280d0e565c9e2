// Package main is the entry point for the Beatvard marketplace backend.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/beatvard/beatvard-backend/internal/config"
	"github.com/beatvard/beatvard-backend/internal/domain/catalog"
	"github.com/beatvard/beatvard-backend/internal/domain/ingest"
	"github.com/beatvard/beatvard-backend/internal/infra/storage"
	"github.com/beatvard/beatvard-backend/internal/transport/rest"
	"github.com/beatvard/beatvard-backend/internal/transport/socketio"
	"github.com/beatvard/beatvard-backend/internal/version"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to TOML config file (optional)")
	port := flag.String("port", "", "HTTP server port (overrides config)")
	storageDir := flag.String("storage-dir", "", "Directory for stored objects (overrides config; empty keeps objects in memory)")
	storageBaseURL := flag.String("storage-base-url", "", "Public URL prefix for stored objects (overrides config)")
	catalogSeed := flag.String("catalog", "", "Path to a TOML catalog seed file (overrides config)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *storageDir != "" {
		cfg.Storage.Dir = *storageDir
	}
	if *storageBaseURL != "" {
		cfg.Storage.BaseURL = *storageBaseURL
	}
	if *catalogSeed != "" {
		cfg.Catalog.SeedFile = *catalogSeed
	}

	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level := zerolog.InfoLevel
	if *debug || cfg.Logging.Level == "debug" {
		level = zerolog.DebugLevel
	} else if parsed, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		level = parsed
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Print startup banner
	versionInfo := version.GetInfo()
	log.Info().Msg("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Info().Msgf("  %s", versionInfo.String())
	log.Info().Msg("  Beat Marketplace Backend")
	log.Info().Msg("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Info().
		Str("port", cfg.Server.Port).
		Str("storage_dir", cfg.Storage.Dir).
		Str("catalog_seed", cfg.Catalog.SeedFile).
		Msg("Configuration")

	// Object store: filesystem when a directory is configured, otherwise
	// in-memory (session-scoped, nothing survives a restart).
	var store storage.ObjectStore
	if cfg.Storage.Dir != "" {
		store = storage.NewFilesystemStore(cfg.Storage.Dir, cfg.Storage.BaseURL)
		log.Info().Str("dir", cfg.Storage.Dir).Msg("Using filesystem object store")
	} else {
		store = storage.NewMemoryStore(cfg.Storage.BaseURL)
		log.Info().Msg("Using in-memory object store")
	}

	// Catalog snapshot
	var cat *catalog.Catalog
	if cfg.Catalog.SeedFile != "" {
		cat, err = catalog.LoadFile(cfg.Catalog.SeedFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load catalog seed")
		}
	} else {
		cat = catalog.DefaultCatalog()
	}
	log.Info().Int("beats", cat.Len()).Msg("Catalog ready")

	// Services and handlers
	ingestService := ingest.NewService(store)
	uploadHandler := rest.NewUploadHandler(ingestService)
	catalogHandler := rest.NewCatalogHandler(cat)

	// Socket.io session channel
	socketServer, err := socketio.NewServer(cat)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Socket.io server")
	}
	defer socketServer.Close()

	// Setup HTTP server
	mux := http.NewServeMux()

	mux.Handle("/socket.io/", socketServer)
	mux.Handle("/api/v1/upload-beat", uploadHandler)
	mux.HandleFunc("/api/v1/beats", catalogHandler.Beats)
	mux.HandleFunc("/api/v1/tags", catalogHandler.Tags)

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Version endpoint
	mux.HandleFunc("/api/v1/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(version.GetInfo())
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      corsMiddleware(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Info().Msg("Shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server shutdown error")
		}
	}()

	log.Info().Str("addr", ":"+cfg.Server.Port).Msg("HTTP server listening")
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("HTTP server error")
	}

	log.Info().Msg("Server stopped")
}
