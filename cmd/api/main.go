package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"partcatalog/internal/config"
	"partcatalog/internal/http"
	"partcatalog/internal/ingest"
	"partcatalog/internal/source"
	"partcatalog/internal/storage"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	catalogRepo := storage.NewCatalogRepo(db)
	fileRepo := storage.NewFileRepo(db)
	recordRepo := storage.NewRecordRepo(db)

	ctx := context.Background()

	// Register the configured catalog root
	sources, err := source.NewManager(ctx, catalogRepo, map[string]string{
		"main": cfg.CatalogPath,
	})
	if err != nil {
		log.Fatalf("Failed to initialize source manager: %v", err)
	}
	slog.Info("Source manager initialized", "catalog_path", cfg.CatalogPath)

	// Create ingestion pipeline
	pipeline := ingest.NewPipeline(
		sources,
		fileRepo,
		recordRepo,
		cfg.SourceExt,
		cfg.ExportDir,
		cfg.ExportXLSX,
	)

	// Create router with dependencies
	deps := &http.Deps{
		DB:         db,
		RecordRepo: recordRepo,
		Pipeline:   pipeline,
	}
	router := http.NewRouter(deps)

	// Start ingestion in background after router is ready
	go func() {
		ingestCtx := context.Background()
		slog.Info("Starting background ingest of catalogs")
		if _, err := pipeline.IngestAll(ingestCtx); err != nil {
			slog.Error("Ingest completed with errors", "error", err)
		} else {
			slog.Info("Ingest completed successfully")
		}
	}()

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
