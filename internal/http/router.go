package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"partcatalog/internal/handlers"
	"partcatalog/internal/ingest"
	"partcatalog/internal/storage"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	DB         *sql.DB
	RecordRepo storage.RecordStore
	Pipeline   *ingest.Pipeline
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	healthHandler := handlers.NewHealthHandler(deps.DB)
	recordsHandler := handlers.NewRecordsHandler(deps.RecordRepo)
	ingestHandler := handlers.NewIngestHandler(deps.Pipeline)
	exportHandler := handlers.NewExportHandler(deps.RecordRepo)
	statsHandler := handlers.NewStatsHandler(deps.Pipeline)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)
		r.Method(http.MethodGet, "/records", recordsHandler)
		r.Method(http.MethodPost, "/ingest", ingestHandler)
		r.Method(http.MethodGet, "/stats", statsHandler)
		r.Get("/export.csv", exportHandler.ServeCSV)
		r.Get("/export.xlsx", exportHandler.ServeXLSX)
	})

	return r
}
