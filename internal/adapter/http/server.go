// Package http exposes the site-record API plus health, readiness, and
// metrics endpoints.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/groundwatertools/well-data-service/internal/domain"
	"github.com/groundwatertools/well-data-service/internal/stats"
)

// WellAPI is the application surface the HTTP layer drives.
type WellAPI interface {
	WellLog(ctx context.Context, agencyCode, siteNumber string) (*domain.WellLog, error)
	WaterQuality(ctx context.Context, agencyCode, siteNumber string) (*domain.WaterQuality, error)
	Statistics(ctx context.Context, agencyCode, siteNumber string) (stats.SiteStatistics, error)
	Features(ctx context.Context, latitude, longitude float64) (map[string]any, error)
	CheckReadiness(ctx context.Context) error
}

// Server exposes the record API and operational HTTP endpoints.
type Server struct {
	httpServer *http.Server
	api        WellAPI
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the API routes plus /healthz,
// /readyz, and /metrics.
func NewServer(addr string, api WellAPI, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		api:    api,
		logger: logger,
	}

	mux.HandleFunc("GET /api/well-log/{agency}/{site}", s.handleWellLog)
	mux.HandleFunc("GET /api/water-quality/{agency}/{site}", s.handleWaterQuality)
	mux.HandleFunc("GET /api/statistics/{agency}/{site}", s.handleStatistics)
	mux.HandleFunc("GET /api/features", s.handleFeatures)

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleWellLog(w http.ResponseWriter, r *http.Request) {
	record, err := s.api.WellLog(r.Context(), r.PathValue("agency"), r.PathValue("site"))
	if err != nil {
		s.writeUpstreamError(w, r, err)
		return
	}
	if record == nil {
		writeJSON(w, http.StatusOK, map[string]any{})
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleWaterQuality(w http.ResponseWriter, r *http.Request) {
	record, err := s.api.WaterQuality(r.Context(), r.PathValue("agency"), r.PathValue("site"))
	if err != nil {
		s.writeUpstreamError(w, r, err)
		return
	}
	if record == nil {
		writeJSON(w, http.StatusOK, map[string]any{})
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	statistics, err := s.api.Statistics(r.Context(), r.PathValue("agency"), r.PathValue("site"))
	if err != nil {
		s.writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statistics)
}

func (s *Server) handleFeatures(w http.ResponseWriter, r *http.Request) {
	latitude, err := strconv.ParseFloat(r.URL.Query().Get("latitude"), 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "latitude must be a number"})
		return
	}
	longitude, err := strconv.ParseFloat(r.URL.Query().Get("longitude"), 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "longitude must be a number"})
		return
	}

	features, err := s.api.Features(r.Context(), latitude, longitude)
	if err != nil {
		s.writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, features)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.api.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// writeUpstreamError reports an upstream failure without leaking the raw
// error to API consumers.
func (s *Server) writeUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("upstream request failed", "error", err, "path", r.URL.Path)
	writeJSON(w, http.StatusBadGateway, map[string]string{"error": "upstream service error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response write
}
