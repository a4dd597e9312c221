// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gridstake/pickem/internal/app"
	"github.com/gridstake/pickem/internal/domain/model"
	"github.com/gridstake/pickem/pkg/metrics"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	// Live computes a leaderboard against a freshly fetched snapshot.
	Live(ctx context.Context, req app.LiveRequest) (model.Leaderboard, error)

	// GetStats exposes service statistics for monitoring.
	GetStats() map[string]interface{}
}

// Server wires HTTP routes for the business API.
type Server struct {
	leaderboardHandler *LeaderboardHandler
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		leaderboardHandler: NewLeaderboardHandler(deps),
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(deps),
	}
}

// Router builds the chi router with middleware and all routes attached.
// Browser clients poll the live endpoint directly, hence the permissive
// CORS policy. Callers may mount extra routes on the returned mux.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Post("/v1/leaderboard/live", MetricsMiddleware(s.leaderboardHandler.HandleLive, "leaderboard_live"))
	r.Get("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	r.Get("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	r.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

	return r
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
