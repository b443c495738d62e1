package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/mood-journal/internal/logger"
)

// Pinger defines the interface for a health-checkable dependency.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse represents the health check response
// swagger:model HealthResponse
type HealthResponse struct {
	Status string `json:"status"`
}

// NewHealthHandler returns an HTTP handler that pings the database.
// @Summary Health check
// @Description Reports whether the database is reachable
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service healthy"
// @Failure 500 {object} handlers.HealthResponse "Database unreachable"
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Log.Errorw("health check failed", "err", err)
			writeJSON(w, http.StatusInternalServerError, HealthResponse{Status: "database unreachable"})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
