package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-journal/internal/logger"
	"github.com/sbilibin2017/mood-journal/internal/middlewares"
	"github.com/sbilibin2017/mood-journal/internal/models"
)

// StatsGetter defines the interface that the statistics service must implement.
type StatsGetter interface {
	Stats(ctx context.Context, userID uuid.UUID) (*models.MoodStats, error)
}

// NewStatsHandler returns an HTTP handler for the statistics bundle.
// @Summary Get mood statistics
// @Description Returns per-day counts with dominant mood, the category distribution, streaks, and the 30-day activity bitmap
// @Tags moods
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Envelope "Statistics bundle"
// @Failure 401 {object} models.Envelope "Unauthorized"
// @Router /moods/stats [get]
func NewStatsHandler(svc StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetAuthUserFromContext(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, models.CodeUnauthorized, "Authentication required")
			return
		}

		stats, err := svc.Stats(r.Context(), user.UserID)
		if err != nil {
			logger.Log.Errorw("failed to compute stats", "err", err)
			writeError(w, http.StatusInternalServerError, models.CodeInternalError, "Failed to fetch statistics")
			return
		}

		writeData(w, http.StatusOK, stats)
	}
}
